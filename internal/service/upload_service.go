package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hr-document-server/config"
	"hr-document-server/internal/model"
	"hr-document-server/internal/ports"
	"hr-document-server/internal/util"
)

// UploadService : оркестратор загрузки документа.
// Порядок шагов строго фиксирован: проверка файла, обогащение справочными
// данными, создание папок, запись файла, публичная ссылка, затем запись
// документа и привязка к бизнес-записи в одной транзакции БД.
// Внешнее хранилище в транзакции участвовать не может, поэтому при ошибке
// транзакции выполняется компенсационное удаление загруженного объекта.
type UploadService struct {
	storage   ports.RemoteStorage
	folders   ports.FolderEnsurer
	documents ports.DocumentRepository
	reports   ports.ReportRepository
	directory ports.DirectoryRepository
	cache     ports.CacheRepository
	activity  ports.ActivityLogger
	uploadCfg *config.UploadConfig
	retry     util.RetryConfig
	shareTTL  time.Duration
}

func NewUploadService(
	storage ports.RemoteStorage,
	folders ports.FolderEnsurer,
	documents ports.DocumentRepository,
	reports ports.ReportRepository,
	directory ports.DirectoryRepository,
	cache ports.CacheRepository,
	activity ports.ActivityLogger,
	uploadCfg *config.UploadConfig,
	retry util.RetryConfig,
	shareTTL time.Duration,
) *UploadService {
	return &UploadService{
		storage:   storage,
		folders:   folders,
		documents: documents,
		reports:   reports,
		directory: directory,
		cache:     cache,
		activity:  activity,
		uploadCfg: uploadCfg,
		retry:     retry,
		shareTTL:  shareTTL,
	}
}

// Upload : выполняет полный цикл загрузки и возвращает результат вместе
// с созданной записью документа
func (s *UploadService) Upload(ctx context.Context, input *model.UploadInput) (*model.UploadResult, *model.Document, error) {
	spec, ok := model.CategoryForReference(input.ReferenceType)
	if ok == false {
		return nil, nil, model.NewValidationError("reportType", "Invalid report type")
	}

	// локальная проверка, никогда не повторяется и не трогает внешние системы
	if err := s.validateFile(input); err != nil {
		return nil, nil, err
	}

	meta, err := s.enrichMetadata(ctx, input, spec)
	if err != nil {
		return nil, nil, err
	}

	folderPath, err := BuildFolderPath(spec, meta)
	if err != nil {
		return nil, nil, err
	}

	if err := s.folders.EnsurePath(ctx, folderPath); err != nil {
		return nil, nil, err
	}

	fileName, err := BuildFileName(input.FileName, spec, meta, time.Now())
	if err != nil {
		return nil, nil, err
	}
	fullPath := folderPath + "/" + fileName

	_, err = util.WithRetry(ctx, s.retry, func() (*model.ObjectInfo, error) {
		return s.storage.Put(ctx, fullPath, input.FileBytes, input.MimeType)
	})
	if err != nil {
		// контекст операции добавляется к ошибке, исходная ошибка сохраняется
		return nil, nil, fmt.Errorf("[UploadService] загрузка файла %s (%s, %d байт): %w",
			fullPath, input.MimeType, len(input.FileBytes), err)
	}

	// ссылка — часть единицы загрузки: её ошибка делает загрузку неуспешной
	shareURL, err := s.storage.CreateShareLink(ctx, fullPath, s.shareTTL)
	if err != nil {
		s.compensateRemote(fullPath)
		return nil, nil, util.LogError("[UploadService] не удалось создать публичную ссылку", err)
	}

	document := &model.Document{
		UUID:             uuid.New().String(),
		CompanyID:        input.CompanyID,
		Category:         spec.Category,
		ReferenceType:    input.ReferenceType,
		ReferenceID:      input.ReferenceID,
		Bucket:           s.storage.Bucket(),
		StoragePath:      fullPath,
		WebURL:           s.storage.ObjectURL(fullPath),
		ShareURL:         shareURL,
		FilenameOriginal: input.FileName,
		MimeType:         input.MimeType,
		SizeBytes:        int64(len(input.FileBytes)),
		UploadedBy:       input.UploadedBy,
		Status:           model.DocumentStatusActive,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if spec.EmployeeScoped {
		employeeID := input.EmployeeID
		document.EmployeeID = &employeeID
	}

	if err := s.persistAndLink(ctx, document); err != nil {
		s.compensateRemote(fullPath)
		return nil, nil, err
	}

	s.activity.Log(&model.ActivityLog{
		UUID:        uuid.New().String(),
		CompanyID:   input.CompanyID,
		ActorID:     input.UploadedBy,
		Action:      "document_uploaded",
		Description: fmt.Sprintf("Загружен документ %s (%s)", input.FileName, spec.Category),
		NewValue: map[string]interface{}{
			"document_uuid": document.UUID,
			"file_name":     fileName,
			"path":          fullPath,
		},
		Metadata: map[string]interface{}{
			"reference_type": input.ReferenceType,
			"reference_id":   input.ReferenceID,
			"mime_type":      input.MimeType,
			"size_bytes":     document.SizeBytes,
		},
	})

	util.Logf("[UploadService] документ %s успешно загружен в %s", document.UUID, fullPath)

	result := &model.UploadResult{
		FilePath: fullPath,
		Bucket:   document.Bucket,
		ItemID:   fullPath,
		WebURL:   document.WebURL,
		ShareURL: shareURL,
		FileName: fileName,
		MimeType: input.MimeType,
	}

	return result, document, nil
}

// validateFile : размер, MIME-тип и длина имени файла
func (s *UploadService) validateFile(input *model.UploadInput) error {
	maxBytes := s.uploadCfg.EffectiveMaxFileSizeBytes()
	if int64(len(input.FileBytes)) > maxBytes {
		return model.NewValidationError("file",
			fmt.Sprintf("File size exceeds the maximum of %d MB", s.uploadCfg.EffectiveMaxFileSizeMB()))
	}

	if s.uploadCfg.MimeTypeAllowed(input.MimeType) == false {
		return model.NewValidationError("file",
			fmt.Sprintf("File type %s is not allowed", input.MimeType))
	}

	if len(input.FileName) > s.uploadCfg.MaxFileNameLength {
		return model.NewValidationError("file",
			fmt.Sprintf("File name exceeds %d characters", s.uploadCfg.MaxFileNameLength))
	}

	return nil
}

// enrichMetadata : дополняет вход справочными данными компании и сотрудника.
// Имена необязательны, номера последовательностей обязательны.
func (s *UploadService) enrichMetadata(ctx context.Context, input *model.UploadInput, spec model.CategorySpec) (*model.PathMetadata, error) {
	company, err := s.resolveCompany(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, model.NewConfigurationError("компания %s не найдена", input.CompanyID)
	}
	if company.SequenceNumber == nil {
		return nil, model.NewConfigurationError("у компании %s не задан номер последовательности", input.CompanyID)
	}

	meta := &model.PathMetadata{
		CompanyName:     company.Name,
		CompanySequence: company.SequenceNumber,
	}

	if spec.EmployeeScoped {
		employee, err := s.resolveEmployee(ctx, input.CompanyID, input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, model.NewConfigurationError("сотрудник %s не найден", input.EmployeeID)
		}
		if employee.SequenceNumber == nil {
			return nil, model.NewConfigurationError("у сотрудника %s не задан номер последовательности", input.EmployeeID)
		}
		meta.EmployeeName = employee.FullName()
		meta.EmployeeSequence = employee.SequenceNumber
	}

	if raw, ok := input.Metadata["formSequence"]; ok {
		if number, ok := raw.(float64); ok {
			formSeq := int(number)
			meta.FormSequence = &formSeq
		}
	}

	return meta, nil
}

// resolveCompany : кэш перед БД, ошибки кэша не прерывают операцию
func (s *UploadService) resolveCompany(ctx context.Context, companyID string) (*model.CompanyContext, error) {
	company, err := s.cache.GetCompany(ctx, companyID)
	if err != nil {
		util.Logf("[UploadService] ошибка кэша компаний: %v", err)
	}
	if company != nil {
		return company, nil
	}

	company, err = s.directory.GetCompany(ctx, companyID)
	if err != nil {
		return nil, util.LogError("[UploadService] ошибка чтения компании", err)
	}

	if company != nil {
		if err := s.cache.SetCompany(ctx, company); err != nil {
			util.Logf("[UploadService] ошибка записи компании в кэш: %v", err)
		}
	}

	return company, nil
}

func (s *UploadService) resolveEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error) {
	employee, err := s.cache.GetEmployee(ctx, companyID, employeeID)
	if err != nil {
		util.Logf("[UploadService] ошибка кэша сотрудников: %v", err)
	}
	if employee != nil {
		return employee, nil
	}

	employee, err = s.directory.GetEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, util.LogError("[UploadService] ошибка чтения сотрудника", err)
	}

	if employee != nil {
		if err := s.cache.SetEmployee(ctx, employee); err != nil {
			util.Logf("[UploadService] ошибка записи сотрудника в кэш: %v", err)
		}
	}

	return employee, nil
}

// persistAndLink : запись документа и привязка к бизнес-записи в одной транзакции
func (s *UploadService) persistAndLink(ctx context.Context, document *model.Document) error {
	exec, rollback, commit, err := s.documents.BeginTX(ctx)
	if err != nil {
		return util.LogError("[UploadService] не удалось начать транзакцию", err)
	}
	defer rollback()

	if err := s.documents.Create(ctx, exec, document); err != nil {
		return util.LogError("[UploadService] не удалось сохранить документ в БД", err)
	}

	if err := s.reports.LinkDocument(ctx, exec, document.ReferenceType, document.ReferenceID, document); err != nil {
		return util.LogError("[UploadService] не удалось привязать документ к бизнес-записи", err)
	}

	if err := commit(); err != nil {
		return util.LogError("[UploadService] не удалось закоммитить транзакцию", err)
	}

	return nil
}

// compensateRemote : компенсационное удаление загруженного объекта.
// Выполняется в отдельном контексте и только по возможности:
// исходная ошибка операции важнее ошибки компенсации.
func (s *UploadService) compensateRemote(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.storage.Delete(ctx, key); err != nil && model.IsStoreNotFound(err) == false {
		util.Logf("[UploadService] компенсационное удаление %s не удалось: %v", key, err)
	}
}
