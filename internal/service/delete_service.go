package service

import (
	"fmt"
	"time"

	"context"

	"github.com/google/uuid"

	"hr-document-server/internal/model"
	"hr-document-server/internal/ports"
	"hr-document-server/internal/util"
)

// DeleteService : оркестратор удаления документа, обратный загрузке.
// Удаление идемпотентно: отсутствие объекта в хранилище — это успех,
// потому что желаемое конечное состояние уже достигнуто.
type DeleteService struct {
	storage   ports.RemoteStorage
	documents ports.DocumentRepository
	reports   ports.ReportRepository
	activity  ports.ActivityLogger
	retry     util.RetryConfig
}

func NewDeleteService(
	storage ports.RemoteStorage,
	documents ports.DocumentRepository,
	reports ports.ReportRepository,
	activity ports.ActivityLogger,
	retry util.RetryConfig,
) *DeleteService {
	return &DeleteService{
		storage:   storage,
		documents: documents,
		reports:   reports,
		activity:  activity,
		retry:     retry,
	}
}

// Delete : удаляет объект из хранилища, помечает запись документа удалённой
// и очищает ссылку в бизнес-записи, если она указана
func (s *DeleteService) Delete(ctx context.Context, input *model.DeleteInput) (*model.Document, error) {
	document, err := s.documents.GetByUUID(ctx, input.DocumentUUID)
	if err != nil {
		return nil, util.LogError("[DeleteService] ошибка чтения документа", err)
	}

	// проверка "не найдено" выполняется дважды: внутри операции на сырой
	// ошибке и после исчерпания повторов на итоговой
	_, err = util.WithRetry(ctx, s.retry, func() (struct{}, error) {
		deleteErr := s.storage.Delete(ctx, input.ItemID)
		if deleteErr != nil && model.IsStoreNotFound(deleteErr) {
			util.Logf("[DeleteService] объект %s уже отсутствует в хранилище", input.ItemID)
			return struct{}{}, nil
		}
		return struct{}{}, deleteErr
	})
	if err != nil && model.IsStoreNotFound(err) == false {
		return nil, util.LogError("[DeleteService] не удалось удалить объект из хранилища", err)
	}

	exec, rollback, commit, err := s.documents.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[DeleteService] не удалось начать транзакцию", err)
	}
	defer rollback()

	deleted, err := s.documents.MarkDeleted(ctx, exec, input.DocumentUUID)
	if err != nil {
		return nil, util.LogError("[DeleteService] не удалось пометить документ удалённым", err)
	}

	if input.ReferenceID != "" && input.ReferenceType != "" {
		if err := s.reports.ClearDocument(ctx, exec, input.ReferenceType, input.ReferenceID); err != nil {
			return nil, util.LogError("[DeleteService] не удалось очистить ссылку в бизнес-записи", err)
		}
	}

	if err := commit(); err != nil {
		return nil, util.LogError("[DeleteService] не удалось закоммитить транзакцию", err)
	}

	oldValue := map[string]interface{}{
		"item_id": input.ItemID,
	}
	if document != nil {
		oldValue["file_name"] = document.FilenameOriginal
		oldValue["path"] = document.StoragePath
	}

	s.activity.Log(&model.ActivityLog{
		UUID:        uuid.New().String(),
		CompanyID:   input.CompanyID,
		ActorID:     input.UserID,
		Action:      "document_deleted",
		Description: fmt.Sprintf("Удалён документ %s", input.DocumentUUID),
		OldValue:    oldValue,
		Metadata: map[string]interface{}{
			"reference_type": input.ReferenceType,
			"reference_id":   input.ReferenceID,
			"deleted_at":     time.Now().UTC().Format(time.RFC3339),
		},
	})

	util.Logf("[DeleteService] документ %s успешно удалён", input.DocumentUUID)

	return deleted, nil
}
