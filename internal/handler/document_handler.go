package handler

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"hr-document-server/config"
	"hr-document-server/internal/model"
	requestresponse "hr-document-server/internal/model/requestresponse"
	"hr-document-server/internal/ports"
	"hr-document-server/internal/util"
)

const maxMultipartMemory = 32 << 20

type DocumentHandler struct {
	uploadService   ports.UploadService
	deleteService   ports.DeleteService
	documentService ports.DocumentService
	uploadCfg       *config.UploadConfig
}

func NewDocumentHandler(
	uploadService ports.UploadService,
	deleteService ports.DeleteService,
	documentService ports.DocumentService,
	uploadCfg *config.UploadConfig,
) *DocumentHandler {
	return &DocumentHandler{
		uploadService:   uploadService,
		deleteService:   deleteService,
		documentService: documentService,
		uploadCfg:       uploadCfg,
	}
}

// UploadDocument godoc
// @Summary Загрузка документа
// @Description Загружает файл в удалённое хранилище, сохраняет запись документа и привязывает её к отчёту или чеку.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл документа"
// @Param companyId formData string true "ID компании"
// @Param employeeId formData string false "ID сотрудника (обязателен, кроме чеков)"
// @Param uploadedBy formData string true "ID загружающего пользователя"
// @Param reportId formData string true "ID бизнес-записи"
// @Param reportType formData string true "Тип бизнес-записи" Enums(accident_report, illness_report, departure_report, receipt)
// @Param metadata formData string false "Дополнительные данные в JSON"
// @Success 200 {object} requestresponse.UploadDocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/documents [post]
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		util.HandleError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	// обязательные поля проверяются по одному, в фиксированном порядке,
	// чтобы клиент получал точное сообщение о первом отсутствующем поле
	companyID := r.FormValue("companyId")
	if companyID == "" {
		util.HandleError(w, "Company ID is required", http.StatusBadRequest)
		return
	}

	reportType := r.FormValue("reportType")
	if reportType == "" {
		util.HandleError(w, "Report type is required", http.StatusBadRequest)
		return
	}
	spec, ok := model.CategoryForReference(reportType)
	if ok == false {
		util.HandleError(w, "Invalid report type", http.StatusBadRequest)
		return
	}

	reportID := r.FormValue("reportId")
	if reportID == "" {
		util.HandleError(w, "Report ID is required", http.StatusBadRequest)
		return
	}

	employeeID := r.FormValue("employeeId")
	if spec.EmployeeScoped && employeeID == "" {
		util.HandleError(w, "Employee ID is required", http.StatusBadRequest)
		return
	}

	uploadedBy := r.FormValue("uploadedBy")
	if uploadedBy == "" {
		util.HandleError(w, "Uploader ID is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var metadata map[string]interface{}
	if metadataStr := r.FormValue("metadata"); metadataStr != "" {
		if err := json.Unmarshal([]byte(metadataStr), &metadata); err != nil {
			util.HandleError(w, "Invalid metadata JSON", http.StatusBadRequest)
			return
		}
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		util.HandleError(w, "Failed to read file", http.StatusInternalServerError)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	input := &model.UploadInput{
		FileBytes:     fileBytes,
		FileName:      header.Filename,
		MimeType:      mimeType,
		CompanyID:     companyID,
		EmployeeID:    employeeID,
		ReferenceID:   reportID,
		ReferenceType: reportType,
		UploadedBy:    uploadedBy,
		Metadata:      metadata,
	}

	result, document, err := h.uploadService.Upload(ctx, input)
	if err != nil {
		h.respondError(w, err)
		return
	}

	reportLink := &requestresponse.ReportLink{
		ReferenceType: reportType,
		ReferenceID:   reportID,
		DocumentUUID:  document.UUID,
	}
	if reportType == model.ReferenceReceipt {
		reportLink.DocumentUUID = ""
		reportLink.FileURL = document.ShareURL
	}

	util.RespondJSON(w, http.StatusOK, requestresponse.UploadDocumentResponse{
		Success: true,
		Data: requestresponse.UploadDocumentData{
			FilePath:    result.FilePath,
			DriveID:     result.Bucket,
			ItemID:      result.ItemID,
			WebURL:      result.WebURL,
			SharingLink: result.ShareURL,
			FileName:    result.FileName,
			MimeType:    result.MimeType,
			Document:    document,
			Report:      reportLink,
		},
	})
}

// DeleteDocument godoc
// @Summary Удаление документа
// @Description Удаляет объект из хранилища (отсутствие объекта — успех), помечает запись документа удалённой и очищает ссылку в бизнес-записи.
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body requestresponse.DeleteDocumentRequest true "Параметры удаления"
// @Success 200 {object} requestresponse.DeleteDocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/documents [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	var request requestresponse.DeleteDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		util.HandleError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if request.ItemID == "" {
		util.HandleError(w, "Item ID is required", http.StatusBadRequest)
		return
	}
	if request.DocumentID == "" {
		util.HandleError(w, "Document ID is required", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		util.HandleError(w, "User ID is required", http.StatusBadRequest)
		return
	}
	if request.CompanyID == "" {
		util.HandleError(w, "Company ID is required", http.StatusBadRequest)
		return
	}
	if request.ReportType != "" && model.ReferenceTypeAllowed(request.ReportType) == false {
		util.HandleError(w, "Invalid report type", http.StatusBadRequest)
		return
	}

	document, err := h.deleteService.Delete(ctx, &model.DeleteInput{
		ItemID:        request.ItemID,
		DocumentUUID:  request.DocumentID,
		UserID:        request.UserID,
		CompanyID:     request.CompanyID,
		ReferenceID:   request.ReportID,
		ReferenceType: request.ReportType,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	util.RespondJSON(w, http.StatusOK, requestresponse.DeleteDocumentResponse{
		Success:  true,
		Message:  "Document deleted",
		Document: document,
	})
}

// GetDocument godoc
// @Summary Получение документа
// @Description Возвращает запись документа и свежую ссылку на файл.
// @Tags Documents
// @Produce json
// @Param uuid path string true "UUID документа"
// @Success 200 {object} requestresponse.GetDocumentResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/documents/{uuid} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	documentUUID := chi.URLParam(r, "uuid")
	if documentUUID == "" {
		util.HandleError(w, "Document ID is required", http.StatusBadRequest)
		return
	}

	document, getURL, err := h.documentService.GetDocument(r.Context(), documentUUID)
	if err != nil {
		log.Println(err)
		if strings.Contains(err.Error(), "не найден") {
			util.HandleError(w, "Document not found", http.StatusNotFound)
			return
		}
		util.HandleError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	util.RespondJSON(w, http.StatusOK, requestresponse.GetDocumentResponse{
		Success:  true,
		Document: document,
		GetURL:   getURL,
	})
}

// Health godoc
// @Summary Проверка живости сервиса
// @Tags Service
// @Produce json
// @Success 200 {object} requestresponse.HealthResponse
// @Router /api/health [get]
func (h *DocumentHandler) Health(w http.ResponseWriter, r *http.Request) {
	util.RespondJSON(w, http.StatusOK, requestresponse.HealthResponse{
		Success: true,
		Status:  "ok",
	})
}

// respondError : переводит ошибки сервисов в HTTP-статусы.
// Ошибки проверки и конфигурации — 400 с исходным сообщением,
// всё остальное — 500, в режиме разработки со стеком и меткой времени.
func (h *DocumentHandler) respondError(w http.ResponseWriter, err error) {
	log.Println(err)

	switch {
	case model.IsValidationError(err):
		util.HandleError(w, err.Error(), http.StatusBadRequest)
	case model.IsConfigurationError(err):
		util.HandleError(w, err.Error(), http.StatusBadRequest)
	case model.IsStorePermission(err):
		util.HandleErrorVerbose(w, "Access to remote storage denied", http.StatusInternalServerError, h.uploadCfg.IsDevelopment())
	default:
		message := "Internal server error"
		if h.uploadCfg.IsDevelopment() {
			message = err.Error()
		}
		util.HandleErrorVerbose(w, message, http.StatusInternalServerError, h.uploadCfg.IsDevelopment())
	}
}
