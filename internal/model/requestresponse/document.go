package requestresponse

import (
	"hr-document-server/internal/model"
)

// UploadDocumentResponse : ответ при успешной загрузке документа
type UploadDocumentResponse struct {
	Success bool               `json:"success" example:"true"`
	Data    UploadDocumentData `json:"data"`
}

type UploadDocumentData struct {
	FilePath    string          `json:"filePath" example:"acme-gmbh-C7/mia-muster-E3/medical-certificates/med-cert_ACC_C7_E3_2025-01-15T10-30-00-000Z.pdf"`
	DriveID     string          `json:"driveId" example:"hr-documents"`
	ItemID      string          `json:"itemId"`
	WebURL      string          `json:"webUrl"`
	SharingLink string          `json:"sharingLink,omitempty"`
	FileName    string          `json:"fileName" example:"med-cert_ACC_C7_E3_2025-01-15T10-30-00-000Z.pdf"`
	MimeType    string          `json:"mimeType" example:"application/pdf"`
	Document    *model.Document `json:"document,omitempty"`
	Report      *ReportLink     `json:"report,omitempty"`
}

// ReportLink : подтверждение привязки документа к бизнес-записи
type ReportLink struct {
	ReferenceType string `json:"referenceType" example:"accident_report"`
	ReferenceID   string `json:"referenceId"`
	DocumentUUID  string `json:"documentUuid,omitempty"`
	FileURL       string `json:"fileUrl,omitempty"`
}

// DeleteDocumentRequest : тело запроса на удаление документа
type DeleteDocumentRequest struct {
	ItemID     string `json:"itemId"`
	DocumentID string `json:"documentId"`
	UserID     string `json:"userId"`
	CompanyID  string `json:"companyId"`
	ReportID   string `json:"reportId,omitempty"`
	ReportType string `json:"reportType,omitempty"`
}

// DeleteDocumentResponse : ответ при успешном удалении документа
type DeleteDocumentResponse struct {
	Success  bool            `json:"success" example:"true"`
	Message  string          `json:"message" example:"Document deleted"`
	Document *model.Document `json:"document,omitempty"`
}

// GetDocumentResponse : ответ с метаданными документа и свежей ссылкой
type GetDocumentResponse struct {
	Success  bool            `json:"success" example:"true"`
	Document *model.Document `json:"document"`
	GetURL   string          `json:"getUrl,omitempty"`
}

// ErrorResponse : общий конверт ошибки
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	Error     string `json:"error" example:"Company ID is required"`
	Stack     string `json:"stack,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// HealthResponse : ответ эндпоинта живости сервиса
type HealthResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"ok"`
}
