package ports

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hr-document-server/internal/model"
)

// DocumentRepository : SQL слой для записей документов
type DocumentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error
	GetByUUID(ctx context.Context, uuid string) (*model.Document, error)
	MarkDeleted(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Document, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

// ReportRepository : привязка документа к бизнес-записи (отчёт или чек)
type ReportRepository interface {
	LinkDocument(ctx context.Context, exec sqlx.ExtContext, referenceType string, referenceID string, document *model.Document) error
	ClearDocument(ctx context.Context, exec sqlx.ExtContext, referenceType string, referenceID string) error
}

// UploadService : оркестратор загрузки документа
type UploadService interface {
	Upload(ctx context.Context, input *model.UploadInput) (*model.UploadResult, *model.Document, error)
}

// DeleteService : оркестратор удаления документа
type DeleteService interface {
	Delete(ctx context.Context, input *model.DeleteInput) (*model.Document, error)
}

// DocumentService : чтение метаданных документа со свежей ссылкой
type DocumentService interface {
	GetDocument(ctx context.Context, documentUUID string) (*model.Document, string, error)
}
