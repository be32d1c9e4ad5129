package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"hr-document-server/config"
	"hr-document-server/internal/model"
)

type DocumentRepository struct {
	*config.Database
}

func NewDocumentRepository(database *config.Database) *DocumentRepository {
	return &DocumentRepository{database}
}

// Create : сохраняем запись документа в статусе active
func (r *DocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	query := `
		INSERT INTO documents (uuid, company_id, employee_id, category, reference_type, reference_id,
		                       bucket, storage_path, web_url, share_url, filename_original,
		                       mime_type, size_bytes, uploaded_by, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		document.UUID,
		document.CompanyID,
		document.EmployeeID,
		document.Category,
		document.ReferenceType,
		document.ReferenceID,
		document.Bucket,
		document.StoragePath,
		document.WebURL,
		document.ShareURL,
		document.FilenameOriginal,
		document.MimeType,
		document.SizeBytes,
		document.UploadedBy,
		document.Status)

	return err
}

// GetByUUID : возвращает запись документа, nil если записи нет
func (r *DocumentRepository) GetByUUID(ctx context.Context, uuid string) (*model.Document, error) {
	query := `
		SELECT uuid, company_id, employee_id, category, reference_type, reference_id,
		       bucket, storage_path, web_url, share_url, filename_original,
		       mime_type, size_bytes, uploaded_by, status, created_at, updated_at, deleted_at
		FROM documents
		WHERE uuid = $1
	`

	var document model.Document
	err := sqlx.GetContext(ctx, r.DB, &document, query, uuid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// MarkDeleted : помечает документ удалённым, строка физически не удаляется
func (r *DocumentRepository) MarkDeleted(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Document, error) {
	query := `
		UPDATE documents
		SET status = $2, deleted_at = NOW(), updated_at = NOW()
		WHERE uuid = $1
		RETURNING uuid, company_id, employee_id, category, reference_type, reference_id,
		          bucket, storage_path, web_url, share_url, filename_original,
		          mime_type, size_bytes, uploaded_by, status, created_at, updated_at, deleted_at
	`

	var document model.Document
	err := sqlx.GetContext(ctx, exec, &document, query, uuid, model.DocumentStatusDeleted)
	if err != nil {
		return nil, err
	}

	return &document, nil
}

func (r *DocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}
