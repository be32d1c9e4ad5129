package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"hr-document-server/config"
	"hr-document-server/internal/model"
)

type ReportRepository struct {
	*config.Database
}

func NewReportRepository(database *config.Database) *ReportRepository {
	return &ReportRepository{database}
}

// Бизнес-записи хранят ссылку на документ по-разному:
// отчёты — внешний ключ на uuid документа, чеки — публичную ссылку на файл.
var reportTables = map[string]struct {
	table  string
	column string
	byURL  bool
}{
	model.ReferenceAccidentReport:  {table: "accident_reports", column: "certificate_document_uuid"},
	model.ReferenceIllnessReport:   {table: "illness_reports", column: "certificate_document_uuid"},
	model.ReferenceDepartureReport: {table: "departure_reports", column: "document_uuid"},
	model.ReferenceReceipt:         {table: "receipts", column: "file_url", byURL: true},
}

// LinkDocument : записывает ссылку на документ в бизнес-запись
func (r *ReportRepository) LinkDocument(ctx context.Context, exec sqlx.ExtContext, referenceType string, referenceID string, document *model.Document) error {
	target, ok := reportTables[referenceType]
	if ok == false {
		return fmt.Errorf("неизвестный тип бизнес-записи: %s", referenceType)
	}

	value := document.UUID
	if target.byURL {
		value = document.ShareURL
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, updated_at = NOW()
		WHERE id = $1
	`, target.table, target.column)

	result, err := exec.ExecContext(ctx, query, referenceID, value)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("бизнес-запись %s/%s не найдена", referenceType, referenceID)
	}

	return nil
}

// ClearDocument : очищает ссылку на документ в бизнес-записи
func (r *ReportRepository) ClearDocument(ctx context.Context, exec sqlx.ExtContext, referenceType string, referenceID string) error {
	target, ok := reportTables[referenceType]
	if ok == false {
		return fmt.Errorf("неизвестный тип бизнес-записи: %s", referenceType)
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = NULL, updated_at = NOW()
		WHERE id = $1
	`, target.table, target.column)

	_, err := exec.ExecContext(ctx, query, referenceID)
	return err
}
