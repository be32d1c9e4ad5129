package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-document-server/internal/model"
	"hr-document-server/internal/repository"
)

func TestReportRepositoryLinkDocumentByUUID(t *testing.T) {
	database, mockSQL := newTestDatabase(t)
	repo := repository.NewReportRepository(database)

	document := &model.Document{
		UUID:     "doc-1",
		ShareURL: "https://share.example/doc",
	}

	mockSQL.ExpectExec("UPDATE accident_reports").
		WithArgs("R1", "doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.LinkDocument(context.Background(), database.DB, model.ReferenceAccidentReport, "R1", document)

	require.NoError(t, err)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

// Чеки привязываются публичной ссылкой на файл, а не uuid документа
func TestReportRepositoryLinkReceiptByURL(t *testing.T) {
	database, mockSQL := newTestDatabase(t)
	repo := repository.NewReportRepository(database)

	document := &model.Document{
		UUID:     "doc-1",
		ShareURL: "https://share.example/receipt",
	}

	mockSQL.ExpectExec("UPDATE receipts").
		WithArgs("R1", "https://share.example/receipt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.LinkDocument(context.Background(), database.DB, model.ReferenceReceipt, "R1", document)

	require.NoError(t, err)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}

func TestReportRepositoryLinkDocumentMissingRow(t *testing.T) {
	database, mockSQL := newTestDatabase(t)
	repo := repository.NewReportRepository(database)

	mockSQL.ExpectExec("UPDATE illness_reports").
		WithArgs("missing", "doc-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.LinkDocument(context.Background(), database.DB, model.ReferenceIllnessReport, "missing", &model.Document{UUID: "doc-1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "не найдена")
}

func TestReportRepositoryLinkDocumentUnknownType(t *testing.T) {
	database, _ := newTestDatabase(t)
	repo := repository.NewReportRepository(database)

	err := repo.LinkDocument(context.Background(), database.DB, "vacation_request", "R1", &model.Document{UUID: "doc-1"})

	require.Error(t, err)
}

func TestReportRepositoryClearDocument(t *testing.T) {
	database, mockSQL := newTestDatabase(t)
	repo := repository.NewReportRepository(database)

	mockSQL.ExpectExec("UPDATE departure_reports").
		WithArgs("R1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ClearDocument(context.Background(), database.DB, model.ReferenceDepartureReport, "R1")

	require.NoError(t, err)
	assert.NoError(t, mockSQL.ExpectationsWereMet())
}
