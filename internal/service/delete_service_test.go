package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hr-document-server/internal/model"
	"hr-document-server/internal/service"
)

type deleteMocks struct {
	storage   *MockRemoteStorage
	documents *MockDocumentRepository
	reports   *MockReportRepository
	activity  *MockActivityLogger
}

func newDeleteService(t *testing.T) (*service.DeleteService, *deleteMocks) {
	t.Helper()

	mocks := &deleteMocks{
		storage:   new(MockRemoteStorage),
		documents: new(MockDocumentRepository),
		reports:   new(MockReportRepository),
		activity:  new(MockActivityLogger),
	}

	deleteService := service.NewDeleteService(
		mocks.storage,
		mocks.documents,
		mocks.reports,
		mocks.activity,
		fastRetryConfig(),
	)

	return deleteService, mocks
}

func storedDocument() *model.Document {
	return &model.Document{
		UUID:             "doc-1",
		CompanyID:        "C1",
		StoragePath:      "Acme-GmbH-C7/Mia-Muster-E3/medical-certificates/med-cert_ACC_C7_E3_x.pdf",
		FilenameOriginal: "scan.pdf",
		Status:           model.DocumentStatusActive,
	}
}

func deleteInput() *model.DeleteInput {
	return &model.DeleteInput{
		ItemID:        "Acme-GmbH-C7/Mia-Muster-E3/medical-certificates/med-cert_ACC_C7_E3_x.pdf",
		DocumentUUID:  "doc-1",
		UserID:        "U1",
		CompanyID:     "C1",
		ReferenceID:   "R1",
		ReferenceType: model.ReferenceAccidentReport,
	}
}

func TestDeleteHappyPath(t *testing.T) {
	deleteService, mocks := newDeleteService(t)
	input := deleteInput()

	mocks.documents.On("GetByUUID", mock.Anything, "doc-1").Return(storedDocument(), nil)
	mocks.storage.On("Delete", mock.Anything, input.ItemID).Return(nil)
	mocks.documents.On("BeginTX", mock.Anything).Return(&fakeTx{}, func() error { return nil }, func() error { return nil }, nil)

	removed := storedDocument()
	removed.Status = model.DocumentStatusDeleted
	mocks.documents.On("MarkDeleted", mock.Anything, mock.Anything, "doc-1").Return(removed, nil)
	mocks.reports.On("ClearDocument", mock.Anything, mock.Anything, model.ReferenceAccidentReport, "R1").Return(nil)
	mocks.activity.On("Log", mock.Anything).Return()

	deleted, err := deleteService.Delete(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, model.DocumentStatusDeleted, deleted.Status)
	mocks.storage.AssertNumberOfCalls(t, "Delete", 1)
	mocks.reports.AssertExpectations(t)
	mocks.activity.AssertNumberOfCalls(t, "Log", 1)
}

// Отсутствие объекта в хранилище не считается ошибкой:
// запись в БД всё равно помечается удалённой
func TestDeleteMissingObjectIsSuccess(t *testing.T) {
	deleteService, mocks := newDeleteService(t)
	input := deleteInput()

	notFound := &model.RemoteStoreError{
		Kind:       model.StoreErrNotFound,
		HTTPStatus: 404,
		Op:         "DeleteObject",
		Key:        input.ItemID,
		Err:        errors.New("NoSuchKey"),
	}

	mocks.documents.On("GetByUUID", mock.Anything, "doc-1").Return(storedDocument(), nil)
	mocks.storage.On("Delete", mock.Anything, input.ItemID).Return(notFound)
	mocks.documents.On("BeginTX", mock.Anything).Return(&fakeTx{}, func() error { return nil }, func() error { return nil }, nil)
	mocks.documents.On("MarkDeleted", mock.Anything, mock.Anything, "doc-1").Return(storedDocument(), nil)
	mocks.reports.On("ClearDocument", mock.Anything, mock.Anything, model.ReferenceAccidentReport, "R1").Return(nil)
	mocks.activity.On("Log", mock.Anything).Return()

	_, err := deleteService.Delete(context.Background(), input)

	require.NoError(t, err)
	// отсутствие объекта — конечное состояние, повторы не нужны
	mocks.storage.AssertNumberOfCalls(t, "Delete", 1)
	mocks.documents.AssertCalled(t, "MarkDeleted", mock.Anything, mock.Anything, "doc-1")
	mocks.reports.AssertCalled(t, "ClearDocument", mock.Anything, mock.Anything, model.ReferenceAccidentReport, "R1")
}

// Временная ошибка хранилища повторяется до исчерпания попыток
func TestDeleteRetriesTransientError(t *testing.T) {
	deleteService, mocks := newDeleteService(t)
	input := deleteInput()

	transient := &model.RemoteStoreError{
		Kind:       model.StoreErrTransient,
		HTTPStatus: 503,
		Op:         "DeleteObject",
		Key:        input.ItemID,
		Err:        errors.New("service unavailable"),
	}

	mocks.documents.On("GetByUUID", mock.Anything, "doc-1").Return(storedDocument(), nil)
	mocks.storage.On("Delete", mock.Anything, input.ItemID).Return(transient)

	_, err := deleteService.Delete(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, transient)
	mocks.storage.AssertNumberOfCalls(t, "Delete", 3)
	mocks.documents.AssertNotCalled(t, "MarkDeleted", mock.Anything, mock.Anything, mock.Anything)
	mocks.activity.AssertNotCalled(t, "Log", mock.Anything)
}

// Без ссылки на бизнес-запись очистка не вызывается
func TestDeleteWithoutReferenceSkipsClear(t *testing.T) {
	deleteService, mocks := newDeleteService(t)

	input := deleteInput()
	input.ReferenceID = ""
	input.ReferenceType = ""

	mocks.documents.On("GetByUUID", mock.Anything, "doc-1").Return(storedDocument(), nil)
	mocks.storage.On("Delete", mock.Anything, input.ItemID).Return(nil)
	mocks.documents.On("BeginTX", mock.Anything).Return(&fakeTx{}, func() error { return nil }, func() error { return nil }, nil)
	mocks.documents.On("MarkDeleted", mock.Anything, mock.Anything, "doc-1").Return(storedDocument(), nil)
	mocks.activity.On("Log", mock.Anything).Return()

	_, err := deleteService.Delete(context.Background(), input)

	require.NoError(t, err)
	mocks.reports.AssertNotCalled(t, "ClearDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
