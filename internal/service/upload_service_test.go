package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hr-document-server/config"
	"hr-document-server/internal/model"
	"hr-document-server/internal/service"
)

type uploadMocks struct {
	storage   *MockRemoteStorage
	folders   *MockFolderEnsurer
	documents *MockDocumentRepository
	reports   *MockReportRepository
	directory *MockDirectoryRepository
	cache     *MockCacheRepository
	activity  *MockActivityLogger
}

func productionUploadConfig() *config.UploadConfig {
	return &config.UploadConfig{
		Mode:              "production",
		MaxFileSizeMB:     10,
		MaxFileSizeDevMB:  20,
		AllowedMimeTypes:  []string{"application/pdf", "image/jpeg", "image/png"},
		MaxFileNameLength: 100,
	}
}

func newUploadService(t *testing.T) (*service.UploadService, *uploadMocks) {
	t.Helper()

	mocks := &uploadMocks{
		storage:   new(MockRemoteStorage),
		folders:   new(MockFolderEnsurer),
		documents: new(MockDocumentRepository),
		reports:   new(MockReportRepository),
		directory: new(MockDirectoryRepository),
		cache:     new(MockCacheRepository),
		activity:  new(MockActivityLogger),
	}

	uploadService := service.NewUploadService(
		mocks.storage,
		mocks.folders,
		mocks.documents,
		mocks.reports,
		mocks.directory,
		mocks.cache,
		mocks.activity,
		productionUploadConfig(),
		fastRetryConfig(),
		24*time.Hour,
	)

	return uploadService, mocks
}

func accidentUploadInput() *model.UploadInput {
	return &model.UploadInput{
		FileBytes:     make([]byte, 500<<10), // 500KB
		FileName:      "scan.pdf",
		MimeType:      "application/pdf",
		CompanyID:     "C1",
		EmployeeID:    "E1",
		ReferenceID:   "R1",
		ReferenceType: model.ReferenceAccidentReport,
		UploadedBy:    "U1",
	}
}

func expectDirectoryLookups(mocks *uploadMocks) {
	mocks.cache.On("GetCompany", mock.Anything, "C1").Return(nil, nil)
	mocks.directory.On("GetCompany", mock.Anything, "C1").Return(&model.CompanyContext{
		ID:             "C1",
		Name:           "Acme GmbH",
		SequenceNumber: intPtr(7),
	}, nil)
	mocks.cache.On("SetCompany", mock.Anything, mock.Anything).Return(nil)

	mocks.cache.On("GetEmployee", mock.Anything, "C1", "E1").Return(nil, nil)
	mocks.directory.On("GetEmployee", mock.Anything, "C1", "E1").Return(&model.EmployeeContext{
		ID:             "E1",
		CompanyID:      "C1",
		FirstName:      "Mia",
		LastName:       "Muster",
		SequenceNumber: intPtr(3),
	}, nil)
	mocks.cache.On("SetEmployee", mock.Anything, mock.Anything).Return(nil)
}

func TestUploadHappyPath(t *testing.T) {
	uploadService, mocks := newUploadService(t)
	expectDirectoryLookups(mocks)

	mocks.folders.On("EnsurePath", mock.Anything, "Acme-GmbH-C7/Mia-Muster-E3/medical-certificates").Return(nil)

	var uploadedKey string
	mocks.storage.On("Put", mock.Anything, mock.Anything, mock.Anything, "application/pdf").
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return(&model.ObjectInfo{Bucket: "hr-documents"}, nil)
	mocks.storage.On("CreateShareLink", mock.Anything, mock.Anything, 24*time.Hour).Return("https://share.example/doc", nil)
	mocks.storage.On("ObjectURL", mock.Anything).Return("https://s3.example/hr-documents/key")
	mocks.storage.On("Bucket").Return("hr-documents")

	mocks.documents.On("BeginTX", mock.Anything).Return(&fakeTx{}, func() error { return nil }, func() error { return nil }, nil)

	var savedDocument *model.Document
	mocks.documents.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedDocument = args.Get(2).(*model.Document)
		}).
		Return(nil)
	mocks.reports.On("LinkDocument", mock.Anything, mock.Anything, model.ReferenceAccidentReport, "R1", mock.Anything).Return(nil)
	mocks.activity.On("Log", mock.Anything).Return()

	result, document, err := uploadService.Upload(context.Background(), accidentUploadInput())
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, document)

	assert.Contains(t, result.FilePath, "Acme-GmbH-C7/")
	assert.Contains(t, result.FilePath, "Mia-Muster-E3/")
	assert.Equal(t, uploadedKey, result.FilePath)

	namePattern := regexp.MustCompile(`^med-cert_ACC_C7_E3_\d{4}-\d{2}-\d{2}T\d{2}-\d{2}-\d{2}-\d{3}Z\.pdf$`)
	assert.Regexp(t, namePattern, result.FileName)

	require.NotNil(t, savedDocument)
	assert.Equal(t, model.DocumentStatusActive, savedDocument.Status)
	assert.Equal(t, model.ReferenceAccidentReport, savedDocument.ReferenceType)
	assert.Equal(t, "R1", savedDocument.ReferenceID)
	assert.Equal(t, "https://share.example/doc", savedDocument.ShareURL)

	mocks.reports.AssertExpectations(t)
	mocks.activity.AssertNumberOfCalls(t, "Log", 1)
}

// Превышение лимита размера отсекается до любых обращений
// к хранилищу и справочникам
func TestUploadOversizedFileShortCircuits(t *testing.T) {
	uploadService, mocks := newUploadService(t)

	input := accidentUploadInput()
	input.FileBytes = make([]byte, 11<<20) // 11MB при лимите 10MB

	_, _, err := uploadService.Upload(context.Background(), input)

	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Equal(t, "File size exceeds the maximum of 10 MB", err.Error())

	mocks.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mocks.folders.AssertNotCalled(t, "EnsurePath", mock.Anything, mock.Anything)
	mocks.directory.AssertNotCalled(t, "GetCompany", mock.Anything, mock.Anything)
	mocks.documents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadDisallowedMimeType(t *testing.T) {
	uploadService, mocks := newUploadService(t)

	input := accidentUploadInput()
	input.MimeType = "application/zip"

	_, _, err := uploadService.Upload(context.Background(), input)

	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Equal(t, "File type application/zip is not allowed", err.Error())
	mocks.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadUnknownReferenceType(t *testing.T) {
	uploadService, mocks := newUploadService(t)

	input := accidentUploadInput()
	input.ReferenceType = "vacation_request"

	_, _, err := uploadService.Upload(context.Background(), input)

	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
	assert.Equal(t, "Invalid report type", err.Error())
	mocks.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Отсутствие номера последовательности — ошибка конфигурации, не загрузка
func TestUploadMissingCompanySequence(t *testing.T) {
	uploadService, mocks := newUploadService(t)

	mocks.cache.On("GetCompany", mock.Anything, "C1").Return(nil, nil)
	mocks.directory.On("GetCompany", mock.Anything, "C1").Return(&model.CompanyContext{
		ID:   "C1",
		Name: "Acme GmbH",
	}, nil)
	mocks.cache.On("SetCompany", mock.Anything, mock.Anything).Return(nil)

	_, _, err := uploadService.Upload(context.Background(), accidentUploadInput())

	require.Error(t, err)
	assert.True(t, model.IsConfigurationError(err))
	mocks.storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Ошибка транзакции БД компенсируется удалением загруженного объекта
func TestUploadCompensatesRemoteObjectOnLinkFailure(t *testing.T) {
	uploadService, mocks := newUploadService(t)
	expectDirectoryLookups(mocks)

	mocks.folders.On("EnsurePath", mock.Anything, mock.Anything).Return(nil)

	var uploadedKey string
	mocks.storage.On("Put", mock.Anything, mock.Anything, mock.Anything, "application/pdf").
		Run(func(args mock.Arguments) {
			uploadedKey = args.String(1)
		}).
		Return(&model.ObjectInfo{Bucket: "hr-documents"}, nil)
	mocks.storage.On("CreateShareLink", mock.Anything, mock.Anything, mock.Anything).Return("https://share.example/doc", nil)
	mocks.storage.On("ObjectURL", mock.Anything).Return("https://s3.example/key")
	mocks.storage.On("Bucket").Return("hr-documents")
	mocks.storage.On("Delete", mock.Anything, mock.Anything).Return(nil)

	mocks.documents.On("BeginTX", mock.Anything).Return(&fakeTx{}, func() error { return nil }, func() error { return nil }, nil)
	mocks.documents.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mocks.reports.On("LinkDocument", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("отчёт не найден"))

	_, _, err := uploadService.Upload(context.Background(), accidentUploadInput())

	require.Error(t, err)
	mocks.storage.AssertCalled(t, "Delete", mock.Anything, uploadedKey)
	mocks.activity.AssertNotCalled(t, "Log", mock.Anything)
}
