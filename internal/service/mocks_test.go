package service_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"hr-document-server/internal/model"
)

type MockRemoteStorage struct{ mock.Mock }

func (m *MockRemoteStorage) Head(ctx context.Context, key string) (*model.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ObjectInfo), args.Error(1)
}

func (m *MockRemoteStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*model.ObjectInfo, error) {
	args := m.Called(ctx, key, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ObjectInfo), args.Error(1)
}

func (m *MockRemoteStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRemoteStorage) CreateShareLink(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockRemoteStorage) ObjectURL(key string) string {
	return m.Called(key).String(0)
}

func (m *MockRemoteStorage) Bucket() string {
	return m.Called().String(0)
}

type MockFolderEnsurer struct{ mock.Mock }

func (m *MockFolderEnsurer) EnsurePath(ctx context.Context, folderPath string) error {
	return m.Called(ctx, folderPath).Error(0)
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	return m.Called(ctx, exec, document).Error(0)
}

func (m *MockDocumentRepository) GetByUUID(ctx context.Context, uuid string) (*model.Document, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) MarkDeleted(ctx context.Context, exec sqlx.ExtContext, uuid string) (*model.Document, error) {
	args := m.Called(ctx, exec, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

type MockReportRepository struct{ mock.Mock }

func (m *MockReportRepository) LinkDocument(ctx context.Context, exec sqlx.ExtContext, referenceType string, referenceID string, document *model.Document) error {
	return m.Called(ctx, exec, referenceType, referenceID, document).Error(0)
}

func (m *MockReportRepository) ClearDocument(ctx context.Context, exec sqlx.ExtContext, referenceType string, referenceID string) error {
	return m.Called(ctx, exec, referenceType, referenceID).Error(0)
}

type MockDirectoryRepository struct{ mock.Mock }

func (m *MockDirectoryRepository) GetCompany(ctx context.Context, companyID string) (*model.CompanyContext, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyContext), args.Error(1)
}

func (m *MockDirectoryRepository) GetEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error) {
	args := m.Called(ctx, companyID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeeContext), args.Error(1)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) GetCompany(ctx context.Context, companyID string) (*model.CompanyContext, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CompanyContext), args.Error(1)
}

func (m *MockCacheRepository) SetCompany(ctx context.Context, company *model.CompanyContext) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockCacheRepository) GetEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error) {
	args := m.Called(ctx, companyID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeeContext), args.Error(1)
}

func (m *MockCacheRepository) SetEmployee(ctx context.Context, employee *model.EmployeeContext) error {
	return m.Called(ctx, employee).Error(0)
}

type MockActivityLogger struct{ mock.Mock }

func (m *MockActivityLogger) Log(entry *model.ActivityLog) {
	m.Called(entry)
}

// fakeTx : заглушка sqlx.ExtContext для сервисных тестов
type fakeTx struct{}

func (f *fakeTx) DriverName() string {
	return "sqlmock"
}

func (f *fakeTx) Rebind(query string) string {
	return query
}

func (f *fakeTx) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return query, nil, nil
}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return nil
}
