package ports

import (
	"context"

	"hr-document-server/internal/model"
)

// DirectoryRepository : справочник компаний и сотрудников
type DirectoryRepository interface {
	GetCompany(ctx context.Context, companyID string) (*model.CompanyContext, error)
	GetEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error)
}

// CacheRepository : кэш справочных данных перед обращением к БД
type CacheRepository interface {
	GetCompany(ctx context.Context, companyID string) (*model.CompanyContext, error)
	SetCompany(ctx context.Context, company *model.CompanyContext) error
	GetEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error)
	SetEmployee(ctx context.Context, employee *model.EmployeeContext) error
}

// ActivityLogRepository : журнал аудита, только вставка
type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *model.ActivityLog) error
}

// ActivityLogger : безопасная отложенная запись аудита.
// Ошибки записи никогда не доходят до вызывающей операции.
type ActivityLogger interface {
	Log(entry *model.ActivityLog)
}
