package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"hr-document-server/config"
	"hr-document-server/internal/model"
)

// DirectoryRepository : чтение справочников компаний и сотрудников
type DirectoryRepository struct {
	*config.Database
}

func NewDirectoryRepository(database *config.Database) *DirectoryRepository {
	return &DirectoryRepository{database}
}

// GetCompany : возвращает компанию, nil если компании нет
func (r *DirectoryRepository) GetCompany(ctx context.Context, companyID string) (*model.CompanyContext, error) {
	query := `
		SELECT id, name, sequence_number
		FROM companies
		WHERE id = $1
	`

	var company model.CompanyContext
	err := sqlx.GetContext(ctx, r.DB, &company, query, companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// GetEmployee : возвращает сотрудника компании, nil если сотрудника нет
func (r *DirectoryRepository) GetEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error) {
	query := `
		SELECT id, company_id, first_name, last_name, sequence_number
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	var employee model.EmployeeContext
	err := sqlx.GetContext(ctx, r.DB, &employee, query, employeeID, companyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &employee, nil
}
