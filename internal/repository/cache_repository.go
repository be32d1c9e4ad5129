package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hr-document-server/config"
	"hr-document-server/internal/model"
	"hr-document-server/internal/util"
)

// CacheRepository : кэширует справочники компаний и сотрудников,
// чтобы не ходить в БД на каждую загрузку файла
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) GetCompany(ctx context.Context, companyID string) (*model.CompanyContext, error) {
	val, err := r.client.Client.Get(ctx, r.companyKey(companyID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения компании из Redis", err)
	}

	var company model.CompanyContext
	if err := json.Unmarshal([]byte(val), &company); err != nil {
		return nil, util.LogError("ошибка десериализации компании из кэша", err)
	}
	return &company, nil
}

func (r *CacheRepository) SetCompany(ctx context.Context, company *model.CompanyContext) error {
	data, err := json.Marshal(company)
	if err != nil {
		return util.LogError("ошибка сериализации компании", err)
	}

	if err := r.client.Client.Set(ctx, r.companyKey(company.ID), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения компании в Redis", err)
	}

	return nil
}

func (r *CacheRepository) GetEmployee(ctx context.Context, companyID string, employeeID string) (*model.EmployeeContext, error) {
	val, err := r.client.Client.Get(ctx, r.employeeKey(companyID, employeeID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("ошибка получения сотрудника из Redis", err)
	}

	var employee model.EmployeeContext
	if err := json.Unmarshal([]byte(val), &employee); err != nil {
		return nil, util.LogError("ошибка десериализации сотрудника из кэша", err)
	}
	return &employee, nil
}

func (r *CacheRepository) SetEmployee(ctx context.Context, employee *model.EmployeeContext) error {
	data, err := json.Marshal(employee)
	if err != nil {
		return util.LogError("ошибка сериализации сотрудника", err)
	}

	if err := r.client.Client.Set(ctx, r.employeeKey(employee.CompanyID, employee.ID), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения сотрудника в Redis", err)
	}

	return nil
}

func (r *CacheRepository) companyKey(companyID string) string {
	return fmt.Sprintf("company:%s", companyID)
}

func (r *CacheRepository) employeeKey(companyID string, employeeID string) string {
	return fmt.Sprintf("employee:%s:%s", companyID, employeeID)
}
