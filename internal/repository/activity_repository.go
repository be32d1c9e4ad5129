package repository

import (
	"context"
	"encoding/json"

	"hr-document-server/config"
	"hr-document-server/internal/model"
	"hr-document-server/internal/util"
)

type ActivityLogRepository struct {
	*config.Database
}

func NewActivityLogRepository(database *config.Database) *ActivityLogRepository {
	return &ActivityLogRepository{database}
}

// Insert : добавляет запись аудита, записи никогда не изменяются и не удаляются
func (r *ActivityLogRepository) Insert(ctx context.Context, entry *model.ActivityLog) error {
	oldValue, err := json.Marshal(entry.OldValue)
	if err != nil {
		return util.LogError("[ActivityLogRepository] ошибка сериализации old_value", err)
	}
	newValue, err := json.Marshal(entry.NewValue)
	if err != nil {
		return util.LogError("[ActivityLogRepository] ошибка сериализации new_value", err)
	}
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return util.LogError("[ActivityLogRepository] ошибка сериализации metadata", err)
	}

	query := `
		INSERT INTO activity_logs (uuid, company_id, actor_id, action, description, old_value, new_value, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.DB.ExecContext(
		ctx,
		query,
		entry.UUID,
		entry.CompanyID,
		entry.ActorID,
		entry.Action,
		entry.Description,
		oldValue,
		newValue,
		metadata)

	return err
}
