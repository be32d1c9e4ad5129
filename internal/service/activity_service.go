package service

import (
	"context"
	"log"
	"time"

	"hr-document-server/internal/model"
	"hr-document-server/internal/ports"
)

// ActivityService : отложенная запись аудита.
// Запись выполняется в отдельной горутине с собственным контекстом и
// границей ошибок: сбой аудита никогда не влияет на основную операцию.
type ActivityService struct {
	repository ports.ActivityLogRepository
	timeout    time.Duration
}

func NewActivityService(repository ports.ActivityLogRepository, timeout time.Duration) *ActivityService {
	return &ActivityService{
		repository: repository,
		timeout:    timeout,
	}
}

func (s *ActivityService) Log(entry *model.ActivityLog) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[ActivityService] паника при записи аудита: %v", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.repository.Insert(ctx, entry); err != nil {
			log.Printf("[ActivityService] ошибка записи аудита (%s): %v", entry.Action, err)
		}
	}()
}
