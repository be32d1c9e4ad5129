package service

import (
	"context"
	"fmt"
	"time"

	"hr-document-server/internal/model"
	"hr-document-server/internal/ports"
	"hr-document-server/internal/util"
)

// DocumentService : чтение метаданных документа со свежей публичной ссылкой
type DocumentService struct {
	documents ports.DocumentRepository
	storage   ports.RemoteStorage
	shareTTL  time.Duration
}

func NewDocumentService(documents ports.DocumentRepository, storage ports.RemoteStorage, shareTTL time.Duration) *DocumentService {
	return &DocumentService{
		documents: documents,
		storage:   storage,
		shareTTL:  shareTTL,
	}
}

// GetDocument : возвращает запись документа и свежую ссылку на файл.
// Для удалённых документов ссылка не генерируется.
func (s *DocumentService) GetDocument(ctx context.Context, documentUUID string) (*model.Document, string, error) {
	document, err := s.documents.GetByUUID(ctx, documentUUID)
	if err != nil {
		return nil, "", util.LogError("[DocumentService] ошибка чтения документа", err)
	}
	if document == nil {
		return nil, "", fmt.Errorf("[DocumentService] документ не найден")
	}

	var getURL string
	if document.Status == model.DocumentStatusActive && document.StoragePath != "" {
		getURL, err = s.storage.CreateShareLink(ctx, document.StoragePath, s.shareTTL)
		if err != nil {
			return nil, "", util.LogError("[DocumentService] не удалось сгенерировать ссылку", err)
		}
	}

	return document, getURL, nil
}
