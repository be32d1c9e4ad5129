package ports

import (
	"context"
	"time"

	"hr-document-server/internal/model"
)

// RemoteStorage : клиент удалённого объектного хранилища.
// Все ошибки возвращаются как *model.RemoteStoreError.
type RemoteStorage interface {
	Head(ctx context.Context, key string) (*model.ObjectInfo, error)
	Put(ctx context.Context, key string, data []byte, contentType string) (*model.ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	CreateShareLink(ctx context.Context, key string, expire time.Duration) (string, error)
	ObjectURL(key string) string
	Bucket() string
}

// FolderEnsurer : идемпотентное создание папок по пути
type FolderEnsurer interface {
	EnsurePath(ctx context.Context, folderPath string) error
}
