package service

import (
	"context"
	"strings"

	"hr-document-server/internal/model"
	"hr-document-server/internal/ports"
	"hr-document-server/internal/util"
)

const folderContentType = "application/x-directory"

// FolderService : идемпотентное создание папок в удалённом хранилище.
// Папка существует, если существует объект-маркер с ключом "{prefix}/".
type FolderService struct {
	storage ports.RemoteStorage
	retry   util.RetryConfig
}

func NewFolderService(storage ports.RemoteStorage, retry util.RetryConfig) *FolderService {
	return &FolderService{
		storage: storage,
		retry:   retry,
	}
}

// EnsurePath : проходит путь от корня к листу и создаёт отсутствующие папки.
// "Не найдено" при проверке — сигнал к созданию, любая другая ошибка фатальна.
// Запись маркера перезаписывает существующий объект, поэтому гонка
// двух запросов за одну и ту же папку безобидна.
func (s *FolderService) EnsurePath(ctx context.Context, folderPath string) error {
	trimmed := strings.Trim(folderPath, "/")
	if trimmed == "" {
		return nil
	}

	prefix := ""
	for _, segment := range strings.Split(trimmed, "/") {
		if prefix == "" {
			prefix = segment
		} else {
			prefix = prefix + "/" + segment
		}
		marker := prefix + "/"

		// классификация "не найдено" происходит внутри операции:
		// для обёртки повторов это успех с exists=false
		exists, err := util.WithRetry(ctx, s.retry, func() (bool, error) {
			_, headErr := s.storage.Head(ctx, marker)
			if headErr == nil {
				return true, nil
			}
			if model.IsStoreNotFound(headErr) {
				return false, nil
			}
			return false, headErr
		})
		if err != nil {
			return util.LogError("[FolderService] ошибка проверки папки "+marker, err)
		}

		if exists {
			continue
		}

		_, err = util.WithRetry(ctx, s.retry, func() (*model.ObjectInfo, error) {
			return s.storage.Put(ctx, marker, nil, folderContentType)
		})
		if err != nil {
			return util.LogError("[FolderService] ошибка создания папки "+marker, err)
		}

		util.Logf("[FolderService] папка %s создана", marker)
	}

	return nil
}
