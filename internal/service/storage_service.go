package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"hr-document-server/config"
	"hr-document-server/internal/model"
	"hr-document-server/internal/util"
)

// StorageService : клиент удалённого объектного хранилища поверх S3.
// Папки моделируются нулевыми объектами-маркерами с ключом, оканчивающимся на "/".
// Все ошибки классифицируются здесь и возвращаются как *model.RemoteStoreError.
type StorageService struct {
	client   *s3.Client
	psClient *s3.PresignClient
	bucket   string
	endpoint string
}

func NewStorageService(ctx context.Context, cfg *config.S3Config) (*StorageService, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				"minioadmin",
				"minioadmin",
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[StorageService] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[StorageService] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	psClient := s3.NewPresignClient(client)

	return &StorageService{
		client:   client,
		psClient: psClient,
		bucket:   cfg.Bucket,
		endpoint: cfg.Endpoint,
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[StorageService] ошибка создания бакета", err)
	}

	log.Printf("[StorageService] бакет %s успешно создан", bucket)
	return nil
}

// Head : проверка существования объекта по ключу
func (s *StorageService) Head(ctx context.Context, key string) (*model.ObjectInfo, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.classify("head", key, err)
	}

	return &model.ObjectInfo{
		Bucket:    s.bucket,
		Key:       key,
		ETag:      aws.ToString(out.ETag),
		SizeBytes: aws.ToInt64(out.ContentLength),
	}, nil
}

// Put : запись объекта, существующий объект по тому же ключу перезаписывается
func (s *StorageService) Put(ctx context.Context, key string, data []byte, contentType string) (*model.ObjectInfo, error) {
	out, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, s.classify("put", key, err)
	}

	return &model.ObjectInfo{
		Bucket:    s.bucket,
		Key:       key,
		ETag:      aws.ToString(out.ETag),
		SizeBytes: int64(len(data)),
	}, nil
}

// Delete : удаление объекта по ключу
func (s *StorageService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return s.classify("delete", key, err)
	}
	return nil
}

// CreateShareLink : генерация pre-signed GET URL как публичной ссылки на файл
func (s *StorageService) CreateShareLink(ctx context.Context, key string, expire time.Duration) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expire
	})
	if err != nil {
		return "", s.classify("createLink", key, err)
	}

	return req.URL, nil
}

// ObjectURL : постоянный адрес объекта в хранилище
func (s *StorageService) ObjectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}

func (s *StorageService) Bucket() string {
	return s.bucket
}

// classify : переводит ошибку транспорта в устойчивую классификацию,
// чтобы вызывающий код проверял Kind, а не тип ошибки SDK
func (s *StorageService) classify(op string, key string, err error) error {
	kind := model.StoreErrTransient
	httpStatus := 0

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		kind = model.StoreErrNotFound
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		httpStatus = respErr.HTTPStatusCode()
		switch {
		case httpStatus == http.StatusNotFound:
			kind = model.StoreErrNotFound
		case httpStatus == http.StatusForbidden || httpStatus == http.StatusUnauthorized:
			kind = model.StoreErrPermission
		case httpStatus == http.StatusTooManyRequests || httpStatus == http.StatusServiceUnavailable:
			kind = model.StoreErrThrottled
		}
	}

	return &model.RemoteStoreError{
		Kind:       kind,
		HTTPStatus: httpStatus,
		Op:         op,
		Key:        key,
		Err:        err,
	}
}
