package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hr-document-server/docs"

	"hr-document-server/config"
	"hr-document-server/internal/handler"
	"hr-document-server/internal/repository"
	"hr-document-server/internal/security"
	"hr-document-server/internal/service"
	"hr-document-server/internal/util"
)

// @title HR Document Server
// @version 1.0
// @description Сервис загрузки документов HR-приложения: файлы в объектном хранилище, записи документов и журнал аудита в БД

// @host localhost:8080
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	util.SetVerbose(cfg.Logging.Verbose)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	docRepo := repository.NewDocumentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	directoryRepo := repository.NewDirectoryRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.RedisConfig.TTL)*time.Second)

	storageService, err := service.NewStorageService(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания сервиса хранилища: %v", err)
	}

	retryCfg, err := parseRetryConfig(&cfg.Retry)
	if err != nil {
		log.Fatalf("Ошибка конфигурации повторов: %v", err)
	}

	shareTTL, err := cfg.Upload.ShareLinkDuration()
	if err != nil {
		log.Fatalf("Ошибка конфигурации ссылок: %v", err)
	}

	folderService := service.NewFolderService(storageService, retryCfg)
	activityService := service.NewActivityService(activityRepo, 10*time.Second)
	uploadService := service.NewUploadService(
		storageService,
		folderService,
		docRepo,
		reportRepo,
		directoryRepo,
		cacheRepo,
		activityService,
		&cfg.Upload,
		retryCfg,
		shareTTL,
	)
	deleteService := service.NewDeleteService(storageService, docRepo, reportRepo, activityService, retryCfg)
	documentService := service.NewDocumentService(docRepo, storageService, shareTTL)

	jwtService := security.NewJWTService(&cfg.JWT)
	docHandler := handler.NewDocumentHandler(uploadService, deleteService, documentService, &cfg.Upload)

	router.Use(handler.CORSMiddleware(cfg.CORS.Origins()))
	router.MethodNotAllowed(handler.MethodNotAllowed)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupDocumentRoutes(router, docHandler, jwtService)

	runServer(ctx, srv)
}

func setupDocumentRoutes(r chi.Router, h *handler.DocumentHandler, jwtService *security.JWTService) {
	r.Get("/api/health", h.Health)

	r.Route("/api/documents", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Post("/", h.UploadDocument)
		r.Delete("/", h.DeleteDocument)
		r.Get("/{uuid}", h.GetDocument)
	})
}

func parseRetryConfig(cfg *config.RetryConfig) (util.RetryConfig, error) {
	retryCfg := util.DefaultRetryConfig()

	if cfg.MaxAttempts > 0 {
		retryCfg.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BaseDelay != "" {
		baseDelay, err := time.ParseDuration(cfg.BaseDelay)
		if err != nil {
			return retryCfg, err
		}
		retryCfg.BaseDelay = baseDelay
	}
	if cfg.MaxDelay != "" {
		maxDelay, err := time.ParseDuration(cfg.MaxDelay)
		if err != nil {
			return retryCfg, err
		}
		retryCfg.MaxDelay = maxDelay
	}

	return retryCfg, nil
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
