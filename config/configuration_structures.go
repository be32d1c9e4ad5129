package config

import (
	"fmt"
	"strings"
	"time"
)

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      int    `yaml:"ttl"` // секунды, время жизни справочных записей в кэше
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"` // пустой ключ отключает проверку токена
	Issuer    string `yaml:"issuer"`
}

// UploadConfig : лимиты загрузки, зависят от режима работы (development / production)
type UploadConfig struct {
	Mode              string   `yaml:"mode"`
	MaxFileSizeMB     int      `yaml:"max_file_size_mb"`
	MaxFileSizeDevMB  int      `yaml:"max_file_size_dev_mb"`
	AllowedMimeTypes  []string `yaml:"allowed_mime_types"`
	MaxFileNameLength int      `yaml:"max_file_name_length"`
	ShareLinkTTL      string   `yaml:"share_link_ttl"`
}

type RetryConfig struct {
	MaxAttempts int    `yaml:"max_attempts"`
	BaseDelay   string `yaml:"base_delay"`
	MaxDelay    string `yaml:"max_delay"`
}

type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins"` // список через запятую
}

type LoggingConfig struct {
	Verbose bool `yaml:"verbose"`
}

// IsDevelopment : true, если сервис работает в режиме разработки
func (c *UploadConfig) IsDevelopment() bool {
	return c.Mode == "development"
}

// EffectiveMaxFileSizeMB : действующий лимит размера файла в мегабайтах
func (c *UploadConfig) EffectiveMaxFileSizeMB() int {
	if c.IsDevelopment() {
		return c.MaxFileSizeDevMB
	}
	return c.MaxFileSizeMB
}

// EffectiveMaxFileSizeBytes : действующий лимит размера файла в байтах
func (c *UploadConfig) EffectiveMaxFileSizeBytes() int64 {
	return int64(c.EffectiveMaxFileSizeMB()) << 20
}

// MimeTypeAllowed : проверяет MIME-тип по списку разрешённых
func (c *UploadConfig) MimeTypeAllowed(mimeType string) bool {
	for _, allowed := range c.AllowedMimeTypes {
		if strings.EqualFold(allowed, mimeType) {
			return true
		}
	}
	return false
}

// ShareLinkDuration : срок действия публичной ссылки на файл
func (c *UploadConfig) ShareLinkDuration() (time.Duration, error) {
	if c.ShareLinkTTL == "" {
		return 24 * time.Hour, nil
	}
	duration, err := time.ParseDuration(c.ShareLinkTTL)
	if err != nil {
		return 0, fmt.Errorf("неверный формат share_link_ttl: %w", err)
	}
	return duration, nil
}

// Origins : разбирает список разрешённых origin из строки конфигурации
func (c *CORSConfig) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
