package util

import (
	"context"
	"log"
	"time"
)

// RetryConfig : политика повторов для операций с удалённым хранилищем
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig : 3 попытки всего, задержка min(1s * 2^n, 5s)
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    5 * time.Second,
	}
}

// WithRetry : выполняет операцию с повторами и экспоненциальной задержкой.
// Классификация ошибок — ответственность вызывающего: обёртка повторяет
// любую ошибку, а терминальные случаи (например, "не найдено" как успех)
// операция возвращает сама без ошибки. После исчерпания попыток
// возвращается последняя ошибка без оборачивания.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, operation func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := operation()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			break
		}

		delay := cfg.BaseDelay << attempt
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}

		log.Printf("[WithRetry] попытка %d из %d не удалась, повтор через %s: %v",
			attempt, cfg.MaxAttempts, delay, err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, lastErr
		case <-timer.C:
		}
	}

	return zero, lastErr
}
