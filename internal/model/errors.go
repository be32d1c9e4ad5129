package model

import (
	"errors"
	"fmt"
)

// ValidationError : локальная ошибка проверки входных данных, не повторяется
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigurationError : отсутствуют обязательные справочные данные (номера последовательностей)
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// StoreErrorKind : классификация ошибок удалённого хранилища
type StoreErrorKind int

const (
	StoreErrTransient StoreErrorKind = iota
	StoreErrNotFound
	StoreErrPermission
	StoreErrThrottled
)

func (k StoreErrorKind) String() string {
	switch k {
	case StoreErrNotFound:
		return "not_found"
	case StoreErrPermission:
		return "permission"
	case StoreErrThrottled:
		return "throttled"
	default:
		return "transient"
	}
}

// RemoteStoreError : ошибка удалённого хранилища с устойчивой классификацией.
// Создаётся только на границе клиента хранилища, чтобы остальной код
// проверял Kind, а не внутренности транспорта.
type RemoteStoreError struct {
	Kind       StoreErrorKind
	HTTPStatus int
	Op         string
	Key        string
	Err        error
}

func (e *RemoteStoreError) Error() string {
	return fmt.Sprintf("хранилище: операция %s для %q завершилась ошибкой (%s, http %d): %v",
		e.Op, e.Key, e.Kind, e.HTTPStatus, e.Err)
}

func (e *RemoteStoreError) Unwrap() error {
	return e.Err
}

// IsStoreNotFound : true, если ошибка хранилища означает отсутствие объекта
func IsStoreNotFound(err error) bool {
	var storeErr *RemoteStoreError
	return errors.As(err, &storeErr) && storeErr.Kind == StoreErrNotFound
}

// IsStorePermission : true, если хранилище отказало в доступе
func IsStorePermission(err error) bool {
	var storeErr *RemoteStoreError
	return errors.As(err, &storeErr) && storeErr.Kind == StoreErrPermission
}

// IsValidationError : true для ошибок проверки входных данных
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfigurationError : true для ошибок справочных данных
func IsConfigurationError(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}
