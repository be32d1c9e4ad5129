package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"
)

var verbose = true

// SetVerbose : переключает режим логирования (подробный / только ошибки)
func SetVerbose(enabled bool) {
	verbose = enabled
}

// Logf : информационное сообщение, пишется только в подробном режиме
func Logf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : пишет конверт ошибки {success:false, error}
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{
		Success: false,
		Error:   message,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// HandleErrorVerbose : как HandleError, но в режиме разработки добавляет
// стек вызовов и метку времени для диагностики
func HandleErrorVerbose(w http.ResponseWriter, message string, statusCode int, development bool) {
	if development == false {
		HandleError(w, message, statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Success   bool   `json:"success"`
		Error     string `json:"error"`
		Stack     string `json:"stack"`
		Timestamp string `json:"timestamp"`
	}{
		Success:   false,
		Error:     message,
		Stack:     string(debug.Stack()),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// RespondJSON : пишет успешный JSON-ответ
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[util] ошибка сериализации ответа: %v", err)
	}
}
