package handler

import (
	"net/http"

	"hr-document-server/internal/util"
)

// CORSMiddleware : политика CORS по списку разрешённых origin.
// Preflight отвечает 204 без тела и кэшируется браузером на сутки.
func CORSMiddleware(allowedOrigins []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowOrigin := "*"
			for _, allowed := range allowedOrigins {
				if allowed == origin {
					allowOrigin = origin
					break
				}
			}

			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MethodNotAllowed : конверт ошибки для неподдерживаемых методов
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	util.HandleError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
