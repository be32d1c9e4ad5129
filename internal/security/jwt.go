package security

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"hr-document-server/config"
	"hr-document-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Claims : данные вызывающей стороны из токена платформы
type Claims struct {
	UserUUID  string `json:"sub"`
	CompanyID string `json:"company_id,omitempty"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// Enabled : проверка токена отключается пустым ключом (локальная разработка)
func (service *JWTService) Enabled() bool {
	return service.SecretKey != ""
}

func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok == false {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(service.SecretKey), nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, util.LogError("невалидный токен", err)
	}

	if service.Issuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != service.Issuer {
			return nil, fmt.Errorf("неверный издатель токена")
		}
	}

	return claims, nil
}

// JWTMiddleware : проверяет Bearer токен на изменяющих эндпоинтах.
// OPTIONS пропускается без проверки, иначе браузерный preflight ломается.
func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if jwtService.Enabled() == false || request.Method == http.MethodOptions {
				next.ServeHTTP(writer, request)
				return
			}

			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				util.HandleError(writer, "Authorization token is required", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := jwtService.ValidateJWT(token)
			if err != nil {
				log.Printf("невалидный токен: %v", err)
				util.HandleError(writer, "Invalid authorization token", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
