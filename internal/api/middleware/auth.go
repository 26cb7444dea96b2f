package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HospitalityService/internal/api/handlers"
	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

const msgInvalidToken = "недействительный токен"

// ErrInvalidToken возвращается при невалидном или просроченном JWT
var ErrInvalidToken = errors.New("middleware: invalid token")

// Claims полезная нагрузка JWT
type Claims struct {
	UserID       string `json:"userId"`
	BusinessID   string `json:"businessId"`
	BusinessType string `json:"businessType"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator разбирает Bearer токен и кладет Principal в контекст.
// Запрос без токена проходит анонимно; невалидный токен - 401.
type Authenticator struct {
	enabled bool
	secret  []byte
	issuer  string
	logger  Logger
}

func NewAuthenticator(enabled bool, secret, issuer string, logger Logger) *Authenticator {
	return &Authenticator{
		enabled: enabled,
		secret:  []byte(secret),
		issuer:  issuer,
		logger:  logger,
	}
}

// Middleware для gorilla/mux
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Аутентификация выключена - все запросы от администратора
		if !a.enabled {
			ctx := domain.WithPrincipal(r.Context(), &domain.Principal{UserID: "dev", Role: domain.RoleAdmin})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			a.logger.Warn("%s %s - Malformed Authorization header", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		principal, err := a.Parse(raw)
		if err != nil {
			a.logger.Warn("%s %s - Rejected token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(domain.WithPrincipal(r.Context(), principal)))
	})
}

// Parse проверяет подпись HS256 и срок действия токена
func (a *Authenticator) Parse(raw string) (*domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role := claims.Role
	if role == "" {
		role = domain.RoleOwner
	}
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}

	return &domain.Principal{
		UserID:       userID,
		BusinessID:   claims.BusinessID,
		BusinessType: domain.BusinessType(claims.BusinessType),
		Role:         role,
	}, nil
}
