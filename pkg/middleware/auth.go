package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/apiErrors"
	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
	ContextKeyTenant contextKey = "tenant"
)

// Claims carregados no token de acesso; TenantID delimita os anúncios visíveis
type Claims struct {
	TenantID string `json:"tenant_id"`
	UserID   string `json:"user_id"`
	RoleID   int    `json:"role_id"`
	jwt.RegisteredClaims
}

var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware valida o Bearer token (HS256) e injeta claims e tenant no contexto
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := ValidateToken(tokenString, secret)
			if err != nil {
				code := apiErrors.ErrInvalidToken
				if errors.Is(err, jwt.ErrTokenExpired) {
					code = apiErrors.ErrExpiredToken
				}
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				apiErrors.WriteError(w, code, "Token inválido", nil)
				return
			}

			if claims.TenantID == "" {
				apiErrors.WriteError(w, apiErrors.ErrTenantMissing, "Token sem tenant", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			ctx = WithTenant(ctx, claims.TenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ValidateToken aceita apenas tokens HMAC assinados com o segredo informado
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// GenerateToken emite um token HS256 para o tenant informado
func GenerateToken(secret, tenantID, userID string, roleID int, expiresAt time.Time) (string, error) {
	claims := &Claims{
		TenantID: tenantID,
		UserID:   userID,
		RoleID:   roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ContextKeyTenant, tenantID)
}

// TenantFromContext devolve o tenant autenticado; false fora de uma requisição autenticada
func TenantFromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(ContextKeyTenant).(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*Claims)
	return claims, ok
}
