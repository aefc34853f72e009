package middleware

import (
	"strings"

	"servhub_backend/internal/logger"
	"servhub_backend/internal/services"
	"servhub_backend/pkg/apperrors"
	"servhub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет login-токен через сервис аутентификации
// соответствующего вида аккаунтов. Все проверки (подпись, срок, журнал
// отзыва, watermark смены пароля) выполняет Authenticate; middleware
// лишь извлекает токен и раскладывает результат по контексту.
//
// Любой отказ отвечает одинаково: нельзя отличить чужой токен от
// отозванного.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		account, claims, err := authService.Authenticate(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		ctx := logger.WithAccountID(c.Request.Context(), account.AccountID())
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextkeys.AccountIDKey, account.AccountID())
		c.Set(contextkeys.AccountEmailKey, claims.Email)
		c.Set(contextkeys.AccountKindKey, string(account.Kind()))
		c.Set(contextkeys.BearerTokenKey, tokenStr)
		c.Next()
	}
}
