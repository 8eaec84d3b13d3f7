package middlewarectx

import (
	"github.com/edakaya/heritage-api/internal/lib/jwt"
)

// TokenParser описывает интерфейс для проверки JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}
