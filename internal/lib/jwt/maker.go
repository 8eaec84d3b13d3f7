// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки JWT токенов с идентификатором
// пользователя и ролью. MakerImpl — конкретная реализация с использованием
// секретного ключа и срока жизни токена.
package jwt

import (
	"errors"
	"time"
)

// ErrInvalidToken единая ошибка проверки токена. Любой дефект — битая структура,
// неверная подпись, истёкший срок — сводится к ней, чтобы вызывающий не мог
// различить причину отказа.
var ErrInvalidToken = errors.New("invalid token")

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken выпускает токен с идентификатором пользователя и ролью
	GenerateToken(userUID, role string) (string, error)
	// ParseToken возвращает *CustomClaims с идентификатором и ролью
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
