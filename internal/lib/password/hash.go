// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// GetHash создает argon2id-хеш пароля для безопасного хранения.
// CompareHash сравнивает исходный argon2id-хеш с введённым паролем, проверяя их соответствие.
//
// Хеш хранится строкой в PHC-формате, соль и параметры алгоритма встроены в саму строку:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры argon2id: time=1, memory=64MB, threads=4, длина ключа 32 байта.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// ErrMismatch возвращается, когда пароль не соответствует хешу.
var ErrMismatch = errors.New("password does not match hash")

// GetHash принимает пароль пользователя и возвращает его argon2id-хэш
// со случайной солью. Повторные вызовы на одном и том же пароле дают
// разные строки.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
	return encoded, nil
}

// CompareHash сравнивает argon2id-хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
// Сравнение выполняется за постоянное время, некорректный формат хеша
// неотличим для вызывающего от несовпадения пароля.
func CompareHash(originalHash, externalPassword string) error {
	const op = "auth.CompareHash"

	salt, want, memory, time, threads, err := decodeHash(originalHash)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}

	got := argon2.IDKey([]byte(externalPassword), salt, time, memory, threads, uint32(len(want)))
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}
	return nil
}

func decodeHash(encoded string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, errors.New("invalid hash format")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, err
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, errors.New("unsupported argon2 version")
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, err
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, err
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, err
	}
	return salt, key, memory, time, threads, nil
}
