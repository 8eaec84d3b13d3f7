// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и роль.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Role роль пользователя. Закрытое перечисление: незнакомая строка
// из токена или из базы сводится к RoleUnknown и никогда не даёт
// расширенных прав.
type Role string

const (
	// RoleUser обычный пользователь, назначается при регистрации
	RoleUser Role = "user"
	// RoleAdmin административная роль, назначается вне этого сервиса
	RoleAdmin Role = "admin"
	// RoleUnknown нераспознанная роль
	RoleUnknown Role = "unknown"
)

// ParseRole приводит произвольную строку к известной роли.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser:
		return RoleUser
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

func (r Role) String() string { return string(r) }

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string    // Уникальный идентификатор пользователя (UUID)
	Email        string    // Электронная почта, уникальна без учёта регистра
	PasswordHash string    // argon2id-хэш пароля
	DisplayName  *string   // Отображаемое имя (опционально)
	Role         Role      // Роль пользователя
	CreatedAt    time.Time // Дата создания записи
	UpdatedAt    time.Time // Дата последнего обновления
}
