package repository

import "errors"

// Ошибки уровня хранилища. Нарушение уникальности переводится в
// ErrAlreadyExists в точке вставки, чтобы сервисный слой мог отдать
// конфликт, а не общий сбой хранилища.
var (
	// ErrNotFound запись не найдена
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists нарушен уникальный ключ
	ErrAlreadyExists = errors.New("already exists")
)
