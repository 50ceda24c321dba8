package service

import "errors"

// Типизированные ошибки ядра. Граница (HTTP-слой) отображает их в
// ответы пользователю; само ядро ничего не ретраит.
var (
	// ErrInvalidInput — некорректный вход: пустое имя клиента,
	// нераспарсиваемая дата, недопустимый статус.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound — услуга или мастер с таким id не существует.
	ErrNotFound = errors.New("not found")
)
