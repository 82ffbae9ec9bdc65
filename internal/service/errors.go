package service

import "errors"

// Типы ошибок ядра. Слои выше сопоставляют их через errors.Is
// и выбирают HTTP-статус.
var (
	// ErrValidation - некорректный ввод, без побочных эффектов
	ErrValidation = errors.New("validation error")
	// ErrProvider - вызов языковой модели не удался или истек таймаут
	ErrProvider = errors.New("provider error")
	// ErrConfiguration - в профиле нет данных для оповещения
	ErrConfiguration = errors.New("configuration error")
	// ErrNotFound - пользователь/профиль/событие не найдены
	ErrNotFound = errors.New("not found")
)
