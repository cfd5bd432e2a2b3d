package assignment

import "math/rand/v2"

// RandomSource источник случайности для выбора сотрудника.
// *rand.Rand из math/rand/v2 удовлетворяет интерфейсу.
type RandomSource interface {
	IntN(n int) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GlobalRandomSource использует потокобезопасный генератор верхнего уровня math/rand/v2
type GlobalRandomSource struct{}

// IntN возвращает случайное число в [0, n)
func (GlobalRandomSource) IntN(n int) int {
	return rand.IntN(n)
}
