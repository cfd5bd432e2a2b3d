package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
	minutesInDay      = 24 * 60
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDay = errors.New("time string out of day bounds")
)

// TimeString время суток в формате HH:MM (например, "09:00")
type TimeString string

// NewTimeStringFromString парсит и нормализует строку времени ("9:00" -> "09:00")
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке.
// Используется для констант и тестов.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// NewTimeString берет время суток из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// FromMinutes строит время по количеству минут от начала суток
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesInDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

func (t TimeString) String() string {
	return string(t)
}

func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	_, err := t.parse()
	return err
}

// Minutes количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := t.parse()
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes сдвигает время на указанное количество минут в пределах суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(current + minutes)
}

// IsBefore строго раньше other. Некорректные значения не сравниваются.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a > b
}

// Duration смещение от начала суток
func (t TimeString) Duration() (time.Duration, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	return time.Duration(minutes) * time.Minute, nil
}

func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed, nil
}

// MarshalText реализует encoding.TextMarshaler
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler с нормализацией
func (t *TimeString) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer (колонка TIME в PostgreSQL)
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner. PostgreSQL отдает TIME как "15:04:05".
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}

	if parsed, err := time.Parse(timeLayoutSeconds, raw); err == nil {
		*t = NewTimeString(parsed)
		return nil
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
