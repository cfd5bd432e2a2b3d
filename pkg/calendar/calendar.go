// Package calendar содержит арифметику дней и недель для расписания.
// Все даты нормализуются к полуночи UTC.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// DaysInWeek длина окна недельного расписания
const DaysInWeek = 7

var (
	// ErrInvalidDate возвращается при некорректной строке даты
	ErrInvalidDate = errors.New("calendar: invalid date")

	// ErrInvalidStep возвращается при неположительном шаге генерации слотов
	ErrInvalidStep = errors.New("calendar: slot step must be positive")
)

// Day возвращает начало календарного дня t в UTC
func Day(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DateFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return parsed, nil
}

// FormatDate форматирует дату как YYYY-MM-DD (в UTC)
func FormatDate(t time.Time) string {
	return Day(t).Format(DateFormat)
}

// SameDay проверяет, что два момента относятся к одному дню UTC
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// WeekStart возвращает понедельник недели, в которую попадает t
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// ShiftWeeks сдвигает дату на n недель (n может быть отрицательным)
func ShiftWeeks(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n*DaysInWeek)
}

// WeekDays возвращает 7 дней недели начиная с понедельника недели anchor
func WeekDays(anchor time.Time) []time.Time {
	return Horizon(WeekStart(anchor), DaysInWeek)
}

// Horizon перечисляет дни полуинтервала [from, from+days)
func Horizon(from time.Time, days int) []time.Time {
	if days <= 0 {
		return []time.Time{}
	}
	start := Day(from)
	result := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		result = append(result, start.AddDate(0, 0, i))
	}
	return result
}

// CombineDateAndSlot собирает момент времени из даты и слота.
// Часовой пояс всегда UTC, локальное время вызывающего не учитывается.
func CombineDateAndSlot(date time.Time, slot types.TimeString) (time.Time, error) {
	offset, err := slot.Duration()
	if err != nil {
		return time.Time{}, err
	}
	return Day(date).Add(offset), nil
}

// SplitInstant раскладывает момент времени на дату и время суток (UTC)
func SplitInstant(t time.Time) (time.Time, types.TimeString) {
	return Day(t), types.NewTimeString(t.UTC())
}

// GenerateSlots строит слоты от start до end включительно с шагом stepMinutes
func GenerateSlots(start, end types.TimeString, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, ErrInvalidStep
	}
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := start
	for !current.IsAfter(end) {
		slots = append(slots, current)
		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			// Следующий слот вышел за полночь
			break
		}
		current = next
	}
	return slots, nil
}
