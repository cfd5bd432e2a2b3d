package submit_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// validateRequest валидирует входные данные запроса без обращений к внешним сервисам
func validateRequest(req *Request, settings Settings) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if strings.TrimSpace(req.CustomerID) == "" {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}
	if req.EmployeeID != nil && strings.TrimSpace(*req.EmployeeID) == "" {
		return fmt.Errorf("%w: employeeId must not be empty when provided", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Slot.IsZero() {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}
	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: %w: %v", ErrInvalidInput, ErrInvalidSlot, err)
	}
	if !isOffered(req.Slot, settings.Slots) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrInvalidSlot, req.Slot)
	}

	return nil
}

// validateDate проверяет, что момент записи не в прошлом и дата в пределах горизонта
func validateDate(date time.Time, instant time.Time, now time.Time, horizonDays int) error {
	today := calendar.Day(now)
	day := calendar.Day(date)

	if day.Before(today) || instant.Before(now) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrBookingInPast)
	}

	// Горизонт [today, today+horizonDays), как у представления доступности
	if horizonDays > 0 && !day.Before(today.AddDate(0, 0, horizonDays)) {
		return fmt.Errorf("%w: %w: can only book %d days ahead", ErrInvalidInput, ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}

func isOffered(slot types.TimeString, offered []types.TimeString) bool {
	// Без настроенных слотов принимается любое корректное время
	if len(offered) == 0 {
		return true
	}
	for _, s := range offered {
		if s == slot {
			return true
		}
	}
	return false
}
