package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Settings параметры расчета из конфигурации
type Settings struct {
	Slots          []types.TimeString // Слоты дня
	HorizonDays    int                // Горизонт по умолчанию
	MaxHorizonDays int                // Максимально допустимый горизонт
}

// Request модель запроса на получение доступности
type Request struct {
	From        *time.Time // Первый день горизонта, nil означает сегодня
	HorizonDays int        // Количество дней, 0 означает значение из настроек
}

// Response модель ответа с доступностью по дням
type Response struct {
	From        time.Time
	HorizonDays int
	Slots       []types.TimeString
	View        domain.AvailabilityView
}
