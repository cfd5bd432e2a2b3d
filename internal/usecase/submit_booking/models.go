package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Settings параметры записи из конфигурации
type Settings struct {
	Slots       []types.TimeString // Предлагаемые слоты дня
	HorizonDays int                // Сколько дней вперед, начиная с сегодня, можно записаться
}

// Request модель запроса на запись
type Request struct {
	Title       string           // Название услуги
	Date        time.Time        // Дата записи (без времени)
	Slot        types.TimeString // Время начала, например "09:00"
	Description *string          // Комментарий (опционально)
	CustomerID  string           // ID клиента
	EmployeeID  *string          // ID сотрудника, nil означает автоназначение
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment  *domain.Appointment
	EmployeeName string
	AutoAssigned bool // Сотрудник выбран автоматически

	// Запись создана, но письмо клиенту не отправлено
	NotificationFailed bool
	NotificationError  string
}
