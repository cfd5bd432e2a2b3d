// Package slots вычисляет доступность временных слотов по сотрудникам и записям.
// Все функции пакета чистые: результат зависит только от аргументов.
package slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// bookingIndex дата -> сотрудник -> занятые слоты
type bookingIndex map[string]map[string]map[types.TimeString]struct{}

// buildIndex индексирует только активные (не отмененные) записи
func buildIndex(appointments []*domain.Appointment) bookingIndex {
	index := make(bookingIndex)
	for _, a := range appointments {
		if a == nil || !a.IsActive() {
			continue
		}
		date, slot := calendar.SplitInstant(a.DateTime)
		key := calendar.FormatDate(date)

		byEmployee, ok := index[key]
		if !ok {
			byEmployee = make(map[string]map[types.TimeString]struct{})
			index[key] = byEmployee
		}
		booked, ok := byEmployee[a.EmployeeID]
		if !ok {
			booked = make(map[types.TimeString]struct{})
			byEmployee[a.EmployeeID] = booked
		}
		booked[slot] = struct{}{}
	}
	return index
}

func (idx bookingIndex) isBooked(dateKey, employeeID string, slot types.TimeString) bool {
	_, booked := idx[dateKey][employeeID][slot]
	return booked
}

// Compute строит представление доступности на горизонт [from, from+horizonDays).
//
// Слот доступен, если хотя бы у одного сотрудника нет активной записи на эту дату и слот.
// День полностью занят, если в нем нет доступных слотов и список сотрудников не пуст.
// Без сотрудников все слоты считаются доступными.
func Compute(
	employees []*domain.Employee,
	appointments []*domain.Appointment,
	from time.Time,
	horizonDays int,
	slots []types.TimeString,
) domain.AvailabilityView {
	index := buildIndex(appointments)
	view := make(domain.AvailabilityView, max(horizonDays, 0))

	for _, day := range calendar.Horizon(from, horizonDays) {
		key := calendar.FormatDate(day)

		available := make([]types.TimeString, 0, len(slots))
		for _, slot := range slots {
			if len(employees) == 0 || hasFreeEmployee(index, key, slot, employees) {
				available = append(available, slot)
			}
		}

		view[key] = domain.DayAvailability{
			Date:           day,
			AvailableSlots: available,
			FullyBooked:    len(available) == 0 && len(employees) > 0,
		}
	}

	return view
}

func hasFreeEmployee(index bookingIndex, dateKey string, slot types.TimeString, employees []*domain.Employee) bool {
	for _, e := range employees {
		if !index.isBooked(dateKey, e.ID, slot) {
			return true
		}
	}
	return false
}

// FreeEmployees возвращает сотрудников без активной записи на дату и слот, в исходном порядке
func FreeEmployees(
	employees []*domain.Employee,
	appointments []*domain.Appointment,
	date time.Time,
	slot types.TimeString,
) []*domain.Employee {
	index := buildIndex(appointments)
	key := calendar.FormatDate(date)

	free := make([]*domain.Employee, 0, len(employees))
	for _, e := range employees {
		if !index.isBooked(key, e.ID, slot) {
			free = append(free, e)
		}
	}
	return free
}

// HasConflict проверяет, есть ли у сотрудника активная запись на дату и слот момента instant.
// Запись сравнивается по дате и HH:MM в UTC, как в Compute и FreeEmployees.
func HasConflict(appointments []*domain.Appointment, employeeID string, instant time.Time) bool {
	date, slot := calendar.SplitInstant(instant)
	return buildIndex(appointments).isBooked(calendar.FormatDate(date), employeeID, slot)
}
