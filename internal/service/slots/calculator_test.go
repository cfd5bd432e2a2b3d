package slots

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var (
	day0       = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	slotNine   = types.MustTimeString("09:00")
	slotTen    = types.MustTimeString("10:00")
	slotEleven = types.MustTimeString("11:00")
	workSlots  = []types.TimeString{slotNine, slotTen, slotEleven}

	employeeA = &domain.Employee{ID: "A", Name: "Anna"}
	employeeB = &domain.Employee{ID: "B", Name: "Boris"}
)

func appointment(employeeID string, date time.Time, slot types.TimeString, status domain.AppointmentStatus) *domain.Appointment {
	offset, _ := slot.Duration()
	return &domain.Appointment{
		ID:         employeeID + "-" + slot.String(),
		EmployeeID: employeeID,
		CustomerID: "c1",
		DateTime:   date.Add(offset),
		Status:     status,
	}
}

func TestCompute_OneOfTwoEmployeesBusy(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment("A", day0, slotTen, domain.AppointmentPending),
	}

	view := Compute([]*domain.Employee{employeeA, employeeB}, appointments, day0, 1, workSlots)

	day, ok := view.Day(day0)
	require.True(t, ok)
	assert.Equal(t, workSlots, day.AvailableSlots)
	assert.False(t, day.FullyBooked)
	assert.Contains(t, day.AvailableSlots, slotTen)
}

func TestCompute_SlotTakenWhenAllEmployeesBusy(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment("A", day0, slotTen, domain.AppointmentPending),
		appointment("B", day0, slotTen, domain.AppointmentConfirmed),
	}

	view := Compute([]*domain.Employee{employeeA, employeeB}, appointments, day0, 1, workSlots)

	day, _ := view.Day(day0)
	assert.Equal(t, []types.TimeString{slotNine, slotEleven}, day.AvailableSlots)
	assert.False(t, day.FullyBooked)
}

func TestCompute_CancelledAppointmentsIgnored(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment("A", day0, slotNine, domain.AppointmentCancelled),
	}

	view := Compute([]*domain.Employee{employeeA}, appointments, day0, 1, workSlots)

	day, _ := view.Day(day0)
	assert.Equal(t, workSlots, day.AvailableSlots)
}

func TestCompute_FullyBooked(t *testing.T) {
	appointments := make([]*domain.Appointment, 0)
	for _, s := range workSlots {
		appointments = append(appointments, appointment("A", day0, s, domain.AppointmentPending))
	}

	view := Compute([]*domain.Employee{employeeA}, appointments, day0, 2, workSlots)

	day, _ := view.Day(day0)
	assert.Empty(t, day.AvailableSlots)
	assert.True(t, day.FullyBooked)
	assert.Equal(t, []string{"2024-06-10"}, view.FullyBookedDates())

	next, _ := view.Day(day0.AddDate(0, 0, 1))
	assert.False(t, next.FullyBooked)
	assert.Len(t, next.AvailableSlots, len(workSlots))
}

func TestCompute_NoEmployees(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment("A", day0, slotNine, domain.AppointmentPending),
		appointment("A", day0, slotTen, domain.AppointmentPending),
		appointment("A", day0, slotEleven, domain.AppointmentPending),
	}

	view := Compute(nil, appointments, day0, 5, workSlots)

	require.Len(t, view, 5)
	for _, day := range view.Days() {
		assert.Equal(t, workSlots, day.AvailableSlots)
		assert.False(t, day.FullyBooked)
	}
	assert.Empty(t, view.FullyBookedDates())
}

func TestCompute_EmptySlotsWithoutEmployeesIsNotFullyBooked(t *testing.T) {
	view := Compute(nil, nil, day0, 1, nil)

	day, _ := view.Day(day0)
	assert.Empty(t, day.AvailableSlots)
	assert.False(t, day.FullyBooked)
}

func TestCompute_HorizonBounds(t *testing.T) {
	from := time.Date(2024, 6, 10, 18, 45, 0, 0, time.UTC)
	view := Compute([]*domain.Employee{employeeA}, nil, from, 3, workSlots)

	assert.Equal(t, []string{"2024-06-10", "2024-06-11", "2024-06-12"}, view.Dates())

	// Записи вне горизонта не влияют на результат
	outside := []*domain.Appointment{appointment("A", day0.AddDate(0, 0, 10), slotNine, domain.AppointmentPending)}
	assert.Equal(t, view, Compute([]*domain.Employee{employeeA}, outside, from, 3, workSlots))
}

func TestCompute_Deterministic(t *testing.T) {
	employees := []*domain.Employee{employeeA, employeeB}
	appointments := []*domain.Appointment{
		appointment("A", day0, slotNine, domain.AppointmentPending),
		appointment("B", day0, slotNine, domain.AppointmentPending),
		appointment("B", day0.AddDate(0, 0, 1), slotTen, domain.AppointmentCancelled),
	}

	first := Compute(employees, appointments, day0, 14, workSlots)
	second := Compute(employees, appointments, day0, 14, workSlots)
	assert.Equal(t, first, second)
}

// Слот доступен тогда и только тогда, когда есть свободный сотрудник
func TestCompute_AvailabilityMatchesFreeEmployees(t *testing.T) {
	employees := []*domain.Employee{employeeA, employeeB}
	appointments := []*domain.Appointment{
		appointment("A", day0, slotNine, domain.AppointmentPending),
		appointment("B", day0, slotNine, domain.AppointmentPending),
		appointment("A", day0, slotTen, domain.AppointmentConfirmed),
		appointment("B", day0.AddDate(0, 0, 1), slotEleven, domain.AppointmentPending),
	}

	view := Compute(employees, appointments, day0, 3, workSlots)

	for _, day := range view.Days() {
		for _, slot := range workSlots {
			free := FreeEmployees(employees, appointments, day.Date, slot)
			assert.Equal(t, len(free) > 0, slices.Contains(day.AvailableSlots, slot),
				"date=%s slot=%s", day.Date.Format(domain.DateFormat), slot)
		}
	}
}

func TestFreeEmployees(t *testing.T) {
	appointments := []*domain.Appointment{
		appointment("A", day0, slotNine, domain.AppointmentPending),
	}

	free := FreeEmployees([]*domain.Employee{employeeA, employeeB}, appointments, day0, slotNine)
	require.Len(t, free, 1)
	assert.Equal(t, "B", free[0].ID)

	free = FreeEmployees([]*domain.Employee{employeeA, employeeB}, appointments, day0, slotTen)
	assert.Len(t, free, 2)
}

func TestHasConflict(t *testing.T) {
	at := day0.Add(10 * time.Hour)
	appointments := []*domain.Appointment{
		appointment("A", day0, slotTen, domain.AppointmentPending),
		appointment("B", day0, slotTen, domain.AppointmentCancelled),
	}

	assert.True(t, HasConflict(appointments, "A", at))
	assert.False(t, HasConflict(appointments, "B", at))
	assert.False(t, HasConflict(appointments, "A", at.Add(time.Hour)))
}

// Запись с секундами занимает слот HH:MM, в который попадает
func TestConflict_AppointmentWithSeconds(t *testing.T) {
	withSeconds := &domain.Appointment{
		ID:         "A-0900-30",
		EmployeeID: "A",
		CustomerID: "c1",
		DateTime:   day0.Add(9*time.Hour + 30*time.Second),
		Status:     domain.AppointmentConfirmed,
	}
	appointments := []*domain.Appointment{withSeconds}

	view := Compute([]*domain.Employee{employeeA}, appointments, day0, 1, workSlots)
	day, ok := view.Day(day0)
	require.True(t, ok)
	assert.NotContains(t, day.AvailableSlots, slotNine)
	assert.Empty(t, FreeEmployees([]*domain.Employee{employeeA}, appointments, day0, slotNine))

	assert.True(t, HasConflict(appointments, "A", day0.Add(9*time.Hour)))
	assert.True(t, HasConflict(appointments, "A", day0.Add(9*time.Hour+45*time.Second)))
	assert.False(t, HasConflict(appointments, "A", day0.Add(9*time.Hour+time.Minute)))
	assert.False(t, HasConflict(appointments, "B", day0.Add(9*time.Hour)))

	withSeconds.Status = domain.AppointmentCancelled
	assert.False(t, HasConflict(appointments, "A", day0.Add(9*time.Hour)))
}
