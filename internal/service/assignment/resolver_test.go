package assignment

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// fixedSource всегда возвращает заданный индекс
type fixedSource struct {
	index int
	calls []int
}

func (f *fixedSource) IntN(n int) int {
	f.calls = append(f.calls, n)
	return f.index
}

var (
	day  = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	nine = types.MustTimeString("09:00")

	employeeA = &domain.Employee{ID: "A"}
	employeeB = &domain.Employee{ID: "B"}
	employeeC = &domain.Employee{ID: "C"}
)

func busy(employeeID string, at time.Time, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{ID: "x-" + employeeID, EmployeeID: employeeID, DateTime: at, Status: status}
}

func TestResolve_PicksFreeEmployee(t *testing.T) {
	source := &fixedSource{index: 0}
	resolver := NewResolver(source, logger.Discard())

	appointments := []*domain.Appointment{busy("A", day.Add(9*time.Hour), domain.AppointmentPending)}

	got, err := resolver.Resolve(day, nine, []*domain.Employee{employeeA, employeeB}, appointments)
	require.NoError(t, err)
	assert.Equal(t, "B", got.ID)
	assert.Equal(t, []int{1}, source.calls, "random choice must be over the free set only")
}

func TestResolve_UsesRandomIndex(t *testing.T) {
	resolver := NewResolver(&fixedSource{index: 2}, logger.Discard())

	got, err := resolver.Resolve(day, nine, []*domain.Employee{employeeA, employeeB, employeeC}, nil)
	require.NoError(t, err)
	assert.Equal(t, "C", got.ID)
}

func TestResolve_CancelledDoesNotBlock(t *testing.T) {
	resolver := NewResolver(&fixedSource{}, logger.Discard())

	appointments := []*domain.Appointment{busy("A", day.Add(9*time.Hour), domain.AppointmentCancelled)}

	got, err := resolver.Resolve(day, nine, []*domain.Employee{employeeA}, appointments)
	require.NoError(t, err)
	assert.Equal(t, "A", got.ID)
}

func TestResolve_NoAvailability(t *testing.T) {
	resolver := NewResolver(&fixedSource{}, logger.Discard())

	appointments := []*domain.Appointment{
		busy("A", day.Add(9*time.Hour), domain.AppointmentPending),
		busy("B", day.Add(9*time.Hour), domain.AppointmentConfirmed),
	}

	got, err := resolver.Resolve(day, nine, []*domain.Employee{employeeA, employeeB}, appointments)
	assert.ErrorIs(t, err, ErrNoAvailability)
	assert.Nil(t, got)

	_, err = resolver.Resolve(day, nine, nil, nil)
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestResolve_NeverReturnsConflictingEmployee(t *testing.T) {
	employees := []*domain.Employee{employeeA, employeeB, employeeC}
	appointments := []*domain.Appointment{
		busy("A", day.Add(9*time.Hour), domain.AppointmentPending),
		busy("C", day.Add(9*time.Hour), domain.AppointmentConfirmed),
	}

	resolver := NewResolver(rand.New(rand.NewPCG(1, 2)), logger.Discard())
	for i := 0; i < 50; i++ {
		got, err := resolver.Resolve(day, nine, employees, appointments)
		require.NoError(t, err)
		assert.Equal(t, "B", got.ID)
	}
}

func TestResolve_SeededSourceIsReproducible(t *testing.T) {
	employees := []*domain.Employee{employeeA, employeeB, employeeC}

	pick := func() []string {
		resolver := NewResolver(rand.New(rand.NewPCG(42, 7)), logger.Discard())
		ids := make([]string, 0, 10)
		for i := 0; i < 10; i++ {
			got, err := resolver.Resolve(day, nine, employees, nil)
			require.NoError(t, err)
			ids = append(ids, got.ID)
		}
		return ids
	}

	assert.Equal(t, pick(), pick())
}
