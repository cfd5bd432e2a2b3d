package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var testDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestAvailabilityRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepository()

	created, err := repo.Create(ctx, &domain.Availability{
		EmployeeID: "e1",
		Date:       testDay,
		StartTime:  types.MustTimeString("09:00"),
		EndTime:    types.MustTimeString("12:00"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.AvailabilityOpen, created.Status)

	updated, err := repo.UpdateStatus(ctx, created.ID, domain.AvailabilityAssigned)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityAssigned, updated.Status)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityAssigned, got.Status)

	// Изменение возвращенного значения не меняет хранилище
	got.Status = domain.AvailabilityClosed
	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AvailabilityAssigned, again.Status)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrAvailabilityNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrAvailabilityNotFound)
	_, err = repo.UpdateStatus(ctx, created.ID, domain.AvailabilityOpen)
	assert.ErrorIs(t, err, domain.ErrAvailabilityNotFound)
}

func TestAvailabilityRepository_ListOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewAvailabilityRepository()

	for _, a := range []domain.Availability{
		{ID: "b", EmployeeID: "e1", Date: testDay, StartTime: "13:00", EndTime: "17:00", Status: domain.AvailabilityOpen},
		{ID: "a", EmployeeID: "e1", Date: testDay, StartTime: "09:00", EndTime: "12:00", Status: domain.AvailabilityOpen},
		{ID: "c", EmployeeID: "e2", Date: testDay, StartTime: "09:00", EndTime: "12:00", Status: domain.AvailabilityAssigned},
		{ID: "d", EmployeeID: "e1", Date: testDay.AddDate(0, 0, 1), StartTime: "09:00", EndTime: "12:00", Status: domain.AvailabilityOpen},
	} {
		_, err := repo.Create(ctx, &a)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, domain.AvailabilityFilter{Date: testDay})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "b", list[2].ID)

	list, err = repo.List(ctx, domain.AvailabilityFilter{
		Date:       testDay,
		EmployeeID: ptr.Ptr("e1"),
		Status:     ptr.Ptr(domain.AvailabilityOpen),
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestAppointmentRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository(&domain.Appointment{
		ID: "seed", EmployeeID: "e1", CustomerID: "c1",
		DateTime: testDay.Add(11 * time.Hour), Status: domain.AppointmentConfirmed,
	})

	created, err := repo.Create(ctx, &domain.Appointment{
		EmployeeID: "e2", CustomerID: "c1",
		DateTime: testDay.Add(9 * time.Hour), Status: domain.AppointmentPending,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := repo.List(ctx, domain.AppointmentFilter{CustomerID: ptr.Ptr("c1")})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "seed", list[1].ID)

	list, err = repo.List(ctx, domain.AppointmentFilter{EmployeeID: ptr.Ptr("e1"), Date: &testDay})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAppointmentRepository_RejectsDoubleBooking(t *testing.T) {
	ctx := context.Background()
	at := testDay.Add(10 * time.Hour)
	repo := NewAppointmentRepository(&domain.Appointment{
		ID: "seed", EmployeeID: "e1", DateTime: at, Status: domain.AppointmentPending,
	})

	_, err := repo.Create(ctx, &domain.Appointment{EmployeeID: "e1", DateTime: at, Status: domain.AppointmentPending})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	// отмененная запись не занимает слот
	_, err = repo.Create(ctx, &domain.Appointment{EmployeeID: "e1", DateTime: at, Status: domain.AppointmentCancelled})
	assert.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Appointment{EmployeeID: "e2", DateTime: at, Status: domain.AppointmentPending})
	assert.NoError(t, err)
}

// Секунды не делают слот другим: 10:00:30 конфликтует с записью на 10:00
func TestAppointmentRepository_RejectsSameSlotWithSeconds(t *testing.T) {
	ctx := context.Background()
	at := testDay.Add(10 * time.Hour)
	repo := NewAppointmentRepository(&domain.Appointment{
		ID: "seed", EmployeeID: "e1", DateTime: at, Status: domain.AppointmentPending,
	})

	_, err := repo.Create(ctx, &domain.Appointment{EmployeeID: "e1", DateTime: at.Add(30 * time.Second), Status: domain.AppointmentPending})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	_, err = repo.Create(ctx, &domain.Appointment{EmployeeID: "e1", DateTime: at.Add(time.Minute), Status: domain.AppointmentPending})
	assert.NoError(t, err)

	// тот же HH:MM в другой день не конфликтует
	_, err = repo.Create(ctx, &domain.Appointment{EmployeeID: "e1", DateTime: at.AddDate(0, 0, 1).Add(30 * time.Second), Status: domain.AppointmentPending})
	assert.NoError(t, err)
}
