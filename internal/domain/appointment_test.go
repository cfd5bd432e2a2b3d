package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func TestAppointment_DateAndSlot(t *testing.T) {
	a := &Appointment{DateTime: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), Status: AppointmentPending}

	assert.Equal(t, "2024-06-10", a.Date().Format(DateFormat))
	assert.Equal(t, types.TimeString("10:00"), a.Slot())
	assert.True(t, a.IsActive())

	a.Status = AppointmentCancelled
	assert.False(t, a.IsActive())
}

func TestAppointmentFilter_Matches(t *testing.T) {
	a := &Appointment{
		EmployeeID: "e1",
		CustomerID: "c1",
		DateTime:   time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	assert.True(t, AppointmentFilter{EmployeeID: ptr.Ptr("e1")}.Matches(a))
	assert.False(t, AppointmentFilter{CustomerID: ptr.Ptr("c2")}.Matches(a))
	assert.True(t, AppointmentFilter{Date: &day}.Matches(a))
	assert.False(t, AppointmentFilter{Date: &next}.Matches(a))
	assert.True(t, AppointmentFilter{StartDate: &day, EndDate: &next}.Matches(a))
	assert.False(t, AppointmentFilter{StartDate: &next}.Matches(a))
	assert.False(t, AppointmentFilter{EndDate: &day}.Matches(a))
	assert.True(t, AppointmentFilter{}.IsEmpty())
}
