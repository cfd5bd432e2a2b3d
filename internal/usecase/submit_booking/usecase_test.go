package submit_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/notification"
	"github.com/m04kA/SMC-ScheduleService/internal/service/assignment"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var bookingDay = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

type stubDirectory struct {
	employees   []*domain.Employee
	customers   map[string]*domain.Customer
	listErr     error
	listCalls   int
	customerErr error
}

func (d *stubDirectory) ListEmployees(context.Context) ([]*domain.Employee, error) {
	d.listCalls++
	if d.listErr != nil {
		return nil, d.listErr
	}
	return d.employees, nil
}

func (d *stubDirectory) GetCustomer(_ context.Context, id string) (*domain.Customer, error) {
	if d.customerErr != nil {
		return nil, d.customerErr
	}
	c, ok := d.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

type stubNotifier struct {
	sent []*notification.Message
	err  error
}

func (n *stubNotifier) Send(_ context.Context, msg *notification.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

type recordingMetrics struct {
	bookings      []string
	notifications []string
}

func (m *recordingMetrics) RecordBooking(outcome string) { m.bookings = append(m.bookings, outcome) }
func (m *recordingMetrics) RecordNotification(result string) {
	m.notifications = append(m.notifications, result)
}

type fixture struct {
	repo      *memory.AppointmentRepository
	directory *stubDirectory
	notifier  *stubNotifier
	metrics   *recordingMetrics
	uc        *UseCase
}

func newFixture(t *testing.T, seed ...*domain.Appointment) *fixture {
	t.Helper()

	f := &fixture{
		repo: memory.NewAppointmentRepository(seed...),
		directory: &stubDirectory{
			employees: []*domain.Employee{
				{ID: "A", Name: "Анна"},
				{ID: "B", Name: "Борис"},
			},
			customers: map[string]*domain.Customer{
				"c1": {ID: "c1", Name: "Вера", Email: "vera@example.com"},
			},
		},
		notifier: &stubNotifier{},
		metrics:  &recordingMetrics{},
	}

	settings := Settings{
		Slots:       []types.TimeString{"09:00", "10:00", "11:00"},
		HorizonDays: 60,
	}
	log := logger.Discard()
	f.uc = NewUseCase(f.repo, f.directory, assignment.NewResolver(firstSource{}, log), f.notifier, f.metrics, settings, log).
		WithTimeProvider(fixedTime{now: bookingDay.AddDate(0, 0, -1).Add(12 * time.Hour)})
	return f
}

func busy(id, employeeID string, at time.Time) *domain.Appointment {
	return &domain.Appointment{ID: id, EmployeeID: employeeID, CustomerID: "other", DateTime: at, Status: domain.AppointmentConfirmed}
}

func haircut() *Request {
	return &Request{
		Title:      "Стрижка",
		Date:       bookingDay,
		Slot:       "09:00",
		CustomerID: "c1",
	}
}

func TestExecute_AutoAssignsFreeEmployee(t *testing.T) {
	f := newFixture(t, busy("x", "A", bookingDay.Add(9*time.Hour)))

	resp, err := f.uc.Execute(context.Background(), haircut())
	require.NoError(t, err)

	assert.True(t, resp.AutoAssigned)
	assert.Equal(t, "B", resp.Appointment.EmployeeID)
	assert.Equal(t, "Борис", resp.EmployeeName)
	assert.Equal(t, domain.AppointmentPending, resp.Appointment.Status)
	assert.True(t, resp.Appointment.DateTime.Equal(bookingDay.Add(9*time.Hour)))
	assert.False(t, resp.NotificationFailed)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "vera@example.com", f.notifier.sent[0].To)
	assert.Contains(t, f.notifier.sent[0].HTML, "Борис")
	assert.Equal(t, []string{outcomeCreated}, f.metrics.bookings)
	assert.Equal(t, []string{notificationSent}, f.metrics.notifications)
}

func TestExecute_NoAvailability(t *testing.T) {
	at := bookingDay.Add(9 * time.Hour)
	f := newFixture(t, busy("x", "A", at), busy("y", "B", at))

	_, err := f.uc.Execute(context.Background(), haircut())
	assert.ErrorIs(t, err, ErrNoAvailability)

	all, listErr := f.repo.List(context.Background(), domain.AppointmentFilter{Date: &bookingDay})
	require.NoError(t, listErr)
	assert.Len(t, all, 2, "no appointment must be created")
	assert.Empty(t, f.notifier.sent)
	assert.Equal(t, []string{outcomeNoAvailability}, f.metrics.bookings)
}

func TestExecute_ExplicitEmployee(t *testing.T) {
	at := bookingDay.Add(9 * time.Hour)

	t.Run("свободен", func(t *testing.T) {
		f := newFixture(t, busy("x", "A", at))
		req := haircut()
		req.EmployeeID = ptr.Ptr("B")

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, resp.AutoAssigned)
		assert.Equal(t, "B", resp.Appointment.EmployeeID)
	})

	t.Run("занят", func(t *testing.T) {
		f := newFixture(t, busy("x", "A", at))
		req := haircut()
		req.EmployeeID = ptr.Ptr("A")

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("занят записью с секундами", func(t *testing.T) {
		f := newFixture(t, busy("x", "A", at.Add(30*time.Second)))
		req := haircut()
		req.EmployeeID = ptr.Ptr("A")

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("отмененная запись не мешает", func(t *testing.T) {
		cancelled := busy("x", "A", at)
		cancelled.Status = domain.AppointmentCancelled
		f := newFixture(t, cancelled)
		req := haircut()
		req.EmployeeID = ptr.Ptr("A")

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "A", resp.Appointment.EmployeeID)
	})

	t.Run("не найден", func(t *testing.T) {
		f := newFixture(t)
		req := haircut()
		req.EmployeeID = ptr.Ptr("Z")

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})
}

func TestExecute_ValidationBeforeRemoteCalls(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
		want   error
	}{
		{name: "пустое название", modify: func(r *Request) { r.Title = "  " }, want: ErrInvalidInput},
		{name: "длинное название", modify: func(r *Request) { r.Title = strings.Repeat("я", domain.MaxTitleLength+1) }, want: ErrInvalidInput},
		{name: "длинный комментарий", modify: func(r *Request) { r.Description = ptr.Ptr(strings.Repeat("a", domain.MaxDescriptionLength+1)) }, want: ErrInvalidInput},
		{name: "нет клиента", modify: func(r *Request) { r.CustomerID = "" }, want: ErrInvalidInput},
		{name: "нет даты", modify: func(r *Request) { r.Date = time.Time{} }, want: ErrInvalidInput},
		{name: "нет слота", modify: func(r *Request) { r.Slot = "" }, want: ErrInvalidInput},
		{name: "кривой слот", modify: func(r *Request) { r.Slot = "25:99" }, want: ErrInvalidSlot},
		{name: "слот вне расписания", modify: func(r *Request) { r.Slot = "09:30" }, want: ErrInvalidSlot},
		{name: "прошлая дата", modify: func(r *Request) { r.Date = bookingDay.AddDate(0, 0, -3) }, want: ErrBookingInPast},
		{name: "за горизонтом", modify: func(r *Request) { r.Date = bookingDay.AddDate(0, 0, 60) }, want: ErrDateTooFarInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := haircut()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, f.directory.listCalls)
		})
	}
}

func TestExecute_TodayPastSlot(t *testing.T) {
	f := newFixture(t)
	f.uc.WithTimeProvider(fixedTime{now: bookingDay.Add(9*time.Hour + 30*time.Minute)})

	_, err := f.uc.Execute(context.Background(), haircut())
	assert.ErrorIs(t, err, ErrBookingInPast)

	req := haircut()
	req.Slot = "10:00"
	_, err = f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_NotificationFailureKeepsAppointment(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("smtp down")

	resp, err := f.uc.Execute(context.Background(), haircut())
	require.NoError(t, err)
	assert.True(t, resp.NotificationFailed)
	assert.Contains(t, resp.NotificationError, "smtp down")

	all, listErr := f.repo.List(context.Background(), domain.AppointmentFilter{CustomerID: ptr.Ptr("c1")})
	require.NoError(t, listErr)
	assert.Len(t, all, 1)
	assert.Equal(t, []string{notificationFailed}, f.metrics.notifications)
}

func TestExecute_CustomerLookupFailure(t *testing.T) {
	f := newFixture(t)
	f.directory.customerErr = domain.ErrUpstreamUnavailable

	resp, err := f.uc.Execute(context.Background(), haircut())
	require.NoError(t, err)
	assert.True(t, resp.NotificationFailed)
	assert.Empty(t, f.notifier.sent)
}

func TestExecute_WithoutNotifier(t *testing.T) {
	f := newFixture(t)
	f.uc.notifier = nil

	resp, err := f.uc.Execute(context.Background(), haircut())
	require.NoError(t, err)
	assert.False(t, resp.NotificationFailed)
	assert.Equal(t, []string{notificationSkipped}, f.metrics.notifications)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	f := newFixture(t)
	f.directory.listErr = domain.ErrUpstreamFailure

	_, err := f.uc.Execute(context.Background(), haircut())
	assert.ErrorIs(t, err, ErrInternal)
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}

func TestRenderConfirmation_EscapesHTML(t *testing.T) {
	html, err := renderConfirmation(
		&domain.Appointment{Title: "<script>", DateTime: bookingDay.Add(9 * time.Hour)},
		&domain.Customer{Name: "Вера"},
		&domain.Employee{Name: "Анна"},
	)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "2024-06-10")
	assert.Contains(t, html, "09:00")
}
