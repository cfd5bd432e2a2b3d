package roster

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const (
	opAddStaff    = "add_staff"
	opRemoveStaff = "remove_staff"
)

// Service недельное расписание сотрудников.
// После изменения день перечитывается из хранилища: расписание всегда отражает сохраненное состояние.
type Service struct {
	repo      AvailabilityRepository
	machine   AvailabilityStateMachine
	directory EmployeeDirectory
	metrics   MetricsRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	repo AvailabilityRepository,
	machine AvailabilityStateMachine,
	directory EmployeeDirectory,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		repo:      repo,
		machine:   machine,
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// WeekRoster возвращает назначенные смены на неделю с понедельника недели anchor,
// сдвинутой на offsetWeeks недель
func (s *Service) WeekRoster(ctx context.Context, anchor time.Time, offsetWeeks int) (*domain.WeekRoster, error) {
	if offsetWeeks < -domain.MaxRosterWeekOffset || offsetWeeks > domain.MaxRosterWeekOffset {
		return nil, fmt.Errorf("%w: week offset must be within ±%d", ErrInvalidInput, domain.MaxRosterWeekOffset)
	}

	weekStart := calendar.ShiftWeeks(calendar.WeekStart(anchor), offsetWeeks)
	s.logger.Info("WeekRoster: week starting %s", calendar.FormatDate(weekStart))

	names, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}

	roster := &domain.WeekRoster{
		WeekStart: weekStart,
		Days:      make([]domain.DayRoster, 0, calendar.DaysInWeek),
	}
	for _, day := range calendar.WeekDays(weekStart) {
		dayRoster, err := s.dayRoster(ctx, day, names)
		if err != nil {
			return nil, err
		}
		roster.Days = append(roster.Days, *dayRoster)
	}

	return roster, nil
}

// DayRoster возвращает назначенные смены одного дня
func (s *Service) DayRoster(ctx context.Context, date time.Time) (*domain.DayRoster, error) {
	names, err := s.employeeNames(ctx)
	if err != nil {
		return nil, err
	}
	return s.dayRoster(ctx, calendar.Day(date), names)
}

// AddStaffToDay назначает сотруднику OPEN запись на дату.
// Из нескольких OPEN записей выбирается самая ранняя по времени начала, при равенстве - по ID.
func (s *Service) AddStaffToDay(ctx context.Context, date time.Time, employeeID string) (*domain.DayRoster, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	day := calendar.Day(date)
	s.logger.Info("AddStaffToDay: employee=%s, date=%s", employeeID, calendar.FormatDate(day))

	candidate, err := s.pick(ctx, day, employeeID, domain.AvailabilityOpen)
	if err != nil {
		s.metrics.RecordRosterOperation(opAddStaff, "error")
		return nil, err
	}
	if candidate == nil {
		s.logger.Warn("AddStaffToDay: no OPEN availability for employee=%s on %s", employeeID, calendar.FormatDate(day))
		s.metrics.RecordRosterOperation(opAddStaff, "no_open_slot")
		return nil, ErrNoOpenSlot
	}

	if _, err := s.machine.Assign(ctx, candidate.ID); err != nil {
		s.logger.Warn("AddStaffToDay: assign availability id=%s failed: %v", candidate.ID, err)
		s.metrics.RecordRosterOperation(opAddStaff, "error")
		return nil, err
	}

	s.metrics.RecordRosterOperation(opAddStaff, "ok")
	s.logger.Info("AddStaffToDay: availability id=%s assigned to roster", candidate.ID)
	return s.refreshedDay(ctx, day)
}

// RemoveAssignment снимает назначение сотрудника на дату (ASSIGNED -> OPEN)
func (s *Service) RemoveAssignment(ctx context.Context, date time.Time, employeeID string) (*domain.DayRoster, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}
	day := calendar.Day(date)
	s.logger.Info("RemoveAssignment: employee=%s, date=%s", employeeID, calendar.FormatDate(day))

	assigned, err := s.pick(ctx, day, employeeID, domain.AvailabilityAssigned)
	if err != nil {
		s.metrics.RecordRosterOperation(opRemoveStaff, "error")
		return nil, err
	}
	if assigned == nil {
		s.logger.Warn("RemoveAssignment: no ASSIGNED availability for employee=%s on %s", employeeID, calendar.FormatDate(day))
		s.metrics.RecordRosterOperation(opRemoveStaff, "not_found")
		return nil, ErrAssignmentNotFound
	}

	if _, err := s.machine.Unassign(ctx, assigned.ID); err != nil {
		s.logger.Warn("RemoveAssignment: unassign availability id=%s failed: %v", assigned.ID, err)
		s.metrics.RecordRosterOperation(opRemoveStaff, "error")
		return nil, err
	}

	s.metrics.RecordRosterOperation(opRemoveStaff, "ok")
	s.logger.Info("RemoveAssignment: availability id=%s returned to OPEN", assigned.ID)
	return s.refreshedDay(ctx, day)
}

// pick выбирает запись сотрудника на дату в заданном статусе, nil если таких нет
func (s *Service) pick(
	ctx context.Context,
	day time.Time,
	employeeID string,
	status domain.AvailabilityStatus,
) (*domain.Availability, error) {
	filter := domain.AvailabilityFilter{
		Date:       day,
		EmployeeID: ptr.Ptr(employeeID),
		Status:     ptr.Ptr(status),
	}
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("pick: repository error for employee=%s on %s: %v", employeeID, calendar.FormatDate(day), err)
		return nil, fmt.Errorf("%w: list availability: %w", ErrInternal, err)
	}

	var chosen *domain.Availability
	for _, a := range list {
		// Внешнее хранилище может игнорировать часть фильтра
		if !filter.Matches(a) {
			continue
		}
		if chosen == nil || earlier(a, chosen) {
			chosen = a
		}
	}
	return chosen, nil
}

// refreshedDay строит ростер дня после уже выполненного перехода.
// Недоступный справочник сотрудников не отменяет переход: имена остаются пустыми.
func (s *Service) refreshedDay(ctx context.Context, day time.Time) (*domain.DayRoster, error) {
	names, err := s.employeeNames(ctx)
	if err != nil {
		s.logger.Warn("refreshedDay: roster for %s built without employee names: %v", calendar.FormatDate(day), err)
		names = map[string]string{}
	}
	return s.dayRoster(ctx, day, names)
}

func (s *Service) dayRoster(ctx context.Context, day time.Time, names map[string]string) (*domain.DayRoster, error) {
	list, err := s.repo.List(ctx, domain.AvailabilityFilter{
		Date:   day,
		Status: ptr.Ptr(domain.AvailabilityAssigned),
	})
	if err != nil {
		s.logger.Error("dayRoster: repository error for %s: %v", calendar.FormatDate(day), err)
		return nil, fmt.Errorf("%w: list availability: %w", ErrInternal, err)
	}

	entries := make([]domain.RosterEntry, 0, len(list))
	for _, a := range list {
		if a.Status != domain.AvailabilityAssigned {
			continue
		}
		name, ok := names[a.EmployeeID]
		if !ok {
			s.logger.Warn("dayRoster: employee=%s not found in directory", a.EmployeeID)
		}
		entries = append(entries, domain.RosterEntry{
			AvailabilityID: a.ID,
			EmployeeID:     a.EmployeeID,
			EmployeeName:   name,
			StartTime:      a.StartTime,
			EndTime:        a.EndTime,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].StartTime != entries[j].StartTime {
			return entries[i].StartTime.IsBefore(entries[j].StartTime)
		}
		if entries[i].EmployeeName != entries[j].EmployeeName {
			return entries[i].EmployeeName < entries[j].EmployeeName
		}
		return entries[i].AvailabilityID < entries[j].AvailabilityID
	})

	return &domain.DayRoster{Date: day, Entries: entries}, nil
}

func (s *Service) employeeNames(ctx context.Context) (map[string]string, error) {
	employees, err := s.directory.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("employeeNames: failed to list employees: %v", err)
		return nil, fmt.Errorf("%w: list employees: %w", ErrInternal, err)
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.Name
	}
	return names, nil
}

func earlier(a, b *domain.Availability) bool {
	if a.StartTime != b.StartTime {
		return a.StartTime.IsBefore(b.StartTime)
	}
	return a.ID < b.ID
}

type noopMetrics struct{}

func (noopMetrics) RecordRosterOperation(string, string) {}
