package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/availability/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
)

// Service управляет жизненным циклом записей доступности:
// OPEN -> ASSIGNED (Assign), ASSIGNED -> OPEN (Unassign), OPEN|ASSIGNED -> CLOSED (Close).
// Из CLOSED переходов нет.
type Service struct {
	repo      Repository
	directory EmployeeDirectory
	logger    Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(repo Repository, directory EmployeeDirectory, logger Logger) *Service {
	return &Service{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// Create создает окно доступности сотрудника в статусе OPEN
func (s *Service) Create(ctx context.Context, req *models.CreateAvailabilityRequest) (*domain.Availability, error) {
	s.logger.Info("Create: employee=%s, date=%s, window=%s-%s", req.EmployeeID, req.Date, req.StartTime, req.EndTime)

	availability, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.directory != nil {
		if _, err := s.directory.GetEmployee(ctx, availability.EmployeeID); err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				s.logger.Warn("Create: employee=%s not found", availability.EmployeeID)
				return nil, ErrEmployeeNotFound
			}
			s.logger.Error("Create: failed to get employee=%s: %v", availability.EmployeeID, err)
			return nil, fmt.Errorf("%w: Create - employee directory error: %w", ErrInternal, err)
		}
	}

	created, err := s.repo.Create(ctx, availability)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: created availability id=%s", created.ID)
	return created, nil
}

// Get получает запись доступности по ID
func (s *Service) Get(ctx context.Context, id string) (*domain.Availability, error) {
	availability, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			s.logger.Warn("Get: availability id=%s not found", id)
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("Get: repository error for availability id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %w", ErrInternal, err)
	}
	return availability, nil
}

// List получает записи доступности на дату с опциональными фильтрами
func (s *Service) List(ctx context.Context, req *models.ListAvailabilityRequest) ([]*domain.Availability, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d availability records for date=%s", len(list), calendar.FormatDate(filter.Date))
	return list, nil
}

// Assign переводит запись из OPEN в ASSIGNED
func (s *Service) Assign(ctx context.Context, id string) (*domain.Availability, error) {
	return s.transition(ctx, "Assign", id, (*domain.Availability).Assign)
}

// Unassign переводит запись из ASSIGNED обратно в OPEN
func (s *Service) Unassign(ctx context.Context, id string) (*domain.Availability, error) {
	return s.transition(ctx, "Unassign", id, (*domain.Availability).Unassign)
}

// Close административно закрывает запись
func (s *Service) Close(ctx context.Context, id string) (*domain.Availability, error) {
	return s.transition(ctx, "Close", id, (*domain.Availability).Close)
}

// ChangeStatus выполняет переход, соответствующий целевому статусу
func (s *Service) ChangeStatus(ctx context.Context, id string, target domain.AvailabilityStatus) (*domain.Availability, error) {
	switch target {
	case domain.AvailabilityAssigned:
		return s.Assign(ctx, id)
	case domain.AvailabilityOpen:
		return s.Unassign(ctx, id)
	case domain.AvailabilityClosed:
		return s.Close(ctx, id)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, target)
	}
}

// Delete удаляет запись в статусе OPEN или ASSIGNED
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting availability id=%s", id)

	availability, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if !availability.CanBeDeleted() {
		s.logger.Warn("Delete: availability id=%s has status %s", id, availability.Status)
		return fmt.Errorf("%w: cannot delete %s availability", ErrInvalidState, availability.Status)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			return ErrAvailabilityNotFound
		}
		s.logger.Error("Delete: repository error for availability id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: availability id=%s deleted", id)
	return nil
}

func (s *Service) transition(
	ctx context.Context,
	op string,
	id string,
	apply func(*domain.Availability) error,
) (*domain.Availability, error) {
	s.logger.Info("%s: availability id=%s", op, id)

	availability, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := availability.Status
	if err := apply(availability); err != nil {
		s.logger.Warn("%s: availability id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, availability.Status)
	if err != nil {
		if errors.Is(err, domain.ErrAvailabilityNotFound) {
			return nil, ErrAvailabilityNotFound
		}
		s.logger.Error("%s: repository error for availability id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}

	s.logger.Info("%s: availability id=%s %s -> %s", op, id, from, updated.Status)
	return updated, nil
}
