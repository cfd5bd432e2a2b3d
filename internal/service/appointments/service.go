package appointments

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Service чтение записей клиентов. Записи создает use case submit_booking.
type Service struct {
	repo   Repository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List получает записи по сотруднику, клиенту или дате, с опциональным статусом
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: employee=%s, customer=%s, date=%s, status=%s",
		ptr.Value(req.EmployeeID), ptr.Value(req.CustomerID), ptr.Value(req.Date), ptr.Value(req.Status))

	filter, status, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	if status != nil {
		filtered := list[:0]
		for _, a := range list {
			if a.Status == *status {
				filtered = append(filtered, a)
			}
		}
		list = filtered
	}

	s.logger.Info("List: found %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}
