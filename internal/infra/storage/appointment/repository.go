package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

var columns = []string{"id", "title", "date_time", "status", "customer_id", "employee_id", "description", "created_at"}

// Repository записи клиентов в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись.
// Частичный уникальный индекс appointments_active_slot_uidx отклоняет вторую активную запись
// на того же сотрудника, дату и слот HH:MM, это возвращается как domain.ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	record := *appointment
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.DateTime = record.DateTime.UTC()

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(columns...).
		Values(
			record.ID,
			record.Title,
			record.DateTime,
			record.Status,
			record.CustomerID,
			record.EmployeeID,
			record.Description,
			record.CreatedAt,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: employee=%s, at=%s", domain.ErrSlotTaken, record.EmployeeID, record.DateTime.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &record, nil
}

// List получает записи по фильтру в хронологическом порядке
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		var (
			a           domain.Appointment
			description sql.NullString
		)
		err := rows.Scan(&a.ID, &a.Title, &a.DateTime, &a.Status, &a.CustomerID, &a.EmployeeID, &description, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan appointment: %v", ErrScanRow, err)
		}
		if description.Valid {
			a.Description = &description.String
		}
		a.DateTime = a.DateTime.UTC()
		a.CreatedAt = a.CreatedAt.UTC()
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

func listQuery(filter domain.AppointmentFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From("appointments").
		OrderBy("date_time", "id")

	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.Date != nil {
		day := calendar.Day(*filter.Date)
		builder = builder.Where(squirrel.GtOrEq{"date_time": day}).
			Where(squirrel.Lt{"date_time": day.AddDate(0, 0, 1)})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date_time": calendar.Day(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.Lt{"date_time": calendar.Day(*filter.EndDate)})
	}

	return builder
}
