package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/calendar"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

var columns = []string{"id", "employee_id", "date", "start_time", "end_time", "status"}

// Repository записи доступности в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись. Статус по умолчанию OPEN.
func (r *Repository) Create(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	record := *availability
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Status == "" {
		record.Status = domain.AvailabilityOpen
	}
	record.Date = calendar.Day(record.Date)

	query, args, err := psqlbuilder.Insert("availability").
		Columns(columns...).
		Values(record.ID, record.EmployeeID, record.Date, record.StartTime, record.EndTime, record.Status).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &record, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Availability, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan availability: %v", ErrScanRow, err)
	}

	return a, nil
}

// List получает записи дня по фильтру, упорядоченные по времени начала и ID
func (r *Repository) List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.Availability, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Availability, 0)
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan availability: %v", ErrScanRow, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus меняет статус и возвращает обновленную запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AvailabilityStatus) (*domain.Availability, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}

	query, args, err := psqlbuilder.Update("availability").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, employee_id, date, start_time, end_time, status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	a, err := scan(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return a, nil
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%s", domain.ErrAvailabilityNotFound, id)
	}

	return nil
}

func listQuery(filter domain.AvailabilityFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).
		From("availability").
		Where(squirrel.Eq{"date": calendar.Day(filter.Date)}).
		OrderBy("start_time", "id")

	if filter.EmployeeID != nil {
		builder = builder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	return builder
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scan(row scanner) (*domain.Availability, error) {
	var a domain.Availability
	err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.StartTime, &a.EndTime, &a.Status)
	if err != nil {
		return nil, err
	}
	a.Date = calendar.Day(a.Date)
	return &a, nil
}
