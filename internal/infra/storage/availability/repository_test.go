package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func TestListQuery(t *testing.T) {
	date := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	status := domain.AvailabilityOpen

	tests := []struct {
		name     string
		filter   domain.AvailabilityFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:     "только дата",
			filter:   domain.AvailabilityFilter{Date: date},
			wantSQL:  "SELECT id, employee_id, date, start_time, end_time, status FROM availability WHERE date = $1 ORDER BY start_time, id",
			wantArgs: []interface{}{day},
		},
		{
			name:   "дата и статус",
			filter: domain.AvailabilityFilter{Date: date, Status: &status},
			wantSQL: "SELECT id, employee_id, date, start_time, end_time, status FROM availability " +
				"WHERE date = $1 AND status = $2 ORDER BY start_time, id",
			wantArgs: []interface{}{day, status},
		},
		{
			name:   "сотрудник",
			filter: domain.AvailabilityFilter{Date: date, EmployeeID: ptr.Ptr("e1")},
			wantSQL: "SELECT id, employee_id, date, start_time, end_time, status FROM availability " +
				"WHERE date = $1 AND employee_id = $2 ORDER BY start_time, id",
			wantArgs: []interface{}{day, "e1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := listQuery(tt.filter).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
