package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_Ordered(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_availability.sql", "0002_appointments.sql"}, files)
}

func TestAppointmentsMigration_HasActiveSlotIndex(t *testing.T) {
	body, err := fs.ReadFile("0002_appointments.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "WHERE status <> 'CANCELLED'")
	assert.Contains(t, string(body), "date_trunc('minute', date_time AT TIME ZONE 'UTC')")
}
