package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{name: "понедельник", in: date(2024, 6, 10), want: date(2024, 6, 10)},
		{name: "среда", in: date(2024, 6, 12), want: date(2024, 6, 10)},
		{name: "воскресенье", in: date(2024, 6, 16), want: date(2024, 6, 10)},
		{name: "переход через месяц", in: date(2024, 7, 2), want: date(2024, 7, 1)},
		{name: "время суток отбрасывается", in: time.Date(2024, 6, 13, 23, 10, 0, 0, time.UTC), want: date(2024, 6, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestShiftWeeks(t *testing.T) {
	monday := date(2024, 6, 10)
	assert.True(t, ShiftWeeks(monday, 1).Equal(date(2024, 6, 17)))
	assert.True(t, ShiftWeeks(monday, -1).Equal(date(2024, 6, 3)))
	assert.True(t, ShiftWeeks(monday, 0).Equal(monday))
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(date(2024, 6, 14))
	require.Len(t, days, DaysInWeek)
	assert.Equal(t, "2024-06-10", FormatDate(days[0]))
	assert.Equal(t, "2024-06-16", FormatDate(days[6]))
}

func TestHorizon(t *testing.T) {
	days := Horizon(time.Date(2024, 2, 28, 15, 0, 0, 0, time.UTC), 3)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-02-28", FormatDate(days[0]))
	assert.Equal(t, "2024-02-29", FormatDate(days[1]))
	assert.Equal(t, "2024-03-01", FormatDate(days[2]))

	assert.Empty(t, Horizon(date(2024, 1, 1), 0))
}

func TestCombineDateAndSlot(t *testing.T) {
	got, err := CombineDateAndSlot(date(2024, 6, 10), types.MustTimeString("09:30"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, got.Location())

	// Дата в другом поясе приводится к дню UTC
	moscow := time.FixedZone("MSK", 3*60*60)
	got, err = CombineDateAndSlot(time.Date(2024, 6, 10, 12, 0, 0, 0, moscow), types.MustTimeString("10:00"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)))

	_, err = CombineDateAndSlot(date(2024, 6, 10), types.TimeString("bad"))
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestSplitInstant(t *testing.T) {
	day, slot := SplitInstant(time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-10", FormatDate(day))
	assert.Equal(t, types.TimeString("14:00"), slot)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.True(t, got.Equal(date(2024, 6, 10)))

	_, err = ParseDate("10.06.2024")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGenerateSlots(t *testing.T) {
	slots, err := GenerateSlots(types.MustTimeString("09:00"), types.MustTimeString("17:00"), 60)
	require.NoError(t, err)
	require.Len(t, slots, 9)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[8])

	slots, err = GenerateSlots(types.MustTimeString("23:00"), types.MustTimeString("23:59"), 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, slots)

	_, err = GenerateSlots(types.MustTimeString("09:00"), types.MustTimeString("10:00"), 0)
	assert.ErrorIs(t, err, ErrInvalidStep)
}
