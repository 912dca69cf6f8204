package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AppointEase/internal/domain"
)

var testDay = time.Date(2026, 1, 28, 0, 0, 0, 0, time.Local)

func clock(hour, minute int) time.Time {
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), hour, minute, 0, 0, time.Local)
}

func startTimes(slots []domain.TimeSlot) []string {
	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.StartTime.Format(domain.TimeFormat)
	}
	return result
}

func TestGenerateSlots_SixtyMinuteService(t *testing.T) {
	slots, err := GenerateSlots(testDay, 60, "haircut")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
		"13:00", "13:30", "14:00", "14:30", "15:00", "15:30", "16:00",
	}, startTimes(slots))

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, s.StartTime.Add(time.Hour), s.EndTime)
	}
	assert.Equal(t, "0900-haircut", slots[0].ID)
	assert.Equal(t, "1600-haircut", slots[len(slots)-1].ID)
}

func TestGenerateSlots_Durations(t *testing.T) {
	tests := []struct {
		duration  int
		wantCount int
		wantLast  string
	}{
		{duration: 30, wantCount: 16, wantLast: "16:30"},
		{duration: 45, wantCount: 15, wantLast: "16:00"},
		{duration: 90, wantCount: 14, wantLast: "15:30"},
		{duration: 120, wantCount: 13, wantLast: "15:00"},
		{duration: 480, wantCount: 1, wantLast: "09:00"},
	}

	for _, tt := range tests {
		slots, err := GenerateSlots(testDay, tt.duration, "svc")
		require.NoError(t, err)
		require.Len(t, slots, tt.wantCount, "duration %d", tt.duration)
		assert.Equal(t, tt.wantLast, slots[len(slots)-1].StartTime.Format(domain.TimeFormat))
	}
}

func TestGenerateSlots_LongerThanBusinessDay(t *testing.T) {
	slots, err := GenerateSlots(testDay, 481, "svc")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	for _, d := range []int{0, -30} {
		slots, err := GenerateSlots(testDay, d, "svc")
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Nil(t, slots)
	}
}

func TestGenerateSlots_Bounds(t *testing.T) {
	openTime, closeTime := domain.BusinessHours(testDay)

	for d := 1; d <= domain.MaxDurationMinutes; d++ {
		slots, err := GenerateSlots(testDay, d, "svc")
		require.NoError(t, err)
		require.NotEmpty(t, slots, "duration %d", d)

		for _, s := range slots {
			assert.False(t, s.StartTime.Before(openTime), "duration %d start %s", d, s.StartTime)
			assert.False(t, s.EndTime.After(closeTime), "duration %d end %s", d, s.EndTime)
			assert.True(t, s.StartTime.Before(s.EndTime))
		}
	}
}

func TestGenerateSlots_IgnoresTimeOfDay(t *testing.T) {
	midday, err := GenerateSlots(clock(13, 17), 60, "svc")
	require.NoError(t, err)
	midnight, err := GenerateSlots(testDay, 60, "svc")
	require.NoError(t, err)

	assert.Equal(t, midnight, midday)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := GenerateSlots(testDay, 45, "manicure")
	require.NoError(t, err)
	second, err := GenerateSlots(testDay, 45, "manicure")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
