package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClinicSchedule_IsWorkingDay(t *testing.T) {
	schedule := MustDefaultSchedule()

	// 2026-09-07 - понедельник
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		day := monday.AddDate(0, 0, i)
		assert.True(t, schedule.IsWorkingDay(day), "%s must be a working day", day.Weekday())
	}

	saturday := monday.AddDate(0, 0, 5)
	sunday := monday.AddDate(0, 0, 6)
	assert.False(t, schedule.IsWorkingDay(saturday))
	assert.False(t, schedule.IsWorkingDay(sunday))
}

func TestNewClinicSchedule_Validation(t *testing.T) {
	_, err := NewClinicSchedule("17:00", "09:00", 15, nil)
	assert.Error(t, err)

	_, err = NewClinicSchedule("09:00", "09:00", 15, nil)
	assert.Error(t, err)

	_, err = NewClinicSchedule("09:00", "17:00", 0, nil)
	assert.Error(t, err)

	_, err = NewClinicSchedule("nine", "17:00", 15, nil)
	assert.Error(t, err)

	// Пустой список рабочих дней означает будни
	schedule, err := NewClinicSchedule("08:00", "20:00", 30, nil)
	require.NoError(t, err)
	assert.True(t, schedule.IsWorkingDay(time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)))  // среда
	assert.False(t, schedule.IsWorkingDay(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))) // суббота
}
