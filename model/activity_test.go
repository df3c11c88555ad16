package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activityAt(id uint64, ts time.Time, typ string) UserActivity {
	a := UserActivity{Type: typ}
	a.ID = id
	a.CreatedAt = ts
	return a
}

func TestGroupActivitiesByDate(t *testing.T) {
	day1 := time.Date(2026, 8, 30, 22, 15, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)

	rows := []UserActivity{
		activityAt(3, day1, ActivityTypeLogin),
		activityAt(2, day1.Add(-2*time.Hour), ActivityTypePasswordChange),
		activityAt(1, day2, ActivityTypeLogin),
	}

	days := GroupActivitiesByDate(rows, time.UTC)
	assert.Len(t, days, 2)
	assert.Equal(t, "August 30, 2026", days[0].Date)
	assert.Equal(t, "August 29, 2026", days[1].Date)
	assert.Len(t, days[0].Activities, 2)
	assert.Equal(t, uint64(3), days[0].Activities[0].ID)
	assert.Equal(t, uint64(2), days[0].Activities[1].ID)
}

func TestGroupActivitiesByDateTimezoneBoundary(t *testing.T) {
	// 23:30 UTC on the 29th is already the 30th in UTC+2.
	loc := time.FixedZone("UTC+2", 2*3600)
	rows := []UserActivity{
		activityAt(1, time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC), ActivityTypeLogin),
	}

	days := GroupActivitiesByDate(rows, loc)
	assert.Len(t, days, 1)
	assert.Equal(t, "August 30, 2026", days[0].Date)
}

func TestGroupActivitiesByDateEmpty(t *testing.T) {
	assert.Empty(t, GroupActivitiesByDate(nil, time.UTC))
}
