package model

import "time"

const (
	ActivityTypeLogin          = "login"
	ActivityTypeLogout         = "logout"
	ActivityTypePasswordChange = "password_change"
	ActivityTypeMFAEnabled     = "2fa_enabled"
	ActivityTypeMFADisabled    = "2fa_disabled"
	ActivityTypeSessionRevoked = "session_revoked"
)

// UserActivity is one auditable security event on a user account.
type UserActivity struct {
	Common
	UserID     uint64 `json:"user_id" gorm:"index"`
	Type       string `json:"type"`
	DeviceName string `json:"device_name"`
	DeviceType string `json:"device_type"`
	Browser    string `json:"browser"`
	Location   string `json:"location"`
	IPAddress  string `json:"ip_address"`
}

// ActivityDay groups activity rows by calendar date for the log viewer.
type ActivityDay struct {
	Date       string         `json:"date"`
	Activities []UserActivity `json:"activities"`
}

// GroupActivitiesByDate buckets rows into calendar days, formatted in
// the given timezone. Input order (newest first) is preserved both
// across days and within each day.
func GroupActivitiesByDate(rows []UserActivity, loc *time.Location) []ActivityDay {
	days := make([]ActivityDay, 0, len(rows))
	index := make(map[string]int)

	for _, row := range rows {
		date := row.CreatedAt.In(loc).Format("January 2, 2006")
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, ActivityDay{Date: date})
		}
		days[i].Activities = append(days[i].Activities, row)
	}
	return days
}
