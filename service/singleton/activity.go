package singleton

import (
	"log"
	"time"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/utils"
)

// RecordActivity writes one audit row for a security event. Failures
// are logged and swallowed: auditing never blocks the flow it observes.
func RecordActivity(userID uint64, activityType, userAgent, ip string) {
	device := utils.ParseUserAgent(userAgent)
	activity := model.UserActivity{
		UserID:     userID,
		Type:       activityType,
		DeviceName: device.DeviceName,
		DeviceType: device.DeviceType,
		Browser:    device.Browser,
		Location:   GeoIP.Lookup(ip),
		IPAddress:  ip,
	}
	if err := DB.Create(&activity).Error; err != nil {
		log.Println("AUREM>> activity record failed:", err)
	}
}

// ListActivities returns the user's audit rows newest-first.
func ListActivities(userID uint64) ([]model.UserActivity, error) {
	var rows []model.UserActivity
	err := DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&rows).Error
	return rows, err
}

// ListActivityDays returns the user's audit rows grouped by calendar
// date in the user's own timezone. An unset or unloadable timezone
// falls back to the server location.
func ListActivityDays(user *model.Profile) ([]model.ActivityDay, error) {
	rows, err := ListActivities(user.ID)
	if err != nil {
		return nil, err
	}

	loc := Loc
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
		}
	}
	return model.GroupActivitiesByDate(rows, loc), nil
}

// PurgeStaleActivities deletes audit rows past the retention window.
func PurgeStaleActivities() {
	cutoff := time.Now().AddDate(0, 0, -int(Conf.ActivityRetentionDays))
	res := DB.Unscoped().Delete(&model.UserActivity{}, "created_at < ?", cutoff)
	if res.Error != nil {
		log.Println("AUREM>> activity purge failed:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("AUREM>> purged %d stale activity rows", res.RowsAffected)
	}
}
