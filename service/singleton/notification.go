package singleton

import (
	"fmt"
	"log"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

func notificationCacheKey(userID uint64) string {
	return fmt.Sprintf("notif:%d", userID)
}

// GetGroupedNotifications fetches every preference row of the user,
// joined with its entry and group, and returns the grouped view model.
// A failed fetch degrades to an empty result with a logged warning;
// it never propagates into the response path.
func GetGroupedNotifications(userID uint64) []model.GroupedNotification {
	if v, ok := Cache.Get(notificationCacheKey(userID)); ok {
		return v.([]model.GroupedNotification)
	}

	rows, err := fetchNotificationRows(userID)
	if err != nil {
		log.Println("AUREM>> notification fetch failed:", err)
		return []model.GroupedNotification{}
	}

	grouped := model.GroupNotifications(rows)
	Cache.Set(notificationCacheKey(userID), grouped, cache.DefaultExpiration)
	return grouped
}

func fetchNotificationRows(userID uint64) ([]model.NotificationInfo, error) {
	var rows []model.NotificationInfo
	err := DB.Model(&model.NotificationUserCheck{}).
		Select(`notification_user_checks.id,
			notification_user_checks.user_id,
			notification_user_checks.is_checked AS checked,
			notification_user_checks.created_at,
			notification_user_checks.updated_at,
			notification_entries.label,
			notification_entries.description,
			notification_groups.id AS group_id,
			notification_groups.title AS group_title,
			notification_groups.description AS group_description,
			notification_groups.is_default AS group_default`).
		Joins("INNER JOIN notification_entries ON notification_entries.id = notification_user_checks.notification_entry_id").
		Joins("INNER JOIN notification_groups ON notification_groups.id = notification_entries.notification_group_id").
		Where("notification_user_checks.user_id = ?", userID).
		Order("notification_user_checks.id").
		Scan(&rows).Error
	return rows, err
}

// SavePreferences writes the touched toggles in one transaction. Each
// submitted row must belong to the caller; a bad id rejects the whole
// batch and nothing is written, so the client's dirty state stays
// meaningful. On success the cached grouping is invalidated.
func SavePreferences(userID uint64, updates []model.PreferenceUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	err := DB.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		for _, u := range updates {
			var check model.NotificationUserCheck
			if err := tx.First(&check, u.ID).Error; err != nil {
				return fmt.Errorf("preference %d does not exist", u.ID)
			}
			if check.UserID != userID {
				return fmt.Errorf("preference %d does not belong to the current user", u.ID)
			}
			if err := tx.Model(&check).Updates(map[string]interface{}{
				"is_checked": u.Checked,
				"updated_at": now,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	Cache.Delete(notificationCacheKey(userID))
	return nil
}
