package model

import "time"

// NotificationGroup is an agency-defined category of notification.
// Maintained by agency staff; members only ever read it.
type NotificationGroup struct {
	Common
	Title       string `json:"title"`
	Description string `json:"description"`
	IsDefault   bool   `json:"is_default"`
}

// NotificationEntry is a single notification type within a group.
type NotificationEntry struct {
	Common
	NotificationGroupID uint64 `json:"notification_group_id" gorm:"index"`
	Label               string `json:"label"`
	Description         string `json:"description"`
}

// NotificationUserCheck is the per-user, per-entry preference row,
// the only member-mutable row in this slice. Uniqueness per
// (user, entry) pair is enforced by the index, not by application code.
type NotificationUserCheck struct {
	Common
	NotificationEntryID uint64 `json:"notification_entry_id" gorm:"uniqueIndex:idx_notification_user_check"`
	UserID              uint64 `json:"user_id" gorm:"uniqueIndex:idx_notification_user_check"`
	IsChecked           bool   `json:"is_checked"`
}

// NotificationInfo is one preference row denormalized with its entry
// and that entry's group. Built by the fetch query, consumed by
// GroupNotifications.
type NotificationInfo struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"user_id"`
	GroupID          uint64    `json:"group_id"`
	GroupTitle       string    `json:"group_title"`
	GroupDescription string    `json:"group_description"`
	GroupDefault     bool      `json:"group_default"`
	Label            string    `json:"label"`
	Description      string    `json:"description"`
	Checked          bool      `json:"checked"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type GroupedEntry struct {
	ID          uint64    `json:"id"`
	GroupID     uint64    `json:"group_id"`
	UserID      uint64    `json:"user_id"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	Checked     bool      `json:"checked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupedNotification is the rendered view model: one per
// default-visible group, carrying its member preference rows.
type GroupedNotification struct {
	GroupID          uint64         `json:"group_id"`
	GroupTitle       string         `json:"group_title"`
	GroupDescription string         `json:"group_description"`
	Notifications    []GroupedEntry `json:"notifications"`
}

// GroupNotifications reshapes flat joined rows into the grouped view
// model. Rows whose group is not default-visible are excluded.
// Output group order follows first occurrence of the group id in the
// input; rows of one group are assumed to carry identical group fields.
func GroupNotifications(rows []NotificationInfo) []GroupedNotification {
	grouped := make([]GroupedNotification, 0, len(rows))
	index := make(map[uint64]int)

	for _, row := range rows {
		if !row.GroupDefault {
			continue
		}
		i, ok := index[row.GroupID]
		if !ok {
			i = len(grouped)
			index[row.GroupID] = i
			grouped = append(grouped, GroupedNotification{
				GroupID:          row.GroupID,
				GroupTitle:       row.GroupTitle,
				GroupDescription: row.GroupDescription,
				Notifications:    make([]GroupedEntry, 0, 4),
			})
		}
		grouped[i].Notifications = append(grouped[i].Notifications, GroupedEntry{
			ID:          row.ID,
			GroupID:     row.GroupID,
			UserID:      row.UserID,
			Label:       row.Label,
			Description: row.Description,
			Checked:     row.Checked,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		})
	}
	return grouped
}
