package singleton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

func seedNotificationSchema(t *testing.T, userID uint64) (vault, uploads *model.NotificationUserCheck) {
	t.Helper()

	group := &model.NotificationGroup{
		Title:       "Brand Updates",
		Description: "Stay informed about changes to your brand assets and documentation",
		IsDefault:   true,
	}
	assert.Nil(t, DB.Create(group).Error)

	hidden := &model.NotificationGroup{Title: "Internal", IsDefault: false}
	assert.Nil(t, DB.Create(hidden).Error)

	vaultEntry := &model.NotificationEntry{
		NotificationGroupID: group.ID,
		Label:               "Vault Updates",
		Description:         "When documents or assets are added or modified",
	}
	uploadsEntry := &model.NotificationEntry{
		NotificationGroupID: group.ID,
		Label:               "Asset Uploads",
		Description:         "When new files are added to your asset library",
	}
	hiddenEntry := &model.NotificationEntry{
		NotificationGroupID: hidden.ID,
		Label:               "Debug Pings",
	}
	assert.Nil(t, DB.Create(vaultEntry).Error)
	assert.Nil(t, DB.Create(uploadsEntry).Error)
	assert.Nil(t, DB.Create(hiddenEntry).Error)

	vault = seedCheck(t, vaultEntry.ID, userID, true)
	uploads = seedCheck(t, uploadsEntry.ID, userID, false)
	seedCheck(t, hiddenEntry.ID, userID, true)
	return vault, uploads
}

func TestGetGroupedNotificationsEndToEnd(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	seedNotificationSchema(t, user.ID)

	grouped := GetGroupedNotifications(user.ID)

	assert.Len(t, grouped, 1)
	assert.Equal(t, "Brand Updates", grouped[0].GroupTitle)
	assert.Len(t, grouped[0].Notifications, 2)
	assert.Equal(t, "Vault Updates", grouped[0].Notifications[0].Label)
	assert.True(t, grouped[0].Notifications[0].Checked)
	assert.Equal(t, "Asset Uploads", grouped[0].Notifications[1].Label)
	assert.False(t, grouped[0].Notifications[1].Checked)
}

func TestGetGroupedNotificationsOtherUsersExcluded(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "a@fungisteel.com")
	other := seedUser(t, "b@fungisteel.com")
	vault, _ := seedNotificationSchema(t, user.ID)
	seedCheck(t, vault.NotificationEntryID, other.ID, false)

	grouped := GetGroupedNotifications(user.ID)
	assert.Len(t, grouped, 1)
	for _, n := range grouped[0].Notifications {
		assert.Equal(t, user.ID, n.UserID)
	}
}

func TestSavePreferencesWritesOnlyTouchedRows(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	vault, uploads := seedNotificationSchema(t, user.ID)

	uploadsBefore := *uploads

	err := SavePreferences(user.ID, []model.PreferenceUpdate{
		{ID: vault.ID, Checked: false},
	})
	assert.Nil(t, err)

	var vaultAfter, uploadsAfter model.NotificationUserCheck
	assert.Nil(t, DB.First(&vaultAfter, vault.ID).Error)
	assert.Nil(t, DB.First(&uploadsAfter, uploads.ID).Error)

	assert.False(t, vaultAfter.IsChecked)
	assert.Equal(t, uploadsBefore.IsChecked, uploadsAfter.IsChecked)
	assert.Equal(t, uploadsBefore.UpdatedAt.Unix(), uploadsAfter.UpdatedAt.Unix())
}

func TestSavePreferencesRejectsForeignRows(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "a@fungisteel.com")
	other := seedUser(t, "b@fungisteel.com")
	vault, _ := seedNotificationSchema(t, user.ID)
	foreign := seedCheck(t, vault.NotificationEntryID, other.ID, true)

	err := SavePreferences(user.ID, []model.PreferenceUpdate{
		{ID: vault.ID, Checked: false},
		{ID: foreign.ID, Checked: false},
	})
	assert.NotNil(t, err)

	// The whole batch is rolled back, first row included.
	var vaultAfter, foreignAfter model.NotificationUserCheck
	assert.Nil(t, DB.First(&vaultAfter, vault.ID).Error)
	assert.Nil(t, DB.First(&foreignAfter, foreign.ID).Error)
	assert.True(t, vaultAfter.IsChecked)
	assert.True(t, foreignAfter.IsChecked)
}

func TestSavePreferencesInvalidatesCache(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	vault, _ := seedNotificationSchema(t, user.ID)

	before := GetGroupedNotifications(user.ID)
	assert.True(t, before[0].Notifications[0].Checked)

	assert.Nil(t, SavePreferences(user.ID, []model.PreferenceUpdate{
		{ID: vault.ID, Checked: false},
	}))

	after := GetGroupedNotifications(user.ID)
	assert.False(t, after[0].Notifications[0].Checked)
}

func TestSavePreferencesEmptyBatchIsNoop(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")
	seedNotificationSchema(t, user.ID)

	assert.Nil(t, SavePreferences(user.ID, nil))
}
