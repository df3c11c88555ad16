package singleton

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

func profileCacheKey(userID uint64) string {
	return fmt.Sprintf("profile:%d", userID)
}

// GetProfile returns the user joined with their client organization.
// Cached; OnUserUpdate must be called after any profile write.
func GetProfile(userID uint64) (*model.Profile, error) {
	if v, ok := Cache.Get(profileCacheKey(userID)); ok {
		return v.(*model.Profile), nil
	}

	var user model.User
	if err := DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	profile := &model.Profile{User: user}
	if user.ClientID != 0 {
		var client model.Client
		if err := DB.First(&client, user.ClientID).Error; err == nil {
			profile.ClientName = client.Name
			profile.ClientStatus = client.Status
			profile.ClientDriveFolderID = client.DriveFolderID
		}
	}

	Cache.Set(profileCacheKey(userID), profile, cache.DefaultExpiration)
	return profile, nil
}

// OnUserUpdate drops the cached profile so the next read refetches.
// This is the explicit invalidation step that replaces wholesale
// reload-after-save.
func OnUserUpdate(userID uint64) {
	Cache.Delete(profileCacheKey(userID))
}

// RevokeSessions stamps the user so every token issued before now is
// rejected at the identity check.
func RevokeSessions(userID uint64) error {
	now := time.Now()
	err := DB.Model(&model.User{}).Where("id = ?", userID).
		Update("sessions_revoked_at", &now).Error
	if err != nil {
		return err
	}
	OnUserUpdate(userID)
	return nil
}
