package singleton

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

func TestRevokeSessionsStampsUser(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")

	before := time.Now().Add(-time.Second)
	assert.Nil(t, RevokeSessions(user.ID))

	var stored model.User
	assert.Nil(t, DB.First(&stored, user.ID).Error)
	assert.NotNil(t, stored.SessionsRevokedAt)
	assert.True(t, stored.SessionsRevokedAt.After(before))
}

func TestRevokeSessionsInvalidatesProfileCache(t *testing.T) {
	newTestEnv(t)
	user := seedUser(t, "client@fungisteel.com")

	cached, err := GetProfile(user.ID)
	assert.Nil(t, err)
	assert.Nil(t, cached.SessionsRevokedAt)

	assert.Nil(t, RevokeSessions(user.ID))

	fresh, err := GetProfile(user.ID)
	assert.Nil(t, err)
	assert.NotNil(t, fresh.SessionsRevokedAt)
}

func TestAssetDownloadURL(t *testing.T) {
	newTestEnv(t)

	assert.Empty(t, AssetDownloadURL(7))

	Conf.Site.BaseURL = "https://office.aurem.example/"
	assert.Equal(t, "https://office.aurem.example/api/v1/assets/7/download",
		AssetDownloadURL(7))
}
