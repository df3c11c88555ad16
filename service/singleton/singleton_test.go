package singleton

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/geoip"
)

var testDBSeq uint64

// newTestEnv resets the package singletons onto a fresh in-memory
// store. Tests in this package run sequentially against it.
func newTestEnv(t *testing.T) {
	t.Helper()

	Loc = time.UTC
	Conf = &model.Config{ActivityRetentionDays: 180}
	Conf.MFA.Issuer = "Aurem"
	Cache = cache.New(5*time.Minute, 10*time.Minute)
	GeoIP, _ = geoip.Open("")

	dsn := fmt.Sprintf("file:aurem-test-%d?mode=memory&cache=shared",
		atomic.AddUint64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	DB = db

	err = DB.AutoMigrate(model.Client{}, model.User{},
		model.NotificationGroup{}, model.NotificationEntry{}, model.NotificationUserCheck{},
		model.UserActivity{}, model.RecoveryCode{},
		model.BrandVaultSection{}, model.BrandVaultEntry{},
		model.Decision{}, model.Asset{},
		model.AIConversation{}, model.AIMessage{})
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
}

func seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Role: model.RoleMember, ClientID: 1}
	if err := DB.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCheck(t *testing.T, entryID, userID uint64, checked bool) *model.NotificationUserCheck {
	t.Helper()
	c := &model.NotificationUserCheck{
		NotificationEntryID: entryID,
		UserID:              userID,
		IsChecked:           checked,
	}
	if err := DB.Create(c).Error; err != nil {
		t.Fatalf("seed check: %v", err)
	}
	return c
}
