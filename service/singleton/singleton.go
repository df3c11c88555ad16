package singleton

import (
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
	"github.com/davidmsteixeira-ops/aurem-private-workspace/pkg/geoip"
)

var Version = "v0.3.1"

var (
	Conf  *model.Config
	Cache *cache.Cache
	DB    *gorm.DB
	Loc   *time.Location
	GeoIP *geoip.Resolver
)

// Init prepares package-level state that does not depend on config.
func Init() {
	Loc = time.Local
	Conf = &model.Config{}
	Cache = cache.New(5*time.Minute, 10*time.Minute)
}

// InitConfigFromPath loads configuration; the server cannot run without it.
func InitConfigFromPath(path string) {
	if err := Conf.Read(path); err != nil {
		panic(err)
	}
}

// InitDBFromPath opens the sqlite store and migrates the schema.
func InitDBFromPath(path string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		CreateBatchSize: 200,
	})
	if err != nil {
		panic(err)
	}
	if Conf.Debug {
		DB = DB.Debug()
	}
	err = DB.AutoMigrate(model.Client{}, model.User{},
		model.NotificationGroup{}, model.NotificationEntry{}, model.NotificationUserCheck{},
		model.UserActivity{}, model.RecoveryCode{},
		model.BrandVaultSection{}, model.BrandVaultEntry{},
		model.Decision{}, model.Asset{},
		model.AIConversation{}, model.AIMessage{})
	if err != nil {
		panic(err)
	}
}

// InitGeoIP opens the optional location database.
func InitGeoIP() {
	var err error
	GeoIP, err = geoip.Open(Conf.GeoIPDB)
	if err != nil {
		panic(err)
	}
}

// LoadSingleton starts the background services.
func LoadSingleton() {
	loadCronTasks()
}
