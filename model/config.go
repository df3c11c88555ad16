package model

import (
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config ..
type Config struct {
	Debug        bool
	ListenPort   uint
	JWTSecretKey string

	Site struct {
		Brand   string
		BaseURL string
	}
	MFA struct {
		Issuer string
	}
	Storage struct {
		AssetDir string
	}
	GeoIPDB               string // optional mmdb path, location falls back to "Unknown" without it
	ActivityRetentionDays uint

	v *viper.Viper
}

// Read loads the config file at path and keeps watching it for changes.
func (c *Config) Read(path string) error {
	c.v = viper.New()
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return err
	}
	if err := c.v.Unmarshal(c); err != nil {
		return err
	}

	if c.ListenPort == 0 {
		c.ListenPort = 8008
	}
	if c.Site.Brand == "" {
		c.Site.Brand = "Aurem Private Office"
	}
	if c.MFA.Issuer == "" {
		c.MFA.Issuer = "Aurem"
	}
	if c.Storage.AssetDir == "" {
		c.Storage.AssetDir = "data/assets"
	}
	if c.ActivityRetentionDays == 0 {
		c.ActivityRetentionDays = 180
	}

	c.v.OnConfigChange(func(in fsnotify.Event) {
		c.v.Unmarshal(c)
	})
	go c.v.WatchConfig()
	return nil
}

// Save writes the current config back to the file it was read from.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.v.ConfigFileUsed(), data, 0600)
}
