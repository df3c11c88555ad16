// Package geoip resolves login IP addresses to a coarse "City, Country"
// label for the activity log. The database is an optional MaxMind mmdb
// configured at boot; without it every lookup reports UnknownLocation.
package geoip

import (
	"net"

	maxminddb "github.com/oschwald/maxminddb-golang"
)

const UnknownLocation = "Unknown"

type record struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Country struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"country"`
}

type Resolver struct {
	db *maxminddb.Reader
}

// Open loads the mmdb at path. An empty path yields a resolver that
// always reports UnknownLocation rather than an error.
func Open(path string) (*Resolver, error) {
	if path == "" {
		return &Resolver{}, nil
	}
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, err
	}
	return &Resolver{db: db}, nil
}

func (r *Resolver) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Lookup resolves ipStr to "City, Country". Private, malformed or
// unmapped addresses all degrade to UnknownLocation.
func (r *Resolver) Lookup(ipStr string) string {
	if r.db == nil {
		return UnknownLocation
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return UnknownLocation
	}

	var rec record
	if err := r.db.Lookup(ip, &rec); err != nil {
		return UnknownLocation
	}

	city := rec.City.Names["en"]
	country := rec.Country.Names["en"]
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case country != "":
		return country
	default:
		return UnknownLocation
	}
}
