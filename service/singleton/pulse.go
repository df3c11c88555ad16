package singleton

import (
	"sort"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/davidmsteixeira-ops/aurem-private-workspace/model"
)

const pulseCacheKey = "admin:pulse"

var pulseSF singleflight.Group

// PulseTopic is one cross-client theme on the admin intelligence page:
// a decision category with the clients currently active in it.
type PulseTopic struct {
	Category string   `json:"category"`
	Count    int      `json:"count"`
	Clients  []string `json:"clients"`
}

// GetPulse returns the cross-client topic aggregation. Computation is
// deduplicated with singleflight and cached; the cron job refreshes it
// in the background.
func GetPulse() ([]PulseTopic, error) {
	if v, ok := Cache.Get(pulseCacheKey); ok {
		return v.([]PulseTopic), nil
	}

	v, err, _ := pulseSF.Do(pulseCacheKey, func() (interface{}, error) {
		return computePulse()
	})
	if err != nil {
		return nil, err
	}

	topics := v.([]PulseTopic)
	Cache.Set(pulseCacheKey, topics, cache.DefaultExpiration)
	return topics, nil
}

// RefreshPulse recomputes the aggregation and replaces the cache entry.
func RefreshPulse() error {
	topics, err := computePulse()
	if err != nil {
		return err
	}
	Cache.Set(pulseCacheKey, topics, cache.DefaultExpiration)
	return nil
}

func computePulse() ([]PulseTopic, error) {
	var decisions []model.Decision
	if err := DB.Find(&decisions).Error; err != nil {
		return nil, err
	}
	var clients []model.Client
	if err := DB.Find(&clients).Error; err != nil {
		return nil, err
	}

	clientNames := make(map[uint64]string, len(clients))
	for _, c := range clients {
		clientNames[c.ID] = c.Name
	}

	return AggregatePulse(decisions, clientNames), nil
}

// AggregatePulse groups decisions by category, counting occurrences
// and collecting distinct client names. Topics are sorted by count
// descending, ties by category name.
func AggregatePulse(decisions []model.Decision, clientNames map[uint64]string) []PulseTopic {
	type bucket struct {
		count   int
		clients map[string]bool
	}
	buckets := make(map[string]*bucket)

	for _, d := range decisions {
		if d.Category == "" {
			continue
		}
		b, ok := buckets[d.Category]
		if !ok {
			b = &bucket{clients: make(map[string]bool)}
			buckets[d.Category] = b
		}
		b.count++
		if name := clientNames[d.ClientID]; name != "" {
			b.clients[name] = true
		}
	}

	topics := make([]PulseTopic, 0, len(buckets))
	for category, b := range buckets {
		names := make([]string, 0, len(b.clients))
		for name := range b.clients {
			names = append(names, name)
		}
		sort.Strings(names)
		topics = append(topics, PulseTopic{
			Category: category,
			Count:    b.count,
			Clients:  names,
		})
	}

	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topics[i].Category < topics[j].Category
	})
	return topics
}
