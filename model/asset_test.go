package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetSizeHuman(t *testing.T) {
	cases := []struct {
		bytes uint64
		want  string
	}{
		{0, "0B"},
		{512, "512B"},
		{2048, "2K"},
		{5 * 1024 * 1024, "5M"},
	}

	for _, c := range cases {
		a := Asset{SizeBytes: c.bytes}
		assert.Equal(t, c.want, a.SizeHuman())
	}
}

func TestGroupAssetsByCategory(t *testing.T) {
	mk := func(id uint64, category, name string) Asset {
		a := Asset{Category: category, Name: name}
		a.ID = id
		return a
	}

	assets := []Asset{
		mk(1, "Logos", "primary.svg"),
		mk(2, "Guidelines", "voice.pdf"),
		mk(3, "Logos", "mono.svg"),
	}

	grouped := GroupAssetsByCategory(assets)
	assert.Len(t, grouped, 2)
	assert.Equal(t, "Logos", grouped[0].Category)
	assert.Len(t, grouped[0].Assets, 2)
	assert.Equal(t, "Guidelines", grouped[1].Category)
}
