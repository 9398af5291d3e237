package config

import (
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapDefaults(t *testing.T) {
	cfg, err := FromMap(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultProductsURL, cfg.ProductsURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, float32(2), cfg.ItemSpacing)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 360, cfg.Height)
	assert.Equal(t, time.Second, cfg.SavedMessage)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromMapOverrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"VITRINE_PRODUCTS_URL":  "http://127.0.0.1:8081/api/products",
		"VITRINE_ITEM_SPACING":  "3.5",
		"VITRINE_FETCH_TIMEOUT": "250ms",
		"VITRINE_LOG_LEVEL":     "debug",
		"VITRINE_SEED":          "42",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8081/api/products", cfg.ProductsURL)
	assert.Equal(t, float32(3.5), cfg.ItemSpacing)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestFromMapRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "bad url", vars: map[string]string{"VITRINE_PRODUCTS_URL": "not a url"}},
		{name: "zero spacing", vars: map[string]string{"VITRINE_ITEM_SPACING": "0"}},
		{name: "tiny window", vars: map[string]string{"VITRINE_WIDTH": "10"}},
		{name: "unknown level", vars: map[string]string{"VITRINE_LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.vars)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestFromMapParseError(t *testing.T) {
	_, err := FromMap(map[string]string{"VITRINE_FETCH_TIMEOUT": "soon"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}
