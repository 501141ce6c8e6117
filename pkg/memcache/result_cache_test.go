package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftly/internal/models/response_models"
)

func TestResultCacheSetGet(t *testing.T) {
	cache := NewResultCache()
	value := CachedRecommendation{
		Profile: response_models.RecipientProfile{RecipientSummary: "summary"},
		Method:  "local",
	}

	cache.Set("abc123", value, time.Minute)

	got, ok := cache.Get("abc123")
	require.True(t, ok)
	assert.Equal(t, "summary", got.Profile.RecipientSummary)
	assert.Equal(t, "local", got.Method)
}

func TestResultCacheMiss(t *testing.T) {
	cache := NewResultCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)
}

func TestResultCacheExpiry(t *testing.T) {
	cache := NewResultCache()
	cache.Set("abc123", CachedRecommendation{}, -time.Second)

	_, ok := cache.Get("abc123")
	assert.False(t, ok, "expired entries are not served")
}
