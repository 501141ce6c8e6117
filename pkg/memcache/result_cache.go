package mem

import (
	"sync"
	"time"

	"giftly/internal/models/response_models"
)

// CachedRecommendation is one memoized recommendation keyed by the quiz
// form hash.
type CachedRecommendation struct {
	Profile response_models.RecipientProfile
	Result  response_models.RecommendResult
	Method  string
}

type ResultCacheStore interface {
	Set(formHash string, value CachedRecommendation, ttl time.Duration)
	Get(formHash string) (CachedRecommendation, bool)
}

type entry struct {
	value     CachedRecommendation
	expiresAt time.Time
}

type ResultCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewResultCache() *ResultCache {
	return &ResultCache{
		data: make(map[string]entry),
	}
}

func (s *ResultCache) Set(formHash string, value CachedRecommendation, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[formHash] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ResultCache) Get(formHash string) (CachedRecommendation, bool) {
	s.mu.RLock()
	e, ok := s.data[formHash]
	s.mu.RUnlock()

	if !ok {
		return CachedRecommendation{}, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, formHash) // cleanup expired
		s.mu.Unlock()
		return CachedRecommendation{}, false
	}
	return e.value, true
}
