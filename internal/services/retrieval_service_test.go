package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftly/internal/models/db_models"
	"giftly/internal/models/response_models"
	"giftly/pkg/utils"
)

func localProfile(t *testing.T) response_models.RecipientProfile {
	t.Helper()
	return NewProfileService(nil, false).BuildLocalProfile(quizFormFixture())
}

func TestGetCandidatesBudgetOverlapInvariant(t *testing.T) {
	repo := &fakeProductRepo{products: []db_models.Product{
		productFixture("Yoga Mat", "Fitness", "yoga|wellness", 25, 40),
		productFixture("Espresso Maker", "Kitchen", "coffee|espresso", 80, 120),
		productFixture("Pour Over Kit", "Kitchen", "coffee|brewing", 30, 45),
	}}
	service := NewRetrievalService(repo)
	profile := localProfile(t)

	candidates, err := service.GetCandidates(context.Background(), profile)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	for _, c := range candidates {
		assert.GreaterOrEqual(t, c.PriceMax, profile.HardConstraints.BudgetMin, "candidate %s below budget", c.Title)
		assert.LessOrEqual(t, c.PriceMin, profile.HardConstraints.BudgetMax, "candidate %s above budget", c.Title)
	}
}

func TestGetCandidatesCapAndUniqueness(t *testing.T) {
	repo := &fakeProductRepo{}
	for i := 0; i < 50; i++ {
		repo.products = append(repo.products, productFixture(fmt.Sprintf("Yoga Accessory %d", i), "Fitness", "yoga", 20, 45))
	}
	service := NewRetrievalService(repo)

	candidates, err := service.GetCandidates(context.Background(), localProfile(t))
	require.NoError(t, err)

	assert.LessOrEqual(t, len(candidates), 30)
	seen := map[string]struct{}{}
	for _, c := range candidates {
		_, dup := seen[c.ID]
		assert.False(t, dup, "duplicate candidate id %s", c.ID)
		seen[c.ID] = struct{}{}
	}
}

// A sparse catalog triggers the budget-only fallback query, so products the
// keyword terms never touch still come back.
func TestGetCandidatesFallbackMergesBudgetOnlyRows(t *testing.T) {
	repo := &fakeProductRepo{products: []db_models.Product{
		productFixture("Yoga Mat", "Fitness", "yoga|wellness", 25, 40),
		productFixture("Ceramic Vase", "Home", "decor|vase", 22, 35),
	}}
	service := NewRetrievalService(repo)

	candidates, err := service.GetCandidates(context.Background(), localProfile(t))
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	titles := []string{candidates[0].Title, candidates[1].Title}
	assert.Contains(t, titles, "Ceramic Vase")
	// The keyword match must still outrank the fallback row.
	assert.Equal(t, "Yoga Mat", candidates[0].Title)
}

func TestGetCandidatesBabyShowerScenario(t *testing.T) {
	form := quizFormFixture()
	form.Occasion = "baby-shower"
	form.Relationship = "coworker"
	form.BudgetMin = 20
	form.BudgetMax = 30
	form.Interests = nil
	form.DailyLife = nil
	form.AvoidList = nil
	profile := NewProfileService(nil, false).BuildLocalProfile(form)

	repo := &fakeProductRepo{products: []db_models.Product{
		productFixture("Baby Onesie Set", "Baby", "baby|newborn|shower|birthday", 25, 42),
		productFixture("Desk Organizer", "Office", "office|desk", 20, 28),
	}}
	service := NewRetrievalService(repo)

	candidates, err := service.GetCandidates(context.Background(), profile)
	require.NoError(t, err)

	var found bool
	for _, c := range candidates {
		if c.Title == "Baby Onesie Set" {
			found = true
		}
	}
	assert.True(t, found, "budget-overlapping baby product must be retrieved")
	// Overlap, not containment: price_max 42 above budget_max 30 is fine.
	assert.Equal(t, "Baby Onesie Set", candidates[0].Title)
}

func TestGetCandidatesRepoError(t *testing.T) {
	repo := &fakeProductRepo{failWith: errors.New("connection refused")}
	service := NewRetrievalService(repo)

	_, err := service.GetCandidates(context.Background(), localProfile(t))
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestSearchTerms(t *testing.T) {
	terms := searchTerms([]string{"coworker", "yoga", "25-34", "ab", "gift"})

	assert.NotContains(t, terms, "coworker")
	assert.NotContains(t, terms, "gift")
	assert.NotContains(t, terms, "25-34")
	assert.NotContains(t, terms, "ab")
	assert.Contains(t, terms, "yoga")
	assert.Contains(t, terms, "wellness")
	assert.LessOrEqual(t, len(terms), 15)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"yoga", "wellness"}, splitTags("Yoga| wellness |"))
	assert.Empty(t, splitTags(""))
}
