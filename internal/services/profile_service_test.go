package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
)

func quizFormFixture() request_models.QuizForm {
	return request_models.QuizForm{
		Occasion:     "birthday",
		Relationship: "friend",
		AgeRange:     "25-34",
		BudgetMin:    20,
		BudgetMax:    50,
		Interests:    []string{"yoga", "coffee", "reading"},
		DailyLife:    []string{"remote worker"},
		AvoidList:    []string{"candles"},
	}
}

func TestBuildLocalProfile(t *testing.T) {
	service := NewProfileService(nil, false)

	profile := service.BuildLocalProfile(quizFormFixture())

	assert.Equal(t, "Gift for friends for birthdays, age 25-34. Interests: yoga, coffee, reading.", profile.RecipientSummary)
	assert.Equal(t, []string{"birthdays", "thoughtful", "practical", "yoga", "coffee"}, profile.RankedIntents)
	assert.Equal(t, []string{"birthday", "friend", "25-34", "yoga", "coffee", "reading", "remote_worker"}, profile.DerivedTags)
	assert.Equal(t, 20, profile.HardConstraints.BudgetMin)
	assert.Equal(t, 50, profile.HardConstraints.BudgetMax)
	assert.Equal(t, []string{"candles"}, profile.HardConstraints.Avoid)
	assert.Equal(t, "US", profile.HardConstraints.Locale)
}

func TestBuildLocalProfileIdempotent(t *testing.T) {
	service := NewProfileService(nil, false)
	form := quizFormFixture()

	first := service.BuildLocalProfile(form)
	second := service.BuildLocalProfile(form)

	assert.Equal(t, first, second)
}

func TestBuildLocalProfileUnknownEnumsPassThrough(t *testing.T) {
	service := NewProfileService(nil, false)
	form := quizFormFixture()
	form.Occasion = "retirement"
	form.Relationship = "mentor"

	profile := service.BuildLocalProfile(form)

	assert.Contains(t, profile.RecipientSummary, "Gift for mentor for retirement")
	assert.Equal(t, "retirement", profile.RankedIntents[0])
}

func TestBuildLocalProfileNoInterests(t *testing.T) {
	service := NewProfileService(nil, false)
	form := quizFormFixture()
	form.Interests = nil

	profile := service.BuildLocalProfile(form)

	assert.Contains(t, profile.RecipientSummary, "Interests: general.")
	assert.Equal(t, []string{"birthdays", "thoughtful", "practical"}, profile.RankedIntents)
}

func TestBuildLocalProfileDedupesTags(t *testing.T) {
	service := NewProfileService(nil, false)
	form := quizFormFixture()
	form.Interests = []string{"cooking", "Cooking"}
	form.DailyLife = []string{"cooking"}

	profile := service.BuildLocalProfile(form)

	count := 0
	for _, tag := range profile.DerivedTags {
		if tag == "cooking" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildProfilePrefersRemoteWhenEnabled(t *testing.T) {
	remote := response_models.RecipientProfile{RecipientSummary: "remote summary"}
	client := &fakeAIClient{profile: remote}
	service := NewProfileService(client, true)

	profile := service.BuildProfile(context.Background(), quizFormFixture())

	assert.Equal(t, "remote summary", profile.RecipientSummary)
}

func TestBuildProfileFallsBackOnRemoteFailure(t *testing.T) {
	client := &fakeAIClient{profileErr: errors.New("upstream timeout")}
	service := NewProfileService(client, true)

	profile := service.BuildProfile(context.Background(), quizFormFixture())

	require.NotEmpty(t, profile.DerivedTags)
	assert.Contains(t, profile.RecipientSummary, "Gift for friends")
}
