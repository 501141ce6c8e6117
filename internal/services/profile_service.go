package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	"giftly/pkg/utils"
)

// Human-readable labels for quiz enums. Unknown values pass through raw so
// a future enum value never breaks profile building.
var occasionLabels = map[string]string{
	"birthday":     "birthdays",
	"anniversary":  "anniversaries",
	"housewarming": "housewarmings",
	"graduation":   "graduation",
	"thank-you":    "thank-you gifts",
	"holiday":      "the holidays",
	"baby-shower":  "baby showers",
	"other":        "gift-giving",
}

var relationshipLabels = map[string]string{
	"friend":   "friends",
	"partner":  "partners",
	"parent":   "parents",
	"coworker": "coworkers",
	"sibling":  "siblings",
	"child":    "kids",
	"other":    "recipients",
}

func occasionLabel(occasion string) string {
	if label, ok := occasionLabels[occasion]; ok {
		return label
	}
	return occasion
}

func relationshipLabel(relationship string) string {
	if label, ok := relationshipLabels[relationship]; ok {
		return label
	}
	return relationship
}

var whitespaceRe = regexp.MustCompile(`\s+`)

func tagify(raw string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "_")
}

type ProfileServiceInterface interface {
	// BuildProfile resolves the configured profile source: the remote
	// collaborator when enabled, the local builder otherwise (and as the
	// fallback when the remote call fails).
	BuildProfile(ctx context.Context, form request_models.QuizForm) response_models.RecipientProfile

	// BuildLocalProfile is the pure local path, exposed for direct use and
	// testing.
	BuildLocalProfile(form request_models.QuizForm) response_models.RecipientProfile
}

type ProfileService struct {
	aiClient utils.RecommendAIInterface
	useLLM   bool
}

func NewProfileService(aiClient utils.RecommendAIInterface, useLLM bool) ProfileServiceInterface {
	return &ProfileService{
		aiClient: aiClient,
		useLLM:   useLLM,
	}
}

func (p *ProfileService) BuildProfile(ctx context.Context, form request_models.QuizForm) response_models.RecipientProfile {
	if p.useLLM && p.aiClient != nil {
		profile, err := p.aiClient.BuildProfile(ctx, form)
		if err == nil {
			return profile
		}
		log.Printf("remote profile build failed, using local profile: %v", err)
	}
	return p.BuildLocalProfile(form)
}

func (p *ProfileService) BuildLocalProfile(form request_models.QuizForm) response_models.RecipientProfile {
	occLabel := occasionLabel(form.Occasion)
	relLabel := relationshipLabel(form.Relationship)

	raw := make([]string, 0, 3+len(form.Interests)+len(form.DailyLife))
	raw = append(raw, form.Occasion, form.Relationship, form.AgeRange)
	raw = append(raw, form.Interests...)
	raw = append(raw, form.DailyLife...)

	seen := make(map[string]struct{}, len(raw))
	derivedTags := make([]string, 0, len(raw))
	for _, r := range raw {
		tag := tagify(r)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		derivedTags = append(derivedTags, tag)
	}

	intents := []string{occLabel, "thoughtful", "practical"}
	for i, interest := range form.Interests {
		if i >= 2 {
			break
		}
		intents = append(intents, interest)
	}
	rankedIntents := make([]string, 0, len(intents))
	for _, intent := range intents {
		if strings.TrimSpace(intent) != "" {
			rankedIntents = append(rankedIntents, intent)
		}
	}

	interests := strings.Join(form.Interests, ", ")
	if interests == "" {
		interests = "general"
	}

	return response_models.RecipientProfile{
		RecipientSummary: fmt.Sprintf("Gift for %s for %s, age %s. Interests: %s.", relLabel, occLabel, form.AgeRange, interests),
		RankedIntents:    rankedIntents,
		DerivedTags:      derivedTags,
		HardConstraints: response_models.HardConstraints{
			BudgetMin: form.BudgetMin,
			BudgetMax: form.BudgetMax,
			Avoid:     form.AvoidList,
			Locale:    "US",
		},
	}
}
