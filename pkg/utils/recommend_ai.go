package utils

import (
	"context"
	"fmt"
	"strings"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
)

// RecommendAIInterface is the remote-LLM collaborator: profile building from
// a quiz form and candidate reranking. Implementations must only return
// product ids drawn from the candidate list; on schema or id violations they
// retry once and then fall back to a deterministic result rather than
// surfacing an error shape problem to the caller.
type RecommendAIInterface interface {
	BuildProfile(ctx context.Context, form request_models.QuizForm) (response_models.RecipientProfile, error)
	Rerank(ctx context.Context, profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) (response_models.RecommendResult, error)
}

const rerankCandidateCap = 30

func profilePrompt(form request_models.QuizForm) string {
	return fmt.Sprintf(`Given this gift quiz, output a structured recipient profile as JSON.
Occasion: %s. Relationship: %s. Age: %s.
Budget: $%d-$%d. Interests: %s.
Daily life: %s. Avoid: %s. Notes: %s.
Output: recipient_summary (1 sentence), ranked_intents (e.g. practical, sentimental, fun), derived_tags (searchable tags), hard_constraints (budget_min, budget_max, avoid array, locale "US").`,
		form.Occasion, form.Relationship, form.AgeRange,
		form.BudgetMin, form.BudgetMax, strings.Join(form.Interests, ", "),
		strings.Join(form.DailyLife, ", "), strings.Join(form.AvoidList, ", "), notesOrNone(form.Notes))
}

func notesOrNone(notes string) string {
	if notes == "" {
		return "none"
	}
	return notes
}

func candidateListForPrompt(candidates []response_models.CandidateProduct) string {
	var b strings.Builder
	for i, c := range candidates {
		if i >= rerankCandidateCap {
			break
		}
		fmt.Fprintf(&b, "id: %s | %s | category: %s | tags: %s\n", c.ID, c.Title, c.Category, strings.Join(c.Tags, ", "))
	}
	return b.String()
}

func rerankPrompt(profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) string {
	avoid := strings.Join(profile.HardConstraints.Avoid, ", ")
	if avoid == "" {
		avoid = "none"
	}
	return fmt.Sprintf(`You are a gift recommender. You MUST only use product_id from this list (no other IDs):
%s
Recipient: %s. Intents: %s. Tags: %s.
Budget: $%d-$%d. Avoid: %s.

Output JSON with:
- top_3: array of 3 items, each { product_id, score (1-10), why_bullets [3 short bullets], best_for_label }
- alternatives_3: same shape, 3 different products from the list.
Rules: product_id must be exactly one of the ids above. Keep bullets short. No medical claims. No unsafe advice.`,
		candidateListForPrompt(candidates),
		profile.RecipientSummary, strings.Join(profile.RankedIntents, ", "), strings.Join(profile.DerivedTags, ", "),
		profile.HardConstraints.BudgetMin, profile.HardConstraints.BudgetMax, avoid)
}

// invalidIDs returns the product ids in result that are not in the candidate
// id set.
func invalidIDs(result response_models.RecommendResult, candidates []response_models.CandidateProduct) []string {
	valid := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		valid[c.ID] = struct{}{}
	}
	var bad []string
	for _, item := range append(append([]response_models.RankedItem{}, result.Top3...), result.Alternatives3...) {
		if _, ok := valid[item.ProductID]; !ok {
			bad = append(bad, item.ProductID)
		}
	}
	return bad
}

func wellFormed(result response_models.RecommendResult) bool {
	return len(result.Top3) == 3 && len(result.Alternatives3) == 3
}

// genericRerankFallback keeps the first three / next three candidates with
// generic copy. Used when the remote reranker keeps returning ids outside
// the candidate set.
func genericRerankFallback(profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) response_models.RecommendResult {
	bestFor := "This recipient"
	if len(profile.RankedIntents) > 0 {
		bestFor = profile.RankedIntents[0]
	}

	var result response_models.RecommendResult
	for i, c := range candidates {
		switch {
		case i < 3:
			result.Top3 = append(result.Top3, response_models.RankedItem{
				ProductID:    c.ID,
				Score:        float64(10 - i),
				WhyBullets:   [3]string{"Matches interests.", "Fits budget.", "Thoughtful choice."},
				BestForLabel: bestFor,
			})
		case i < 6:
			result.Alternatives3 = append(result.Alternatives3, response_models.RankedItem{
				ProductID:    c.ID,
				Score:        float64(10 - i),
				WhyBullets:   [3]string{"Good alternative.", "Within budget.", "Relevant category."},
				BestForLabel: "Alternative pick",
			})
		}
	}
	return result
}
