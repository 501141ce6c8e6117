package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	"giftly/pkg/utils"
)

const rerankInputSize = 6

// RankMethod names the strategy that shaped a result.
type RankMethod string

const (
	RankMethodLLM   RankMethod = "llm"
	RankMethodML    RankMethod = "ml"
	RankMethodLocal RankMethod = "local"
)

// RankingConfig gates the optional ranking enhancements. Selection is
// static per process; only failure triggers a different path at runtime.
type RankingConfig struct {
	UseLLM          bool
	UseML           bool
	LLMProvider     string
	ModelPath       string
	FeatureSpecPath string
}

type RankingServiceInterface interface {
	// Rank runs exactly one ranking strategy over the candidates. Failures
	// in an enabled enhancement degrade to the next simpler path; the local
	// path cannot fail.
	Rank(ctx context.Context, form request_models.QuizForm, profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) (response_models.RecommendResult, RankMethod)
}

type RankingService struct {
	config   RankingConfig
	aiClient utils.RecommendAIInterface
	scorer   ModelScorer
	spec     *MLSpec
}

func NewRankingService(config RankingConfig, aiClient utils.RecommendAIInterface) RankingServiceInterface {
	service := &RankingService{
		config:   config,
		aiClient: aiClient,
	}
	if config.UseML {
		spec, err := LoadMLSpec(config.FeatureSpecPath)
		if err != nil {
			log.Printf("ml feature spec unavailable, ml ranking disabled: %v", err)
			return service
		}
		scorer, err := LoadLogisticModel(config.ModelPath)
		if err != nil {
			log.Printf("ml model unavailable, ml ranking disabled: %v", err)
			return service
		}
		service.spec = spec
		service.scorer = scorer
	}
	return service
}

func (r *RankingService) Rank(ctx context.Context, form request_models.QuizForm, profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) (response_models.RecommendResult, RankMethod) {
	if r.config.UseLLM && r.aiClient != nil {
		result, err := r.aiClient.Rerank(ctx, profile, candidates)
		if err == nil {
			return result, RankMethodLLM
		}
		log.Printf("llm rerank failed, falling back: %v", err)
	}

	if r.config.UseML && r.scorer != nil && r.spec != nil {
		reordered, err := r.rankByModel(form, candidates)
		if err != nil {
			log.Printf("ml ranking failed, falling back to keyword order: %v", err)
		} else {
			return RerankLocal(reordered, form), RankMethodML
		}
	}

	return RerankLocal(candidates, form), RankMethodLocal
}

// rankByModel reorders candidates by model score, best first. Ties keep the
// incoming keyword order.
func (r *RankingService) rankByModel(form request_models.QuizForm, candidates []response_models.CandidateProduct) ([]response_models.CandidateProduct, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates to score")
	}
	features := make([][]float64, len(candidates))
	for i, candidate := range candidates {
		features[i] = ComputeFeatures(form, candidate, r.spec)
	}
	scores, err := r.scorer.Score(features)
	if err != nil {
		return nil, err
	}
	if len(scores) != len(candidates) {
		return nil, fmt.Errorf("model returned %d scores for %d candidates", len(scores), len(candidates))
	}

	ordered := make([]response_models.CandidateProduct, len(candidates))
	copy(ordered, candidates)
	indexed := make([]int, len(candidates))
	for i := range indexed {
		indexed[i] = i
	}
	sort.SliceStable(indexed, func(a, b int) bool {
		return scores[indexed[a]] > scores[indexed[b]]
	})
	for i, idx := range indexed {
		ordered[i] = candidates[idx]
	}
	return ordered, nil
}

// RerankLocal shapes the already-sorted candidates into the final result
// without reordering them: the first three get scores 10, 9, 8 with bullets
// built from the form, the next three get 7, 6, 5 with generic bullets. It
// never fails and is the fallback of last resort for the whole subsystem.
func RerankLocal(candidates []response_models.CandidateProduct, form request_models.QuizForm) response_models.RecommendResult {
	top6 := candidates
	if len(top6) > rerankInputSize {
		top6 = top6[:rerankInputSize]
	}
	occLabel := occasionLabel(form.Occasion)
	relLabel := relationshipLabel(form.Relationship)

	interestBullet := "Widely liked category."
	if len(form.Interests) > 0 {
		sample := form.Interests
		if len(sample) > 2 {
			sample = sample[:2]
		}
		interestBullet = fmt.Sprintf("Matches interests like %s.", strings.Join(sample, ", "))
	}

	result := response_models.RecommendResult{
		Top3:          []response_models.RankedItem{},
		Alternatives3: []response_models.RankedItem{},
	}
	for i, candidate := range top6 {
		if i < 3 {
			result.Top3 = append(result.Top3, response_models.RankedItem{
				ProductID: candidate.ID,
				Score:     float64(10 - i),
				WhyBullets: [3]string{
					fmt.Sprintf("Fits your $%d–$%d budget.", form.BudgetMin, form.BudgetMax),
					interestBullet,
					fmt.Sprintf("Solid pick for %s.", occLabel),
				},
				BestForLabel: fmt.Sprintf("Best for %s — %s", relLabel, occLabel),
			})
			continue
		}
		result.Alternatives3 = append(result.Alternatives3, response_models.RankedItem{
			ProductID: candidate.ID,
			Score:     float64(10 - i),
			WhyBullets: [3]string{
				"Within your budget.",
				"Relevant to their lifestyle.",
				"Thoughtful alternative.",
			},
			BestForLabel: "More ideas",
		})
	}
	return result
}
