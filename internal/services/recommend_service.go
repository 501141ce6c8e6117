package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lib/pq"

	"giftly/internal/models/db_models"
	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	"giftly/internal/repositories"
	mem "giftly/pkg/memcache"
	"giftly/pkg/utils"
)

const (
	minCandidatesToRank = 3
	resultCacheTTL      = time.Hour
)

type RecommendServiceInterface interface {
	// Recommend runs the full pipeline for a normalized quiz form: profile,
	// retrieval, ranking, session persistence and response enrichment.
	Recommend(ctx context.Context, form request_models.QuizForm) (*response_models.RecommendResponse, error)

	GetSession(ctx context.Context, id string) (*db_models.Session, error)
}

type RecommendService struct {
	profileService ProfileServiceInterface
	retrieval      RetrievalServiceInterface
	ranking        RankingServiceInterface
	productRepo    repositories.ProductRepository
	sessionRepo    repositories.SessionRepository
	cache          mem.ResultCacheStore
}

func NewRecommendService(
	profileService ProfileServiceInterface,
	retrieval RetrievalServiceInterface,
	ranking RankingServiceInterface,
	productRepo repositories.ProductRepository,
	sessionRepo repositories.SessionRepository,
	cache mem.ResultCacheStore,
) RecommendServiceInterface {
	return &RecommendService{
		profileService: profileService,
		retrieval:      retrieval,
		ranking:        ranking,
		productRepo:    productRepo,
		sessionRepo:    sessionRepo,
		cache:          cache,
	}
}

func (s *RecommendService) Recommend(ctx context.Context, form request_models.QuizForm) (*response_models.RecommendResponse, error) {
	cacheKey := FormHash(form)

	var profile response_models.RecipientProfile
	var result response_models.RecommendResult
	var method RankMethod
	candidatesCount := 0

	if cached, ok := s.cache.Get(cacheKey); ok {
		profile = cached.Profile
		result = cached.Result
		method = RankMethod(cached.Method)
		candidatesCount = maxCandidates
	} else {
		profile = s.profileService.BuildProfile(ctx, form)

		candidates, err := s.retrieval.GetCandidates(ctx, profile)
		if err != nil {
			return nil, err
		}
		candidatesCount = len(candidates)
		if candidatesCount < minCandidatesToRank {
			return nil, utils.ErrInsufficientCandidates
		}

		result, method = s.ranking.Rank(ctx, form, profile, candidates)
		s.cache.Set(cacheKey, mem.CachedRecommendation{
			Profile: profile,
			Result:  result,
			Method:  string(method),
		}, resultCacheTTL)
	}

	session, err := s.persistSession(ctx, form, profile, result)
	if err != nil {
		log.Printf("session persist failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	top3, alternatives, err := s.enrich(ctx, result)
	if err != nil {
		log.Printf("result enrichment failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RecommendResponse{
		SessionID:     session.ID.String(),
		Profile:       profile,
		Top3:          top3,
		Alternatives3: alternatives,
		Steps:         pipelineSteps(form, candidatesCount, method),
	}, nil
}

func (s *RecommendService) GetSession(ctx context.Context, id string) (*db_models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("session lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

// FormHash is the cache key for a normalized quiz form: the first 16 hex
// characters of the sha256 of its canonical JSON encoding.
func FormHash(form request_models.QuizForm) string {
	encoded, _ := json.Marshal(form)
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])[:16]
}

func (s *RecommendService) persistSession(ctx context.Context, form request_models.QuizForm, profile response_models.RecipientProfile, result response_models.RecommendResult) (*db_models.Session, error) {
	formJSON, err := json.Marshal(form)
	if err != nil {
		return nil, err
	}
	resultJSON, err := json.Marshal(map[string]any{
		"profile": profile,
		"result":  result,
	})
	if err != nil {
		return nil, err
	}

	productIDs := make(pq.StringArray, 0, len(result.Top3)+len(result.Alternatives3))
	for _, item := range result.Top3 {
		productIDs = append(productIDs, item.ProductID)
	}
	for _, item := range result.Alternatives3 {
		productIDs = append(productIDs, item.ProductID)
	}

	session := &db_models.Session{
		FormJSON:   string(formJSON),
		ResultJSON: string(resultJSON),
		ProductIDs: productIDs,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// enrich joins ranked items back onto their catalog rows. Items whose
// product has disappeared since ranking are dropped rather than surfaced as
// holes.
func (s *RecommendService) enrich(ctx context.Context, result response_models.RecommendResult) ([]response_models.EnrichedItem, []response_models.EnrichedItem, error) {
	ids := make([]string, 0, len(result.Top3)+len(result.Alternatives3))
	for _, item := range result.Top3 {
		ids = append(ids, item.ProductID)
	}
	for _, item := range result.Alternatives3 {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]db_models.Product, len(products))
	for _, product := range products {
		byID[product.ID.String()] = product
	}

	join := func(items []response_models.RankedItem) []response_models.EnrichedItem {
		enriched := make([]response_models.EnrichedItem, 0, len(items))
		for _, item := range items {
			product, ok := byID[item.ProductID]
			if !ok {
				continue
			}
			enriched = append(enriched, response_models.EnrichedItem{
				CandidateProduct: toCandidateProduct(product),
				Score:            item.Score,
				WhyBullets:       item.WhyBullets,
				BestForLabel:     item.BestForLabel,
			})
		}
		return enriched
	}
	return join(result.Top3), join(result.Alternatives3), nil
}

func pipelineSteps(form request_models.QuizForm, candidatesCount int, method RankMethod) []response_models.PipelineStep {
	interests := ""
	if len(form.Interests) > 0 {
		sample := form.Interests
		if len(sample) > 3 {
			sample = sample[:3]
		}
		interests = fmt.Sprintf(", interests: %s", strings.Join(sample, ", "))
	}

	rankTitle := "Ranked by match"
	rankDescription := "We scored each product by how well it matches your occasion, interests, and lifestyle."
	if method == RankMethodML {
		rankTitle = "Ranked with our ML model"
		rankDescription = "Our trained model scored each product for relevance to your profile and reordered the list."
	}

	return []response_models.PipelineStep{
		{
			Step:        1,
			Title:       "Built your profile",
			Description: fmt.Sprintf("We used your answers: %s gift for %s, age %s, budget $%d–$%d%s.", form.Occasion, form.Relationship, form.AgeRange, form.BudgetMin, form.BudgetMax, interests),
		},
		{
			Step:        2,
			Title:       "Filtered our catalog",
			Description: fmt.Sprintf("We found %d products that match your budget and preferences.", candidatesCount),
		},
		{
			Step:        3,
			Title:       rankTitle,
			Description: rankDescription,
		},
		{
			Step:        4,
			Title:       "Selected your top 6",
			Description: "We picked the best 3 as top picks and 3 more as alternatives, with short reasons for each.",
		},
	}
}
