package services

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"

	"giftly/internal/models/db_models"
	"giftly/internal/models/response_models"
	"giftly/internal/repositories"
	"giftly/pkg/textmatch"
	"giftly/pkg/utils"
)

const (
	maxCandidates      = 30
	maxSearchTerms     = 15
	primaryFetchLimit  = 200
	fallbackFetchLimit = 100
	minPrimaryRows     = 10
)

// noiseTags are profile tags too generic to narrow a catalog query.
var noiseTags = map[string]struct{}{
	"friend":   {},
	"partner":  {},
	"coworker": {},
	"other":    {},
	"gift":     {},
}

// ageRangeRe matches the quiz age buckets ("25-34", "55+", "13") so they
// never leak into the text search.
var ageRangeRe = regexp.MustCompile(`^\d+(-\d+)?\+?$`)

type RetrievalServiceInterface interface {
	// GetCandidates returns up to 30 scored catalog products matching the
	// profile's budget and derived tags, best matches first.
	GetCandidates(ctx context.Context, profile response_models.RecipientProfile) ([]response_models.CandidateProduct, error)
}

type RetrievalService struct {
	productRepo repositories.ProductRepository
}

func NewRetrievalService(productRepo repositories.ProductRepository) RetrievalServiceInterface {
	return &RetrievalService{
		productRepo: productRepo,
	}
}

func (r *RetrievalService) GetCandidates(ctx context.Context, profile response_models.RecipientProfile) ([]response_models.CandidateProduct, error) {
	terms := searchTerms(profile.DerivedTags)

	rows, err := r.productRepo.FindActiveProducts(ctx, repositories.ProductFilter{
		Locale:    profile.HardConstraints.Locale,
		BudgetMin: profile.HardConstraints.BudgetMin,
		BudgetMax: profile.HardConstraints.BudgetMax,
		Terms:     terms,
		Limit:     primaryFetchLimit,
	})
	if err != nil {
		log.Printf("candidate query failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// A thin result usually means the tags were too specific for the
	// catalog; widen to a budget-only query and merge.
	if len(rows) < minPrimaryRows {
		fallback, err := r.productRepo.FindActiveProducts(ctx, repositories.ProductFilter{
			Locale:    profile.HardConstraints.Locale,
			BudgetMin: profile.HardConstraints.BudgetMin,
			BudgetMax: profile.HardConstraints.BudgetMax,
			Limit:     fallbackFetchLimit,
		})
		if err != nil {
			log.Printf("fallback candidate query failed: %v", err)
			return nil, utils.ErrDatabaseError
		}
		seen := make(map[string]struct{}, len(rows))
		for _, row := range rows {
			seen[row.ID.String()] = struct{}{}
		}
		for _, row := range fallback {
			if _, ok := seen[row.ID.String()]; ok {
				continue
			}
			rows = append(rows, row)
		}
	}

	scored := make([]struct {
		product db_models.Product
		score   int
	}, len(rows))
	for i, row := range rows {
		scored[i].product = row
		scored[i].score = matchProduct(row, profile)
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxCandidates {
		scored = scored[:maxCandidates]
	}

	candidates := make([]response_models.CandidateProduct, len(scored))
	for i, s := range scored {
		candidates[i] = toCandidateProduct(s.product)
	}
	return candidates, nil
}

// searchTerms expands the profile tags through the synonym table and keeps
// only the ones worth sending to the database.
func searchTerms(derivedTags []string) []string {
	core := make([]string, 0, len(derivedTags))
	for _, tag := range derivedTags {
		if _, noisy := noiseTags[tag]; noisy {
			continue
		}
		core = append(core, tag)
	}

	terms := make([]string, 0, maxSearchTerms)
	for _, term := range textmatch.ExpandTerms(core) {
		if len(term) <= 2 {
			continue
		}
		if ageRangeRe.MatchString(term) {
			continue
		}
		if _, noisy := noiseTags[term]; noisy {
			continue
		}
		terms = append(terms, term)
		if len(terms) == maxSearchTerms {
			break
		}
	}
	return terms
}

// matchProduct scores a product against the profile's tags and top intents.
func matchProduct(product db_models.Product, profile response_models.RecipientProfile) int {
	productTags := splitTags(product.Tags)

	score := 0
	for _, tag := range profile.DerivedTags {
		best := 0
		for _, productTag := range productTags {
			if s := textmatch.MatchScore(tag, productTag); s > best {
				best = s
			}
		}
		score += best

		if textmatch.FuzzyMatch(tag, product.Title) {
			score += 3
		}
		if textmatch.FuzzyMatch(tag, product.Category) {
			score += 3
		}
		if textmatch.FuzzyMatch(tag, product.Description) {
			score++
		}
	}

	intents := profile.RankedIntents
	if len(intents) > 3 {
		intents = intents[:3]
	}
	for _, intent := range intents {
		if textmatch.FuzzyMatch(intent, product.Title) || textmatch.FuzzyMatch(intent, product.Category) {
			score += 2
		}
		for _, productTag := range productTags {
			if textmatch.FuzzyMatch(intent, productTag) {
				score++
			}
		}
	}
	return score
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, "|")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func toCandidateProduct(product db_models.Product) response_models.CandidateProduct {
	return response_models.CandidateProduct{
		ID:          product.ID.String(),
		Title:       product.Title,
		Description: product.Description,
		Category:    product.Category,
		Tags:        splitTags(product.Tags),
		PriceMin:    product.PriceMin,
		PriceMax:    product.PriceMax,
		AmazonURL:   product.AmazonURL,
		ImageURL:    product.ImageURL,
	}
}
