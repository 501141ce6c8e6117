package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
)

// MLSpec carries the enum orderings and normalization constants the trained
// model was exported with. The vector layout in ComputeFeatures is a strict
// contract with that training run; SchemaVersion guards against loading a
// spec written for a different layout.
type MLSpec struct {
	SchemaVersion      int      `json:"schema_version"`
	OccasionValues     []string `json:"occasion_values"`
	RelationshipValues []string `json:"relationship_values"`
	AgeRangeValues     []string `json:"age_range_values"`
	DailyLifeValues    []string `json:"daily_life_values"`
	BudgetMaxNorm      float64  `json:"budget_max_norm"`
	PriceMaxNorm       float64  `json:"price_max_norm"`
	MaxInterestCount   float64  `json:"max_interest_count"`
	MaxDailyLifeCount  float64  `json:"max_daily_life_count"`
	MaxTagOverlap      float64  `json:"max_tag_overlap"`
	FeatureNames       []string `json:"feature_names"`
	CategoryList       []string `json:"category_list"`
}

const mlSpecSchemaVersion = 1

func LoadMLSpec(path string) (*MLSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feature spec: %w", err)
	}
	var spec MLSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse feature spec: %w", err)
	}
	if spec.SchemaVersion != mlSpecSchemaVersion {
		return nil, fmt.Errorf("feature spec schema version %d, want %d", spec.SchemaVersion, mlSpecSchemaVersion)
	}
	return &spec, nil
}

// FeatureCount is the vector width ComputeFeatures produces for this spec.
func (s *MLSpec) FeatureCount() int {
	return len(s.OccasionValues) + len(s.RelationshipValues) + len(s.AgeRangeValues) + 9
}

// ComputeFeatures encodes a (form, product) pair into the model's input
// vector. The encoding must stay byte-for-byte identical to the training
// pipeline's: one-hots for occasion/relationship/age, clamped budget and
// count norms, category index, clamped price norms, tag overlap norm, and a
// price-in-budget flag, in that order.
func ComputeFeatures(form request_models.QuizForm, product response_models.CandidateProduct, spec *MLSpec) []float64 {
	features := make([]float64, 0, spec.FeatureCount())
	features = append(features, oneHot(spec.OccasionValues, form.Occasion)...)
	features = append(features, oneHot(spec.RelationshipValues, form.Relationship)...)
	features = append(features, oneHot(spec.AgeRangeValues, form.AgeRange)...)

	features = append(features,
		clampNorm(float64(form.BudgetMin), spec.BudgetMaxNorm),
		clampNorm(float64(form.BudgetMax), spec.BudgetMaxNorm),
		clampNorm(float64(len(form.Interests)), spec.MaxInterestCount),
		clampNorm(float64(len(form.DailyLife)), spec.MaxDailyLifeCount),
	)

	overlap := tagOverlap(formTags(form), product.Tags)
	priceInBudget := 0.0
	if product.PriceMax >= form.BudgetMin && product.PriceMin <= form.BudgetMax {
		priceInBudget = 1
	}
	features = append(features,
		float64(categoryToID(product.Category, spec.CategoryList)),
		clampNorm(float64(product.PriceMin), spec.PriceMaxNorm),
		clampNorm(float64(product.PriceMax), spec.PriceMaxNorm),
		clampNorm(float64(overlap), spec.MaxTagOverlap),
		priceInBudget,
	)
	return features
}

func oneHot(values []string, value string) []float64 {
	encoded := make([]float64, len(values))
	for i, v := range values {
		if v == value {
			encoded[i] = 1
			break
		}
	}
	return encoded
}

func clampNorm(value, norm float64) float64 {
	if norm <= 0 {
		return 0
	}
	scaled := value / norm
	if scaled > 1 {
		return 1
	}
	return scaled
}

// categoryToID maps the product's first category segment found in the feature
// spec's category list to its index. Zero means both "first category" and "no
// match"; the training data shares that ambiguity.
func categoryToID(category string, categoryList []string) int {
	for _, part := range strings.Split(category, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		for i, known := range categoryList {
			if known == part {
				return i
			}
		}
	}
	return 0
}

// formTags recomputes the profile's derived tags straight from the form so
// vectorization does not depend on which profile path built the caller's
// profile.
func formTags(form request_models.QuizForm) []string {
	raw := make([]string, 0, 3+len(form.Interests)+len(form.DailyLife))
	raw = append(raw, form.Occasion, form.Relationship, form.AgeRange)
	raw = append(raw, form.Interests...)
	raw = append(raw, form.DailyLife...)

	seen := make(map[string]struct{}, len(raw))
	tags := make([]string, 0, len(raw))
	for _, r := range raw {
		tag := tagify(r)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// tagOverlap counts profile tags that substring-match any product tag in
// either direction.
func tagOverlap(profileTags, productTags []string) int {
	lowered := make([]string, len(productTags))
	for i, t := range productTags {
		lowered[i] = strings.ToLower(t)
	}
	count := 0
	for _, tag := range profileTags {
		for _, pt := range lowered {
			if strings.Contains(tag, pt) || strings.Contains(pt, tag) {
				count++
				break
			}
		}
	}
	return count
}
