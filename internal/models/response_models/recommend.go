package response_models

// HardConstraints are the non-negotiable filters applied during retrieval.
type HardConstraints struct {
	BudgetMin int      `json:"budget_min"`
	BudgetMax int      `json:"budget_max"`
	Avoid     []string `json:"avoid"`
	Locale    string   `json:"locale"`
}

// RecipientProfile is the normalized view of a quiz form, built locally or
// by the remote profile collaborator.
type RecipientProfile struct {
	RecipientSummary string          `json:"recipient_summary"`
	RankedIntents    []string        `json:"ranked_intents"`
	DerivedTags      []string        `json:"derived_tags"`
	HardConstraints  HardConstraints `json:"hard_constraints"`
}

// CandidateProduct is the retrieval-time projection of a catalog product.
type CandidateProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	PriceMin    int      `json:"price_min"`
	PriceMax    int      `json:"price_max"`
	AmazonURL   string   `json:"amazon_url"`
	ImageURL    *string  `json:"image_url"`
}

type RankedItem struct {
	ProductID    string    `json:"product_id"`
	Score        float64   `json:"score"`
	WhyBullets   [3]string `json:"why_bullets"`
	BestForLabel string    `json:"best_for_label"`
}

// RecommendResult is the terminal output of the ranking subsystem: exactly
// three top picks and three alternatives with disjoint product ids.
type RecommendResult struct {
	Top3          []RankedItem `json:"top_3"`
	Alternatives3 []RankedItem `json:"alternatives_3"`
}

// EnrichedItem joins a RankedItem back onto its catalog product for the
// HTTP response.
type EnrichedItem struct {
	CandidateProduct
	Score        float64   `json:"score"`
	WhyBullets   [3]string `json:"why_bullets"`
	BestForLabel string    `json:"best_for_label"`
}

// PipelineStep describes one stage of the pipeline for the "how we picked
// these" panel in the UI.
type PipelineStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type RecommendResponse struct {
	SessionID     string           `json:"session_id"`
	Profile       RecipientProfile `json:"profile"`
	Top3          []EnrichedItem   `json:"top_3"`
	Alternatives3 []EnrichedItem   `json:"alternatives_3"`
	Steps         []PipelineStep   `json:"steps"`
}
