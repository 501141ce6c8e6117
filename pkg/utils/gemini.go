package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiRecommendClient implements RecommendAIInterface on Gemini's free
// tier. ResponseMIMEType forces JSON-only output so no brace-matching
// cleanup is needed.
type GeminiRecommendClient struct {
	client *genai.Client
	model  string
}

func NewGeminiRecommendClient(apiKey, model string) (RecommendAIInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecommendClient{client: client, model: model}, nil
}

func (g *GeminiRecommendClient) generateJSON(ctx context.Context, prompt string, out interface{}) error {
	m := g.client.GenerativeModel(g.model)
	m.ResponseMIMEType = "application/json"
	m.SetTopP(0.5)
	m.SetTopK(20)
	m.SetTemperature(0.1)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("gemini: no content")
	}
	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return fmt.Errorf("gemini: not valid json")
	}
	return json.Unmarshal([]byte(content), out)
}

func (g *GeminiRecommendClient) BuildProfile(ctx context.Context, form request_models.QuizForm) (response_models.RecipientProfile, error) {
	prompt := profilePrompt(form) + `
Return JSON only with keys: recipient_summary (string), ranked_intents (string array), derived_tags (string array), hard_constraints {budget_min, budget_max, avoid (string array), locale}.`

	var profile response_models.RecipientProfile
	if err := g.generateJSON(ctx, prompt, &profile); err != nil {
		return response_models.RecipientProfile{}, err
	}
	if profile.HardConstraints.Locale == "" {
		profile.HardConstraints.Locale = "US"
	}
	return profile, nil
}

func (g *GeminiRecommendClient) Rerank(ctx context.Context, profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) (response_models.RecommendResult, error) {
	prompt := rerankPrompt(profile, candidates) + "\nReturn JSON only. No comments, no markdown."

	var result response_models.RecommendResult
	if err := g.generateJSON(ctx, prompt, &result); err != nil {
		return response_models.RecommendResult{}, err
	}

	invalid := invalidIDs(result, candidates)
	if len(invalid) == 0 && wellFormed(result) {
		return result, nil
	}

	log.Printf("gemini rerank returned invalid product ids %v, retrying", invalid)
	strictPrompt := fmt.Sprintf("%s\n\nCRITICAL: You used invalid product_ids: %v. You may ONLY use product_id values from the list above. Try again.", prompt, invalid)

	var retry response_models.RecommendResult
	if err := g.generateJSON(ctx, strictPrompt, &retry); err == nil {
		if len(invalidIDs(retry, candidates)) == 0 && wellFormed(retry) {
			return retry, nil
		}
	}

	log.Printf("gemini rerank retry failed, using generic fallback")
	return genericRerankFallback(profile, candidates), nil
}
