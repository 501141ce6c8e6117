package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"giftly/internal/models/request_models"
	"giftly/internal/models/response_models"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const openAIModel = openai.GPT4oMini

// OpenAIRecommendClient implements RecommendAIInterface with structured
// JSON-schema outputs so the model cannot drift from the result shape.
type OpenAIRecommendClient struct {
	client *openai.Client
}

func NewOpenAIRecommendClient(apiKey string) (RecommendAIInterface, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is not set")
	}
	return &OpenAIRecommendClient{client: openai.NewClient(apiKey)}, nil
}

var profileSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"recipient_summary": {Type: jsonschema.String},
		"ranked_intents":    {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
		"derived_tags":      {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
		"hard_constraints": {
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"budget_min": {Type: jsonschema.Number},
				"budget_max": {Type: jsonschema.Number},
				"avoid":      {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
				"locale":     {Type: jsonschema.String},
			},
			Required: []string{"budget_min", "budget_max", "avoid", "locale"},
		},
	},
	Required: []string{"recipient_summary", "ranked_intents", "derived_tags", "hard_constraints"},
}

var rankedItemSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"product_id":     {Type: jsonschema.String},
		"score":          {Type: jsonschema.Number},
		"why_bullets":    {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
		"best_for_label": {Type: jsonschema.String},
	},
	Required: []string{"product_id", "score", "why_bullets", "best_for_label"},
}

var rerankSchema = jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"top_3":          {Type: jsonschema.Array, Items: &rankedItemSchema},
		"alternatives_3": {Type: jsonschema.Array, Items: &rankedItemSchema},
	},
	Required: []string{"top_3", "alternatives_3"},
}

func (o *OpenAIRecommendClient) completeJSON(ctx context.Context, prompt, schemaName string, schema jsonschema.Definition, out interface{}) error {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openAIModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: &schema,
				Strict: true,
			},
		},
		MaxTokens: 600,
	})
	if err != nil {
		return fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return fmt.Errorf("openai: empty %s response", schemaName)
	}
	return json.Unmarshal([]byte(resp.Choices[0].Message.Content), out)
}

func (o *OpenAIRecommendClient) BuildProfile(ctx context.Context, form request_models.QuizForm) (response_models.RecipientProfile, error) {
	var profile response_models.RecipientProfile
	if err := o.completeJSON(ctx, profilePrompt(form), "profile", profileSchema, &profile); err != nil {
		return response_models.RecipientProfile{}, err
	}
	if profile.HardConstraints.Locale == "" {
		profile.HardConstraints.Locale = "US"
	}
	return profile, nil
}

func (o *OpenAIRecommendClient) Rerank(ctx context.Context, profile response_models.RecipientProfile, candidates []response_models.CandidateProduct) (response_models.RecommendResult, error) {
	prompt := rerankPrompt(profile, candidates)

	var result response_models.RecommendResult
	if err := o.completeJSON(ctx, prompt, "rerank", rerankSchema, &result); err != nil {
		return response_models.RecommendResult{}, err
	}

	invalid := invalidIDs(result, candidates)
	if len(invalid) == 0 && wellFormed(result) {
		return result, nil
	}

	// Retry once with stricter instructions before giving up on the model.
	log.Printf("openai rerank returned invalid product ids %v, retrying", invalid)
	strictPrompt := fmt.Sprintf("%s\n\nCRITICAL: You used invalid product_ids: %v. You may ONLY use product_id values from the list above. Try again.", prompt, invalid)

	var retry response_models.RecommendResult
	if err := o.completeJSON(ctx, strictPrompt, "rerank", rerankSchema, &retry); err == nil {
		if len(invalidIDs(retry, candidates)) == 0 && wellFormed(retry) {
			return retry, nil
		}
	}

	log.Printf("openai rerank retry failed, using generic fallback")
	return genericRerankFallback(profile, candidates), nil
}
