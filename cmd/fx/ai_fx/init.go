package ai_fx

import (
	"log"
	"os"

	"giftly/internal/services"
	"giftly/pkg/utils"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideRankingConfig, provideAIClient)

func provideRankingConfig() services.RankingConfig {
	modelPath := os.Getenv("ML_MODEL_PATH")
	if modelPath == "" {
		modelPath = "ml/model.json"
	}
	specPath := os.Getenv("ML_FEATURE_SPEC_PATH")
	if specPath == "" {
		specPath = "ml/feature_spec.json"
	}
	return services.RankingConfig{
		UseLLM:          os.Getenv("ENABLE_LLM") == "true" && llmKey() != "",
		UseML:           os.Getenv("USE_ML") == "true",
		LLMProvider:     provider(),
		ModelPath:       modelPath,
		FeatureSpecPath: specPath,
	}
}

func provideAIClient(config services.RankingConfig) utils.RecommendAIInterface {
	if !config.UseLLM {
		return nil
	}
	switch config.LLMProvider {
	case "gemini":
		client, err := utils.NewGeminiRecommendClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("gemini client unavailable, llm ranking disabled: %v", err)
			return nil
		}
		return client
	default:
		client, err := utils.NewOpenAIRecommendClient(os.Getenv("OPENAI_API_KEY"))
		if err != nil {
			log.Printf("openai client unavailable, llm ranking disabled: %v", err)
			return nil
		}
		return client
	}
}

func provider() string {
	if p := os.Getenv("LLM_PROVIDER"); p != "" {
		return p
	}
	return "openai"
}

func llmKey() string {
	if provider() == "gemini" {
		return os.Getenv("GEMINI_API_KEY")
	}
	return os.Getenv("OPENAI_API_KEY")
}
