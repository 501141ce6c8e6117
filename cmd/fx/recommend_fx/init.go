package recommend_fx

import (
	"giftly/internal/repositories"
	"giftly/internal/services"
	mem "giftly/pkg/memcache"
	"giftly/pkg/utils"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideSessionRepo,
	provideProfileService,
	provideRetrievalService,
	provideRankingService,
	provideRecommendService)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepository {
	return repositories.NewSessionRepository(db)
}

func provideProfileService(config services.RankingConfig, aiClient utils.RecommendAIInterface) services.ProfileServiceInterface {
	return services.NewProfileService(aiClient, config.UseLLM)
}

func provideRetrievalService(productRepo repositories.ProductRepository) services.RetrievalServiceInterface {
	return services.NewRetrievalService(productRepo)
}

func provideRankingService(config services.RankingConfig, aiClient utils.RecommendAIInterface) services.RankingServiceInterface {
	return services.NewRankingService(config, aiClient)
}

func provideRecommendService(
	profileService services.ProfileServiceInterface,
	retrieval services.RetrievalServiceInterface,
	ranking services.RankingServiceInterface,
	productRepo repositories.ProductRepository,
	sessionRepo repositories.SessionRepository,
	cache mem.ResultCacheStore,
) services.RecommendServiceInterface {
	return services.NewRecommendService(profileService, retrieval, ranking, productRepo, sessionRepo, cache)
}
