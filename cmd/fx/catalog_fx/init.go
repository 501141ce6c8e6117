package catalog_fx

import (
	"giftly/internal/repositories"
	"giftly/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideProductRepo, provideCatalogService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideCatalogService(productRepo repositories.ProductRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(productRepo)
}
