package controllers_fx

import (
	"giftly/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewRecommendController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewAccountController))
