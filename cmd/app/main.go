package main

import (
	"context"
	"giftly/cmd/fx/account_fx"
	"giftly/cmd/fx/ai_fx"
	"giftly/cmd/fx/catalog_fx"
	"giftly/cmd/fx/controllers_fx"
	"giftly/cmd/fx/db_fx"
	"giftly/cmd/fx/memcache_fx"
	"giftly/cmd/fx/recommend_fx"
	"giftly/internal/api/controllers"
	"giftly/pkg/middleware"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		catalog_fx.Module,
		recommend_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	recommendController *controllers.RecommendController,
	catalogController *controllers.CatalogController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, recommendController, catalogController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendController *controllers.RecommendController,
	catalogController *controllers.CatalogController,
	accountController *controllers.AccountController) {

	r.POST("/recommend", recommendController.Recommend)
	r.GET("/sessions/:id", recommendController.GetSession)
	r.GET("/stats", catalogController.GetStats)

	products := r.Group("/products")
	products.GET("", catalogController.ListProducts)
	products.GET("/:id", catalogController.GetProduct)

	admin := products.Group("")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("", catalogController.CreateProduct)
	admin.PUT("/:id", catalogController.UpdateProduct)
	admin.DELETE("/:id", catalogController.DeleteProduct)

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
}
