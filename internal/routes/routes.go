package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"affiliate-catalog/internal/config"
	"affiliate-catalog/internal/handlers"
	"affiliate-catalog/internal/service"
)

const apiVersion = "1.0.0"

// NewRouter arma el engine de gin con middleware y todas las rutas
func NewRouter(svcs *service.Services, cfg *config.Config, log zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	httpLog := log.With().Str("component", "http").Logger()

	router.Use(requestIDMiddleware())
	router.Use(recoveryMiddleware(httpLog))
	router.Use(loggingMiddleware(httpLog))
	router.Use(corsMiddleware(cfg.Server.CORSOrigins))

	RegisterRoutes(router, handlers.New(svcs))
	return router, nil
}

func RegisterRoutes(router *gin.Engine, h *handlers.Handlers) {
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	{
		api.GET("/", root)

		products := api.Group("/products")
		{
			products.GET("", h.Product.ListProducts)
			products.POST("", h.Product.CreateProduct)
			products.GET("/:id", h.Product.GetProduct)
			products.PUT("/:id", h.Product.UpdateProduct)
			products.DELETE("/:id", h.Product.DeleteProduct)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.Category.ListCategories)
			categories.POST("", h.Category.CreateCategory)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", h.Article.ListArticles)
			articles.POST("", h.Article.CreateArticle)
			articles.GET("/:slug", h.Article.GetArticle)
			articles.GET("/:slug/related", h.Article.RelatedArticles)
		}

		favorites := api.Group("/favorites")
		{
			favorites.POST("", h.Favorite.AddFavorite)
			favorites.GET("/:user_id", h.Favorite.ListFavorites)
			favorites.DELETE("/:user_id/:product_id", h.Favorite.RemoveFavorite)
		}

		search := api.Group("/search")
		{
			search.GET("", h.Search.SearchProducts)
			search.GET("/articles", h.Search.SearchArticles)
		}
	}
}

func root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "BambuGoods API is running",
		"version": apiVersion,
	})
}

// healthCheck es estático: no consulta Mongo.
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
