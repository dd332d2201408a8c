package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliate-catalog/internal/repository"
	"affiliate-catalog/internal/service"
)

type SearchHandler struct {
	products *service.ProductService
	articles *service.ArticleService
}

func NewSearchHandler(products *service.ProductService, articles *service.ArticleService) *SearchHandler {
	return &SearchHandler{products: products, articles: articles}
}

type searchProductsQuery struct {
	LanguageQuery
	Q        string `form:"q" binding:"required"`
	Category string `form:"category"`
	Limit    int64  `form:"limit,default=20" binding:"min=1,max=100"`
}

type searchArticlesQuery struct {
	LanguageQuery
	Q     string `form:"q" binding:"required"`
	Limit int64  `form:"limit,default=10" binding:"min=1,max=50"`
}

func (h *SearchHandler) SearchProducts(c *gin.Context) {
	var q searchProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	products, err := h.products.Search(c.Request.Context(), repository.ProductFilter{
		Category: q.Category,
		Search:   q.Q,
		Language: q.lang(),
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *SearchHandler) SearchArticles(c *gin.Context) {
	var q searchArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	articles, err := h.articles.Search(c.Request.Context(), repository.ArticleSearch{
		Query:    q.Q,
		Language: q.lang(),
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, articles)
}
