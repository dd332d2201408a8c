package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/repository"
	"affiliate-catalog/internal/service"
)

const articleNotFound = "Article not found"

type ArticleHandler struct {
	svc *service.ArticleService
}

func NewArticleHandler(svc *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

type listArticlesQuery struct {
	LanguageQuery
	Category string `form:"category"`
	Limit    int64  `form:"limit,default=20" binding:"min=1,max=100"`
	Skip     int64  `form:"skip,default=0" binding:"min=0"`
}

type relatedArticlesQuery struct {
	LanguageQuery
	Limit int64 `form:"limit,default=3" binding:"min=1,max=10"`
}

// ListArticles devuelve los artículos publicados, más recientes primero
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var q listArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	articles, err := h.svc.List(c.Request.Context(), repository.ArticleFilter{
		Category: q.Category,
		Skip:     q.Skip,
		Limit:    q.Limit,
	}, q.lang())
	if err != nil {
		respondError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	article, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"), q.lang())
	if err != nil {
		respondError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, article)
}

// RelatedArticles: el segmento comparte el comodín :slug con GetArticle pero
// lleva el id del artículo.
func (h *ArticleHandler) RelatedArticles(c *gin.Context) {
	var q relatedArticlesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	articles, err := h.svc.Related(c.Request.Context(), c.Param("slug"), q.Limit, q.lang())
	if err != nil {
		respondError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var in models.ArticleCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	article, err := h.svc.Create(c.Request.Context(), &in, q.lang())
	if err != nil {
		respondError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusCreated, article)
}
