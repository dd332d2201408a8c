package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	categories, err := h.svc.List(c.Request.Context(), q.lang())
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var in models.CategoryCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.svc.Create(c.Request.Context(), &in, q.lang())
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusCreated, category)
}
