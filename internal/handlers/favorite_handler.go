package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/service"
)

type FavoriteHandler struct {
	svc *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// AddFavorite es idempotente: repetir el par responde 200 sin escribir
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var in models.FavoriteCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.svc.Add(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "Product already in favorites"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added to favorites"})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	err := h.svc.Remove(c.Request.Context(), c.Param("user_id"), c.Param("product_id"))
	if err != nil {
		respondError(c, err, "Favorite not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from favorites"})
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	ids, err := h.svc.List(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err, "Favorite not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": ids})
}
