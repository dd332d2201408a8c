package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/repository"
	"affiliate-catalog/internal/service"
)

const productNotFound = "Product not found"

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type listProductsQuery struct {
	LanguageQuery
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    int64  `form:"limit,default=50" binding:"min=1,max=100"`
	Skip     int64  `form:"skip,default=0" binding:"min=0"`
}

// ListProducts lista productos activos con filtros; el total va en X-Total-Count
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var q listProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	products, total, err := h.svc.List(c.Request.Context(), repository.ProductFilter{
		Category: q.Category,
		Search:   q.Search,
		Language: q.lang(),
		Skip:     q.Skip,
		Limit:    q.Limit,
	})
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, products)
}

// GetProduct obtiene un producto por ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.svc.Get(c.Request.Context(), c.Param("id"), q.lang())
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct crea un nuevo producto y lo devuelve en el idioma pedido
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var in models.ProductCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.svc.Create(c.Request.Context(), &in, q.lang())
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct actualiza parcialmente un producto
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var q LanguageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	if len(update.Fields()) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}

	product, err := h.svc.Update(c.Request.Context(), c.Param("id"), &update, q.lang())
	if err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct elimina el producto de forma definitiva
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, productNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
