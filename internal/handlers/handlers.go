package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/service"
)

// Handlers agrupa los handlers HTTP de cada recurso
type Handlers struct {
	Product  *ProductHandler
	Category *CategoryHandler
	Favorite *FavoriteHandler
	Article  *ArticleHandler
	Search   *SearchHandler
}

func New(svcs *service.Services) *Handlers {
	return &Handlers{
		Product:  NewProductHandler(svcs.Product),
		Category: NewCategoryHandler(svcs.Category),
		Favorite: NewFavoriteHandler(svcs.Favorite),
		Article:  NewArticleHandler(svcs.Article),
		Search:   NewSearchHandler(svcs.Product, svcs.Article),
	}
}

// LanguageQuery se embebe en toda query que acepta ?language=.
type LanguageQuery struct {
	Language string `form:"language,default=es" binding:"language"`
}

func (q LanguageQuery) lang() models.Language {
	return models.Language(q.Language)
}

// RegisterValidators registra las etiquetas de binding propias en el validador de gin.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		_, err := models.ParseLanguage(fl.Field().String())
		return err == nil
	})
}

// respondError traduce los errores de servicio a códigos HTTP. Los errores
// inesperados nunca exponen detalle interno.
func respondError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, ierr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	case errors.Is(err, ierr.ErrUnsupportedLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
	case errors.Is(err, ierr.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, ierr.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
