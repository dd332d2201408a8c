// Package service contiene las operaciones del catálogo: traduce cada
// petición a filtros de repositorio y proyecta los resultados al idioma
// pedido.
package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/repository"
)

// Services agrupa los servicios del catálogo; se construye una vez en main.
type Services struct {
	Product  *ProductService
	Category *CategoryService
	Favorite *FavoriteService
	Article  *ArticleService
}

func New(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Product:  NewProductService(repos.Product, log),
		Category: NewCategoryService(repos.Category, log),
		Favorite: NewFavoriteService(repos.Favorite, log),
		Article:  NewArticleService(repos.Article, log),
	}
}

// checkLanguage normaliza lang y rechaza códigos no soportados antes de
// llamar a Mongo.
func checkLanguage(lang models.Language) (models.Language, error) {
	return models.ParseLanguage(string(lang))
}

// fail registra los fallos inesperados y envuelve err con el nombre de la
// operación. Los resultados que maneja el llamador no se registran.
func fail(log zerolog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, ierr.ErrNotFound),
		errors.Is(err, ierr.ErrAlreadyExists),
		errors.Is(err, ierr.ErrInvalidInput),
		errors.Is(err, ierr.ErrUnsupportedLanguage):
	default:
		log.Error().Err(err).Str("op", op).Msg("store operation failed")
	}
	return fmt.Errorf("%s: %w", op, err)
}
