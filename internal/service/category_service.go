package service

import (
	"context"

	"github.com/rs/zerolog"

	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/projection"
	"affiliate-catalog/internal/repository"
)

type CategoryService struct {
	repo repository.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo repository.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log.With().Str("component", "category_service").Logger(),
	}
}

// List devuelve las categorías activas.
func (s *CategoryService) List(ctx context.Context, lang models.Language) ([]projection.CategoryView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fail(s.log, "list categories", err)
	}
	return projection.Categories(categories, lang)
}

func (s *CategoryService) Create(ctx context.Context, in *models.CategoryCreate, lang models.Language) (projection.CategoryView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return projection.CategoryView{}, err
	}

	category := in.ToCategory()
	if err := s.repo.Create(ctx, category); err != nil {
		return projection.CategoryView{}, fail(s.log, "create category", err)
	}
	return projection.Category(category, lang)
}
