package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/projection"
	"affiliate-catalog/internal/repository"
)

type ArticleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func NewArticleService(repo repository.ArticleRepository, log zerolog.Logger) *ArticleService {
	return &ArticleService{
		repo: repo,
		log:  log.With().Str("component", "article_service").Logger(),
	}
}

// List devuelve resúmenes de artículos publicados, los más recientes primero
// por fecha de publicación (o de creación). El orden se aplica aquí, después
// de leer la página.
func (s *ArticleService) List(ctx context.Context, filter repository.ArticleFilter, lang models.Language) ([]projection.ArticleSummary, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return nil, err
	}

	articles, err := s.repo.FindPublished(ctx, filter)
	if err != nil {
		return nil, fail(s.log, "list articles", err)
	}
	sortNewestFirst(articles)
	return projection.ArticleSummaries(articles, lang)
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string, lang models.Language) (projection.ArticleView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return projection.ArticleView{}, err
	}

	article, err := s.repo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return projection.ArticleView{}, fail(s.log, "get article", err)
	}
	return projection.Article(article, lang)
}

// Related devuelve otros artículos publicados de la misma categoría que el
// artículo con ese id, en el orden de Mongo.
func (s *ArticleService) Related(ctx context.Context, id string, limit int64, lang models.Language) ([]projection.ArticleSummary, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return nil, err
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fail(s.log, "get article", err)
	}

	related, err := s.repo.FindRelated(ctx, article.Category, article.ID, limit)
	if err != nil {
		return nil, fail(s.log, "related articles", err)
	}
	return projection.ArticleSummaries(related, lang)
}

func (s *ArticleService) Search(ctx context.Context, search repository.ArticleSearch) ([]projection.ArticleSummary, error) {
	if search.Query == "" {
		return nil, ierr.ErrInvalidInput
	}
	lang, err := checkLanguage(search.Language)
	if err != nil {
		return nil, err
	}
	search.Language = lang

	articles, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, fail(s.log, "search articles", err)
	}
	return projection.ArticleSummaries(articles, lang)
}

// Create guarda el artículo. Un slug ocupado es ErrAlreadyExists.
func (s *ArticleService) Create(ctx context.Context, in *models.ArticleCreate, lang models.Language) (projection.ArticleView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return projection.ArticleView{}, err
	}

	article := in.ToArticle()
	if err := s.repo.Create(ctx, article); err != nil {
		return projection.ArticleView{}, fail(s.log, "create article", err)
	}
	s.log.Info().Str("slug", article.Slug).Bool("published", article.IsPublished).Msg("article created")
	return projection.Article(article, lang)
}

func sortNewestFirst(articles []*models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].SortDate().After(articles[j].SortDate())
	})
}
