package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"affiliate-catalog/internal/database"
	"affiliate-catalog/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

// ProductRepository define la persistencia de productos. Un id mal formado
// se trata como ErrNotFound, igual que un documento inexistente.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]*models.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindActive(ctx context.Context) ([]*models.Category, error)
}

type FavoriteRepository interface {
	Exists(ctx context.Context, userID string, productID primitive.ObjectID) (bool, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID string, productID primitive.ObjectID) error
	FindByUser(ctx context.Context, userID string) ([]*models.Favorite, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id string) (*models.Article, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	FindPublished(ctx context.Context, filter ArticleFilter) ([]*models.Article, error)
	FindRelated(ctx context.Context, category string, excludeID primitive.ObjectID, limit int64) ([]*models.Article, error)
	Search(ctx context.Context, search ArticleSearch) ([]*models.Article, error)
}

// Repositories agrupa todas las interfaces de repositorio
type Repositories struct {
	Product  ProductRepository
	Category CategoryRepository
	Favorite FavoriteRepository
	Article  ArticleRepository
}

func New(store *database.Store) *Repositories {
	return &Repositories{
		Product:  NewProductRepository(store),
		Category: NewCategoryRepository(store),
		Favorite: NewFavoriteRepository(store),
		Article:  NewArticleRepository(store),
	}
}
