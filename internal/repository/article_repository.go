package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"affiliate-catalog/internal/database"
	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
)

type articleRepository struct {
	store *database.Store
}

func NewArticleRepository(store *database.Store) ArticleRepository {
	return &articleRepository{store: store}
}

// Create asigna id y fechas. Un artículo publicado sin fecha de publicación
// recibe la de creación.
func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	now := storeNow()
	article.ID = primitive.NewObjectID()
	article.CreatedAt = now
	article.UpdatedAt = now
	if article.IsPublished && article.PublishedDate == nil {
		article.PublishedDate = &now
	}

	_, err := r.store.InsertOne(ctx, database.ArticlesCollection, article)
	return err
}

func (r *articleRepository) FindByID(ctx context.Context, id string) (*models.Article, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ierr.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objID})
}

func (r *articleRepository) FindPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return r.findOne(ctx, bson.M{"slug": slug, "is_published": true})
}

func (r *articleRepository) FindPublished(ctx context.Context, filter ArticleFilter) ([]*models.Article, error) {
	return r.findMany(ctx, filter.BSON(), filter.Skip, filter.Limit)
}

func (r *articleRepository) FindRelated(ctx context.Context, category string, excludeID primitive.ObjectID, limit int64) ([]*models.Article, error) {
	return r.findMany(ctx, relatedFilter(category, excludeID), 0, limit)
}

func (r *articleRepository) Search(ctx context.Context, search ArticleSearch) ([]*models.Article, error) {
	return r.findMany(ctx, search.BSON(), 0, search.Limit)
}

func (r *articleRepository) findOne(ctx context.Context, filter bson.M) (*models.Article, error) {
	var article models.Article
	if err := r.store.FindOne(ctx, database.ArticlesCollection, filter, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) findMany(ctx context.Context, filter bson.M, skip, limit int64) ([]*models.Article, error) {
	var articles []*models.Article
	if err := r.store.FindMany(ctx, database.ArticlesCollection, filter, skip, limit, &articles); err != nil {
		return nil, err
	}
	if articles == nil {
		return []*models.Article{}, nil
	}
	return articles, nil
}
