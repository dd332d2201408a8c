package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"affiliate-catalog/internal/database"
	"affiliate-catalog/internal/models"
)

type categoryRepository struct {
	store *database.Store
}

func NewCategoryRepository(store *database.Store) CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	category.ID = primitive.NewObjectID()
	category.CreatedAt = storeNow()

	_, err := r.store.InsertOne(ctx, database.CategoriesCollection, category)
	return err
}

func (r *categoryRepository) FindActive(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := r.store.FindMany(ctx, database.CategoriesCollection, bson.M{"is_active": true}, 0, 0, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		return []*models.Category{}, nil
	}
	return categories, nil
}
