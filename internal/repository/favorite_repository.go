package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"affiliate-catalog/internal/database"
	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
)

type favoriteRepository struct {
	store *database.Store
}

func NewFavoriteRepository(store *database.Store) FavoriteRepository {
	return &favoriteRepository{store: store}
}

func pairFilter(userID string, productID primitive.ObjectID) bson.M {
	return bson.M{"user_id": userID, "product_id": productID}
}

func (r *favoriteRepository) Exists(ctx context.Context, userID string, productID primitive.ObjectID) (bool, error) {
	var fav models.Favorite
	err := r.store.FindOne(ctx, database.FavoritesCollection, pairFilter(userID, productID), &fav)
	if errors.Is(err, ierr.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create devuelve ErrAlreadyExists cuando el índice único
// (user_id, product_id) rechaza la inserción.
func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	favorite.ID = primitive.NewObjectID()
	favorite.CreatedAt = storeNow()

	_, err := r.store.InsertOne(ctx, database.FavoritesCollection, favorite)
	return err
}

func (r *favoriteRepository) Delete(ctx context.Context, userID string, productID primitive.ObjectID) error {
	deleted, err := r.store.DeleteOne(ctx, database.FavoritesCollection, pairFilter(userID, productID))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ierr.ErrNotFound
	}
	return nil
}

func (r *favoriteRepository) FindByUser(ctx context.Context, userID string) ([]*models.Favorite, error) {
	var favorites []*models.Favorite
	if err := r.store.FindMany(ctx, database.FavoritesCollection, bson.M{"user_id": userID}, 0, 0, &favorites); err != nil {
		return nil, err
	}
	if favorites == nil {
		return []*models.Favorite{}, nil
	}
	return favorites, nil
}
