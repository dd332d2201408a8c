package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"affiliate-catalog/internal/database"
	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
)

type productRepository struct {
	store *database.Store
}

func NewProductRepository(store *database.Store) ProductRepository {
	return &productRepository{store: store}
}

// Create crea un nuevo producto; el id y las fechas los asigna el servidor
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	now := storeNow()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.store.InsertOne(ctx, database.ProductsCollection, product)
	return err
}

// FindByID obtiene un producto por ID
func (r *productRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ierr.ErrNotFound
	}

	var product models.Product
	if err := r.store.FindOne(ctx, database.ProductsCollection, bson.M{"_id": objID}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Find lista productos activos con filtros, en el orden del store
func (r *productRepository) Find(ctx context.Context, filter ProductFilter) ([]*models.Product, error) {
	var products []*models.Product
	if err := r.store.FindMany(ctx, database.ProductsCollection, filter.BSON(), filter.Skip, filter.Limit, &products); err != nil {
		return nil, err
	}
	if products == nil {
		return []*models.Product{}, nil
	}
	return products, nil
}

// Count ignora Skip y Limit.
func (r *productRepository) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	return r.store.CountDocuments(ctx, database.ProductsCollection, filter.BSON())
}

// Update aplica solo los campos recibidos y siempre refresca updated_at
func (r *productRepository) Update(ctx context.Context, id string, fields bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ierr.ErrNotFound
	}

	set := bson.M{"updated_at": storeNow()}
	for k, v := range fields {
		set[k] = v
	}

	modified, err := r.store.UpdateOne(ctx, database.ProductsCollection, bson.M{"_id": objID}, set)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ierr.ErrNotFound
	}
	return nil
}

// Delete elimina el documento (borrado físico)
func (r *productRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ierr.ErrNotFound
	}

	deleted, err := r.store.DeleteOne(ctx, database.ProductsCollection, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ierr.ErrNotFound
	}
	return nil
}

// storeNow se trunca a milisegundos, la precisión de Mongo, para que lo
// leído sea igual a lo escrito.
func storeNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
