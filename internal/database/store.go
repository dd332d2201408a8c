package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	ierr "affiliate-catalog/internal/errors"
)

// Nombres de colección.
const (
	ProductsCollection   = "products"
	CategoriesCollection = "categories"
	FavoritesCollection  = "favorites"
	ArticlesCollection   = "articles"
)

// Store es el acceso genérico a documentos que usan todos los repositorios.
// Cada llamada va directa a la base de datos con su propio timeout; no hay
// caché ni reintentos.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
	log     zerolog.Logger
}

func NewStore(db *mongo.Database, timeout time.Duration, log zerolog.Logger) *Store {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Store{
		db:      db,
		timeout: timeout,
		log:     log.With().Str("component", "store").Logger(),
	}
}

// InsertOne guarda doc y devuelve su id como cadena opaca.
func (s *Store) InsertOne(ctx context.Context, coll string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return "", wrapErr("insert", coll, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// FindOne decodifica la primera coincidencia en out, o devuelve ErrNotFound.
func (s *Store) FindOne(ctx context.Context, coll string, filter bson.M, out interface{}) error {
	if s.db == nil {
		return ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.db.Collection(coll).FindOne(ctx, filter).Decode(out); err != nil {
		return wrapErr("find one", coll, err)
	}
	return nil
}

// FindMany decodifica todas las coincidencias en out (puntero a slice). skip
// y limit se ignoran si no son positivos. No se aplica orden.
func (s *Store) FindMany(ctx context.Context, coll string, filter bson.M, skip, limit int64, out interface{}) error {
	if s.db == nil {
		return ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return wrapErr("find", coll, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return wrapErr("decode", coll, err)
	}
	return nil
}

// UpdateOne mezcla fields en la primera coincidencia con $set y devuelve el
// número de documentos modificados.
func (s *Store) UpdateOne(ctx context.Context, coll string, filter, fields bson.M) (int64, error) {
	if s.db == nil {
		return 0, ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(coll).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return 0, wrapErr("update", coll, err)
	}
	return res.ModifiedCount, nil
}

// DeleteOne borra la primera coincidencia y devuelve cuántos se borraron.
func (s *Store) DeleteOne(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return 0, wrapErr("delete", coll, err)
	}
	return res.DeletedCount, nil
}

func (s *Store) DeleteMany(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.db.Collection(coll).DeleteMany(ctx, filter)
	if err != nil {
		return 0, wrapErr("delete many", coll, err)
	}
	return res.DeletedCount, nil
}

func (s *Store) CountDocuments(ctx context.Context, coll string, filter bson.M) (int64, error) {
	if s.db == nil {
		return 0, ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.db.Collection(coll).CountDocuments(ctx, filter)
	if err != nil {
		return 0, wrapErr("count", coll, err)
	}
	return n, nil
}

// CreateTextIndex declara un índice de texto sobre fields. Declarar el mismo
// índice dos veces no tiene efecto en el servidor.
func (s *Store) CreateTextIndex(ctx context.Context, coll string, fields []string) error {
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: "text"})
	}
	return s.createIndex(ctx, coll, mongo.IndexModel{Keys: keys})
}

// CreateUniqueIndex declara un índice único ascendente, simple o compuesto.
func (s *Store) CreateUniqueIndex(ctx context.Context, coll string, fields []string) error {
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: 1})
	}
	return s.createIndex(ctx, coll, mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(true),
	})
}

func (s *Store) createIndex(ctx context.Context, coll string, model mongo.IndexModel) error {
	if s.db == nil {
		return ierr.ErrStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	name, err := s.db.Collection(coll).Indexes().CreateOne(ctx, model)
	if err != nil {
		return wrapErr("create index", coll, err)
	}
	s.log.Debug().Str("collection", coll).Str("index", name).Msg("index ensured")
	return nil
}

func wrapErr(op, coll string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ierr.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w", op, coll, ierr.ErrAlreadyExists)
	case errors.Is(err, mongo.ErrClientDisconnected), mongo.IsNetworkError(err), mongo.IsTimeout(err):
		return fmt.Errorf("%s %s: %w: %w", op, coll, ierr.ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%s %s: %w", op, coll, err)
	}
}
