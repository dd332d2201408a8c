package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type indexSpec struct {
	collection string
	fields     []string
	unique     bool
}

// Los índices de texto solo aceleran: la búsqueda de productos y artículos
// usa regex por campo. El índice de favoritos cierra la carrera entre
// comprobar e insertar sobre (user_id, product_id).
var indexSpecs = []indexSpec{
	{collection: ProductsCollection, fields: []string{"name.es", "name.en", "description.es", "description.en"}},
	{collection: ArticlesCollection, fields: []string{"title.es", "title.en", "content.es", "content.en", "tags"}},
	{collection: ArticlesCollection, fields: []string{"slug"}, unique: true},
	{collection: FavoritesCollection, fields: []string{"user_id", "product_id"}, unique: true},
}

// EnsureIndexes declara todos los índices en paralelo. Si falla un índice de
// texto solo se registra. Si falla uno único se registra y se devuelve el
// error: sin él la restricción no se cumple.
func EnsureIndexes(ctx context.Context, store *Store, log zerolog.Logger) error {
	errs := make([]error, len(indexSpecs))

	var g errgroup.Group
	for i, spec := range indexSpecs {
		i, spec := i, spec
		g.Go(func() error {
			var err error
			if spec.unique {
				err = store.CreateUniqueIndex(ctx, spec.collection, spec.fields)
			} else {
				err = store.CreateTextIndex(ctx, spec.collection, spec.fields)
			}
			if err == nil {
				return nil
			}
			log.Warn().Err(err).
				Str("collection", spec.collection).
				Strs("fields", spec.fields).
				Bool("unique", spec.unique).
				Msg("could not ensure index")
			if spec.unique {
				errs[i] = fmt.Errorf("unique index %s(%s): %w", spec.collection, strings.Join(spec.fields, ", "), err)
			}
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}
