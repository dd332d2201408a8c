package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/repository"
)

type FavoriteService struct {
	repo repository.FavoriteRepository
	log  zerolog.Logger
}

func NewFavoriteService(repo repository.FavoriteRepository, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{
		repo: repo,
		log:  log.With().Str("component", "favorite_service").Logger(),
	}
}

// Add guarda el par (usuario, producto). created es false si el par ya
// existía, sea porque lo encontró la consulta o porque el índice único
// rechazó la inserción al perder la carrera. Un id de producto mal formado
// es ErrInvalidInput.
func (s *FavoriteService) Add(ctx context.Context, in models.FavoriteCreate) (created bool, err error) {
	productID, err := primitive.ObjectIDFromHex(in.ProductID)
	if err != nil {
		return false, ierr.ErrInvalidInput
	}

	exists, err := s.repo.Exists(ctx, in.UserID, productID)
	if err != nil {
		return false, fail(s.log, "check favorite", err)
	}
	if exists {
		return false, nil
	}

	err = s.repo.Create(ctx, &models.Favorite{UserID: in.UserID, ProductID: productID})
	if errors.Is(err, ierr.ErrAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fail(s.log, "add favorite", err)
	}
	return true, nil
}

// Remove borra el par. Un id de producto mal formado no puede coincidir con
// nada y se informa como ErrNotFound.
func (s *FavoriteService) Remove(ctx context.Context, userID, productID string) error {
	oid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return ierr.ErrNotFound
	}
	if err := s.repo.Delete(ctx, userID, oid); err != nil {
		return fail(s.log, "remove favorite", err)
	}
	return nil
}

// List devuelve los ids de producto marcados por el usuario, no los productos.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]string, error) {
	favorites, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fail(s.log, "list favorites", err)
	}

	ids := make([]string, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProductID.Hex())
	}
	return ids, nil
}
