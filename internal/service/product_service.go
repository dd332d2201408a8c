package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/projection"
	"affiliate-catalog/internal/repository"
)

type ProductService struct {
	repo repository.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo repository.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log.With().Str("component", "product_service").Logger(),
	}
}

// List devuelve una página de productos activos y el total de coincidencias.
// La página y el total se piden en paralelo.
func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]projection.ProductView, int64, error) {
	lang, err := checkLanguage(filter.Language)
	if err != nil {
		return nil, 0, err
	}
	filter.Language = lang

	var (
		products []*models.Product
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.repo.Find(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fail(s.log, "list products", err)
	}

	views, err := projection.Products(products, lang)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// Search es List sin total. Un término vacío no es válido.
func (s *ProductService) Search(ctx context.Context, filter repository.ProductFilter) ([]projection.ProductView, error) {
	if filter.Search == "" {
		return nil, ierr.ErrInvalidInput
	}
	lang, err := checkLanguage(filter.Language)
	if err != nil {
		return nil, err
	}
	filter.Language = lang

	products, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fail(s.log, "search products", err)
	}
	return projection.Products(products, lang)
}

func (s *ProductService) Get(ctx context.Context, id string, lang models.Language) (projection.ProductView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return projection.ProductView{}, err
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return projection.ProductView{}, fail(s.log, "get product", err)
	}
	return projection.Product(product, lang)
}

// Create guarda el producto y lo devuelve en lang.
func (s *ProductService) Create(ctx context.Context, in *models.ProductCreate, lang models.Language) (projection.ProductView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return projection.ProductView{}, err
	}

	product := in.ToProduct()
	if err := s.repo.Create(ctx, product); err != nil {
		return projection.ProductView{}, fail(s.log, "create product", err)
	}
	s.log.Info().Str("product_id", product.ID.Hex()).Str("category", product.Category).Msg("product created")
	return projection.Product(product, lang)
}

// Update mezcla los campos recibidos y devuelve el producto tal como queda
// guardado.
func (s *ProductService) Update(ctx context.Context, id string, in *models.ProductUpdate, lang models.Language) (projection.ProductView, error) {
	lang, err := checkLanguage(lang)
	if err != nil {
		return projection.ProductView{}, err
	}

	fields := in.Fields()
	if len(fields) == 0 {
		return projection.ProductView{}, ierr.ErrInvalidInput
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return projection.ProductView{}, fail(s.log, "update product", err)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return projection.ProductView{}, fail(s.log, "get updated product", err)
	}
	return projection.Product(product, lang)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fail(s.log, "delete product", err)
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
