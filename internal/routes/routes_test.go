package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"affiliate-catalog/internal/config"
	ierr "affiliate-catalog/internal/errors"
	"affiliate-catalog/internal/models"
	"affiliate-catalog/internal/repository"
	"affiliate-catalog/internal/repository/mocks"
	"affiliate-catalog/internal/routes"
	"affiliate-catalog/internal/service"
)

type testRepos struct {
	product  *mocks.MockProductRepository
	category *mocks.MockCategoryRepository
	favorite *mocks.MockFavoriteRepository
	article  *mocks.MockArticleRepository
}

func setupTestRouter(t *testing.T) (*gin.Engine, testRepos) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	m := testRepos{
		product:  mocks.NewMockProductRepository(ctrl),
		category: mocks.NewMockCategoryRepository(ctrl),
		favorite: mocks.NewMockFavoriteRepository(ctrl),
		article:  mocks.NewMockArticleRepository(ctrl),
	}
	repos := &repository.Repositories{
		Product:  m.product,
		Category: m.category,
		Favorite: m.favorite,
		Article:  m.article,
	}

	cfg := &config.Config{
		Env:    "test",
		Server: config.ServerConfig{Port: "8080", CORSOrigins: "*"},
	}
	router, err := routes.NewRouter(service.New(repos, zerolog.Nop()), cfg, zerolog.Nop())
	require.NoError(t, err)
	return router, m
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func product(id primitive.ObjectID) *models.Product {
	return &models.Product{
		ID:          id,
		Name:        models.Translated{ES: "Cepillo de bambú", EN: "Bamboo toothbrush"},
		Description: models.Translated{ES: "Natural", EN: "Natural"},
		Category:    "cepillos-bambu",
		Price:       12.99,
		AmazonLink:  "https://amzn.to/abc",
		Features:    models.Features{"es": {"Biodegradable"}, "en": {"Biodegradable"}},
		IsActive:    true,
	}
}

func TestHealthAndRoot(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(router, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"BambuGoods API is running","version":"1.0.0"}`, w.Body.String())
}

func TestListProducts(t *testing.T) {
	router, m := setupTestRouter(t)

	want := repository.ProductFilter{Category: "cepillos-bambu", Search: "bambú", Language: models.LanguageEN, Limit: 10, Skip: 5}
	m.product.EXPECT().Find(gomock.Any(), want).Return([]*models.Product{product(primitive.NewObjectID())}, nil)
	m.product.EXPECT().Count(gomock.Any(), want).Return(int64(6), nil)

	w := do(router, http.MethodGet, "/api/products?category=cepillos-bambu&search=bamb%C3%BA&language=en&limit=10&skip=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "6", w.Header().Get("X-Total-Count"))

	var got []map[string]interface{}
	decode(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Bamboo toothbrush", got[0]["name"])
	assert.Equal(t, "https://amzn.to/abc", got[0]["amazonLink"])
}

func TestListProductsDefaults(t *testing.T) {
	router, m := setupTestRouter(t)

	want := repository.ProductFilter{Language: models.LanguageES, Limit: 50}
	m.product.EXPECT().Find(gomock.Any(), want).Return(nil, nil)
	m.product.EXPECT().Count(gomock.Any(), want).Return(int64(0), nil)

	w := do(router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestQueryValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, path := range []string{
		"/api/products?language=fr",
		"/api/products?language=EN",
		"/api/products?limit=0",
		"/api/products?limit=101",
		"/api/products?skip=-1",
		"/api/articles?limit=200",
		"/api/search",
		"/api/search/articles?q=x&limit=51",
		"/api/categories?language=de",
	} {
		w := do(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetProductNotFound(t *testing.T) {
	router, m := setupTestRouter(t)

	m.product.EXPECT().FindByID(gomock.Any(), "not-an-id").Return(nil, ierr.ErrNotFound)

	w := do(router, http.MethodGet, "/api/products/not-an-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}

func TestStoreFailureIsGeneric(t *testing.T) {
	router, m := setupTestRouter(t)

	m.product.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("find one products: connection refused 10.0.0.3:27017"))

	w := do(router, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestCreateProduct(t *testing.T) {
	router, m := setupTestRouter(t)

	m.product.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Product) error {
		p.ID = primitive.NewObjectID()
		p.CreatedAt = time.Now()
		return nil
	})

	body := map[string]interface{}{
		"name":          map[string]string{"es": "Jabón sólido", "en": "Solid soap"},
		"description":   map[string]string{"es": "Sin plástico", "en": "Plastic free"},
		"category":      "jabones",
		"price":         8.5,
		"originalPrice": 10,
		"image":         "https://example.com/soap.jpg",
		"amazonLink":    "https://amzn.to/soap",
		"rating":        4.7,
		"reviews":       31,
		"features":      map[string][]string{"es": {"Vegano"}},
	}
	w := do(router, http.MethodPost, "/api/products?language=en", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got map[string]interface{}
	decode(t, w, &got)
	assert.Equal(t, "Solid soap", got["name"])
	assert.Equal(t, []interface{}{}, got["features"])
	assert.Equal(t, true, got["isActive"])
}

func TestCreateProductRejectsMissingTranslation(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"name":       map[string]string{"es": "Jabón"},
		"category":   "jabones",
		"image":      "https://example.com/soap.jpg",
		"amazonLink": "https://amzn.to/soap",
		"features":   map[string][]string{},
	}
	w := do(router, http.MethodPost, "/api/products", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductAcceptsEmptyTranslation(t *testing.T) {
	router, m := setupTestRouter(t)

	m.product.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Product) error {
		assert.Equal(t, models.Translated{ES: "Jabón", EN: ""}, p.Name)
		p.ID = primitive.NewObjectID()
		return nil
	})

	body := map[string]interface{}{
		"name":        map[string]string{"es": "Jabón", "en": ""},
		"description": map[string]string{"es": "", "en": ""},
		"category":    "jabones",
		"image":       "https://example.com/soap.jpg",
		"amazonLink":  "https://amzn.to/soap",
		"features":    map[string][]string{},
	}
	w := do(router, http.MethodPost, "/api/products?language=en", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got map[string]interface{}
	decode(t, w, &got)
	assert.Equal(t, "", got["name"])
}

func TestCreateProductRejectsMissingDescription(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"name":       map[string]string{"es": "Jabón", "en": "Soap"},
		"category":   "jabones",
		"image":      "https://example.com/soap.jpg",
		"amazonLink": "https://amzn.to/soap",
		"features":   map[string][]string{},
	}
	w := do(router, http.MethodPost, "/api/products", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	router, m := setupTestRouter(t)
	id := primitive.NewObjectID()

	updated := product(id)
	updated.Price = 9.99
	m.product.EXPECT().Update(gomock.Any(), id.Hex(), gomock.Any()).Return(nil)
	m.product.EXPECT().FindByID(gomock.Any(), id.Hex()).Return(updated, nil)

	w := do(router, http.MethodPut, "/api/products/"+id.Hex(), map[string]interface{}{"price": 9.99})
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	decode(t, w, &got)
	assert.Equal(t, 9.99, got["price"])

	w = do(router, http.MethodPut, "/api/products/"+id.Hex(), map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductTwice(t *testing.T) {
	router, m := setupTestRouter(t)
	id := primitive.NewObjectID().Hex()

	gomock.InOrder(
		m.product.EXPECT().Delete(gomock.Any(), id).Return(nil),
		m.product.EXPECT().Delete(gomock.Any(), id).Return(ierr.ErrNotFound),
	)

	w := do(router, http.MethodDelete, "/api/products/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, w.Body.String())

	w = do(router, http.MethodDelete, "/api/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategories(t *testing.T) {
	router, m := setupTestRouter(t)

	m.category.EXPECT().FindActive(gomock.Any()).Return([]*models.Category{{
		CategoryID: "champu-solido",
		Name:       models.Translated{ES: "Champú sólido", EN: "Solid shampoo"},
		Icon:       "🧴",
		IsActive:   true,
	}}, nil)

	w := do(router, http.MethodGet, "/api/categories?language=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"champu-solido","name":"Solid shampoo","icon":"🧴"}]`, w.Body.String())
}

func TestFavorites(t *testing.T) {
	router, m := setupTestRouter(t)
	productID := primitive.NewObjectID()
	body := map[string]string{"userId": "u1", "productId": productID.Hex()}

	gomock.InOrder(
		m.favorite.EXPECT().Exists(gomock.Any(), "u1", productID).Return(false, nil),
		m.favorite.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
		m.favorite.EXPECT().Exists(gomock.Any(), "u1", productID).Return(true, nil),
	)

	w := do(router, http.MethodPost, "/api/favorites", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Product added to favorites"}`, w.Body.String())

	w = do(router, http.MethodPost, "/api/favorites", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Product already in favorites"}`, w.Body.String())

	m.favorite.EXPECT().FindByUser(gomock.Any(), "u1").Return([]*models.Favorite{{UserID: "u1", ProductID: productID}}, nil)
	w = do(router, http.MethodGet, "/api/favorites/u1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorites":["`+productID.Hex()+`"]}`, w.Body.String())

	m.favorite.EXPECT().Delete(gomock.Any(), "u1", productID).Return(ierr.ErrNotFound)
	w = do(router, http.MethodDelete, "/api/favorites/u1/"+productID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(router, http.MethodPost, "/api/favorites", map[string]string{"userId": "u1", "productId": "bad"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestArticles(t *testing.T) {
	router, m := setupTestRouter(t)

	older := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	newer := older.AddDate(0, 1, 0)
	a := &models.Article{ID: primitive.NewObjectID(), Slug: "old", Category: "guias", IsPublished: true, PublishedDate: &older, Title: models.Translated{ES: "Viejo", EN: "Old"}}
	b := &models.Article{ID: primitive.NewObjectID(), Slug: "new", Category: "guias", IsPublished: true, PublishedDate: &newer, Title: models.Translated{ES: "Nuevo", EN: "New"}}

	m.article.EXPECT().FindPublished(gomock.Any(), repository.ArticleFilter{Category: "guias", Limit: 20}).Return([]*models.Article{a, b}, nil)

	w := do(router, http.MethodGet, "/api/articles?category=guias", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0]["slug"])
	assert.Equal(t, "Nuevo", list[0]["title"])
	_, hasContent := list[0]["content"]
	assert.False(t, hasContent)
	assert.Contains(t, list[0], "excerpt")

	m.article.EXPECT().FindPublishedBySlug(gomock.Any(), "old").Return(a, nil)
	w = do(router, http.MethodGet, "/api/articles/old?language=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail map[string]interface{}
	decode(t, w, &detail)
	assert.Equal(t, "Old", detail["title"])

	m.article.EXPECT().FindByID(gomock.Any(), a.ID.Hex()).Return(a, nil)
	m.article.EXPECT().FindRelated(gomock.Any(), "guias", a.ID, int64(3)).Return([]*models.Article{b}, nil)
	w = do(router, http.MethodGet, "/api/articles/"+a.ID.Hex()+"/related", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var related []map[string]interface{}
	decode(t, w, &related)
	require.Len(t, related, 1)
	assert.Equal(t, "new", related[0]["slug"])
}

func TestSearch(t *testing.T) {
	router, m := setupTestRouter(t)

	m.product.EXPECT().Find(gomock.Any(), repository.ProductFilter{Search: "BAMBÚ", Language: models.LanguageES, Limit: 20}).
		Return([]*models.Product{product(primitive.NewObjectID())}, nil)

	w := do(router, http.MethodGet, "/api/search?q=BAMB%C3%9A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	decode(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Cepillo de bambú", got[0]["name"])

	m.article.EXPECT().Search(gomock.Any(), repository.ArticleSearch{Query: "plástico", Language: models.LanguageES, Limit: 10}).
		Return([]*models.Article{}, nil)

	w = do(router, http.MethodGet, "/api/search/articles?q=pl%C3%A1stico", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://bambugoods.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}
