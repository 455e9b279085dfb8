package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/middleware"
	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/services"
)

// ---- fakes ----

type fakeCatalog struct {
	products []models.Product
	listErr  error
}

func (f *fakeCatalog) ListProducts(_ context.Context) ([]models.Product, error) {
	return f.products, f.listErr
}

func (f *fakeCatalog) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, errors.New("record not found")
}

type fakeCheckout struct {
	saleID    uuid.UUID
	err       error
	clearCart bool
	calls     int
}

func (f *fakeCheckout) Commit(_ context.Context, cart *models.Cart, _ string) (uuid.UUID, error) {
	f.calls++
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if cart.Empty() {
		return uuid.Nil, services.ErrEmptyCart
	}
	if f.clearCart {
		cart.Clear()
	}
	return f.saleID, nil
}

func newCartRouter(sessions *services.SessionStore, catalog CatalogAPI, checkout CheckoutAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(sessions, catalog, checkout, zap.NewNop())

	router := gin.New()
	api := router.Group("/")
	api.Use(middleware.OperatorMiddleware())
	api.GET("/cart", controller.GetCart)
	api.POST("/cart/add", controller.AddItem)
	api.DELETE("/cart/remove/:product_id", controller.RemoveItem)
	api.DELETE("/cart/clear", controller.ClearCart)
	api.POST("/cart/checkout", controller.Checkout)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Operator-ID", "op-1")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCartRoutes_RequireOperatorHeader(t *testing.T) {
	router := newCartRouter(services.NewSessionStore(), &fakeCatalog{}, &fakeCheckout{})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddItem_BuildsCartThroughCatalog(t *testing.T) {
	popcorn := models.Product{ID: uuid.New(), Name: "Popcorn L", Price: decimal.NewFromInt(50), Category: "snacks"}
	sessions := services.NewSessionStore()
	router := newCartRouter(sessions, &fakeCatalog{products: []models.Product{popcorn}}, &fakeCheckout{})

	rec := doJSON(t, router, http.MethodPost, "/cart/add", gin.H{"product_id": popcorn.ID})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/cart/add", gin.H{"product_id": popcorn.ID})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Lines     []models.CartLine `json:"lines"`
		Total     decimal.Decimal   `json:"total"`
		ItemCount int               `json:"item_count"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.ItemCount)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(100)))
}

func TestAddItem_UnknownProduct(t *testing.T) {
	router := newCartRouter(services.NewSessionStore(), &fakeCatalog{}, &fakeCheckout{})

	rec := doJSON(t, router, http.MethodPost, "/cart/add", gin.H{"product_id": uuid.New()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveItem_DecrementsAndDrops(t *testing.T) {
	popcorn := models.Product{ID: uuid.New(), Name: "Popcorn L", Price: decimal.NewFromInt(50)}
	sessions := services.NewSessionStore()
	router := newCartRouter(sessions, &fakeCatalog{products: []models.Product{popcorn}}, &fakeCheckout{})

	doJSON(t, router, http.MethodPost, "/cart/add", gin.H{"product_id": popcorn.ID})
	rec := doJSON(t, router, http.MethodDelete, "/cart/remove/"+popcorn.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sessions.Cart("op-1").Empty())
}

func TestCheckout_EmptyCart(t *testing.T) {
	router := newCartRouter(services.NewSessionStore(), &fakeCatalog{}, &fakeCheckout{})

	rec := doJSON(t, router, http.MethodPost, "/cart/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_Success(t *testing.T) {
	popcorn := models.Product{ID: uuid.New(), Name: "Popcorn L", Price: decimal.NewFromInt(50)}
	sessions := services.NewSessionStore()
	checkout := &fakeCheckout{saleID: uuid.New(), clearCart: true}
	router := newCartRouter(sessions, &fakeCatalog{products: []models.Product{popcorn}}, checkout)

	doJSON(t, router, http.MethodPost, "/cart/add", gin.H{"product_id": popcorn.ID})
	rec := doJSON(t, router, http.MethodPost, "/cart/checkout", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, checkout.saleID.String(), resp["sale_id"])
	assert.True(t, sessions.Cart("op-1").Empty())
}

func TestCheckout_PersistenceFailure(t *testing.T) {
	popcorn := models.Product{ID: uuid.New(), Name: "Popcorn L", Price: decimal.NewFromInt(50)}
	sessions := services.NewSessionStore()
	checkout := &fakeCheckout{err: &services.CheckoutFailedError{Cause: errors.New("insert failed")}}
	router := newCartRouter(sessions, &fakeCatalog{products: []models.Product{popcorn}}, checkout)

	doJSON(t, router, http.MethodPost, "/cart/add", gin.H{"product_id": popcorn.ID})
	rec := doJSON(t, router, http.MethodPost, "/cart/checkout", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	// The cart survives so the operator can retry.
	assert.Equal(t, 1, sessions.Cart("op-1").ItemCount())
}

func TestCartsAreIsolatedPerOperator(t *testing.T) {
	popcorn := models.Product{ID: uuid.New(), Name: "Popcorn L", Price: decimal.NewFromInt(50)}
	sessions := services.NewSessionStore()
	router := newCartRouter(sessions, &fakeCatalog{products: []models.Product{popcorn}}, &fakeCheckout{})

	data, _ := json.Marshal(gin.H{"product_id": popcorn.ID})
	req := httptest.NewRequest(http.MethodPost, "/cart/add", bytes.NewReader(data))
	req.Header.Set("X-Operator-ID", "op-2")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, sessions.Cart("op-1").Empty())
	assert.Equal(t, 1, sessions.Cart("op-2").ItemCount())
}
