package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/middleware"
	"github.com/Irex777/bolt-popcorn-pos/models"
)

func newCatalogRouter(catalog CatalogAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCatalogController(catalog, zap.NewNop())

	router := gin.New()
	api := router.Group("/")
	api.Use(middleware.OperatorMiddleware())
	api.GET("/products", controller.GetProducts)
	api.GET("/products/categories", controller.GetCategories)
	return router
}

func catalogProducts() []models.Product {
	return []models.Product{
		{ID: uuid.New(), Name: "Cola", Price: decimal.NewFromInt(35), Category: "drinks"},
		{ID: uuid.New(), Name: "Popcorn L", Price: decimal.NewFromInt(50), Category: "snacks"},
		{ID: uuid.New(), Name: "Popcorn S", Price: decimal.NewFromInt(30), Category: "snacks"},
	}
}

func TestGetProducts_All(t *testing.T) {
	router := newCatalogRouter(&fakeCatalog{products: catalogProducts()})

	rec := historyGet(router, "/products")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Products []models.Product `json:"products"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 3)
}

func TestGetProducts_FilteredByCategory(t *testing.T) {
	router := newCatalogRouter(&fakeCatalog{products: catalogProducts()})

	rec := historyGet(router, "/products?category=snacks")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Products []models.Product `json:"products"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 2)
	for _, p := range resp.Products {
		assert.Equal(t, "snacks", p.Category)
	}
}

func TestGetProducts_CatalogDown(t *testing.T) {
	router := newCatalogRouter(&fakeCatalog{listErr: errors.New("db down")})

	rec := historyGet(router, "/products")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetCategories(t *testing.T) {
	router := newCatalogRouter(&fakeCatalog{products: catalogProducts()})

	rec := historyGet(router, "/products/categories")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Categories []string `json:"categories"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"drinks", "snacks"}, resp.Categories)
}
