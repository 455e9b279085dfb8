package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/services"
)

// CatalogAPI is the slice of the catalog service the controllers need.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// CatalogController serves the read-only product catalog.
type CatalogController struct {
	catalog CatalogAPI
	logger  *zap.Logger
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalog CatalogAPI, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalog: catalog, logger: logger}
}

// GetProducts returns the catalog, optionally filtered by ?category=.
func (cc *CatalogController) GetProducts(c *gin.Context) {
	products, err := cc.catalog.ListProducts(c.Request.Context())
	if err != nil {
		cc.logger.Error("Failed to load products", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load products"})
		return
	}

	category := c.Query("category")
	c.JSON(http.StatusOK, gin.H{
		"products": services.FilterByCategory(products, category),
	})
}

// GetCategories returns the unique category labels in catalog order.
func (cc *CatalogController) GetCategories(c *gin.Context) {
	products, err := cc.catalog.ListProducts(c.Request.Context())
	if err != nil {
		cc.logger.Error("Failed to load products", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": services.Categories(products)})
}
