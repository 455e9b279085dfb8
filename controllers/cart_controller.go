package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/middleware"
	"github.com/Irex777/bolt-popcorn-pos/models"
	"github.com/Irex777/bolt-popcorn-pos/services"
)

// CheckoutAPI is the slice of the checkout service the controller needs.
type CheckoutAPI interface {
	Commit(ctx context.Context, cart *models.Cart, operatorID string) (uuid.UUID, error)
}

// CartController exposes the operator's in-memory cart over HTTP.
type CartController struct {
	sessions *services.SessionStore
	catalog  CatalogAPI
	checkout CheckoutAPI
	logger   *zap.Logger
}

// NewCartController creates a new CartController.
func NewCartController(sessions *services.SessionStore, catalog CatalogAPI, checkout CheckoutAPI, logger *zap.Logger) *CartController {
	return &CartController{
		sessions: sessions,
		catalog:  catalog,
		checkout: checkout,
		logger:   logger,
	}
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type cartResponse struct {
	Lines     []models.CartLine `json:"lines"`
	Total     decimal.Decimal   `json:"total"`
	ItemCount int               `json:"item_count"`
}

func cartView(cart *models.Cart) cartResponse {
	return cartResponse{
		Lines:     cart.Lines(),
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

// GetCart returns the current cart for the operator.
func (cc *CartController) GetCart(c *gin.Context) {
	operatorID, _ := middleware.GetOperatorID(c)
	c.JSON(http.StatusOK, cartView(cc.sessions.Cart(operatorID)))
}

// AddItem puts one unit of a catalog product into the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	operatorID, _ := middleware.GetOperatorID(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, err := cc.catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		cc.logger.Warn("Product lookup failed",
			zap.String("product_id", req.ProductID.String()),
			zap.Error(err),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	cart := cc.sessions.Cart(operatorID)
	cart.AddItem(*product)
	c.JSON(http.StatusOK, cartView(cart))
}

// RemoveItem takes one unit of a product out of the cart.
func (cc *CartController) RemoveItem(c *gin.Context) {
	operatorID, _ := middleware.GetOperatorID(c)

	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	cart := cc.sessions.Cart(operatorID)
	cart.RemoveItem(productID)
	c.JSON(http.StatusOK, cartView(cart))
}

// ClearCart empties the cart.
func (cc *CartController) ClearCart(c *gin.Context) {
	operatorID, _ := middleware.GetOperatorID(c)

	cart := cc.sessions.Cart(operatorID)
	cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}

// Checkout commits the cart as a sale. The cart is only cleared once
// persistence acknowledges; on failure it stays intact for a retry.
func (cc *CartController) Checkout(c *gin.Context) {
	operatorID, _ := middleware.GetOperatorID(c)

	cart := cc.sessions.Cart(operatorID)
	saleID, err := cc.checkout.Commit(c.Request.Context(), cart, operatorID)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		var failed *services.CheckoutFailedError
		if errors.As(err, &failed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to process sale"})
			return
		}
		cc.logger.Error("Unexpected checkout error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process sale"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sale_id": saleID})
}
