package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Irex777/bolt-popcorn-pos/controllers"
	"github.com/Irex777/bolt-popcorn-pos/middleware"
)

// Register wires every terminal endpoint onto the router.
func Register(
	r *gin.Engine,
	catalog *controllers.CatalogController,
	cart *controllers.CartController,
	history *controllers.HistoryController,
	logger *zap.Logger,
) {
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/")
	api.Use(middleware.OperatorMiddleware())
	{
		api.GET("/products", catalog.GetProducts)
		api.GET("/products/categories", catalog.GetCategories)

		api.GET("/cart", cart.GetCart)
		api.POST("/cart/add", cart.AddItem)
		api.DELETE("/cart/remove/:product_id", cart.RemoveItem)
		api.DELETE("/cart/clear", cart.ClearCart)
		api.POST("/cart/checkout", cart.Checkout)

		api.GET("/history", history.GetHistory)
		api.GET("/history/report", history.ExportReport)
	}
}
