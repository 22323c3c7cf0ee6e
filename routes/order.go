package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/order"
	"github.com/Etherealite769/WildMartBeta0.0.0/middleware"
)

// SetupOrderRoutes registers checkout, order history and seller sales.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	// websocket endpoint for real-time order updates
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		api.POST("/orders/checkout", orderControllers.CheckoutHandler(db))

		// Buyer order history
		api.GET("/user/orders", orderControllers.GetUserOrdersHandler(db))
		api.GET("/user/orders/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Status transitions
		api.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		api.PUT("/orders/:orderID/delivered", orderControllers.MarkDeliveredHandler(db))

		// Seller side
		api.GET("/seller/sales", orderControllers.GetSellerSalesHandler(db))
		api.GET("/seller/sales/export", orderControllers.ExportSellerSalesToExcel(db))
	}
}
