package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/cart"
	productControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/product"
	userControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/user"
	"github.com/Etherealite769/WildMartBeta0.0.0/middleware"
)

// SetupUserRoutes registers the JWT-protected profile, cart and listing
// endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken)
	{
		// Profile
		api.GET("/user", userControllers.GetUser(db))
		api.PUT("/user", userControllers.UpdateUser(db))

		// Shopping cart
		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))
			cartGroup.POST("/add", cartControllers.AddToCart(db))
			cartGroup.PUT("/items/:itemID", cartControllers.UpdateCartItem(db))
			cartGroup.DELETE("/items/:itemID", cartControllers.DeleteCartItem(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
		}

		// Seller listings
		api.GET("/user/products", productControllers.GetMyProducts(db))
		api.POST("/products", productControllers.CreateProduct(db))
		api.PUT("/products/:id", productControllers.UpdateProduct(db))
		api.DELETE("/products/:id", productControllers.DeleteProduct(db))
	}
}
