package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/product"
	voucherControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/voucher"
)

// SetupPublicRoutes registers the unauthenticated browse endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/products", productControllers.GetProducts(db))
		api.GET("/products/:id", productControllers.GetProductByID(db))
		api.GET("/categories", productControllers.GetAllCategories(db))

		api.GET("/vouchers", voucherControllers.GetActiveVouchers(db))
		api.GET("/vouchers/:id", voucherControllers.GetVoucherByID(db))
	}
}
