package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/product"
	userControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/user"
	voucherControllers "github.com/Etherealite769/WildMartBeta0.0.0/controllers/voucher"
	"github.com/Etherealite769/WildMartBeta0.0.0/middleware"
)

// SetupAdminRoutes registers the API-key-protected management endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		voucherAdmin := adminGroup.Group("/vouchers")
		{
			voucherAdmin.POST("", voucherControllers.CreateVoucher(db))
			voucherAdmin.DELETE("/:id", voucherControllers.DeactivateVoucher(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
		}
	}
}
