package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public, user, order
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public catalog and voucher browsing (no middleware)
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
