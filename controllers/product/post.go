package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

type CreateProductInput struct {
	ProductName       string          `json:"productName" binding:"required"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `json:"price" binding:"required"`
	QuantityAvailable int             `json:"quantityAvailable" binding:"min=0"`
	CategoryID        *uint           `json:"categoryId"`
	ImageURL          string          `json:"imageUrl"`
}

// CreateProduct lists a new product owned by the authenticated seller.
// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
			return
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		status := models.ProductStatusActive
		if input.QuantityAvailable == 0 {
			status = models.ProductStatusSold
		}
		product := models.Product{
			SellerID:          userID,
			ProductName:       input.ProductName,
			Description:       input.Description,
			Price:             input.Price,
			QuantityAvailable: input.QuantityAvailable,
			Status:            status,
			CategoryID:        input.CategoryID,
			ImageURL:          input.ImageURL,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
