package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

type UpdateProductInput struct {
	ProductName       *string          `json:"productName"`
	Description       *string          `json:"description"`
	Price             *decimal.Decimal `json:"price"`
	QuantityAvailable *int             `json:"quantityAvailable"`
	CategoryID        *uint            `json:"categoryId"`
	ImageURL          *string          `json:"imageUrl"`
}

// UpdateProduct edits a seller-owned listing. Replenishing stock from zero
// flips a sold product back to active; emptying it flips it to sold.
// PUT /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		if product.SellerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.ProductName != nil {
			updates["product_name"] = *input.ProductName
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Price != nil {
			if input.Price.IsNegative() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.QuantityAvailable != nil {
			if *input.QuantityAvailable < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
				return
			}
			updates["quantity_available"] = *input.QuantityAvailable
			if *input.QuantityAvailable == 0 {
				updates["status"] = models.ProductStatusSold
			} else {
				updates["status"] = models.ProductStatusActive
			}
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			updates["category_id"] = *input.CategoryID
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}
		c.JSON(http.StatusOK, product)
	}
}
