package voucherControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

type CreateVoucherInput struct {
	DiscountCode       string           `json:"discountCode" binding:"required"`
	DiscountType       string           `json:"discountType" binding:"required,oneof=PERCENTAGE FIXED_AMOUNT SHIPPING"`
	DiscountValue      decimal.Decimal  `json:"discountValue"`
	MinimumOrderAmount *decimal.Decimal `json:"minimumOrderAmount"`
	ValidFrom          time.Time        `json:"validFrom" binding:"required"`
	ValidUntil         time.Time        `json:"validUntil" binding:"required"`
	UsageLimit         *int             `json:"usageLimit"`
}

// GET /api/vouchers — active vouchers only.
func GetActiveVouchers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var vouchers []models.Voucher
		if err := db.Where("is_active = ?", true).Order("created_at DESC").Find(&vouchers).Error; err != nil {
			log.Printf("fetching vouchers: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vouchers"})
			return
		}
		c.JSON(http.StatusOK, vouchers)
	}
}

// GET /api/vouchers/:id
func GetVoucherByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var voucher models.Voucher
		if err := db.First(&voucher, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch voucher"})
			}
			return
		}
		c.JSON(http.StatusOK, voucher)
	}
}

// POST /admin/vouchers
func CreateVoucher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateVoucherInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		voucher := models.Voucher{
			DiscountCode:       strings.TrimSpace(input.DiscountCode),
			DiscountType:       models.DiscountType(input.DiscountType),
			DiscountValue:      input.DiscountValue,
			MinimumOrderAmount: input.MinimumOrderAmount,
			ValidFrom:          input.ValidFrom,
			ValidUntil:         input.ValidUntil,
			UsageLimit:         input.UsageLimit,
			IsActive:           true,
		}
		if err := db.Create(&voucher).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create voucher"})
			return
		}
		c.JSON(http.StatusCreated, voucher)
	}
}

// DELETE /admin/vouchers/:id — kill switch, not a hard delete.
func DeactivateVoucher(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Model(&models.Voucher{}).Where("id = ?", c.Param("id")).Update("is_active", false)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate voucher"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Voucher not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Voucher deactivated"})
	}
}
