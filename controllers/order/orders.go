package orderControllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/checkout"
	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

type MarkDeliveredRequest struct {
	DeliveryConfirmationImage string `json:"deliveryConfirmationImage"`
}

// GET /api/user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		views, err := svc.BuyerOrders(c.Request.Context(), userID)
		if err != nil {
			log.Printf("fetching orders for user %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// GET /api/user/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		view, err := svc.BuyerOrder(c.Request.Context(), userID, orderID)
		if err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// GET /api/seller/sales
func GetSellerSalesHandler(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		views, err := svc.SellerSales(c.Request.Context(), userID)
		if err != nil {
			log.Printf("fetching sales for seller %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

// PUT /api/orders/:orderID/status
//
// The only buyer transition is Pending -> Cancelled; every other target value
// is rejected outright.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.OrderStatus != string(models.OrderStatusCancelled) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported status transition: " + req.OrderStatus})
			return
		}
		if err := svc.CancelOrder(c.Request.Context(), userID, orderID); err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully"})
	}
}

// PUT /api/orders/:orderID/delivered
func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		var req MarkDeliveredRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if err := svc.MarkDelivered(c.Request.Context(), userID, orderID, req.DeliveryConfirmationImage); err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order marked as delivered"})
	}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("orderID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}
