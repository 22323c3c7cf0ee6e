package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/checkout"
)

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	VoucherCode     string `json:"voucherCode"`
	SelectedItemIDs string `json:"selectedItemIds"` // comma-separated cart item ids
}

// POST /api/orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
			return
		}

		selected, err := parseSelectedItemIDs(req.SelectedItemIDs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid selectedItemIds: " + err.Error()})
			return
		}

		summary, err := svc.Checkout(c.Request.Context(), userID, checkout.CheckoutInput{
			SelectedItemIDs: selected,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			VoucherCode:     req.VoucherCode,
		})
		if err != nil {
			respondCheckoutError(c, err)
			return
		}

		broadcastNewOrder(summary)
		c.JSON(http.StatusOK, summary)
	}
}

func parseSelectedItemIDs(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func respondCheckoutError(c *gin.Context, err error) {
	var stockErr *checkout.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       stockErr.Error(),
			"productName": stockErr.ProductName,
			"available":   stockErr.Available,
			"requested":   stockErr.Requested,
		})
		return
	}
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("checkout failed: %v", err)
		c.JSON(status, gin.H{"error": "Checkout failed"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// statusForError maps the checkout error taxonomy onto HTTP statuses.
// Unrecognized errors are treated as internal and never leaked verbatim.
func statusForError(err error) int {
	switch {
	case errors.Is(err, checkout.ErrCartNotFound),
		errors.Is(err, checkout.ErrUserNotFound),
		errors.Is(err, checkout.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkout.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrNoMatchingItems),
		errors.Is(err, checkout.ErrInvalidVoucherCode),
		errors.Is(err, checkout.ErrVoucherInactive),
		errors.Is(err, checkout.ErrVoucherNotYetValid),
		errors.Is(err, checkout.ErrVoucherExpired),
		errors.Is(err, checkout.ErrVoucherLimitReached),
		errors.Is(err, checkout.ErrVoucherMinimumNotMet),
		errors.Is(err, checkout.ErrInvalidStatusTransition):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrStockConflict),
		errors.Is(err, checkout.ErrVoucherConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	id, ok := val.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return id, true
}
