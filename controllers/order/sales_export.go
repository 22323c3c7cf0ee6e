package orderControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/checkout"
)

// GET /api/seller/sales/export
//
// Streams the seller's sold lines as an .xlsx download, one row per order
// item.
func ExportSellerSalesToExcel(db *gorm.DB) gin.HandlerFunc {
	svc := checkout.NewService(checkout.NewGormStore(db))
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		views, err := svc.SellerSales(c.Request.Context(), userID)
		if err != nil {
			log.Printf("exporting sales for seller %d: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderNumber", "OrderDate", "OrderStatus", "PaymentStatus",
			"Buyer", "ProductName", "Quantity", "UnitPrice", "Subtotal",
			"ShippingAddress",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, view := range views {
			buyerName := ""
			if view.Buyer != nil {
				buyerName = view.Buyer.Username
			}
			for _, item := range view.Items {
				row := sheet.AddRow()
				row.AddCell().SetValue(view.OrderNumber)
				row.AddCell().SetValue(view.OrderDate.Format("2006-01-02 15:04:05"))
				row.AddCell().SetValue(string(view.OrderStatus))
				row.AddCell().SetValue(string(view.PaymentStatus))
				row.AddCell().SetValue(buyerName)
				row.AddCell().SetValue(item.ProductName)
				row.AddCell().SetValue(item.Quantity)
				row.AddCell().SetValue(item.UnitPrice.String())
				row.AddCell().SetValue(item.Subtotal.String())
				row.AddCell().SetValue(view.ShippingAddress)
			}
		}

		c.Header("Content-Disposition", "attachment; filename=sales.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
