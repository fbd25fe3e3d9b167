package receipts

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"devbady/currency"
	"devbady/db"
	"devbady/models"
	"devbady/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// Handlers render order receipts as downloadable PDFs.
type Handlers struct {
	Formatter *currency.Formatter
}

func NewHandlers(f *currency.Formatter) *Handlers {
	return &Handlers{Formatter: f}
}

// PrintReceipt streams a PDF invoice for one of the caller's orders, with
// a QR code encoding the order reference.
func (h *Handlers) PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	orderID := ps.ByName("orderid")

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderId": orderID,
		"userId":  userID,
	}).Decode(&order)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	cur := order.Currency
	if cur == "" {
		cur = currency.USD
	}

	qrData := fmt.Sprintf("order=%s&user=%s&ts=%d", order.OrderID, userID, order.CreatedAt.Unix())
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		http.Error(w, "Failed to generate receipt", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Order: %s\nStatus: %s\nPlaced: %s",
		order.OrderID,
		order.Status,
		order.CreatedAt.Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(5)

	// Line items
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "Unit", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, item := range order.Items {
		pdf.CellFormat(90, 8, item.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, h.Formatter.Format(item.Price, cur), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(150, 10, "Total: "+h.Formatter.Format(order.Total, cur), "T", 1, "R", false, 0, "")

	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 230, 40, 40, false, imgOpts, 0, "")

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, "Generated by devbady.in - keep this receipt for your records.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to render receipt", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderID))
	w.Write(buf.Bytes())
}
