package services

import (
	"bytes"
	"fmt"

	"github.com/Govind-619/CorpSite/models"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptIssuer is printed in the receipt header
type ReceiptIssuer struct {
	Name    string
	Address string
	Contact string
}

// RenderReceipt draws a one page PDF receipt for a paid order
func RenderReceipt(issuer ReceiptIssuer, order *models.PaymentOrder) ([]byte, error) {
	if order.Status != models.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: receipt requires a paid order, %s is %s", ErrStatusConflict, order.OrderID, order.Status)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, issuer.Name)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	if issuer.Address != "" {
		pdf.Cell(100, 7, issuer.Address)
		pdf.Ln(6)
	}
	if issuer.Contact != "" {
		pdf.Cell(100, 7, issuer.Contact)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	rows := [][2]string{
		{"Order ID", order.OrderID},
		{"Payment ID", order.GatewayPaymentID},
		{"Receipt", order.Receipt},
		{"Date", order.CreatedAt.Format("2006-01-02 15:04:05")},
		{"Status", string(order.Status)},
	}
	pdf.SetFont("Arial", "", 12)
	for _, r := range rows {
		pdf.CellFormat(45, 8, r[0]+":", "", 0, "L", false, 0, "")
		pdf.CellFormat(120, 8, r[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if order.Customer.Name != "" || order.Customer.Email != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(100, 8, "Billed To:")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 12)
		for _, line := range []string{order.Customer.Name, order.Customer.Email, order.Customer.Contact} {
			if line != "" {
				pdf.Cell(100, 7, line)
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(120, 10, "Amount Paid:", "T", 0, "L", false, 0, "")
	pdf.CellFormat(45, 10, order.Amount.StringFixed(2)+" "+order.Currency, "T", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(0, 10, "Thank you for your payment.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt for %s: %w", order.OrderID, err)
	}
	return buf.Bytes(), nil
}
