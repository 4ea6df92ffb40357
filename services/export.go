package services

import (
	"fmt"
	"io"

	"github.com/Govind-619/CorpSite/models"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
)

var orderExportHeaders = []string{
	"Order ID", "Created At", "Status", "Amount", "Currency",
	"Customer Name", "Customer Email", "Customer Contact", "Payment ID", "Failure Reason",
}

// ExportOrders writes orders as an XLSX workbook with a summary block
func ExportOrders(w io.Writer, title string, orders []models.PaymentOrder) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	titleRow := sheet.AddRow()
	titleCell := titleRow.AddCell()
	titleCell.SetString(title)
	titleCell.SetStyle(bold)
	sheet.AddRow()

	headerRow := sheet.AddRow()
	for _, h := range orderExportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	totals := map[models.PaymentStatus]int{}
	paidByCurrency := map[string]decimal.Decimal{}
	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetString(o.OrderID)
		row.AddCell().SetString(o.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(string(o.Status))
		amount, _ := o.Amount.Float64()
		row.AddCell().SetFloat(amount)
		row.AddCell().SetString(o.Currency)
		row.AddCell().SetString(o.Customer.Name)
		row.AddCell().SetString(o.Customer.Email)
		row.AddCell().SetString(o.Customer.Contact)
		row.AddCell().SetString(o.GatewayPaymentID)
		row.AddCell().SetString(o.FailureReason)

		totals[o.Status]++
		if o.Status == models.PaymentStatusPaid {
			paidByCurrency[o.Currency] = paidByCurrency[o.Currency].Add(o.Amount)
		}
	}

	sheet.AddRow()
	summaryRow := sheet.AddRow()
	summaryCell := summaryRow.AddCell()
	summaryCell.SetString("Summary")
	summaryCell.SetStyle(bold)

	summary := [][2]string{{"Total Orders", fmt.Sprintf("%d", len(orders))}}
	for _, s := range []models.PaymentStatus{
		models.PaymentStatusCreated, models.PaymentStatusAttempted, models.PaymentStatusPaid, models.PaymentStatusFailed,
	} {
		summary = append(summary, [2]string{"Orders " + string(s), fmt.Sprintf("%d", totals[s])})
	}
	for currency, sum := range paidByCurrency {
		summary = append(summary, [2]string{"Collected " + currency, sum.StringFixed(2)})
	}
	for _, data := range summary {
		row := sheet.AddRow()
		row.AddCell().SetString(data[0])
		row.AddCell().SetString(data[1])
	}

	return file.Write(w)
}
