package documents

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"boarding_house/internal/domain/entities"
	"boarding_house/internal/usecase"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"

	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	pdfFontFamily = "DejaVu"
)

// DejaVu covers the Vietnamese letters used in tenant, room and service names.
var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	pdfFontRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	pdfFontBold []byte
)

// BuildInvoicePDF renders the public copy of an invoice.
func BuildInvoicePDF(d usecase.InvoiceDetails) ([]byte, error) {
	pdf := newInvoicePDF(d)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newInvoicePDF(d usecase.InvoiceDetails) *gofpdf.Fpdf {
	inv := d.Invoice
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "", pdfFontRegular)
	pdf.AddUTF8FontFromBytes(pdfFontFamily, "B", pdfFontBold)
	pdf.SetFont(pdfFontFamily, "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s - Room %s", inv.Month, d.RoomName))
	pdf.Ln(10)
	pdf.SetFont(pdfFontFamily, "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Tenant: %s", d.TenantName))
	pdf.Ln(5)
	if d.TenantPhone != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Phone: %s", d.TenantPhone))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", inv.Status))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Issued: %s", inv.CreatedAt.Format("02/01/2006")))
	pdf.Ln(5)
	if inv.PaymentDate != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Paid: %s", inv.PaymentDate.Format("02/01/2006")))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont(pdfFontFamily, "B", 10)
	pdf.CellFormat(50, 6, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Old", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "New", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Usage", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Unit price", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont(pdfFontFamily, "", 10)
	pdf.CellFormat(150, 6, "Room", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 6, money(inv.RoomPriceSnapshot), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	utilityRow(pdf, "Electricity", inv.Electricity)
	utilityRow(pdf, "Water", inv.Water)
	for _, s := range inv.Services {
		pdf.CellFormat(150, 6, s.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, money(s.Price), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	if inv.AdditionalFees != 0 {
		pdf.CellFormat(150, 6, "Additional fees", "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, money(inv.AdditionalFees), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont(pdfFontFamily, "B", 10)
	pdf.CellFormat(150, 7, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, money(inv.TotalAmount), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	return pdf
}

func utilityRow(pdf *gofpdf.Fpdf, label string, c entities.UtilityCharge) {
	pdf.CellFormat(50, 6, label, "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, quantity(c.Old), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, quantity(c.New), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, quantity(c.Usage), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, money(c.PriceSnapshot), "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, money(c.Total), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

// BuildMonthXLSX renders the payment summary of a month: one row per room
// on the "summary" sheet and one row per invoice on the "invoices" sheet.
func BuildMonthXLSX(month string, summaries []usecase.RoomPaymentSummary, invoices []usecase.InvoiceDetails) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "summary"
	invoicesSheet := "invoices"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(invoicesSheet); err != nil {
		return nil, err
	}

	var total, paid, unpaid float64
	for _, s := range summaries {
		total += s.TotalAmount
		paid += s.PaidAmount
		unpaid += s.UnpaidAmount
	}

	_ = f.SetCellValue(summarySheet, "A1", "Payment summary")
	_ = f.SetCellValue(summarySheet, "A2", "Month")
	_ = f.SetCellValue(summarySheet, "B2", month)
	_ = f.SetCellValue(summarySheet, "A3", "Generated")
	_ = f.SetCellValue(summarySheet, "B3", time.Now().UTC().Format(time.RFC3339))

	header := []string{"Room", "Base price", "Tenant", "Total", "Paid", "Unpaid", "Status"}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		_ = f.SetCellValue(summarySheet, cell, h)
	}
	row := 6
	for _, s := range summaries {
		status := "UNPAID"
		if s.IsPaid {
			status = "PAID"
		}
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), s.RoomName)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), s.BasePrice)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), s.TenantName)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), s.TotalAmount)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), s.PaidAmount)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), s.UnpaidAmount)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("G%d", row), status)
		row++
	}
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Total")
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), total)
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), paid)
	_ = f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), unpaid)

	invoiceHeader := []string{
		"Invoice", "Room", "Tenant", "Month", "Electricity usage", "Electricity", "Water usage", "Water",
		"Services", "Room price", "Additional fees", "Total", "Status", "Payment date", "Access key",
	}
	for i, h := range invoiceHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(invoicesSheet, cell, h)
	}
	for i, d := range invoices {
		inv := d.Invoice
		var services float64
		for _, s := range inv.Services {
			services += s.Price
		}
		paymentDate := ""
		if inv.PaymentDate != nil {
			paymentDate = inv.PaymentDate.Format("2006-01-02")
		}
		values := []interface{}{
			inv.ID, d.RoomName, d.TenantName, inv.Month,
			inv.Electricity.Usage, inv.Electricity.Total, inv.Water.Usage, inv.Water.Total,
			services, inv.RoomPriceSnapshot, inv.AdditionalFees, inv.TotalAmount,
			string(inv.Status), paymentDate, inv.AccessKey,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(invoicesSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func quantity(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
