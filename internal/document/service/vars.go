package service

import (
	"strconv"
	"time"

	"github.com/smallbiznis/docpress/internal/document/domain"
	"github.com/smallbiznis/docpress/internal/finance"
	"github.com/smallbiznis/docpress/internal/render"
)

// companyVars flattens the issuer identity into the shared variable keys
// referenced by templates and the theme-driven header/footer helpers.
func companyVars(vars map[string]string, company domain.CompanySettings) {
	vars["companyName"] = company.Name
	vars["companyAddress"] = company.Address
	vars["companyContact"] = company.Contact
	vars["companyVATNumber"] = company.VATNumber
	vars["companyRegistration"] = company.Registration
	vars["companyWebsite"] = company.Website
}

func totalsVars(vars map[string]string, totals finance.Totals, vatRate float64, symbol string) {
	vars["amount"] = finance.FormatMoney(symbol, totals.Subtotal)
	vars["subtotal"] = finance.FormatMoney(symbol, totals.Subtotal)
	vars["vatAmount"] = finance.FormatMoney(symbol, totals.VATAmount)
	vars["total"] = finance.FormatMoney(symbol, totals.Total)
	vars["vat"] = finance.FormatRate(vatRate)
	vars["vatRate"] = finance.FormatRate(vatRate)
}

func clientVars(vars map[string]string, name, address string, client *domain.Client) {
	if client != nil {
		if client.Name != "" {
			name = client.Name
		}
		if client.Address != "" {
			address = client.Address
		}
	}
	vars["clientName"] = name
	vars["clientAddress"] = address
}

// documentTotals computes totals for an itemized-or-flat record and returns
// the display VAT rate alongside.
func documentTotals(items []domain.LineItem, amount, vat domain.Money) (finance.Totals, float64) {
	if len(items) > 0 {
		converted := make([]finance.LineItem, 0, len(items))
		rateSum := 0.0
		for _, item := range items {
			converted = append(converted, finance.LineItem{
				Name:     item.Name,
				Price:    float64(item.Price),
				Quantity: float64(item.Quantity),
				VAT:      float64(item.VAT),
			})
			rateSum += float64(item.VAT)
		}
		return finance.Itemized(converted), rateSum / float64(len(items))
	}
	return finance.Flat(float64(amount), float64(vat)), float64(vat)
}

// itemsTable lays out the invoice/quote line-item table. Flat-amount
// documents render as a single synthetic row.
func itemsTable(items []domain.LineItem, totals finance.Totals, flatLabel string, symbol string) *render.Table {
	columns := []render.Column{
		{Label: "Description", Width: 255, Align: render.AlignLeft},
		{Label: "Qty", Width: 60, Align: render.AlignCenter},
		{Label: "Rate", Width: 100, Align: render.AlignRight},
		{Label: "Amount", Width: 100, Align: render.AlignRight},
	}

	rows := make([][]render.Cell, 0, len(items))
	if len(items) == 0 {
		rows = append(rows, []render.Cell{
			{Text: flatLabel},
			{Text: "1"},
			{Text: finance.FormatMoney(symbol, totals.Subtotal)},
			{Text: finance.FormatMoney(symbol, totals.Subtotal)},
		})
	}
	for _, item := range items {
		lineAmount := float64(item.Price) * float64(item.Quantity)
		rows = append(rows, []render.Cell{
			{Text: item.Name},
			{Text: formatQuantity(float64(item.Quantity))},
			{Text: finance.FormatMoney(symbol, float64(item.Price))},
			{Text: finance.FormatMoney(symbol, lineAmount)},
		})
	}

	return &render.Table{Columns: columns, Rows: rows, RowHeight: 12}
}

// statementTable lays out the statement's invoice listing with colored
// status cells, preserving caller row order.
func statementTable(invoices []domain.StatementInvoice, symbol string) *render.Table {
	columns := []render.Column{
		{Label: "Invoice #", Width: 90, Align: render.AlignLeft},
		{Label: "Date", Width: 100, Align: render.AlignCenter},
		{Label: "Due Date", Width: 100, Align: render.AlignCenter},
		{Label: "Status", Width: 95, Align: render.AlignCenter},
		{Label: "Amount", Width: 130, Align: render.AlignRight},
	}

	rows := make([][]render.Cell, 0, len(invoices))
	for _, inv := range invoices {
		statusColor := render.StatusColor(inv.Status)
		rows = append(rows, []render.Cell{
			{Text: inv.Number},
			{Text: inv.Date},
			{Text: inv.DueDate},
			{Text: inv.Status, Color: &statusColor},
			{Text: finance.FormatMoney(symbol, float64(inv.Amount))},
		})
	}

	return &render.Table{Columns: columns, Rows: rows, RowHeight: 10}
}

// statementSummary aggregates the statement totals: every invoice counts
// toward the total, paid rows toward paid, the rest toward outstanding.
func statementSummary(vars map[string]string, invoices []domain.StatementInvoice, symbol string) {
	total := 0.0
	paid := 0.0
	for _, inv := range invoices {
		amount := float64(inv.Amount)
		total += amount
		if inv.Status == domain.InvoiceStatusPaid {
			paid += amount
		}
	}
	vars["invoiceCount"] = strconv.Itoa(len(invoices))
	vars["statementTotal"] = finance.FormatMoney(symbol, total)
	vars["statementPaid"] = finance.FormatMoney(symbol, paid)
	vars["statementOutstanding"] = finance.FormatMoney(symbol, total-paid)
}

func formatQuantity(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatDate(at time.Time) string {
	return at.UTC().Format("2006-01-02")
}
