package domain

import "github.com/smallbiznis/docpress/internal/render"

// DefaultLayout seeds the seven-element starter layout for a document kind:
// header, logo, company block, client block, items table, totals block and
// footer, positioned for a 595x842pt page. The layout is default data only;
// header and footer geometry comes from the theme at render time.
func DefaultLayout(kind Kind) []render.Element {
	tableContent := "{itemsTable}"
	clientBlock := "Bill To:\n{clientName}\n{clientAddress}"
	totalsBlock := "Subtotal: {subtotal}\nVAT ({vatRate}): {vatAmount}\nTotal: {total}"
	if kind == KindStatement {
		tableContent = "{invoicesTable}"
		clientBlock = "Statement For:\n{clientName}\n{statementPeriod}"
		totalsBlock = "Invoices: {invoiceCount}\nTotal: {statementTotal}\nPaid: {statementPaid}\nOutstanding: {statementOutstanding}"
	}

	return []render.Element{
		{
			ID:       "header",
			Type:     render.ElementHeader,
			Content:  "{documentTitle}",
			X:        0,
			Y:        40,
			FontSize: 20,
		},
		{
			ID:      "logo",
			Type:    render.ElementLogo,
			Content: render.LogoSentinel,
			X:       40,
			Y:       16,
			Width:   120,
			Height:  48,
		},
		{
			ID:       "company-block",
			Type:     render.ElementText,
			Content:  "{companyName}\n{companyAddress}\n{companyVATNumber}",
			X:        40,
			Y:        110,
			FontSize: 9,
		},
		{
			ID:       "client-block",
			Type:     render.ElementText,
			Content:  clientBlock,
			X:        40,
			Y:        170,
			FontSize: 10,
		},
		{
			ID:      "items-table",
			Type:    render.ElementTable,
			Content: tableContent,
			X:       40,
			Y:       240,
			Width:   515,
		},
		{
			ID:         "totals-block",
			Type:       render.ElementText,
			Content:    totalsBlock,
			X:          400,
			Y:          620,
			FontSize:   11,
			FontWeight: "bold",
		},
		{
			ID:       "footer",
			Type:     render.ElementFooter,
			Content:  "Thank you for your business",
			X:        0,
			Y:        780,
			FontSize: 8,
		},
	}
}
