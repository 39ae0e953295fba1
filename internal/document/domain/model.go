package domain

import (
	"encoding/json"
	"strings"

	"github.com/smallbiznis/docpress/internal/finance"
)

// Money is a lenient monetary/numeric JSON field: numbers, numeric strings
// (with optional currency symbol and separators) and garbage all decode,
// with anything unparsable coercing to zero. Documents always render
// best-effort; malformed numeric input must never block a render.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*m = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			*m = 0
			return nil
		}
		*m = Money(finance.ParseAmount(raw))
		return nil
	}
	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		*m = 0
		return nil
	}
	*m = Money(value)
	return nil
}

// Invoice statuses.
const (
	InvoiceStatusUnpaid  = "Unpaid"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
)

// Quote statuses.
const (
	QuoteStatusPending   = "Pending"
	QuoteStatusAccepted  = "Accepted"
	QuoteStatusRejected  = "Rejected"
	QuoteStatusConverted = "Converted"
)

// LineItem is one priced product row on an itemized invoice or quote.
type LineItem struct {
	Name     string `json:"name"`
	Price    Money  `json:"price"`
	Quantity Money  `json:"quantity"`
	VAT      Money  `json:"vat"`
}

// Invoice is the flat invoice record supplied by the caller; read-only to
// the rendering core. Either the Amount/VAT pair or Items is populated.
type Invoice struct {
	Number     string     `json:"number"`
	ClientID   string     `json:"client_id"`
	ClientName string     `json:"client_name"`
	Amount     Money      `json:"amount"`
	VAT        Money      `json:"vat"`
	Items      []LineItem `json:"items"`
	DueDate    string     `json:"due_date"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
}

// Quote mirrors Invoice with quote-flavoured fields.
type Quote struct {
	Number     string     `json:"number"`
	ClientID   string     `json:"client_id"`
	ClientName string     `json:"client_name"`
	Amount     Money      `json:"amount"`
	VAT        Money      `json:"vat"`
	Items      []LineItem `json:"items"`
	ValidUntil string     `json:"valid_until"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
}

// StatementInvoice is one row of a client statement's invoice listing.
type StatementInvoice struct {
	Number  string `json:"number"`
	Date    string `json:"date"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
	Amount  Money  `json:"amount"`
}

// Client identifies the statement recipient.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// CompanySettings is the read-only issuer identity placed on documents.
type CompanySettings struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Contact        string `json:"contact"`
	VATNumber      string `json:"vat_number"`
	Registration   string `json:"registration_number"`
	Website        string `json:"website"`
	Logo           string `json:"logo"`
	CurrencySymbol string `json:"currency_symbol"`
}

// WatermarkSpec is the per-request watermark override.
type WatermarkSpec struct {
	Enabled  bool    `json:"enabled"`
	Text     string  `json:"text"`
	Opacity  float64 `json:"opacity"`
	FontSize float64 `json:"font_size"`
	Color    string  `json:"color"`
}

// Result is one finished render: PDF bytes plus document metadata.
type Result struct {
	Kind   string
	Number string
	Pages  int
	PDF    []byte
}
