package domain

import (
	"context"
	"errors"
)

type GenerateInvoiceRequest struct {
	Invoice   Invoice         `json:"invoice"`
	Company   CompanySettings `json:"company"`
	Client    *Client         `json:"client"`
	Watermark *WatermarkSpec  `json:"watermark"`
}

type GenerateQuoteRequest struct {
	Quote     Quote           `json:"quote"`
	Company   CompanySettings `json:"company"`
	Client    *Client         `json:"client"`
	Watermark *WatermarkSpec  `json:"watermark"`
}

type GenerateStatementRequest struct {
	Client    Client             `json:"client"`
	Invoices  []StatementInvoice `json:"invoices"`
	Company   CompanySettings    `json:"company"`
	Period    string             `json:"period"`
	Watermark *WatermarkSpec     `json:"watermark"`
}

// RenderRequest feeds the generic kind dispatcher; exactly one record field
// matching the requested kind must be populated.
type RenderRequest struct {
	Invoice   *GenerateInvoiceRequest   `json:"invoice"`
	Quote     *GenerateQuoteRequest     `json:"quote"`
	Statement *GenerateStatementRequest `json:"statement"`
}

type Service interface {
	GenerateInvoice(ctx context.Context, req GenerateInvoiceRequest) (*Result, error)
	GenerateQuote(ctx context.Context, req GenerateQuoteRequest) (*Result, error)
	GenerateStatement(ctx context.Context, req GenerateStatementRequest) (*Result, error)
	Render(ctx context.Context, kind string, req RenderRequest) (*Result, error)
}

var (
	ErrMissingRecord = errors.New("missing_document_record")
)
