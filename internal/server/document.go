package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	documentdomain "github.com/smallbiznis/docpress/internal/document/domain"
)

// @Summary      Generate Invoice PDF
// @Description  Render an invoice through the default invoice template
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request body documentdomain.GenerateInvoiceRequest true "Invoice Render Request"
// @Success      200  {string}  binary
// @Router       /documents/invoice [post]
func (s *Server) GenerateInvoice(c *gin.Context) {
	var req documentdomain.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.documentSvc.GenerateInvoice(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, result)
}

// @Summary      Generate Quote PDF
// @Description  Render a quote through the default quote template
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request body documentdomain.GenerateQuoteRequest true "Quote Render Request"
// @Success      200  {string}  binary
// @Router       /documents/quote [post]
func (s *Server) GenerateQuote(c *gin.Context) {
	var req documentdomain.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.documentSvc.GenerateQuote(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, result)
}

// @Summary      Generate Statement PDF
// @Description  Render a client statement through the default statement template
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request body documentdomain.GenerateStatementRequest true "Statement Render Request"
// @Success      200  {string}  binary
// @Router       /documents/statement [post]
func (s *Server) GenerateStatement(c *gin.Context) {
	var req documentdomain.GenerateStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.documentSvc.GenerateStatement(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, result)
}

// @Summary      Render Document
// @Description  Render a document of the given kind from a generic request envelope
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        kind     path  string                        true  "Document Kind"
// @Param        request  body  documentdomain.RenderRequest  true  "Render Request"
// @Success      200  {string}  binary
// @Router       /documents/{kind}/render [post]
func (s *Server) RenderDocument(c *gin.Context) {
	kind := strings.TrimSpace(c.Param("kind"))

	var req documentdomain.RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.documentSvc.Render(c.Request.Context(), kind, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writePDF(c, result)
}

func writePDF(c *gin.Context, result *documentdomain.Result) {
	filename := fmt.Sprintf("%s-%s.pdf", result.Kind, sanitizeFilename(result.Number))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Pages", strconv.Itoa(result.Pages))
	c.Header("X-Document-Number", result.Number)
	c.Data(http.StatusOK, "application/pdf", result.PDF)
}

func sanitizeFilename(number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return "document"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, number)
}
