package service

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/smallbiznis/docpress/internal/clock"
	"github.com/smallbiznis/docpress/internal/config"
	"github.com/smallbiznis/docpress/internal/document/domain"
	"github.com/smallbiznis/docpress/internal/events"
	obscontext "github.com/smallbiznis/docpress/internal/observability/context"
	"github.com/smallbiznis/docpress/internal/observability/logger"
	"github.com/smallbiznis/docpress/internal/observability/metrics"
	"github.com/smallbiznis/docpress/internal/render"
	"github.com/smallbiznis/docpress/internal/render/assets"
	"github.com/smallbiznis/docpress/internal/render/pdf"
	templatedomain "github.com/smallbiznis/docpress/internal/template/domain"
)

type Params struct {
	fx.In

	Templates templatedomain.Service
	Resolver  *assets.Resolver
	Metrics   *metrics.RenderMetrics `optional:"true"`
	Outbox    *events.Outbox         `optional:"true"`
	Clock     clock.Clock
	Cfg       config.Config
}

type ServiceImpl struct {
	templates templatedomain.Service
	resolver  *assets.Resolver
	metrics   *metrics.RenderMetrics
	outbox    *events.Outbox
	clock     clock.Clock
	symbol    string
	orgID     int64
}

// NewService constructs the document generation service.
func NewService(p Params) domain.Service {
	return &ServiceImpl{
		templates: p.Templates,
		resolver:  p.Resolver,
		metrics:   p.Metrics,
		outbox:    p.Outbox,
		clock:     p.Clock,
		symbol:    p.Cfg.CurrencySymbol,
		orgID:     p.Cfg.DefaultOrgID,
	}
}

func (s *ServiceImpl) GenerateInvoice(ctx context.Context, req domain.GenerateInvoiceRequest) (*domain.Result, error) {
	inv := req.Invoice
	totals, vatRate := documentTotals(inv.Items, inv.Amount, inv.VAT)

	vars := map[string]string{
		"documentTitle":  templatedomain.KindInvoice.Title(),
		"documentNumber": inv.Number,
		"invoiceNumber":  inv.Number,
		"dueDate":        inv.DueDate,
		"notes":          inv.Notes,
		"status":         inv.Status,
		"issueDate":      formatDate(s.clock.Now()),
	}
	companyVars(vars, req.Company)
	clientVars(vars, inv.ClientName, "", req.Client)
	totalsVars(vars, totals, vatRate, s.currency(req.Company))

	table := itemsTable(inv.Items, totals, "Invoice "+inv.Number, s.currency(req.Company))
	return s.generate(ctx, templatedomain.KindInvoice, req.Company, req.Watermark, inv.Number, inv.Status, vars, table)
}

func (s *ServiceImpl) GenerateQuote(ctx context.Context, req domain.GenerateQuoteRequest) (*domain.Result, error) {
	quote := req.Quote
	totals, vatRate := documentTotals(quote.Items, quote.Amount, quote.VAT)

	vars := map[string]string{
		"documentTitle":  templatedomain.KindQuote.Title(),
		"documentNumber": quote.Number,
		"quoteNumber":    quote.Number,
		"validUntil":     quote.ValidUntil,
		"dueDate":        quote.ValidUntil,
		"notes":          quote.Notes,
		"status":         quote.Status,
		"issueDate":      formatDate(s.clock.Now()),
	}
	companyVars(vars, req.Company)
	clientVars(vars, quote.ClientName, "", req.Client)
	totalsVars(vars, totals, vatRate, s.currency(req.Company))

	table := itemsTable(quote.Items, totals, "Quote "+quote.Number, s.currency(req.Company))
	return s.generate(ctx, templatedomain.KindQuote, req.Company, req.Watermark, quote.Number, quote.Status, vars, table)
}

func (s *ServiceImpl) GenerateStatement(ctx context.Context, req domain.GenerateStatementRequest) (*domain.Result, error) {
	vars := map[string]string{
		"documentTitle":   templatedomain.KindStatement.Title(),
		"documentNumber":  req.Client.Name,
		"statementPeriod": req.Period,
		"issueDate":       formatDate(s.clock.Now()),
	}
	companyVars(vars, req.Company)
	client := req.Client
	clientVars(vars, client.Name, client.Address, nil)
	statementSummary(vars, req.Invoices, s.currency(req.Company))

	table := statementTable(req.Invoices, s.currency(req.Company))
	return s.generate(ctx, templatedomain.KindStatement, req.Company, req.Watermark, req.Client.Name, "", vars, table)
}

// Render dispatches to the matching generator for the requested kind. An
// unknown kind or a missing record for the kind is an explicit failure.
func (s *ServiceImpl) Render(ctx context.Context, kind string, req domain.RenderRequest) (*domain.Result, error) {
	parsed, err := templatedomain.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	switch parsed {
	case templatedomain.KindInvoice:
		if req.Invoice == nil {
			return nil, domain.ErrMissingRecord
		}
		return s.GenerateInvoice(ctx, *req.Invoice)
	case templatedomain.KindQuote:
		if req.Quote == nil {
			return nil, domain.ErrMissingRecord
		}
		return s.GenerateQuote(ctx, *req.Quote)
	default:
		if req.Statement == nil {
			return nil, domain.ErrMissingRecord
		}
		return s.GenerateStatement(ctx, *req.Statement)
	}
}

func (s *ServiceImpl) generate(
	ctx context.Context,
	kind templatedomain.Kind,
	company domain.CompanySettings,
	watermark *domain.WatermarkSpec,
	number, status string,
	vars map[string]string,
	table *render.Table,
) (result *domain.Result, err error) {
	start := time.Now()
	defer func() {
		pages := 0
		if result != nil {
			pages = result.Pages
		}
		s.metrics.ObserveRender(string(kind), pages, time.Since(start), err)
	}()

	tmpl, err := s.templates.FindDefault(ctx, kind)
	if err != nil {
		return nil, err
	}
	elements, err := tmpl.ElementList()
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	var logo *render.Logo
	if company.Logo != "" {
		logo, err = s.resolver.ResolveLogo(company.Logo)
		if err != nil {
			// A bad logo never fails a render; the placeholder box is drawn.
			log.Warn("logo resolve failed", zap.String("kind", string(kind)), zap.Error(err))
			logo, err = nil, nil
		}
	}

	engine := render.NewEngine(s.theme(watermark))
	doc := engine.Render(render.Input{
		Elements: elements,
		Vars:     vars,
		Logo:     logo,
		Table:    table,
		Title:    kind.Title(),
		Status:   status,
	})

	output, err := pdf.Write(doc)
	if err != nil {
		return nil, err
	}

	result = &domain.Result{
		Kind:   string(kind),
		Number: number,
		Pages:  len(doc.Pages),
		PDF:    output,
	}
	s.publishRendered(ctx, tmpl.ID.String(), result)

	log.Info("document rendered",
		zap.String("kind", result.Kind),
		zap.String("number", result.Number),
		zap.Int("pages", result.Pages),
	)
	return result, nil
}

func (s *ServiceImpl) theme(watermark *domain.WatermarkSpec) render.Theme {
	theme := render.DefaultTheme()
	if watermark != nil {
		theme.Watermark.Enabled = watermark.Enabled
		theme.Watermark.Text = watermark.Text
		if watermark.Opacity > 0 {
			theme.Watermark.Opacity = watermark.Opacity
		}
		if watermark.FontSize > 0 {
			theme.Watermark.FontSize = watermark.FontSize
		}
		if watermark.Color != "" {
			theme.Watermark.Color = render.ParseHexColor(watermark.Color, theme.Watermark.Color)
		}
	}
	return theme
}

func (s *ServiceImpl) currency(company domain.CompanySettings) string {
	if company.CurrencySymbol != "" {
		return company.CurrencySymbol
	}
	return s.symbol
}

func (s *ServiceImpl) publishRendered(ctx context.Context, templateID string, result *domain.Result) {
	if s.outbox == nil {
		return
	}
	orgID := obscontext.OrgIDFromContext(ctx)
	if orgID == 0 {
		orgID = s.orgID
	}
	payload := events.RenderedPayload{
		Kind:           result.Kind,
		DocumentNumber: result.Number,
		Pages:          result.Pages,
		TemplateID:     templateID,
	}
	if err := s.outbox.Publish(ctx, events.Event{
		OrgID:   orgID,
		Type:    events.EventDocumentRendered,
		Payload: payload.ToMap(),
	}); err != nil {
		logger.FromContext(ctx).Warn("publish rendered event failed", zap.Error(err))
	}
}
