package render

// Logo is a decoded company logo ready to place on the page.
type Logo struct {
	Name   string
	Format string
	Data   []byte
}

// Input is the deterministic input for one render pass: the ordered element
// list, the resolved variable set, optional logo asset and optional table
// rows for the template's table placeholder.
type Input struct {
	Elements []Element
	Vars     map[string]string
	Logo     *Logo
	Table    *Table
	Title    string
	// Status, when set, draws a badge under the header title in the
	// settled/failed/pending bucket color for the value.
	Status string
}

// Engine walks an element list in paint order and emits a paged document.
// Rendering is deterministic given identical input and theme, never fails on
// missing assets and renders best-effort on malformed content.
type Engine struct {
	theme Theme
}

func NewEngine(theme Theme) *Engine {
	return &Engine{theme: theme}
}

func (e *Engine) Theme() Theme {
	return e.theme
}

// Render paints every element in list order onto a fresh document. Later
// elements draw over earlier ones. The returned document always has at least
// one page.
func (e *Engine) Render(in Input) *Document {
	doc := NewDocument()
	wm := e.theme.watermark()
	page := doc.AddPage(wm)

	hasLogoElement := false
	for _, el := range in.Elements {
		if el.Type == ElementLogo {
			hasLogoElement = true
			break
		}
	}

	cursor := e.theme.Spacing.ContentStartY
	for _, el := range in.Elements {
		switch el.Type {
		case ElementHeader:
			e.drawHeader(page, el, in, hasLogoElement)
		case ElementFooter:
			e.drawFooter(doc.LastPage(wm), el, in.Vars, cursor)
		case ElementText:
			e.drawText(page, el, in.Vars)
		case ElementLogo:
			e.drawLogo(page, in.Logo, el.X, el.Y, el.Width, el.Height)
		case ElementImage:
			if el.Content == LogoSentinel {
				e.drawLogo(page, in.Logo, el.X, el.Y, el.Width, el.Height)
			} else {
				e.drawPlaceholder(page, el.X, el.Y, el.Width, el.Height, "Image")
			}
		case ElementLine:
			thickness := el.Height
			if thickness <= 0 {
				thickness = 1
			}
			page.Add(LineOp{
				X1:        el.X,
				Y1:        el.Y,
				X2:        el.X + el.Width,
				Y2:        el.Y,
				Thickness: thickness,
				Color:     ParseHexColor(el.Color, e.theme.Colors.Border),
			})
		case ElementRectangle:
			page.Add(RectOp{
				X:      el.X,
				Y:      el.Y,
				Width:  el.Width,
				Height: el.Height,
				Fill:   ParseHexColor(el.Color, e.theme.Colors.Primary),
			})
		case ElementTable:
			if in.Table != nil {
				cursor = e.renderTable(doc, in.Table, el.X, el.Y)
			}
		}
	}
	return doc
}

// drawText substitutes tokens and emits one TextOp per line. The line advance
// equals the font size, a fixed-leading model.
func (e *Engine) drawText(page *Page, el Element, vars map[string]string) {
	resolved := Substitute(el.Content, vars)
	size := el.fontSize(e.theme.Fonts.Normal)
	for i, line := range splitLines(resolved) {
		if line == "" {
			continue
		}
		page.Add(TextOp{
			X:     el.X,
			Y:     el.Y + float64(i)*size,
			Text:  line,
			Size:  size,
			Bold:  el.bold(),
			Color: ParseHexColor(el.Color, e.theme.Colors.Dark),
			Align: AlignLeft,
		})
	}
}

// drawHeader paints the theme-driven header band: background band, 4pt top
// accent stripe, logo, centered document title, right-aligned company block
// and a bottom separator rule. The element supplies the title text and
// vertical anchor; the theme supplies the geometry.
func (e *Engine) drawHeader(page *Page, el Element, in Input, hasLogoElement bool) {
	t := e.theme
	page.Add(RectOp{X: 0, Y: 0, Width: PageWidth, Height: t.Spacing.HeaderHeight, Fill: t.Colors.Light})
	page.Add(RectOp{X: 0, Y: 0, Width: PageWidth, Height: 4, Fill: t.Colors.Primary})

	if !hasLogoElement {
		x := 40.0
		switch t.Logo.Position {
		case LogoTopCenter:
			x = (PageWidth - t.Logo.MaxWidth) / 2
		case LogoTopRight:
			x = PageWidth - 40 - t.Logo.MaxWidth
		}
		e.drawLogo(page, in.Logo, x, 16, t.Logo.MaxWidth, t.Logo.MaxHeight)
	}

	title := Substitute(el.Content, in.Vars)
	if title == "" {
		title = in.Title
	}
	titleY := el.Y
	if titleY <= 0 || titleY > t.Spacing.HeaderHeight {
		titleY = t.Spacing.HeaderHeight / 2
	}
	titleSize := el.fontSize(t.Fonts.Title)
	page.Add(TextOp{
		X:     PageWidth / 2,
		Y:     titleY,
		Text:  title,
		Size:  titleSize,
		Bold:  true,
		Color: ParseHexColor(el.Color, t.Colors.Dark),
		Align: AlignCenter,
	})
	if in.Status != "" {
		page.Add(TextOp{
			X:     PageWidth / 2,
			Y:     titleY + titleSize + 4,
			Text:  in.Status,
			Size:  t.Fonts.Small,
			Bold:  true,
			Color: StatusColor(in.Status),
			Align: AlignCenter,
		})
	}

	blockY := 20.0
	for i, entry := range []struct {
		key  string
		size float64
		bold bool
	}{
		{"companyName", t.Fonts.Normal, true},
		{"companyAddress", t.Fonts.Small, false},
		{"companyContact", t.Fonts.Small, false},
	} {
		value := in.Vars[entry.key]
		if value == "" {
			continue
		}
		page.Add(TextOp{
			X:     PageWidth - 40,
			Y:     blockY + float64(i)*(entry.size+4),
			Text:  value,
			Size:  entry.size,
			Bold:  entry.bold,
			Color: t.Colors.Dark,
			Align: AlignRight,
		})
	}

	page.Add(LineOp{
		X1:        40,
		Y1:        t.Spacing.HeaderHeight,
		X2:        PageWidth - 40,
		Y2:        t.Spacing.HeaderHeight,
		Thickness: 1,
		Color:     t.Colors.Border,
	})
}

// drawFooter paints the theme-driven footer on the last page: separator rule,
// centered registration line, a thank-you message and an optional website
// line. It trails the content cursor but never sits higher than 40pt off the
// page bottom.
func (e *Engine) drawFooter(page *Page, el Element, vars map[string]string, cursor float64) {
	t := e.theme
	y := cursor + t.Spacing.FooterOffset
	if floor := PageHeight - 40 - 2*(t.Fonts.Small+4); y < floor {
		y = floor
	}

	page.Add(LineOp{
		X1:        40,
		Y1:        y - 8,
		X2:        PageWidth - 40,
		Y2:        y - 8,
		Thickness: 1,
		Color:     t.Colors.Border,
	})

	message := Substitute(el.Content, vars)
	if message == "" {
		message = "Thank you for your business"
	}
	lines := make([]string, 0, 3)
	if reg := vars["companyRegistration"]; reg != "" {
		lines = append(lines, reg)
	}
	lines = append(lines, message)
	if site := vars["companyWebsite"]; site != "" {
		lines = append(lines, site)
	}
	for i, line := range lines {
		page.Add(TextOp{
			X:     PageWidth / 2,
			Y:     y + float64(i)*(t.Fonts.Small+4),
			Text:  line,
			Size:  el.fontSize(t.Fonts.Small),
			Bold:  false,
			Color: t.Colors.Secondary,
			Align: AlignCenter,
		})
	}
}

// drawLogo places the logo image scaled into the box, or a dashed labelled
// placeholder when no asset is available. A missing logo never fails a render.
func (e *Engine) drawLogo(page *Page, logo *Logo, x, y, w, h float64) {
	if w <= 0 {
		w = e.theme.Logo.MaxWidth
	}
	if h <= 0 {
		h = e.theme.Logo.MaxHeight
	}
	if logo == nil || len(logo.Data) == 0 {
		e.drawPlaceholder(page, x, y, w, h, "Logo")
		return
	}
	page.Add(ImageOp{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Name:   logo.Name,
		Format: logo.Format,
		Data:   logo.Data,
	})
}

func (e *Engine) drawPlaceholder(page *Page, x, y, w, h float64, label string) {
	page.Add(ImageOp{
		X:           x,
		Y:           y,
		Width:       w,
		Height:      h,
		Placeholder: true,
		Label:       label,
	})
}

func splitLines(text string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
