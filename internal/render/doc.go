package render

// Page dimensions in points for ISO A4.
const (
	PageWidth  = 595.0
	PageHeight = 842.0
)

// Color is an RGB triple in the 0-255 range.
type Color struct {
	R, G, B uint8
}

// Op is a single absolute-positioned draw instruction on a page.
type Op interface {
	isOp()
}

// TextOp draws a single line of text with its top-left corner at (X, Y).
type TextOp struct {
	X, Y  float64
	Text  string
	Size  float64
	Bold  bool
	Color Color
	Align Align
}

// RectOp draws a filled rectangle.
type RectOp struct {
	X, Y          float64
	Width, Height float64
	Fill          Color
}

// LineOp draws a straight line of the given thickness.
type LineOp struct {
	X1, Y1    float64
	X2, Y2    float64
	Thickness float64
	Color     Color
}

// ImageOp draws a raster image scaled into the Width x Height box. When
// Placeholder is set no image data is available and a dashed labelled box is
// drawn instead.
type ImageOp struct {
	X, Y          float64
	Width, Height float64
	Name          string
	Format        string
	Data          []byte
	Placeholder   bool
	Label         string
}

func (TextOp) isOp()  {}
func (RectOp) isOp()  {}
func (LineOp) isOp()  {}
func (ImageOp) isOp() {}

// Align controls horizontal text anchoring relative to X.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Watermark is the rotated low-opacity overlay drawn beneath page content.
type Watermark struct {
	Text     string
	Opacity  float64
	FontSize float64
	Color    Color
}

// Page holds the draw instructions for one output page. The watermark, when
// present, renders beneath every op regardless of its position in the list.
type Page struct {
	Watermark *Watermark
	Ops       []Op
}

// Add appends an op to the page. Paint order is append order.
func (p *Page) Add(op Op) {
	p.Ops = append(p.Ops, op)
}

// Document is the renderer output: an ordered sequence of pages of
// absolute-positioned draw instructions, convertible to PDF bytes.
type Document struct {
	Width  float64
	Height float64
	Pages  []*Page
}

// NewDocument creates an empty A4 document.
func NewDocument() *Document {
	return &Document{Width: PageWidth, Height: PageHeight}
}

// AddPage appends a fresh page, stamping the watermark when one is configured.
func (d *Document) AddPage(wm *Watermark) *Page {
	page := &Page{}
	if wm != nil {
		copied := *wm
		page.Watermark = &copied
	}
	d.Pages = append(d.Pages, page)
	return page
}

// LastPage returns the most recent page, creating the first one if needed.
func (d *Document) LastPage(wm *Watermark) *Page {
	if len(d.Pages) == 0 {
		return d.AddPage(wm)
	}
	return d.Pages[len(d.Pages)-1]
}
