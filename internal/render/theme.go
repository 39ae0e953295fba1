package render

import "strings"

// Theme is the typed rendering configuration: palette, font roles, spacing
// constants, logo placement and the optional watermark. It replaces the
// free-form style maps stored alongside older templates.
type Theme struct {
	Colors    Palette
	Fonts     FontSizes
	Spacing   Spacing
	Logo      LogoSettings
	Watermark WatermarkSettings
}

type Palette struct {
	Primary    Color
	Secondary  Color
	Dark       Color
	Light      Color
	Background Color
	Border     Color
}

// FontSizes maps semantic roles to point sizes.
type FontSizes struct {
	Title   float64
	Heading float64
	Normal  float64
	Small   float64
	Tiny    float64
}

type Spacing struct {
	HeaderHeight  float64
	ContentStartY float64
	SectionGap    float64
	FooterOffset  float64
	// PageBreakY is the running-cursor threshold past which table rendering
	// starts a new page. TopMargin is the cursor reset on continuation pages.
	PageBreakY float64
	TopMargin  float64
}

// LogoPosition anchors the company logo inside the header band.
type LogoPosition string

const (
	LogoTopLeft   LogoPosition = "top-left"
	LogoTopCenter LogoPosition = "top-center"
	LogoTopRight  LogoPosition = "top-right"
)

type LogoSettings struct {
	Position  LogoPosition
	MaxWidth  float64
	MaxHeight float64
}

type WatermarkSettings struct {
	Enabled  bool
	Text     string
	Opacity  float64
	FontSize float64
	Color    Color
}

// DefaultTheme returns the stock palette and spacing used when the caller
// supplies no overrides.
func DefaultTheme() Theme {
	return Theme{
		Colors: Palette{
			Primary:    Color{R: 37, G: 99, B: 235},
			Secondary:  Color{R: 107, G: 114, B: 128},
			Dark:       Color{R: 17, G: 24, B: 39},
			Light:      Color{R: 243, G: 244, B: 246},
			Background: Color{R: 255, G: 255, B: 255},
			Border:     Color{R: 229, G: 231, B: 235},
		},
		Fonts: FontSizes{
			Title:   20,
			Heading: 13,
			Normal:  10,
			Small:   8,
			Tiny:    7,
		},
		Spacing: Spacing{
			HeaderHeight:  90,
			ContentStartY: 120,
			SectionGap:    18,
			FooterOffset:  24,
			PageBreakY:    750,
			TopMargin:     30,
		},
		Logo: LogoSettings{
			Position:  LogoTopLeft,
			MaxWidth:  120,
			MaxHeight: 48,
		},
		Watermark: WatermarkSettings{
			Enabled:  false,
			Opacity:  0.12,
			FontSize: 72,
			Color:    Color{R: 156, G: 163, B: 175},
		},
	}
}

// watermark returns the page overlay, or nil when disabled. Opacity is
// clamped to the supported [0.1, 1.0] window.
func (t Theme) watermark() *Watermark {
	if !t.Watermark.Enabled || strings.TrimSpace(t.Watermark.Text) == "" {
		return nil
	}
	opacity := t.Watermark.Opacity
	if opacity < 0.1 {
		opacity = 0.1
	}
	if opacity > 1.0 {
		opacity = 1.0
	}
	size := t.Watermark.FontSize
	if size <= 0 {
		size = 72
	}
	return &Watermark{
		Text:     t.Watermark.Text,
		Opacity:  opacity,
		FontSize: size,
		Color:    t.Watermark.Color,
	}
}

// ParseHexColor converts a #rrggbb string into a Color, falling back to the
// provided default for anything malformed.
func ParseHexColor(value string, fallback Color) Color {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != 7 || trimmed[0] != '#' {
		return fallback
	}
	var out Color
	channels := []*uint8{&out.R, &out.G, &out.B}
	for i, ch := range channels {
		hi, ok1 := hexNibble(trimmed[1+i*2])
		lo, ok2 := hexNibble(trimmed[2+i*2])
		if !ok1 || !ok2 {
			return fallback
		}
		*ch = hi<<4 | lo
	}
	return out
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// StatusColor maps a document status onto the fixed settled/failed/pending
// color buckets used by table status cells.
func StatusColor(status string) Color {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "paid", "accepted":
		return Color{R: 22, G: 163, B: 74}
	case "overdue", "rejected":
		return Color{R: 220, G: 38, B: 38}
	default:
		return Color{R: 217, G: 119, B: 6}
	}
}
