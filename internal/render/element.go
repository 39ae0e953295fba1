package render

import (
	"errors"
	"strings"
)

// ElementType enumerates the drawable primitives a template may contain.
type ElementType string

const (
	ElementText      ElementType = "text"
	ElementHeader    ElementType = "header"
	ElementFooter    ElementType = "footer"
	ElementLogo      ElementType = "logo"
	ElementImage     ElementType = "image"
	ElementLine      ElementType = "line"
	ElementRectangle ElementType = "rectangle"
	ElementTable     ElementType = "table"
)

// LogoSentinel marks image content that resolves to the caller-supplied
// company logo instead of literal text.
const LogoSentinel = "{companyLogo}"

// Element is one positioned drawable unit of a template. Coordinates are
// top-left page-relative points. Zero Width/Height means auto-size for text.
type Element struct {
	ID         string      `json:"id"`
	Type       ElementType `json:"type"`
	Content    string      `json:"content,omitempty"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Width      float64     `json:"width,omitempty"`
	Height     float64     `json:"height,omitempty"`
	FontSize   float64     `json:"font_size,omitempty"`
	FontWeight string      `json:"font_weight,omitempty"`
	Color      string      `json:"color,omitempty"`
}

var (
	ErrInvalidElementID   = errors.New("invalid_element_id")
	ErrInvalidElementType = errors.New("invalid_element_type")
	ErrInvalidPosition    = errors.New("invalid_position")
	ErrInvalidDimensions  = errors.New("invalid_dimensions")
)

var validElementTypes = map[ElementType]struct{}{
	ElementText:      {},
	ElementHeader:    {},
	ElementFooter:    {},
	ElementLogo:      {},
	ElementImage:     {},
	ElementLine:      {},
	ElementRectangle: {},
	ElementTable:     {},
}

// Validate enforces the element invariants: a non-empty id, a known type,
// non-negative coordinates and, when present, positive dimensions.
func (e Element) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrInvalidElementID
	}
	if _, ok := validElementTypes[e.Type]; !ok {
		return ErrInvalidElementType
	}
	if e.X < 0 || e.Y < 0 {
		return ErrInvalidPosition
	}
	if e.Width < 0 || e.Height < 0 {
		return ErrInvalidDimensions
	}
	return nil
}

func (e Element) bold() bool {
	return strings.EqualFold(strings.TrimSpace(e.FontWeight), "bold")
}

func (e Element) fontSize(fallback float64) float64 {
	if e.FontSize > 0 {
		return e.FontSize
	}
	return fallback
}
