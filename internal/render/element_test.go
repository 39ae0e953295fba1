package render

import (
	"errors"
	"testing"
)

func TestElementValidate(t *testing.T) {
	valid := Element{ID: "title", Type: ElementText, Content: "hi", X: 40, Y: 100}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid element, got %v", err)
	}

	cases := []struct {
		name    string
		element Element
		want    error
	}{
		{"empty id", Element{Type: ElementText}, ErrInvalidElementID},
		{"blank id", Element{ID: "   ", Type: ElementText}, ErrInvalidElementID},
		{"unknown type", Element{ID: "x", Type: "circle"}, ErrInvalidElementType},
		{"negative x", Element{ID: "x", Type: ElementText, X: -1}, ErrInvalidPosition},
		{"negative y", Element{ID: "x", Type: ElementText, Y: -5}, ErrInvalidPosition},
		{"negative width", Element{ID: "x", Type: ElementRectangle, Width: -10}, ErrInvalidDimensions},
		{"negative height", Element{ID: "x", Type: ElementRectangle, Height: -1}, ErrInvalidDimensions},
	}
	for _, tc := range cases {
		if err := tc.element.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestElementFontDefaults(t *testing.T) {
	el := Element{ID: "x", Type: ElementText}
	if got := el.fontSize(10); got != 10 {
		t.Fatalf("expected fallback size, got %v", got)
	}
	el.FontSize = 14
	if got := el.fontSize(10); got != 14 {
		t.Fatalf("expected explicit size, got %v", got)
	}

	if el.bold() {
		t.Fatalf("default weight should not be bold")
	}
	el.FontWeight = "Bold"
	if !el.bold() {
		t.Fatalf("expected case-insensitive bold")
	}
}
