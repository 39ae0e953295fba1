package render

import "testing"

func TestParseHexColor(t *testing.T) {
	fallback := Color{R: 1, G: 2, B: 3}

	got := ParseHexColor("#2563eb", fallback)
	want := Color{R: 37, G: 99, B: 235}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	for _, malformed := range []string{"", "2563eb", "#25", "#zzzzzz", "#2563ebff"} {
		if got := ParseHexColor(malformed, fallback); got != fallback {
			t.Fatalf("expected fallback for %q, got %+v", malformed, got)
		}
	}
}

func TestStatusColorBuckets(t *testing.T) {
	green := Color{R: 22, G: 163, B: 74}
	red := Color{R: 220, G: 38, B: 38}
	amber := Color{R: 217, G: 119, B: 6}

	cases := []struct {
		status string
		want   Color
	}{
		{"Paid", green},
		{"accepted", green},
		{"Overdue", red},
		{"REJECTED", red},
		{"Unpaid", amber},
		{"Pending", amber},
		{"Converted", amber},
		{"", amber},
	}
	for _, tc := range cases {
		if got := StatusColor(tc.status); got != tc.want {
			t.Fatalf("status %q: expected %+v, got %+v", tc.status, tc.want, got)
		}
	}
}

func TestThemeWatermarkDisabled(t *testing.T) {
	theme := DefaultTheme()
	if wm := theme.watermark(); wm != nil {
		t.Fatalf("expected nil watermark by default, got %+v", wm)
	}

	theme.Watermark.Enabled = true
	if wm := theme.watermark(); wm != nil {
		t.Fatalf("enabled watermark without text should stay nil, got %+v", wm)
	}
}

func TestThemeWatermarkClampsOpacity(t *testing.T) {
	theme := DefaultTheme()
	theme.Watermark.Enabled = true
	theme.Watermark.Text = "DRAFT"

	theme.Watermark.Opacity = 0.01
	wm := theme.watermark()
	if wm == nil {
		t.Fatalf("expected watermark")
	}
	if wm.Opacity != 0.1 {
		t.Fatalf("expected opacity clamped to 0.1, got %v", wm.Opacity)
	}

	theme.Watermark.Opacity = 7
	if wm = theme.watermark(); wm.Opacity != 1.0 {
		t.Fatalf("expected opacity clamped to 1.0, got %v", wm.Opacity)
	}

	theme.Watermark.FontSize = 0
	if wm = theme.watermark(); wm.FontSize != 72 {
		t.Fatalf("expected default font size 72, got %v", wm.FontSize)
	}
}
