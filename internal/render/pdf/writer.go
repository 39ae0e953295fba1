// Package pdf converts a rendered paged document into PDF bytes. The byte
// layout of the output is not a contract; only the draw instructions are.
package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/smallbiznis/docpress/internal/render"
)

const fontFamily = "Helvetica"

// Write serializes the document with one PDF page per rendered page,
// painting the watermark first so it sits beneath the content.
func Write(doc *render.Document) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetAutoPageBreak(false, 0)

	registered := map[string]bool{}
	for _, page := range doc.Pages {
		pdf.AddPage()
		if page.Watermark != nil {
			drawWatermark(pdf, doc, page.Watermark)
		}
		for _, op := range page.Ops {
			drawOp(pdf, op, registered)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawOp(pdf *gofpdf.Fpdf, op render.Op, registered map[string]bool) {
	switch v := op.(type) {
	case render.TextOp:
		drawText(pdf, v)
	case render.RectOp:
		pdf.SetFillColor(int(v.Fill.R), int(v.Fill.G), int(v.Fill.B))
		pdf.Rect(v.X, v.Y, v.Width, v.Height, "F")
	case render.LineOp:
		pdf.SetDrawColor(int(v.Color.R), int(v.Color.G), int(v.Color.B))
		pdf.SetLineWidth(v.Thickness)
		pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
	case render.ImageOp:
		drawImage(pdf, v, registered)
	}
}

func drawText(pdf *gofpdf.Fpdf, op render.TextOp) {
	style := ""
	if op.Bold {
		style = "B"
	}
	pdf.SetFont(fontFamily, style, op.Size)
	pdf.SetTextColor(int(op.Color.R), int(op.Color.G), int(op.Color.B))

	x := op.X
	switch op.Align {
	case render.AlignCenter:
		x -= pdf.GetStringWidth(op.Text) / 2
	case render.AlignRight:
		x -= pdf.GetStringWidth(op.Text)
	}
	// TextOp Y is the top of the line box; gofpdf wants the baseline.
	pdf.Text(x, op.Y+op.Size, op.Text)
}

func drawImage(pdf *gofpdf.Fpdf, op render.ImageOp, registered map[string]bool) {
	if op.Placeholder || len(op.Data) == 0 {
		drawPlaceholder(pdf, op)
		return
	}
	if !registered[op.Name] {
		opts := gofpdf.ImageOptions{ImageType: op.Format, ReadDpi: false}
		pdf.RegisterImageOptionsReader(op.Name, opts, bytes.NewReader(op.Data))
		registered[op.Name] = true
	}
	pdf.ImageOptions(op.Name, op.X, op.Y, op.Width, op.Height, false, gofpdf.ImageOptions{ImageType: op.Format}, 0, "")
}

func drawPlaceholder(pdf *gofpdf.Fpdf, op render.ImageOp) {
	pdf.SetDrawColor(156, 163, 175)
	pdf.SetLineWidth(1)
	pdf.SetDashPattern([]float64{3, 3}, 0)
	pdf.Rect(op.X, op.Y, op.Width, op.Height, "D")
	pdf.SetDashPattern([]float64{}, 0)

	label := op.Label
	if label == "" {
		label = "Logo"
	}
	pdf.SetFont(fontFamily, "", 8)
	pdf.SetTextColor(156, 163, 175)
	x := op.X + op.Width/2 - pdf.GetStringWidth(label)/2
	pdf.Text(x, op.Y+op.Height/2+3, label)
}

func drawWatermark(pdf *gofpdf.Fpdf, doc *render.Document, wm *render.Watermark) {
	pdf.SetAlpha(wm.Opacity, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, doc.Width/2, doc.Height/2)
	pdf.SetFont(fontFamily, "B", wm.FontSize)
	pdf.SetTextColor(int(wm.Color.R), int(wm.Color.G), int(wm.Color.B))
	x := doc.Width/2 - pdf.GetStringWidth(wm.Text)/2
	pdf.Text(x, doc.Height/2, wm.Text)
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")
}
