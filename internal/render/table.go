package render

// Column describes one table column: header label, width in points and the
// horizontal alignment of its cells.
type Column struct {
	Label string
	Width float64
	Align Align
}

// Cell is one rendered table value. A non-nil Color overrides the theme text
// color, used for status buckets.
type Cell struct {
	Text  string
	Color *Color
}

// Table is the input for the table placeholder: fixed columns, rows in
// caller order and a per-kind row height. Rows are never re-sorted.
type Table struct {
	Columns   []Column
	Rows      [][]Cell
	RowHeight float64
}

func (t *Table) rowHeight() float64 {
	if t.RowHeight > 0 {
		return t.RowHeight
	}
	return 12
}

func (t *Table) width() float64 {
	total := 0.0
	for _, col := range t.Columns {
		total += col.Width
	}
	return total
}

// renderTable draws the header band once, then one zebra-striped row per
// input item, advancing a running Y cursor. When the cursor passes the
// page-break threshold a new page is started (watermark re-applied via
// AddPage) and the cursor resets to the top margin. The header band is not
// repeated on continuation pages. Returns the cursor after the last row.
func (e *Engine) renderTable(doc *Document, table *Table, startX, startY float64) float64 {
	t := e.theme
	wm := t.watermark()
	page := doc.LastPage(wm)
	rowH := table.rowHeight()
	width := table.width()
	y := startY

	page.Add(RectOp{X: startX, Y: y, Width: width, Height: rowH, Fill: t.Colors.Dark})
	x := startX
	for _, col := range table.Columns {
		page.Add(TextOp{
			X:     colAnchor(x, col),
			Y:     y + (rowH-t.Fonts.Small)/2,
			Text:  col.Label,
			Size:  t.Fonts.Small,
			Bold:  true,
			Color: Color{R: 255, G: 255, B: 255},
			Align: col.Align,
		})
		x += col.Width
	}
	y += rowH

	for i, row := range table.Rows {
		if y > t.Spacing.PageBreakY {
			page = doc.AddPage(wm)
			y = t.Spacing.TopMargin
		}
		if i%2 == 0 {
			page.Add(RectOp{X: startX, Y: y, Width: width, Height: rowH, Fill: t.Colors.Light})
		}
		x = startX
		for c, col := range table.Columns {
			if c >= len(row) {
				break
			}
			cell := row[c]
			color := t.Colors.Dark
			if cell.Color != nil {
				color = *cell.Color
			}
			page.Add(TextOp{
				X:     colAnchor(x, col),
				Y:     y + (rowH-t.Fonts.Small)/2,
				Text:  cell.Text,
				Size:  t.Fonts.Small,
				Bold:  false,
				Color: color,
				Align: col.Align,
			})
			x += col.Width
		}
		y += rowH
	}
	return y
}

func colAnchor(x float64, col Column) float64 {
	switch col.Align {
	case AlignCenter:
		return x + col.Width/2
	case AlignRight:
		return x + col.Width - 4
	default:
		return x + 4
	}
}
