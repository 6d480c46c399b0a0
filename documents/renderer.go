package documents

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin = 15.0
	lineHeight = 7.0
)

// Render mencetak dokumen menjadi berkas PDF di memori. Kalau mesin PDF
// gagal di tengah jalan, error tunggal dikembalikan dan tidak ada byte
// parsial yang dipakai.
func Render(doc Document) ([]byte, error) {
	pdf := fpdf.New(string(doc.Orientation), "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pageMargin

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case TextBlock:
			renderText(pdf, b, contentWidth)
		case TableBlock:
			renderTable(pdf, b, contentWidth)
		case RuleLine:
			pdf.Ln(3)
			y := pdf.GetY()
			pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
			pdf.Ln(3)
		case PageBreak:
			pdf.AddPage()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate document: %w", err)
	}
	return buf.Bytes(), nil
}

func renderText(pdf *fpdf.Fpdf, b TextBlock, contentWidth float64) {
	style := ""
	if b.Bold {
		style = "B"
	}
	size := b.FontSize
	if size == 0 {
		size = baseFontSize
	}
	pdf.SetFont("Arial", style, size)

	align := "L"
	if b.Centered {
		align = "C"
	}
	width := contentWidth
	if b.Indent {
		pdf.SetX(pageMargin + 8)
		width -= 8
	}
	pdf.MultiCell(width, size*0.5, b.Text, "", align, false)
	pdf.Ln(2)
}

func renderTable(pdf *fpdf.Fpdf, b TableBlock, contentWidth float64) {
	size := b.FontSize
	if size == 0 {
		size = baseFontSize
	}

	cols := len(b.Header)
	if cols == 0 && len(b.Rows) > 0 {
		cols = len(b.Rows[0])
	}
	if cols == 0 {
		return
	}

	left := pageMargin
	width := contentWidth
	if b.Indent {
		left += 8
		width -= 8
	}

	// Kolom pertama (nomor urut / label) dibuat sempit, sisanya rata.
	widths := make([]float64, cols)
	first := width * 0.08
	rest := (width - first) / float64(cols-1)
	if cols == 1 {
		first = width
		rest = 0
	}
	widths[0] = first
	for i := 1; i < cols; i++ {
		widths[i] = rest
	}

	rowHeight := size * 0.55

	writeRow := func(cells []string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, size)
		pdf.SetX(left)
		for i, cell := range cells {
			w := widths[len(widths)-1]
			if i < len(widths) {
				w = widths[i]
			}
			pdf.CellFormat(w, rowHeight, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	if len(b.Header) > 0 {
		writeRow(b.Header, true)
	}
	for _, row := range b.Rows {
		writeRow(row, false)
	}
	pdf.Ln(2)
}
