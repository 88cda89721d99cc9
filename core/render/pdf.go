// Package render — PDF emitter.
// Lays the entity table out as a printable cheat sheet using gofpdf.
// Glyphs are intentionally not drawn: the core fonts only cover cp1252.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/charsgen/core"
)

// pdfColumn is one column of the cheat sheet table.
type pdfColumn struct {
	header string
	width  float64 // mm
}

var pdfColumns = []pdfColumn{
	{header: "Entity", width: 50},
	{header: "Code point", width: 25},
	{header: "Block", width: 45},
	{header: "Title", width: 70},
}

const (
	pdfRowHeight    = 5.0
	pdfHeaderHeight = 6.0
)

// PDFEmitter renders one table row per (group, entity) pair.
type PDFEmitter struct{}

// NewPDFEmitter creates a PDFEmitter.
func NewPDFEmitter() *PDFEmitter {
	return &PDFEmitter{}
}

// Emit renders groups into PDF bytes. The creation and modification dates
// are fixed so that unchanged input yields an unchanged document.
func (r *PDFEmitter) Emit(groups []core.EntityGroup) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	epoch := time.Unix(0, 0).UTC()
	pdf.SetCreationDate(epoch)
	pdf.SetModificationDate(epoch)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(sheetTitle, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, pdfHeaderHeight, col.header, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Courier", "", 8)
	}
	pdf.SetHeaderFunc(header)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	for _, g := range groups {
		for _, entity := range g.Entities {
			cells := []string{entity, "U+" + g.Codepoint, g.Block, g.Title}
			for i, col := range pdfColumns {
				text := fitText(pdf, tr(cells[i]), col.width-2)
				pdf.CellFormat(col.width, pdfRowHeight, text, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFEmitter) Extension() string {
	return ".pdf"
}

// fitText truncates s so that it fits within width at the current font.
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	const ellipsis = "..."
	for len(s) > 0 && pdf.GetStringWidth(s+ellipsis) > width {
		s = s[:len(s)-1]
	}
	return s + ellipsis
}
