package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/version"
)

// Document is a single calculation report.
type Document struct {
	ID      string
	Title   string
	Project string
	Date    time.Time
	Inputs  []Input
	Record  Record
}

// NewDocument stamps a report with a fresh ID and the current date.
func NewDocument(project string, inputs []Input, rec Record) *Document {
	return &Document{
		ID:      uuid.NewString(),
		Title:   rec.Title(),
		Project: project,
		Date:    time.Now(),
		Inputs:  inputs,
		Record:  rec,
	}
}

// WritePDF renders the document as an A4 PDF.
func (d *Document) WritePDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := translator(pdf)
	pdf.SetTitle(d.Title, true)
	pdf.SetCreator(version.String(), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(31, 83, 141)
	pdf.Cell(0, 10, "Civil Engineering - Calculation Report")
	pdf.Ln(12)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Type: %s", d.Title)))
	pdf.Ln(6)
	if d.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", d.Project)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Code: %s (LRFD)", version.Standard))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", d.Date.Format("2006-01-02 15:04:05")))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Report ID: %s", d.ID))
	pdf.Ln(10)

	rows := make([][2]string, 0, len(d.Inputs))
	for _, in := range d.Inputs {
		rows = append(rows, [2]string{in.Label, in.Value})
	}
	table(pdf, tr, "Input Parameters", [2]string{"Parameter", "Value"}, rows)

	rows = rows[:0]
	for _, f := range d.Record.Fields() {
		rows = append(rows, [2]string{f.Label, f.Display()})
	}
	table(pdf, tr, "Calculation Results", [2]string{"Item", "Result"}, rows)

	status := d.Record.Verdict()
	if status.Passed() {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("STATUS: %s", status), "", 1, "C", false, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF writes the document to path, creating parent directories.
func (d *Document) SavePDF(path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.WritePDF(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func table(pdf *gofpdf.Fpdf, tr func(string) string, heading string, header [2]string, rows [][2]string) {
	const colWidth = 85.0

	pdf.SetTextColor(43, 43, 43)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, heading)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(225, 225, 225)
	pdf.SetDrawColor(220, 220, 220)
	pdf.CellFormat(colWidth, 7, header[0], "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidth, 7, header[1], "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(colWidth, 7, tr(r[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidth, 7, tr(r[1]), "1", 1, "L", false, 0, "")
	}
	pdf.Ln(8)
}

// Core PDF fonts are cp1252; symbols outside it are spelled out first.
var pdfSymbols = strings.NewReplacer("φ", "phi ", "⁴", "4", "⁶", "6", "≤", "<=", "≥", ">=", "√", "sqrt", "·", "*")

func translator(pdf *gofpdf.Fpdf) func(string) string {
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	return func(s string) string {
		return cp1252(pdfSymbols.Replace(s))
	}
}
