package formatter

import (
	"bytes"
	"os"
	"strings"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// In Docker runtime fonts are copied to /app/ttf,
	// so for the compiled binary the path is ./ttf/DejaVuSans.ttf.
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"

	pdfFontSourcePath = "internal/pkg/formatter/ttf/DejaVuSans.ttf"

	pdfPageWidth = 190.0
)

type PDFFormatter struct {
	fontPath string
}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{fontPath: resolveFontPath()}
}

// resolveFontPath tries to find the DejaVuSans font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	for _, p := range []string{pdfFontRuntimePath, pdfFontSourcePath} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

type pdfWriter struct {
	pdf  *gofpdf.Fpdf
	font string
	tr   func(string) string
}

func (pf *PDFFormatter) Format(report *entity.MarketReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, font: "Arial", tr: func(s string) string { return s }}
	if pf.fontPath != "" {
		// Register regular and bold styles under the same family name
		pdf.AddUTF8Font(pdfFontName, "", pf.fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", pf.fontPath)
		w.font = pdfFontName
	} else {
		// Core fonts only cover cp1252; rupee signs and the like degrade.
		w.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	w.heading(reportTitle(report), 20)

	if report.Notice != "" {
		pdf.SetFont(w.font, "", 10)
		pdf.SetTextColor(180, 60, 40)
		pdf.MultiCell(0, 5, w.tr(report.Notice), "", "", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	w.markdown(report.Analysis)

	for _, t := range report.Tables {
		w.heading(visualizationHeading(t), 14)
		w.table(tableCells(t.HTML))
	}

	if len(report.Charts) > 0 {
		w.heading("Charts", 14)
		pdf.SetFont(w.font, "", 11)
		for _, c := range report.Charts {
			pdf.MultiCell(0, 6, w.tr("- "+visualizationHeading(c)+" ("+c.Category+"), interactive in the web view"), "", "", false)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *pdfWriter) heading(text string, size float64) {
	w.pdf.SetFont(w.font, "B", size)
	w.pdf.MultiCell(0, size*0.5, w.tr(text), "", "", false)
	w.pdf.Ln(3)
}

// markdown writes analysis prose, rendering '#' lines as headings and
// dropping inline emphasis markers.
func (w *pdfWriter) markdown(text string) {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			w.pdf.Ln(3)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			size := 16.0 - float64(level)
			if size < 11 {
				size = 11
			}
			w.heading(strings.TrimSpace(strings.TrimLeft(trimmed, "#")), size)
		default:
			w.pdf.SetFont(w.font, "", 11)
			plain := strings.NewReplacer("**", "", "__", "", "`", "").Replace(trimmed)
			w.pdf.MultiCell(0, 5.5, w.tr(plain), "", "", false)
		}
	}
	w.pdf.Ln(4)
}

func (w *pdfWriter) table(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	colWidth := pdfPageWidth / float64(cols)

	for i, r := range rows {
		style := ""
		if i == 0 {
			style = "B"
		}
		w.pdf.SetFont(w.font, style, 9)
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(r) {
				cell = r[c]
			}
			w.pdf.CellFormat(colWidth, 7, w.tr(cell), "1", 0, "L", i == 0, 0, "")
		}
		w.pdf.Ln(-1)
	}
	w.pdf.Ln(5)
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
