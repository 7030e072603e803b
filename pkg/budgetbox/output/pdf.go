package output

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/transform"
)

// Page geometry: 17x11in landscape with half-inch margins, matching the
// proposal template.
const (
	pageWidth  = 17.0
	pageHeight = 11.0
	margin     = 0.5
	rowHeight  = 0.22
	headerSize = 8.0
	bodySize   = 7.0
)

// Document is the renderer's input: a title plus fully reconciled segments.
type Document struct {
	Title    string
	Segments []models.Segment
	// LabelColumn names the row-category column; its cells (and other
	// label-ish columns) render left-aligned.
	LabelColumn string
	// Policy identifies summation columns for currency formatting.
	Policy transform.Policy
	// LogoURL optionally places a fetched logo above the title. Fetch
	// failures skip the logo instead of failing the document.
	LogoURL string
	// HTTPClient overrides the client used for the logo fetch.
	HTTPClient *http.Client
}

// RenderPDF writes the document as a landscape PDF. Only the final write can
// fail; every per-cell formatting problem degrades to blank or $0 output.
func RenderPDF(w io.Writer, doc Document) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: pageHeight, Ht: pageWidth},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	// Core fonts are cp1252; cell text (en dashes in annotations) is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawLogo(pdf, doc)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 0.4, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(0.2)

	for _, seg := range doc.Segments {
		drawSegment(pdf, doc, seg, tr)
		pdf.Ln(0.3)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// drawLogo fetches and places the logo. Any failure logs and returns.
func drawLogo(pdf *gofpdf.Fpdf, doc Document) {
	if doc.LogoURL == "" {
		return
	}
	client := doc.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Get(doc.LogoURL)
	if err != nil {
		logging.Logger().Warn("logo fetch failed, rendering without it",
			"url", doc.LogoURL, "error", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logging.Logger().Warn("logo fetch failed, rendering without it",
			"url", doc.LogoURL, "status", resp.StatusCode)
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType(resp.Header.Get("Content-Type"), doc.LogoURL)}
	pdf.RegisterImageOptionsReader("logo", opts, resp.Body)
	if pdf.Err() {
		logging.Logger().Warn("logo decode failed, rendering without it",
			"url", doc.LogoURL, "error", pdf.Error())
		pdf.ClearError()
		return
	}
	pdf.ImageOptions("logo", margin, margin, 4.5, 1.5, false, opts, 0, "")
	pdf.SetY(margin + 1.6)
}

func imageType(contentType, url string) string {
	switch {
	case strings.Contains(contentType, "png"), strings.HasSuffix(strings.ToLower(url), ".png"):
		return "PNG"
	case strings.Contains(contentType, "gif"), strings.HasSuffix(strings.ToLower(url), ".gif"):
		return "GIF"
	default:
		return "JPG"
	}
}

// drawSegment draws one sub-table as a bordered grid: shaded bold header,
// body rows, and a shaded total row. The header repeats after page breaks.
func drawSegment(pdf *gofpdf.Fpdf, doc Document, seg models.Segment, tr func(string) string) {
	cols := seg.Table.Columns
	if len(cols) == 0 {
		return
	}
	widths := columnWidths(doc, cols)

	drawHeader := func() {
		pdf.SetFont("Times", "B", headerSize)
		pdf.SetFillColor(211, 211, 211)
		for j, c := range cols {
			pdf.CellFormat(widths[j], rowHeight, tr(c), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	pdf.SetFont("Times", "B", 10)
	pdf.CellFormat(0, 0.25, tr(seg.Name), "", 1, "L", false, 0, "")
	drawHeader()

	rows := displayRows(doc, seg.Table)
	for i, row := range rows {
		if pdf.GetY()+rowHeight > pageHeight-margin {
			pdf.AddPage()
			drawHeader()
		}
		last := i == len(rows)-1
		if last {
			pdf.SetFont("Times", "B", bodySize)
			pdf.SetFillColor(211, 211, 211)
		} else {
			pdf.SetFont("Helvetica", "", bodySize)
		}
		for j, cell := range row {
			align := "C"
			if isLabelish(doc, cols[j]) {
				align = "L"
			}
			text, link := cellText(cell)
			pdf.CellFormat(widths[j], rowHeight, tr(text), "1", 0, align, last, 0, link)
		}
		pdf.Ln(rowHeight)
	}
}

// displayRows filters and formats a reconciled table for display: blank-label
// and header-echo rows are dropped, dates and currency columns formatted.
func displayRows(doc Document, t models.Table) []models.Row {
	labelIdx := t.ColumnIndex(doc.LabelColumn)
	if labelIdx < 0 {
		labelIdx = 0
	}

	var out []models.Row
	for _, row := range t.Rows {
		label := ""
		if labelIdx < len(row) {
			label = row[labelIdx]
		}
		if strings.TrimSpace(label) == "" || transform.IsHeaderEcho(label) {
			continue
		}

		fr := make(models.Row, len(t.Columns))
		for j := range fr {
			v := ""
			if j < len(row) {
				v = row[j]
			}
			switch {
			case j == labelIdx, transform.ContainsLink(v):
				fr[j] = v
			case IsDateColumn(t.Columns[j]):
				fr[j] = FormatDate(v)
			case doc.Policy.IsSummation(t.Columns[j]):
				// Blank amounts render as $0, like every other row.
				fr[j] = FormatCurrency(v)
			default:
				fr[j] = v
			}
		}
		out = append(out, fr)
	}
	return out
}

// cellText resolves annotated cells to plain text plus an external link.
func cellText(cell string) (text, link string) {
	if url, ok := transform.LinkTarget(cell); ok {
		return transform.StripMarkup(cell), url
	}
	return cell, ""
}

func isLabelish(doc Document, column string) bool {
	if column == doc.LabelColumn {
		return true
	}
	switch strings.ToLower(column) {
	case "service", "strategy", "description", "notes":
		return true
	}
	return false
}

// columnWidths distributes the usable page width: description-style columns
// get more room, everything else shares evenly.
func columnWidths(doc Document, cols []string) []float64 {
	usable := pageWidth - 2*margin
	weights := make([]float64, len(cols))
	total := 0.0
	for j, c := range cols {
		w := 1.0
		switch {
		case strings.EqualFold(c, "description"):
			w = 3.5
		case isLabelish(doc, c):
			w = 1.8
		}
		weights[j] = w
		total += w
	}
	out := make([]float64, len(cols))
	for j, w := range weights {
		out[j] = usable * w / total
	}
	return out
}
