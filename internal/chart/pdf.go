package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/faizmokh/jam/internal/ledger"
)

const (
	arcStepDeg  = 2.0
	labelLineMM = 4.5
	pdfFont     = "go"
)

// WritePDF renders the report as a single landscape page.
func WritePDF(w io.Writer, report ledger.Report, opts Options) error {
	pdf := newDocument(report, opts)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// ExportPDF writes the chart to path, replacing any existing file.
func ExportPDF(path string, report ledger.Report, opts Options) error {
	pdf := newDocument(report, opts)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

func newDocument(report ledger.Report, opts Options) *fpdf.Fpdf {
	opts = opts.withDefaults()

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.AddUTF8FontFromBytes(pdfFont, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(pdfFont, "B", gobold.TTF)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	pdf.SetFont(pdfFont, "B", 16)
	pdf.CellFormat(0, 12, opts.Title, "", 1, "C", false, 0, "")

	cx, cy := pageW/2, pageH/2+8
	radius := math.Min(pageW, pageH) * 0.3
	wedges := Layout(report, opts.StartAngle)

	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(0.4)
	for i, w := range wedges {
		if w.Fraction <= 0 {
			continue
		}
		r, g, b := paletteRGB(i)
		pdf.SetFillColor(r, g, b)
		pdf.Polygon(sectorPoints(cx, cy, radius, w), "FD")
	}

	pdf.SetFont(pdfFont, "", 10)
	for _, w := range wedges {
		if w.Fraction <= 0 {
			continue
		}
		mid := w.MidDeg()

		x, y := polar(cx, cy, radius*0.6, mid)
		lines := strings.Split(ledger.FormatLabel(w.Percent, w.Hours, opts.HourUnit), "\n")
		top := y - float64(len(lines)-1)*labelLineMM/2
		for j, line := range lines {
			pdf.Text(x-pdf.GetStringWidth(line)/2, top+float64(j)*labelLineMM+1.5, line)
		}

		x, y = polar(cx, cy, radius*1.1, mid)
		if math.Cos(mid*math.Pi/180) < 0 {
			x -= pdf.GetStringWidth(w.Label)
		}
		pdf.Text(x, y+1.5, w.Label)
	}

	return pdf
}

// sectorPoints outlines a wedge as a polygon: centre, then the arc.
func sectorPoints(cx, cy, radius float64, w Wedge) []fpdf.PointType {
	sweep := w.EndDeg - w.StartDeg
	steps := int(math.Ceil(sweep / arcStepDeg))
	if steps < 1 {
		steps = 1
	}

	points := make([]fpdf.PointType, 0, steps+2)
	points = append(points, fpdf.PointType{X: cx, Y: cy})
	for i := 0; i <= steps; i++ {
		deg := w.StartDeg + sweep*float64(i)/float64(steps)
		x, y := polar(cx, cy, radius, deg)
		points = append(points, fpdf.PointType{X: x, Y: y})
	}
	return points
}
