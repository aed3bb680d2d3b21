package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/jam/internal/ledger"
)

func sampleReport() ledger.Report {
	return ledger.Report{
		Window: 24 * time.Hour,
		Slices: []ledger.Slice{
			{Label: "A", Duration: 3600 * time.Second},
			{Label: "B", Duration: 1800 * time.Second},
			{Label: "Other", Duration: 81000 * time.Second, Synthetic: true},
		},
	}
}

func TestLayoutFractionsAndAngles(t *testing.T) {
	wedges := Layout(sampleReport(), DefaultStartAngle)
	require.Len(t, wedges, 3)

	assert.InDelta(t, 1.0/24, wedges[0].Fraction, 1e-9)
	assert.InDelta(t, DefaultStartAngle, wedges[0].StartDeg, 1e-9)
	assert.InDelta(t, DefaultStartAngle+15, wedges[0].EndDeg, 1e-9)
	assert.InDelta(t, wedges[0].EndDeg, wedges[1].StartDeg, 1e-9)
	assert.InDelta(t, DefaultStartAngle+360, wedges[2].EndDeg, 1e-9)
	assert.InDelta(t, 1.0, wedges[2].To, 1e-9)
	assert.True(t, wedges[2].Synthetic)
	assert.InDelta(t, 1.0, wedges[0].Hours, 1e-9)
}

func TestLayoutOverWindowUsesTrackedTotal(t *testing.T) {
	report := ledger.Report{
		Window: 24 * time.Hour,
		Slices: []ledger.Slice{{Label: "Marathon", Duration: 25 * time.Hour}},
	}

	wedges := Layout(report, 0)
	require.Len(t, wedges, 1)
	assert.InDelta(t, 1.0, wedges[0].Fraction, 1e-9)
	assert.InDelta(t, 100.0, wedges[0].Percent, 1e-9)
	assert.InDelta(t, 25.0, wedges[0].Hours, 1e-9)
}

func TestWedgeAtWrapsAroundStartAngle(t *testing.T) {
	wedges := Layout(sampleReport(), DefaultStartAngle)

	assert.Equal(t, 0, wedgeAt(wedges, DefaultStartAngle, DefaultStartAngle+1))
	assert.Equal(t, 1, wedgeAt(wedges, DefaultStartAngle, DefaultStartAngle+16))
	assert.Equal(t, 2, wedgeAt(wedges, DefaultStartAngle, DefaultStartAngle-1))
	assert.Equal(t, 2, wedgeAt(wedges, DefaultStartAngle, -90))
	assert.Equal(t, -1, wedgeAt(nil, 0, 10))
}

func TestRenderIncludesTitleDiscAndLegend(t *testing.T) {
	opts := DefaultOptions()
	opts.Radius = 4

	out := ansi.Strip(Render(sampleReport(), opts))

	assert.Contains(t, out, DefaultTitle)
	assert.Contains(t, out, cell)
	assert.Contains(t, out, "A      4.2% (1.0 ч)")
	assert.Contains(t, out, "B      2.1% (0.5 ч)")
	assert.Contains(t, out, "Other  93.8% (22.5 ч)")

	discRows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, cell) && !strings.Contains(line, "%") {
			discRows++
		}
	}
	assert.Equal(t, 2*opts.Radius+1, discRows)
}

func TestRenderAppliesDefaults(t *testing.T) {
	out := ansi.Strip(Render(sampleReport(), Options{HourUnit: "h"}))

	assert.Contains(t, out, DefaultTitle)
	assert.Contains(t, out, "(1.0 h)")
}

func TestWritePDFProducesDocument(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WritePDF(&buf, sampleReport(), DefaultOptions()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportPDFWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, ExportPDF(path, sampleReport(), DefaultOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportPDFMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.pdf")

	err := ExportPDF(path, sampleReport(), DefaultOptions())
	require.Error(t, err)
}

func TestSectorPointsCoverSweep(t *testing.T) {
	w := Wedge{StartDeg: 0, EndDeg: 90, Fraction: 0.25}

	points := sectorPoints(100, 100, 10, w)

	require.Len(t, points, 47)
	assert.Equal(t, 100.0, points[0].X)
	assert.InDelta(t, 110.0, points[1].X, 1e-9)
	assert.InDelta(t, 100.0, points[1].Y, 1e-9)
	last := points[len(points)-1]
	assert.InDelta(t, 100.0, last.X, 1e-9)
	assert.InDelta(t, 90.0, last.Y, 1e-9)
}

// pdfString encodes s the way fpdf writes text with a UTF-8 font: UTF-16BE
// inside an escaped string operand.
func pdfString(s string) []byte {
	var b bytes.Buffer
	for _, u := range utf16.Encode([]rune(s)) {
		for _, c := range []byte{byte(u >> 8), byte(u)} {
			if c == '(' || c == ')' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	return b.Bytes()
}

func TestPDFKeepsCyrillicText(t *testing.T) {
	report := ledger.Report{
		Window: 24 * time.Hour,
		Slices: []ledger.Slice{
			{Label: "Отчёт", Duration: 3 * time.Hour},
			{Label: "Другое", Duration: 21 * time.Hour, Synthetic: true},
		},
	}

	pdf := newDocument(report, DefaultOptions())
	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	out := buf.Bytes()

	assert.True(t, bytes.Contains(out, pdfString("Отчёт")), "task label missing")
	assert.True(t, bytes.Contains(out, pdfString("Другое")), "filler label missing")
	assert.True(t, bytes.Contains(out, pdfString("(3.0 ч)")), "hour unit missing")
	assert.False(t, bytes.Contains(out, []byte("(\\(3.0 h\\))")), "hour unit replaced")
}
