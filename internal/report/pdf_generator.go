package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth    = 210.0 // A4 portrait, mm
	pdfPageHeight   = 297.0
	pdfMargin       = 12.7
	pdfContentWidth = pdfPageWidth - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and flow state for the run report.
type pdfStyler struct {
	pdf        *gofpdf.Fpdf
	styles     map[string]func()
	lineHeight float64
	currentY   float64
	bottomY    float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:        pdf,
		styles:     make(map[string]func()),
		lineHeight: 6,
		currentY:   pdfMargin,
		bottomY:    pdfPageHeight - pdfMargin,
	}
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["h2"] = func() {
		s.pdf.SetFont("Arial", "B", 13)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["caption"] = func() {
		s.pdf.SetFont("Arial", "I", 9)
		s.pdf.SetTextColor(80, 80, 80)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(name string) {
	if fn, ok := s.styles[name]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.bottomY {
		s.pdf.AddPage()
		s.currentY = pdfMargin
	}
}

func (s *pdfStyler) writeParagraph(text, styleName, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

// fileTable renders the per-file audit table.
func (s *pdfStyler) fileTable(files []FileSummary) {
	headers := []string{"File", "Datapoints", "Included", "Excluded", "Max std dev"}
	widths := []float64{pdfContentWidth - 4*26, 26, 26, 26, 26}

	rowHeight := s.lineHeight
	s.checkAddPage(rowHeight)
	s.applyStyle("tableHeader")
	s.pdf.SetXY(pdfMargin, s.currentY)
	for i, h := range headers {
		s.pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "L", true, 0, "")
	}
	s.currentY += rowHeight

	s.applyStyle("tableCell")
	for _, f := range files {
		s.checkAddPage(rowHeight)
		s.pdf.SetXY(pdfMargin, s.currentY)
		maxStd := "-"
		if f.Datapoints > 0 {
			maxStd = fmt.Sprintf("%g", f.MaxStdDev)
		}
		cells := []string{
			f.Name,
			fmt.Sprintf("%d", f.Datapoints),
			fmt.Sprintf("%d", f.Included),
			fmt.Sprintf("%d", f.Excluded),
			maxStd,
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			s.pdf.CellFormat(widths[i], rowHeight, c, "1", 0, align, false, 0, "")
		}
		s.currentY += rowHeight
	}
	s.currentY += 2
}

// addPlot embeds a rendered PNG at full content width, keeping the 3:2
// aspect ratio the scatter renderer produces.
func (s *pdfStyler) addPlot(p NamedPlot) {
	width := pdfContentWidth
	height := width * (2.0 / 3.0)
	s.checkAddPage(height + s.lineHeight + 2)

	s.pdf.RegisterImageOptionsReader(p.Name,
		gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(p.PNG))
	s.pdf.ImageOptions(p.Name, pdfMargin, s.currentY, width, height, false,
		gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	s.currentY += height + 1
	s.writeParagraph(p.Name, "caption", "C")
}

// BuildPDFReport writes the optional run report: run parameters, the
// per-file audit table and every plot the run produced.
func BuildPDFReport(path string, summary RunSummary, plots []NamedPlot) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()
	s := newPDFStyler(pdf)

	s.writeParagraph("XPS sweep-averaging run report", "h1", "C")
	s.addSpacer(2)
	s.writeParagraph(fmt.Sprintf("Directory: %s", summary.Directory), "normal", "L")
	s.writeParagraph(fmt.Sprintf("Photon energy: %g eV", summary.PhotonEnergy), "normal", "L")
	s.writeParagraph(fmt.Sprintf("Standard deviation threshold: %g", summary.StdThreshold), "normal", "L")
	if summary.Observations > 0 {
		s.writeParagraph(fmt.Sprintf("Highest standard deviation in the set: %g", summary.MaxStdDev), "normal", "L")
	} else {
		s.writeParagraph("No datapoints were processed in this run.", "normal", "L")
	}
	s.addSpacer(4)

	s.writeParagraph("Per-file results", "h2", "L")
	s.fileTable(summary.Files)

	for _, p := range plots {
		s.addPlot(p)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write PDF report %s: %w", path, err)
	}
	return nil
}
