package report

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	diagram "Camber/internal/calc/diagram"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string        `json:"project"`
	Author  string        `json:"author"`
	Title   string        `json:"title"`
	Notes   string        `json:"notes"`
	Beam    diagram.Input `json:"beam"`
}

type Handler struct{}

// Generate runs the beam calculation and streams a paginated PDF with the
// reactions, the extreme values, the load schematic, and a sampled table of
// the four sequences.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Beam Diagram Report"
	}
	if err := diagram.CheckLimits(input.Beam); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := diagram.Calculate(input.Beam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Reactions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("RA = %.2f kN   RB = %.2f kN", res.RAKN, res.RBKN))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Extremes")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, e := range extremes(res) {
		pdf.Cell(0, 6, e)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Load schematic")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	s := res.Schematic
	pdf.Cell(0, 6, fmt.Sprintf("Supports: pin at %.2f m, roller at %.2f m", s.SupportAM, s.SupportBM))
	pdf.Ln(6)
	for i, l := range s.Loads {
		pdf.Cell(0, 6, fmt.Sprintf("Load %d: %.1f kN at %.2f m", i+1, l.MagnitudeKN, l.PositionM))
		pdf.Ln(6)
	}
	for i, m := range s.Moments {
		dir := "cw"
		if m.Direction < 0 {
			dir = "ccw"
		}
		pdf.Cell(0, 6, fmt.Sprintf("Moment %d: %.1f kNm at %.2f m (%s)", i+1, m.MagnitudeKNM, m.PositionM, dir))
		pdf.Ln(6)
	}
	if s.UDL != nil {
		pdf.Cell(0, 6, fmt.Sprintf("UDL: %.1f kN/m from %.2f m to %.2f m", s.UDL.IntensityKNM, s.UDL.StartM, s.UDL.EndM))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
		pdf.Ln(4)
	}

	writeTable(pdf, res)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"beam_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func extremes(res diagram.Result) []string {
	vmax, vx := 0.0, 0.0
	mmax, mx := 0.0, 0.0
	ymax, yx := 0.0, 0.0
	for i := range res.XM {
		if math.Abs(res.ShearKN[i]) > math.Abs(vmax) {
			vmax, vx = res.ShearKN[i], res.XM[i]
		}
		if math.Abs(res.MomentKNM[i]) > math.Abs(mmax) {
			mmax, mx = res.MomentKNM[i], res.XM[i]
		}
		if res.DeflectionMM[i] > ymax {
			ymax, yx = res.DeflectionMM[i], res.XM[i]
		}
	}
	return []string{
		fmt.Sprintf("Max shear: %.2f kN at x = %.2f m", vmax, vx),
		fmt.Sprintf("Max moment: %.2f kNm at x = %.2f m", mmax, mx),
		fmt.Sprintf("Max deflection: %.3f mm at x = %.2f m", ymax, yx),
	}
}

const tableRows = 21

func writeTable(pdf *gofpdf.Fpdf, res diagram.Result) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Sampled values")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{25, 30, 32, 35, 35}
	headers := []string{"x (m)", "V (kN)", "M (kNm)", "slope (rad)", "y (mm)"}
	for i, hdr := range headers {
		pdf.CellFormat(widths[i], 6, hdr, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)

	n := len(res.XM)
	step := (n - 1) / (tableRows - 1)
	if step < 1 {
		step = 1
	}
	for i := 0; i < n; i += step {
		cells := []string{
			fmt.Sprintf("%.3f", res.XM[i]),
			fmt.Sprintf("%.3f", res.ShearKN[i]),
			fmt.Sprintf("%.3f", res.MomentKNM[i]),
			fmt.Sprintf("%.6f", res.SlopeRad[i]),
			fmt.Sprintf("%.4f", res.DeflectionMM[i]),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
