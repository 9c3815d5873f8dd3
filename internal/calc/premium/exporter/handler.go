package exporter

import (
	"encoding/json"
	"fmt"
	"net/http"

	diagram "Camber/internal/calc/diagram"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// Diagrams evaluates a load case and streams the sampled sequences as an
// xlsx workbook: reactions on top, then one row per sample.
func (h *Handler) Diagrams(w http.ResponseWriter, r *http.Request) {
	var input diagram.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := diagram.CheckLimits(input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := diagram.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", "RA (kN)")
	f.SetCellValue(sheet, "B1", res.RAKN)
	f.SetCellValue(sheet, "A2", "RB (kN)")
	f.SetCellValue(sheet, "B2", res.RBKN)

	headers := []string{"x (m)", "V (kN)", "M (kNm)", "slope (rad)", "y (mm)"}
	for j, hdr := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 4)
		f.SetCellValue(sheet, cell, hdr)
	}
	for i := range res.XM {
		vals := []float64{res.XM[i], res.ShearKN[i], res.MomentKNM[i], res.SlopeRad[i], res.DeflectionMM[i]}
		for j, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+5)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "beam_diagrams.xlsx"))
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
