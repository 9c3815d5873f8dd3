package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	diagram "Camber/internal/calc/diagram"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type DiagramImportResult struct {
	Count   int              `json:"count"`
	Results []diagram.Result `json:"results"`
}

// Diagrams reads load cases from the first sheet of an uploaded workbook and
// evaluates each row. Rows that do not parse or do not validate are skipped,
// matching the tolerant import behavior of the other tools.
func (h *Handler) Diagrams(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []diagram.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		input, err := parseDiagramRow(row)
		if err != nil {
			continue
		}
		if err := diagram.CheckLimits(input); err != nil {
			continue
		}
		res, err := diagram.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DiagramImportResult{Count: len(results), Results: results})
}

// parseDiagramRow expects: span_m, e_gpa, inertia_cm4, loads "mag@pos;...",
// udl "w@a:b", moments "mag@pos;...", samples. The last four cells are
// optional.
func parseDiagramRow(row []string) (diagram.Input, error) {
	span, err := toFloat(row[0])
	if err != nil {
		return diagram.Input{}, err
	}
	e, err := toFloat(row[1])
	if err != nil {
		return diagram.Input{}, err
	}
	inertia, err := toFloat(row[2])
	if err != nil {
		return diagram.Input{}, err
	}
	in := diagram.Input{SpanM: span, E_GPa: e, InertiaCM4: inertia}

	if len(row) > 3 && row[3] != "" {
		for _, item := range strings.Split(row[3], ";") {
			mag, pos, err := splitAt(item)
			if err != nil {
				return diagram.Input{}, err
			}
			in.Loads = append(in.Loads, diagram.PointLoadInput{MagnitudeKN: mag, PositionM: pos})
		}
	}
	if len(row) > 4 && row[4] != "" {
		w, zone, err := splitAtRaw(row[4])
		if err != nil {
			return diagram.Input{}, err
		}
		a, b, ok := strings.Cut(zone, ":")
		if !ok {
			return diagram.Input{}, fmt.Errorf("bad udl cell")
		}
		start, err := toFloat(a)
		if err != nil {
			return diagram.Input{}, err
		}
		end, err := toFloat(b)
		if err != nil {
			return diagram.Input{}, err
		}
		in.UDL = &diagram.UDLInput{IntensityKNM: w, StartM: start, EndM: end}
	}
	if len(row) > 5 && row[5] != "" {
		for _, item := range strings.Split(row[5], ";") {
			mag, pos, err := splitAt(item)
			if err != nil {
				return diagram.Input{}, err
			}
			in.Moments = append(in.Moments, diagram.MomentInput{MagnitudeKNM: mag, PositionM: pos})
		}
	}
	if len(row) > 6 && row[6] != "" {
		n, err := strconv.Atoi(strings.TrimSpace(row[6]))
		if err != nil {
			return diagram.Input{}, err
		}
		in.Samples = n
	}
	return in, nil
}

func splitAt(item string) (mag, pos float64, err error) {
	m, p, ok := strings.Cut(strings.TrimSpace(item), "@")
	if !ok {
		return 0, 0, fmt.Errorf("bad cell %q", item)
	}
	if mag, err = toFloat(m); err != nil {
		return 0, 0, err
	}
	if pos, err = toFloat(p); err != nil {
		return 0, 0, err
	}
	return mag, pos, nil
}

func splitAtRaw(item string) (mag float64, rest string, err error) {
	m, p, ok := strings.Cut(strings.TrimSpace(item), "@")
	if !ok {
		return 0, "", fmt.Errorf("bad cell %q", item)
	}
	if mag, err = toFloat(m); err != nil {
		return 0, "", err
	}
	return mag, p, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
