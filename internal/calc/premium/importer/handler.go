package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	gravity "Hydraulics/internal/calc/gravity"
	hydro "Hydraulics/internal/hydro"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type GravityImportResult struct {
	Count   int              `json:"count"`
	Results []gravity.Result `json:"results"`
}

// Gravity imports a spreadsheet of sewer sizing rows and runs each one
// through the gravity diameter solver. Bad rows are skipped, not fatal.
func (h *Handler) Gravity(w http.ResponseWriter, r *http.Request) {
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

	var results []gravity.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		input, err := parseGravityRow(row)
		if err != nil {
			continue
		}
		res, err := gravity.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GravityImportResult{Count: len(results), Results: results})
}

// expected columns: flow, flow_unit, slope, slope_unit, roughness(optional)
func parseGravityRow(row []string) (gravity.Input, error) {
	if len(row) < 4 {
		return gravity.Input{}, fmt.Errorf("bad row")
	}
	q, err := hydro.ParseValue(row[0], "flow", row[1])
	if err != nil {
		return gravity.Input{}, err
	}
	s, err := hydro.ParseValue(row[2], "slope", row[3])
	if err != nil {
		return gravity.Input{}, err
	}
	n := 0.0
	if len(row) > 4 && row[4] != "" {
		if n, err = strconv.ParseFloat(strings.TrimSpace(row[4]), 64); err != nil {
			return gravity.Input{}, err
		}
	}
	return gravity.Input{
		Mode:      gravity.ModeDiameter,
		FlowRate:  q,
		FlowUnit:  "m3s",
		Slope:     s,
		SlopeUnit: "mpm",
		Roughness: n,
	}, nil
}
