package autodesign

import (
	"fmt"

	hydro "Hydraulics/internal/hydro"
)

// Sewer nominal diameters, mm.
var sewerDNMM = []float64{
	100, 150, 200, 250, 300, 350, 400, 450, 500, 600,
	700, 800, 900, 1000, 1200, 1400, 1600, 1800, 2000,
}

type SewerAutoInput struct {
	FlowRate      float64 `json:"flow_rate"`
	FlowUnit      string  `json:"flow_unit"`
	Roughness     float64 `json:"roughness"`
	Slope         float64 `json:"slope"`
	SlopeUnit     string  `json:"slope_unit"`
	MaxDepthRatio float64 `json:"max_depth_ratio"`
}

type SewerAutoResult struct {
	RequiredDiameterMM float64 `json:"required_diameter_mm"`
	SelectedDN         float64 `json:"selected_dn"`
	DepthRatio         float64 `json:"depth_ratio"`
	CapacityM3S        float64 `json:"capacity_m3s"`
	Notes              string  `json:"notes"`
}

// Sewer sizes a gravity sewer for the design flow at the allowed depth ratio
// and rounds up to a commercial nominal diameter, then reports the depth the
// flow actually runs at in the chosen pipe.
func Sewer(in SewerAutoInput) (SewerAutoResult, error) {
	if in.Roughness <= 0 {
		in.Roughness = 0.013
	}
	if in.MaxDepthRatio <= 0 || in.MaxDepthRatio > 1 {
		in.MaxDepthRatio = 0.8
	}
	q, err := hydro.ConvertFlow(in.FlowRate, in.FlowUnit)
	if err != nil {
		return SewerAutoResult{}, err
	}
	s, err := hydro.ConvertSlope(in.Slope, in.SlopeUnit)
	if err != nil {
		return SewerAutoResult{}, err
	}

	d, err := hydro.SolveDiameterAtDepth(q, in.Roughness, s, in.MaxDepthRatio)
	if err != nil {
		return SewerAutoResult{}, err
	}
	requiredMM := d * 1000.0

	var dn float64
	for _, candidate := range sewerDNMM {
		if candidate >= requiredMM {
			dn = candidate
			break
		}
	}
	if dn == 0 {
		return SewerAutoResult{}, fmt.Errorf("required diameter exceeds DN series")
	}

	pf, err := hydro.SolveThetaForQ(dn/1000.0, q, in.Roughness, s)
	if err != nil {
		return SewerAutoResult{}, err
	}
	return SewerAutoResult{
		RequiredDiameterMM: requiredMM,
		SelectedDN:         dn,
		DepthRatio:         pf.DepthRatio,
		CapacityM3S:        pf.QFull,
		Notes:              "Sewer auto-sized to the next nominal diameter.",
	}, nil
}
