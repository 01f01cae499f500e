package recommend

import (
	"fmt"

	hydro "Hydraulics/internal/hydro"
)

// Commercial nominal diameters, mm (DN series).
var nominalMM = []float64{
	15, 20, 25, 32, 40, 50, 65, 80, 100, 125, 150, 200, 250, 300,
	350, 400, 450, 500, 600, 700, 800, 900, 1000, 1200, 1400, 1600, 1800, 2000,
}

type PipeSizeInput struct {
	FlowRate       float64 `json:"flow_rate"`
	FlowUnit       string  `json:"flow_unit"`
	TargetVelocity float64 `json:"target_velocity"`
	VelocityUnit   string  `json:"velocity_unit"`
}

type PipeSizeResult struct {
	RequiredDiameterMM float64 `json:"required_diameter_mm"`
	RecommendedDN      float64 `json:"recommended_dn"`
	ActualVelocityMS   float64 `json:"actual_velocity_ms"`
	Notes              string  `json:"notes"`
}

// PipeSize recommends the smallest commercial nominal diameter at or above
// the exact diameter for the target velocity, then reports the velocity the
// flow actually runs at in that pipe.
func PipeSize(in PipeSizeInput) (PipeSizeResult, error) {
	q, err := hydro.ConvertFlow(in.FlowRate, in.FlowUnit)
	if err != nil {
		return PipeSizeResult{}, err
	}
	v := in.TargetVelocity
	if v <= 0 {
		v = 1.5
		in.VelocityUnit = ""
	}
	v, err = hydro.ConvertVelocity(v, in.VelocityUnit)
	if err != nil {
		return PipeSizeResult{}, err
	}
	d, err := hydro.DiameterFromQV(q, v)
	if err != nil {
		return PipeSizeResult{}, err
	}

	requiredMM := d * 1000.0
	dn := nominalMM[len(nominalMM)-1]
	for _, candidate := range nominalMM {
		if candidate >= requiredMM {
			dn = candidate
			break
		}
	}
	if requiredMM > dn {
		return PipeSizeResult{}, fmt.Errorf("required diameter exceeds DN series")
	}
	actualV, err := hydro.VelocityFromQD(q, dn/1000.0)
	if err != nil {
		return PipeSizeResult{}, err
	}
	return PipeSizeResult{
		RequiredDiameterMM: requiredMM,
		RecommendedDN:      dn,
		ActualVelocityMS:   actualV,
		Notes:              "Next commercial nominal diameter at or above the exact size.",
	}, nil
}
