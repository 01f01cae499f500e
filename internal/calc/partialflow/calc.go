package partialflow

import (
	"fmt"

	hydro "Hydraulics/internal/hydro"
)

type Mode string

const (
	// ModeDepth finds the flow depth in a known pipe.
	ModeDepth Mode = "depth"
	// ModeSize sizes a pipe to run at a design depth ratio.
	ModeSize Mode = "size"
)

type Input struct {
	Mode         Mode    `json:"mode"`
	Diameter     float64 `json:"diameter"`
	DiameterUnit string  `json:"diameter_unit"`
	FlowRate     float64 `json:"flow_rate"`
	FlowUnit     string  `json:"flow_unit"`
	Roughness    float64 `json:"roughness"`
	Slope        float64 `json:"slope"`
	SlopeUnit    string  `json:"slope_unit"`
	DepthRatio   float64 `json:"depth_ratio"`
}

type Result struct {
	ThetaRad        float64 `json:"theta_rad"`
	DepthRatio      float64 `json:"depth_ratio"`
	WettedAreaM2    float64 `json:"wetted_area_m2"`
	CapacityM3S     float64 `json:"capacity_m3s"`
	CapacityUsedPct float64 `json:"capacity_used_pct"`
	DiameterM       float64 `json:"diameter_m"`
	DiameterMM      float64 `json:"diameter_mm"`
	AtCapacity      bool    `json:"at_capacity"`
	Notes           string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.Roughness <= 0 {
		in.Roughness = 0.013
	}
	s, err := hydro.ConvertSlope(in.Slope, in.SlopeUnit)
	if err != nil {
		return Result{}, err
	}
	q, err := hydro.ConvertFlow(in.FlowRate, in.FlowUnit)
	if err != nil {
		return Result{}, err
	}

	switch in.Mode {
	case ModeSize:
		d, err := hydro.SolveDiameterAtDepth(q, in.Roughness, s, in.DepthRatio)
		if err != nil {
			return Result{}, err
		}
		theta, err := hydro.AngleFromDepthRatio(in.DepthRatio)
		if err != nil {
			return Result{}, err
		}
		qfull, err := hydro.FullFlowDischarge(d, in.Roughness, s)
		if err != nil {
			return Result{}, err
		}
		return Result{
			ThetaRad:        theta,
			DepthRatio:      in.DepthRatio,
			WettedAreaM2:    hydro.WettedArea(d, theta),
			CapacityM3S:     qfull,
			CapacityUsedPct: 100.0 * q / qfull,
			DiameterM:       d,
			DiameterMM:      d * 1000.0,
			Notes:           "Diameter sized for Manning flow at the design depth.",
		}, nil
	case ModeDepth, "":
		d, err := hydro.ConvertLength(in.Diameter, in.DiameterUnit)
		if err != nil {
			return Result{}, err
		}
		pf, err := hydro.SolveThetaForQ(d, q, in.Roughness, s)
		if err != nil {
			return Result{}, err
		}
		return Result{
			ThetaRad:        pf.Theta,
			DepthRatio:      pf.DepthRatio,
			WettedAreaM2:    pf.WettedArea,
			CapacityM3S:     pf.QFull,
			CapacityUsedPct: 100.0 * q / pf.QFull,
			DiameterM:       d,
			DiameterMM:      d * 1000.0,
			AtCapacity:      pf.DepthRatio >= 1.0,
			Notes:           "Flow depth from Manning partial-flow geometry.",
		}, nil
	}
	return Result{}, fmt.Errorf("invalid mode")
}
