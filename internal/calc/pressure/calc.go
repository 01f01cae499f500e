package pressure

import (
	"fmt"

	hydro "Hydraulics/internal/hydro"
)

// Input covers the pressurized sizing and pump head tool. The caller gives a
// total flow plus either a target velocity (diameter is sized) or a known
// diameter (velocity is checked). Head terms are optional.
type Input struct {
	FlowRate  float64 `json:"flow_rate"`
	FlowUnit  string  `json:"flow_unit"`
	PipeCount int     `json:"pipe_count"`

	TargetVelocity float64 `json:"target_velocity"`
	VelocityUnit   string  `json:"velocity_unit"`
	Diameter       float64 `json:"diameter"`
	DiameterUnit   string  `json:"diameter_unit"`

	Length        float64 `json:"length"`
	LengthUnit    string  `json:"length_unit"`
	HWCoefficient float64 `json:"hw_coefficient"`

	Fittings         []hydro.Fitting `json:"fittings"`
	MinorLossPercent float64         `json:"minor_loss_percent"`

	StaticHeadM         float64 `json:"static_head_m"`
	SourceElevationM    float64 `json:"source_elevation_m"`
	HighPointElevationM float64 `json:"high_point_elevation_m"`
}

type Result struct {
	PerPipeFlowM3S float64 `json:"per_pipe_flow_m3s"`
	DiameterM      float64 `json:"diameter_m"`
	VelocityMS     float64 `json:"velocity_ms"`
	FrictionHeadM  float64 `json:"friction_head_m"`
	MinorLossM     float64 `json:"minor_loss_m"`
	StaticHeadM    float64 `json:"static_head_m"`
	TotalHeadM     float64 `json:"total_head_m"`

	DiameterDisplay  float64 `json:"diameter_mm"`
	TotalHeadDisplay string  `json:"total_head_display"`
	Notes            string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	qTotal, err := hydro.ConvertFlow(in.FlowRate, in.FlowUnit)
	if err != nil {
		return Result{}, err
	}
	if qTotal <= 0 {
		return Result{}, fmt.Errorf("invalid flow rate")
	}
	if in.PipeCount <= 0 {
		in.PipeCount = 1
	}
	if in.HWCoefficient <= 0 {
		in.HWCoefficient = 140
	}
	// Parallel identical pipes share the flow evenly; headloss of the system
	// equals the per-pipe value, not the sum.
	q := qTotal / float64(in.PipeCount)

	var d, v float64
	switch {
	case in.Diameter > 0:
		d, err = hydro.ConvertLength(in.Diameter, in.DiameterUnit)
		if err != nil {
			return Result{}, err
		}
		v, err = hydro.VelocityFromQD(q, d)
		if err != nil {
			return Result{}, err
		}
	case in.TargetVelocity > 0:
		v, err = hydro.ConvertVelocity(in.TargetVelocity, in.VelocityUnit)
		if err != nil {
			return Result{}, err
		}
		d, err = hydro.DiameterFromQV(q, v)
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("either diameter or target velocity required")
	}

	res := Result{
		PerPipeFlowM3S:  q,
		DiameterM:       d,
		VelocityMS:      v,
		DiameterDisplay: d * 1000.0,
	}

	if in.Length > 0 {
		l, err := hydro.ConvertLength(in.Length, in.LengthUnit)
		if err != nil {
			return Result{}, err
		}
		hf, err := hydro.HazenWilliamsHeadloss(l, q, in.HWCoefficient, d)
		if err != nil {
			return Result{}, err
		}
		res.FrictionHeadM = hf

		if len(in.Fittings) > 0 {
			res.MinorLossM, err = hydro.MinorLossFromK(hydro.SumK(in.Fittings), v)
		} else if in.MinorLossPercent > 0 {
			res.MinorLossM, err = hydro.MinorLossPercent(hf, in.MinorLossPercent)
		}
		if err != nil {
			return Result{}, err
		}
	}

	if in.StaticHeadM > 0 {
		res.StaticHeadM = in.StaticHeadM
	} else if in.HighPointElevationM != 0 || in.SourceElevationM != 0 {
		res.StaticHeadM = hydro.StaticHeadFromElevations(in.SourceElevationM, in.HighPointElevationM)
	}

	total, err := hydro.RequiredPumpHead(res.FrictionHeadM, res.MinorLossM, res.StaticHeadM)
	if err != nil {
		return Result{}, err
	}
	res.TotalHeadM = total
	res.TotalHeadDisplay = hydro.FormatSig(total, 4)
	res.Notes = "Hazen-Williams friction with fitting and static head terms."
	return res, nil
}
