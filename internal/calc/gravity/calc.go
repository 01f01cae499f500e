package gravity

import (
	"fmt"

	hydro "Hydraulics/internal/hydro"
)

type Mode string

const (
	// ModeDischarge computes the full-pipe capacity of a known diameter.
	ModeDischarge Mode = "discharge"
	// ModeDiameter sizes the pipe for a required discharge.
	ModeDiameter Mode = "diameter"
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
}

type Result struct {
	DischargeM3S float64 `json:"discharge_m3s"`
	DiameterM    float64 `json:"diameter_m"`
	DiameterMM   float64 `json:"diameter_mm"`
	VelocityMS   float64 `json:"velocity_ms"`
	Notes        string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.Roughness <= 0 {
		in.Roughness = 0.013
	}
	s, err := hydro.ConvertSlope(in.Slope, in.SlopeUnit)
	if err != nil {
		return Result{}, err
	}
	if s <= 0 {
		return Result{}, fmt.Errorf("invalid slope")
	}

	switch in.Mode {
	case ModeDiameter:
		q, err := hydro.ConvertFlow(in.FlowRate, in.FlowUnit)
		if err != nil {
			return Result{}, err
		}
		d, err := hydro.DiameterForFullFlowDischarge(q, in.Roughness, s)
		if err != nil {
			return Result{}, err
		}
		v, err := hydro.VelocityFromQD(q, d)
		if err != nil {
			return Result{}, err
		}
		return Result{
			DischargeM3S: q,
			DiameterM:    d,
			DiameterMM:   d * 1000.0,
			VelocityMS:   v,
			Notes:        "Diameter sized for full-pipe Manning flow.",
		}, nil
	case ModeDischarge, "":
		d, err := hydro.ConvertLength(in.Diameter, in.DiameterUnit)
		if err != nil {
			return Result{}, err
		}
		q, err := hydro.FullFlowDischarge(d, in.Roughness, s)
		if err != nil {
			return Result{}, err
		}
		v, err := hydro.VelocityFromQD(q, d)
		if err != nil {
			return Result{}, err
		}
		return Result{
			DischargeM3S: q,
			DiameterM:    d,
			DiameterMM:   d * 1000.0,
			VelocityMS:   v,
			Notes:        "Full-pipe Manning capacity.",
		}, nil
	}
	return Result{}, fmt.Errorf("invalid mode")
}
