package batch

import (
	"fmt"

	pressure "Hydraulics/internal/calc/pressure"
)

type PressureBatchInput struct {
	Items []pressure.Input `json:"items"`
}

type PressureBatchResult struct {
	Results []pressure.Result `json:"results"`
}

func CalculatePressure(in PressureBatchInput) (PressureBatchResult, error) {
	if len(in.Items) == 0 {
		return PressureBatchResult{}, fmt.Errorf("no items")
	}
	out := PressureBatchResult{Results: make([]pressure.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := pressure.Calculate(item)
		if err != nil {
			return PressureBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
