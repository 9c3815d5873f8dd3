package autodesign

import (
	"fmt"

	diagram "Camber/internal/calc/diagram"
)

type BeamAutoInput struct {
	SpanM                float64                  `json:"span_m"`
	E_GPa                float64                  `json:"e_gpa"`
	Loads                []diagram.PointLoadInput `json:"loads"`
	UDL                  *diagram.UDLInput        `json:"udl,omitempty"`
	Moments              []diagram.MomentInput    `json:"moments"`
	DeflectionLimitRatio float64                  `json:"deflection_limit_ratio"`
}

type BeamAutoResult struct {
	RequiredInertiaCM4 float64 `json:"required_inertia_cm4"`
	DeflectionMM       float64 `json:"deflection_mm"`
	DeflectionLimitMM  float64 `json:"deflection_limit_mm"`
	Notes              string  `json:"notes"`
}

// trial section used to probe the load case; deflection scales with 1/I so
// one evaluation fixes the required inertia.
const trialInertiaCM4 = 1000.0

// Beam sizes the second moment of area so the peak deflection meets
// span/ratio.
func Beam(in BeamAutoInput) (BeamAutoResult, error) {
	if in.SpanM <= 0 {
		return BeamAutoResult{}, fmt.Errorf("invalid input")
	}
	if in.DeflectionLimitRatio <= 0 {
		in.DeflectionLimitRatio = 250
	}
	if in.E_GPa <= 0 {
		in.E_GPa = 200
	}

	probe := diagram.Input{
		SpanM:      in.SpanM,
		E_GPa:      in.E_GPa,
		InertiaCM4: trialInertiaCM4,
		Loads:      in.Loads,
		UDL:        in.UDL,
		Moments:    in.Moments,
	}
	if err := diagram.CheckLimits(probe); err != nil {
		return BeamAutoResult{}, err
	}
	res, err := diagram.Calculate(probe)
	if err != nil {
		return BeamAutoResult{}, err
	}

	ymax := 0.0
	for _, y := range res.DeflectionMM {
		if y > ymax {
			ymax = y
		}
	}
	limit := in.SpanM * 1000.0 / in.DeflectionLimitRatio
	if ymax == 0 {
		return BeamAutoResult{
			RequiredInertiaCM4: 0,
			DeflectionLimitMM:  limit,
			Notes:              "No deflection under the given loads.",
		}, nil
	}

	required := trialInertiaCM4 * ymax / limit
	return BeamAutoResult{
		RequiredInertiaCM4: required,
		DeflectionMM:       ymax * trialInertiaCM4 / required,
		DeflectionLimitMM:  limit,
		Notes:              "Inertia sized so peak deflection meets span/ratio.",
	}, nil
}
