package diagram

// Schematic describes the loaded beam for a renderer: support positions,
// load and moment arrows, and the shaded UDL zone. Everything a front end
// needs to draw the load diagram without recomputation.
type Schematic struct {
	SpanM     float64       `json:"span_m"`
	SupportAM float64       `json:"support_a_m"`
	SupportBM float64       `json:"support_b_m"`
	Loads     []LoadArrow   `json:"loads"`
	Moments   []MomentArrow `json:"moments"`
	UDL       *UDLZone      `json:"udl,omitempty"`
}

type LoadArrow struct {
	PositionM   float64 `json:"position_m"`
	MagnitudeKN float64 `json:"magnitude_kn"`
}

type MomentArrow struct {
	PositionM    float64 `json:"position_m"`
	MagnitudeKNM float64 `json:"magnitude_knm"`
	Direction    int     `json:"direction"` // +1 counterclockwise, -1 clockwise
}

type UDLZone struct {
	StartM       float64 `json:"start_m"`
	EndM         float64 `json:"end_m"`
	IntensityKNM float64 `json:"intensity_kn_m"`
}

func buildSchematic(in Input) Schematic {
	s := Schematic{
		SpanM:     in.SpanM,
		SupportAM: 0,
		SupportBM: in.SpanM,
	}
	for _, l := range in.Loads {
		s.Loads = append(s.Loads, LoadArrow{PositionM: l.PositionM, MagnitudeKN: l.MagnitudeKN})
	}
	for _, m := range in.Moments {
		dir := 1
		if m.MagnitudeKNM < 0 {
			dir = -1
		}
		s.Moments = append(s.Moments, MomentArrow{PositionM: m.PositionM, MagnitudeKNM: m.MagnitudeKNM, Direction: dir})
	}
	if in.UDL != nil {
		s.UDL = &UDLZone{StartM: in.UDL.StartM, EndM: in.UDL.EndM, IntensityKNM: in.UDL.IntensityKNM}
	}
	return s
}
