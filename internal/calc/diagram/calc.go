package diagram

import "math"

// Limits mirrored by the form: up to 5 point loads and 3 applied moments
// per case, one UDL.
const (
	MaxPointLoads  = 5
	MaxMoments     = 3
	DefaultSamples = 1000
)

type PointLoadInput struct {
	MagnitudeKN float64 `json:"magnitude_kn"` // downward positive
	PositionM   float64 `json:"position_m"`
}

type UDLInput struct {
	IntensityKNM float64 `json:"intensity_kn_m"`
	StartM       float64 `json:"start_m"`
	EndM         float64 `json:"end_m"`
}

type MomentInput struct {
	MagnitudeKNM float64 `json:"magnitude_knm"`
	PositionM    float64 `json:"position_m"`
}

type Input struct {
	SpanM      float64          `json:"span_m"`
	E_GPa      float64          `json:"e_gpa"`
	InertiaCM4 float64          `json:"inertia_cm4"`
	Loads      []PointLoadInput `json:"loads"`
	UDL        *UDLInput        `json:"udl,omitempty"`
	Moments    []MomentInput    `json:"moments"`
	Samples    int              `json:"samples"`
}

type Result struct {
	RAKN         float64   `json:"ra_kn"`
	RBKN         float64   `json:"rb_kn"`
	XM           []float64 `json:"x_m"`
	ShearKN      []float64 `json:"shear_kn"`
	MomentKNM    []float64 `json:"moment_knm"`
	SlopeRad     []float64 `json:"slope_rad"`
	DeflectionMM []float64 `json:"deflection_mm"`
	Schematic    Schematic `json:"schematic"`
	Notes        string    `json:"notes"`
}

type pointLoad struct {
	mag float64 // N
	pos float64 // m
}

type udl struct {
	w    float64 // N/m
	a, b float64 // m
}

type appliedMoment struct {
	mag float64 // N*m, sign sets arrow direction
	pos float64 // m
}

// LoadCase is a validated configuration in SI units. It is immutable after
// NewLoadCase and owned by a single request.
type LoadCase struct {
	length  float64 // m
	ei      float64 // Pa*m^4
	loads   []pointLoad
	udl     *udl
	moments []appliedMoment
}

// NewLoadCase converts the form units (kN, kNm, GPa, cm4) to SI and checks
// every placement against the span. The first violation aborts the whole
// request.
func NewLoadCase(in Input) (LoadCase, error) {
	if in.SpanM <= 0 || math.IsNaN(in.SpanM) {
		return LoadCase{}, &DomainError{Field: "span_m", Value: in.SpanM}
	}
	if in.E_GPa <= 0 || math.IsNaN(in.E_GPa) {
		return LoadCase{}, &DomainError{Field: "e_gpa", Value: in.E_GPa}
	}
	if in.InertiaCM4 <= 0 || math.IsNaN(in.InertiaCM4) {
		return LoadCase{}, &DomainError{Field: "inertia_cm4", Value: in.InertiaCM4}
	}

	lc := LoadCase{
		length: in.SpanM,
		ei:     in.E_GPa * 1e9 * in.InertiaCM4 * 1e-8,
	}

	for i, l := range in.Loads {
		if l.PositionM < 0 || l.PositionM > lc.length {
			return LoadCase{}, &RangeError{Item: "load", Index: i + 1, PositionM: l.PositionM, SpanM: lc.length}
		}
		lc.loads = append(lc.loads, pointLoad{mag: l.MagnitudeKN * 1e3, pos: l.PositionM})
	}

	if in.UDL != nil {
		u := *in.UDL
		if u.StartM < 0 || u.StartM > u.EndM || u.EndM > lc.length {
			return LoadCase{}, &RangeError{Item: "udl", PositionM: u.StartM, EndM: u.EndM, SpanM: lc.length}
		}
		lc.udl = &udl{w: u.IntensityKNM * 1e3, a: u.StartM, b: u.EndM}
	}

	for i, m := range in.Moments {
		if m.PositionM < 0 || m.PositionM > lc.length {
			return LoadCase{}, &RangeError{Item: "moment", Index: i + 1, PositionM: m.PositionM, SpanM: lc.length}
		}
		lc.moments = append(lc.moments, appliedMoment{mag: m.MagnitudeKNM * 1e3, pos: m.PositionM})
	}

	return lc, nil
}

// Reactions solves the two global equilibrium equations for the simply
// supported beam (pin at x=0, roller at x=L). Applied moments are
// clockwise-positive, the same sense as their step in the moment field, so
// the internal moment closes to zero at the roller.
func (lc *LoadCase) Reactions() (ra, rb float64) {
	totalLoad := 0.0
	momentAboutA := 0.0
	for _, l := range lc.loads {
		totalLoad += l.mag
		momentAboutA += l.mag * l.pos
	}
	if lc.udl != nil {
		resultant := lc.udl.w * (lc.udl.b - lc.udl.a)
		centroid := (lc.udl.a + lc.udl.b) / 2
		totalLoad += resultant
		momentAboutA += resultant * centroid
	}
	for _, m := range lc.moments {
		momentAboutA += m.mag
	}
	rb = momentAboutA / lc.length
	ra = totalLoad - rb
	return ra, rb
}

// Calculate runs the full pass: validate, solve reactions, evaluate the
// field, convert to output units. Pure function of its input; identical
// inputs give bit-identical results.
func Calculate(in Input) (Result, error) {
	lc, err := NewLoadCase(in)
	if err != nil {
		return Result{}, err
	}
	n := in.Samples
	if n <= 1 {
		n = DefaultSamples
	}

	ra, rb := lc.Reactions()
	x, shear, moment, slope, defl := lc.evaluate(ra, n)

	res := Result{
		RAKN:         ra / 1e3,
		RBKN:         rb / 1e3,
		XM:           x,
		ShearKN:      make([]float64, n),
		MomentKNM:    make([]float64, n),
		SlopeRad:     slope,
		DeflectionMM: make([]float64, n),
		Schematic:    buildSchematic(in),
		Notes:        "Simply supported beam; slope and deflection by forward cumulative integration.",
	}
	for i := 0; i < n; i++ {
		res.ShearKN[i] = shear[i] / 1e3
		res.MomentKNM[i] = moment[i] / 1e3
		res.DeflectionMM[i] = defl[i] * 1e3
	}
	return res, nil
}
