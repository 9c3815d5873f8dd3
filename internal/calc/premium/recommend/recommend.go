package recommend

import "fmt"

type SectionRecommendInput struct {
	RequiredInertiaCM4 float64 `json:"required_inertia_cm4"`
}

type SectionRecommendResult struct {
	Section    string  `json:"section"`
	InertiaCM4 float64 `json:"inertia_cm4"`
	Notes      string  `json:"notes"`
}

type ipeSection struct {
	name string
	iy   float64 // cm4, strong axis
}

var ipeTable = []ipeSection{
	{"IPE 80", 80.1},
	{"IPE 100", 171},
	{"IPE 120", 318},
	{"IPE 140", 541},
	{"IPE 160", 869},
	{"IPE 180", 1317},
	{"IPE 200", 1943},
	{"IPE 220", 2772},
	{"IPE 240", 3892},
	{"IPE 270", 5790},
	{"IPE 300", 8356},
	{"IPE 330", 11770},
	{"IPE 360", 16270},
	{"IPE 400", 23130},
	{"IPE 450", 33740},
	{"IPE 500", 48200},
	{"IPE 550", 67120},
	{"IPE 600", 92080},
}

// Section picks the lightest IPE profile whose strong-axis inertia covers
// the requirement, typically the output of the beam auto-sizer.
func Section(in SectionRecommendInput) (SectionRecommendResult, error) {
	if in.RequiredInertiaCM4 <= 0 {
		return SectionRecommendResult{}, fmt.Errorf("invalid input")
	}
	for _, s := range ipeTable {
		if s.iy >= in.RequiredInertiaCM4 {
			return SectionRecommendResult{
				Section:    s.name,
				InertiaCM4: s.iy,
				Notes:      "Smallest IPE profile meeting the required inertia.",
			}, nil
		}
	}
	return SectionRecommendResult{}, fmt.Errorf("required inertia exceeds IPE range")
}
