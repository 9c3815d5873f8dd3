package diagram

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_zero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero01. no loads, everything zero")

	res, err := Calculate(Input{SpanM: 10, E_GPa: 200, InertiaCM4: 5000, Samples: 101})
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "RA", 1e-15, res.RAKN, 0)
	chk.Float64(tst, "RB", 1e-15, res.RBKN, 0)
	for i := range res.XM {
		if res.ShearKN[i] != 0 || res.MomentKNM[i] != 0 || res.SlopeRad[i] != 0 || res.DeflectionMM[i] != 0 {
			tst.Errorf("nonzero field at x=%g\n", res.XM[i])
			return
		}
	}
}

func Test_sym01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sym01. 10 kN at midspan of 10 m beam")

	res, err := Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Loads:      []PointLoadInput{{MagnitudeKN: 10, PositionM: 5}},
		Samples:    1001,
	})
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "RA", 1e-12, res.RAKN, 5)
	chk.Float64(tst, "RB", 1e-12, res.RBKN, 5)
	chk.Float64(tst, "RA+RB", 1e-12, res.RAKN+res.RBKN, 10)

	// shear +5 left of the load, -5 from the load on
	chk.Float64(tst, "V(2.5)", 1e-12, res.ShearKN[250], 5)
	chk.Float64(tst, "V(7.5)", 1e-12, res.ShearKN[750], -5)

	// peak moment RA*5 = 25 kNm at midspan
	mmax, xmax := 0.0, 0.0
	for i, m := range res.MomentKNM {
		if m > mmax {
			mmax, xmax = m, res.XM[i]
		}
	}
	io.Pf("Mmax = %g kNm at x = %g m\n", mmax, xmax)
	chk.Float64(tst, "Mmax", 1e-9, mmax, 25)
	chk.Float64(tst, "x @ Mmax", 1e-9, xmax, 5)
}

func Test_udl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("udl01. 2 kN/m over [2,6] of 10 m beam")

	res, err := Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		UDL:        &UDLInput{IntensityKNM: 2, StartM: 2, EndM: 6},
		Samples:    1001,
	})
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "RB", 1e-12, res.RBKN, 3.2)
	chk.Float64(tst, "RA", 1e-12, res.RAKN, 4.8)

	// constant shear outside the zone, linear ramp inside
	chk.Float64(tst, "V(1)", 1e-12, res.ShearKN[100], 4.8)
	chk.Float64(tst, "V(4)", 1e-9, res.ShearKN[400], 4.8-2*2)
	chk.Float64(tst, "V(8)", 1e-9, res.ShearKN[800], 4.8-8)
}

func Test_moment01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("moment01. reaction and field sign conventions agree")

	// a lone 5 kNm couple at x=4: RB = +0.5 kN, RA = -0.5 kN, and the
	// internal moment must return to zero at the roller
	res, err := Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Moments:    []MomentInput{{MagnitudeKNM: 5, PositionM: 4}},
		Samples:    1001,
	})
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "RA", 1e-12, res.RAKN, -0.5)
	chk.Float64(tst, "RB", 1e-12, res.RBKN, 0.5)
	chk.Float64(tst, "M(0)", 1e-12, res.MomentKNM[0], 0)
	chk.Float64(tst, "M(L)", 1e-9, res.MomentKNM[1000], 0)

	// step of +5 kNm exactly at the couple
	jump := res.MomentKNM[400] - res.MomentKNM[399]
	chk.Float64(tst, "M jump @ 4", 0.01, jump, 5)
}

func Test_jump01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("jump01. shear steps by the load magnitude")

	res, err := Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Loads: []PointLoadInput{
			{MagnitudeKN: 10, PositionM: 2},
			{MagnitudeKN: 15, PositionM: 7},
		},
		Samples: 1001,
	})
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	chk.Float64(tst, "RA+RB", 1e-12, res.RAKN+res.RBKN, 25)
	chk.Float64(tst, "jump @ 2", 1e-9, res.ShearKN[200]-res.ShearKN[199], -10)
	chk.Float64(tst, "jump @ 7", 1e-9, res.ShearKN[700]-res.ShearKN[699], -15)
}

func Test_defl01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("defl01. deflection minimum is exactly zero")

	res, err := Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Loads:      []PointLoadInput{{MagnitudeKN: 10, PositionM: 5}},
		UDL:        &UDLInput{IntensityKNM: 2, StartM: 2, EndM: 6},
		Moments:    []MomentInput{{MagnitudeKNM: 5, PositionM: 4}},
	})
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	min := res.DeflectionMM[0]
	for _, y := range res.DeflectionMM {
		if y < min {
			min = y
		}
	}
	if min != 0 {
		tst.Errorf("deflection minimum = %g, want exactly 0\n", min)
	}
}

func Test_range01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("range01. placements outside the span are rejected")

	_, err := Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Loads:      []PointLoadInput{{MagnitudeKN: 10, PositionM: 12}},
	})
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		tst.Errorf("expected RangeError, got %v\n", err)
		return
	}
	if rerr.Item != "load" || rerr.Index != 1 {
		tst.Errorf("wrong offending item: %+v\n", rerr)
	}

	_, err = Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		UDL:        &UDLInput{IntensityKNM: 2, StartM: 6, EndM: 2},
	})
	if !errors.As(err, &rerr) || rerr.Item != "udl" {
		tst.Errorf("expected udl RangeError, got %v\n", err)
	}

	_, err = Calculate(Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Moments:    []MomentInput{{MagnitudeKNM: 5, PositionM: 11}},
	})
	if !errors.As(err, &rerr) || rerr.Item != "moment" || rerr.Index != 1 {
		tst.Errorf("expected moment RangeError, got %v\n", err)
	}
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. non-positive beam properties are rejected")

	var derr *DomainError
	for _, in := range []Input{
		{SpanM: 0, E_GPa: 200, InertiaCM4: 5000},
		{SpanM: 10, E_GPa: -1, InertiaCM4: 5000},
		{SpanM: 10, E_GPa: 200, InertiaCM4: 0},
	} {
		_, err := Calculate(in)
		if !errors.As(err, &derr) {
			tst.Errorf("expected DomainError for %+v, got %v\n", in, err)
		}
	}
}

func Test_idem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idem01. repeat runs are bit-identical")

	in := Input{
		SpanM:      10,
		E_GPa:      200,
		InertiaCM4: 5000,
		Loads:      []PointLoadInput{{MagnitudeKN: 10, PositionM: 3}, {MagnitudeKN: 4, PositionM: 8}},
		UDL:        &UDLInput{IntensityKNM: 2, StartM: 2, EndM: 6},
		Moments:    []MomentInput{{MagnitudeKNM: 5, PositionM: 4}},
		Samples:    500,
	}
	a, err := Calculate(in)
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	b, err := Calculate(in)
	if err != nil {
		tst.Errorf("Calculate failed: %v\n", err)
		return
	}
	if a.RAKN != b.RAKN || a.RBKN != b.RBKN {
		tst.Errorf("reactions differ between runs\n")
		return
	}
	for i := range a.XM {
		if a.ShearKN[i] != b.ShearKN[i] || a.MomentKNM[i] != b.MomentKNM[i] ||
			a.SlopeRad[i] != b.SlopeRad[i] || a.DeflectionMM[i] != b.DeflectionMM[i] {
			tst.Errorf("fields differ at i=%d\n", i)
			return
		}
	}
}
