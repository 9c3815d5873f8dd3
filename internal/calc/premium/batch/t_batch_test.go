package batch

import (
	"strings"
	"testing"

	diagram "Camber/internal/calc/diagram"

	"github.com/cpmech/gosl/chk"
)

func Test_batch01(tst *testing.T) {

	chk.PrintTitle("batch01. results keep input order")

	in := DiagramBatchInput{Items: []diagram.Input{
		{SpanM: 10, E_GPa: 200, InertiaCM4: 5000, Loads: []diagram.PointLoadInput{{MagnitudeKN: 10, PositionM: 5}}, Samples: 101},
		{SpanM: 10, E_GPa: 200, InertiaCM4: 5000, UDL: &diagram.UDLInput{IntensityKNM: 2, StartM: 2, EndM: 6}, Samples: 101},
		{SpanM: 8, E_GPa: 200, InertiaCM4: 5000, Samples: 101},
	}}
	out, err := CalculateDiagrams(in)
	if err != nil {
		tst.Errorf("CalculateDiagrams failed: %v\n", err)
		return
	}
	if len(out.Results) != 3 {
		tst.Errorf("got %d results\n", len(out.Results))
		return
	}
	chk.Float64(tst, "item1 RA", 1e-12, out.Results[0].RAKN, 5)
	chk.Float64(tst, "item2 RA", 1e-12, out.Results[1].RAKN, 4.8)
	chk.Float64(tst, "item3 RA", 1e-12, out.Results[2].RAKN, 0)
}

func Test_batch02(tst *testing.T) {

	chk.PrintTitle("batch02. failing item is named by index")

	in := DiagramBatchInput{Items: []diagram.Input{
		{SpanM: 10, E_GPa: 200, InertiaCM4: 5000, Samples: 101},
		{SpanM: 10, E_GPa: 200, InertiaCM4: 5000, Loads: []diagram.PointLoadInput{{MagnitudeKN: 10, PositionM: 12}}},
	}}
	_, err := CalculateDiagrams(in)
	if err == nil {
		tst.Errorf("expected error\n")
		return
	}
	if !strings.Contains(err.Error(), "item 2") {
		tst.Errorf("error does not name the item: %v\n", err)
	}

	if _, err := CalculateDiagrams(DiagramBatchInput{}); err == nil {
		tst.Errorf("expected error for empty batch\n")
	}
}
