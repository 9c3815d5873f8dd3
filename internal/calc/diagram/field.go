package diagram

import "github.com/cpmech/gosl/utl"

// evaluate discretizes [0,L] into n samples and builds the shear, moment,
// slope, and deflection sequences by left-to-right superposition. All values
// are SI. Shear jumps at point loads and the moment jumps at applied
// moments; both discontinuities are kept as-is.
func (lc *LoadCase) evaluate(ra float64, n int) (x, shear, moment, slope, defl []float64) {
	x = utl.LinSpace(0, lc.length, n)
	dx := x[1] - x[0]

	shear = make([]float64, n)
	moment = make([]float64, n)
	for i := 0; i < n; i++ {
		shear[i] = ra
		moment[i] = ra * x[i]
	}

	for _, l := range lc.loads {
		for i := 0; i < n; i++ {
			if x[i] >= l.pos {
				shear[i] -= l.mag
				moment[i] -= l.mag * (x[i] - l.pos)
			}
		}
	}

	if lc.udl != nil {
		w, a, b := lc.udl.w, lc.udl.a, lc.udl.b
		span := b - a
		for i := 0; i < n; i++ {
			switch {
			case x[i] < a:
			case x[i] <= b:
				shear[i] -= w * (x[i] - a)
				moment[i] -= w * (x[i] - a) * (x[i] - a) / 2
			default:
				shear[i] -= w * span
				moment[i] -= w * (span*span/2 + (x[i]-b)*span)
			}
		}
	}

	for _, m := range lc.moments {
		for i := 0; i < n; i++ {
			if x[i] >= m.pos {
				moment[i] += m.mag
			}
		}
	}

	// Forward (left-rectangle) cumulative integration. No boundary condition
	// is imposed on the slope; the deflection is shifted so its minimum is
	// zero, an approximate correction rather than y(0)=y(L)=0.
	slope = make([]float64, n)
	defl = make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += moment[i] / lc.ei * dx
		slope[i] = sum
	}
	sum = 0.0
	minY := 0.0
	for i := 0; i < n; i++ {
		sum += slope[i] * dx
		defl[i] = sum
		if i == 0 || defl[i] < minY {
			minY = defl[i]
		}
	}
	for i := 0; i < n; i++ {
		defl[i] -= minY
	}
	return x, shear, moment, slope, defl
}
