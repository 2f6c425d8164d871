package Central2D

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

/*
Sanity diagnostics

The scheme conserves the domain integral of every field up to rounding
error, and for water-like systems the first field (height) must stay
strictly positive, since the flux computation divides by it. A non-positive
height means the stability assumptions have been violated and the run is
meaningless, so that condition is fatal rather than recoverable.
*/

// SolutionCheck sums the height-like field and the two momentum-like fields
// over the canonical region, scaled by cell area, tracks the height range,
// and prints a summary. Panics if the first field is not strictly positive
// everywhere.
func (s *Solver[P, L]) SolutionCheck() (hSum, huSum, hvSum, hMin, hMax float64) {
	var (
		cellArea = s.Dx * s.Dy
	)
	hMin = s.At(0, 0, 0)
	hMax = hMin
	for j := 0; j < s.Ny; j++ {
		i0 := s.offset(0, NGhost, j+NGhost)
		row := s.u[i0 : i0+s.Nx]
		hSum += floats.Sum(row)
		if m := floats.Min(row); m < hMin {
			hMin = m
		}
		if m := floats.Max(row); m > hMax {
			hMax = m
		}
		if s.NField > 1 {
			i1 := s.offset(1, NGhost, j+NGhost)
			huSum += floats.Sum(s.u[i1 : i1+s.Nx])
		}
		if s.NField > 2 {
			i2 := s.offset(2, NGhost, j+NGhost)
			hvSum += floats.Sum(s.u[i2 : i2+s.Nx])
		}
	}
	if hMin <= 0 {
		panic(fmt.Errorf("solution check failed: non-positive height %g, scheme is unstable", hMin))
	}
	hSum *= cellArea
	huSum *= cellArea
	hvSum *= cellArea
	fmt.Printf("-\n  Volume: %g\n  Momentum: (%g, %g)\n  Range: [%g, %g]\n",
		hSum, huSum, hvSum, hMin, hMax)
	return
}
