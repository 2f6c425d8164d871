package Central2D

/*
One half step of the scheme: a first-order predictor at the half time level
used to refresh the flux values, followed by a corrector that produces the
cell averages on the grid staggered relative to the input. Two successive
half steps (io = 0 then io = 1, each preceded by fresh boundary and
derivative passes) return the solution to the primary grid.
*/

// computeFluxSpeeds evaluates the physics flux over the entire padded array,
// so the predictor and derivative stages see consistent flux values, and
// returns the updated wave speed bounds used for time step selection. The
// bounds are seeded with a tiny epsilon to avoid a zero CFL denominator on
// degenerate initial data.
func (s *Solver[P, L]) computeFluxSpeeds() (cx, cy float64) {
	var (
		ncell = s.NxAll * s.NyAll
		cxy   = [2]float64{1.0e-15, 1.0e-15}
	)
	s.Phys.Flux(s.f, s.g, s.u, ncell, ncell)
	s.Phys.WaveSpeed(cxy[:], s.u, ncell, ncell)
	return cxy[0], cxy[1]
}

// computeStep advances one half step of length dt. io is the half step count
// modulo 2: 0 means the input lives on the primary grid, 1 on the staggered
// grid. The corrector's loop bounds shift by io so that the commit returns
// odd-step results to primary indexing.
func (s *Solver[P, L]) computeStep(io int, dt float64) {
	var (
		dtcdx2 = 0.5 * dt / s.Dx
		dtcdy2 = 0.5 * dt / s.Dy
		stride = s.NxAll * s.NyAll
	)

	// Half step predictor
	for k := 0; k < s.NField; k++ {
		for iy := 1; iy < s.NyAll-1; iy++ {
			i0 := s.offset(k, 1, iy)
			i1 := s.offset(k, s.NxAll-1, iy)
			for i := i0; i < i1; i++ {
				s.v[i] = s.u[i] - dtcdx2*s.fx[i] - dtcdy2*s.gy[i]
			}
		}
	}

	// Flux values of f and g at the half step, row restricted to cells where
	// the predictor wrote
	for iy := 1; iy < s.NyAll-1; iy++ {
		jj := s.offset(0, 1, iy)
		s.Phys.Flux(s.f[jj:], s.g[jj:], s.v[jj:], s.NxAll-2, stride)
	}

	// Corrector (finish the step)
	for k := 0; k < s.NField; k++ {
		for iy := NGhost - io; iy < s.Ny+NGhost-io; iy++ {
			for ix := NGhost - io; ix < s.Nx+NGhost-io; ix++ {
				var (
					i00 = s.offset(k, ix, iy)
					i10 = i00 + 1
					i01 = i00 + s.NxAll
					i11 = i01 + 1
				)
				s.v[i00] =
					0.2500*(s.u[i00]+s.u[i10]+s.u[i01]+s.u[i11]) -
						0.0625*(s.ux[i10]-s.ux[i00]+
							s.ux[i11]-s.ux[i01]+
							s.uy[i01]-s.uy[i00]+
							s.uy[i11]-s.uy[i10]) -
						dtcdx2*(s.f[i10]-s.f[i00]+
							s.f[i11]-s.f[i01]) -
						dtcdy2*(s.g[i01]-s.g[i00]+
							s.g[i11]-s.g[i10])
			}
		}
	}

	// Copy from v storage back to the main grid. The copy is contiguous over
	// Ny full rows per field, so the io shift in both x and y is carried by
	// the source offset alone.
	for k := 0; k < s.NField; k++ {
		var (
			dst = s.offset(k, NGhost, NGhost)
			src = s.offset(k, NGhost-io, NGhost-io)
			n   = s.Ny * s.NxAll
		)
		copy(s.u[dst:dst+n], s.v[src:src+n])
	}
}
