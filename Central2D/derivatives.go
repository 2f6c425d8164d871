package Central2D

/*
Limited derivative estimation

The predictor and corrector need slope estimates of the solution and of the
fluxes at each cell. The limiter keeps those estimates from introducing
spurious oscillations near discontinuities.

Slopes exist for every cell except the outermost ghost ring, where no
centered 3-point stencil fits. The corrector reads slopes one ring beyond
the canonical region, so the one-ring margin here is load bearing.
*/

func (s *Solver[P, L]) limitedDerivs() {
	var (
		stride = s.NxAll
		lim    = s.Lim
	)
	for k := 0; k < s.NField; k++ {
		for iy := 1; iy < s.NyAll-1; iy++ {
			i0 := s.offset(k, 1, iy)
			i1 := s.offset(k, s.NxAll-1, iy)
			for i := i0; i < i1; i++ {
				// x derivs
				s.ux[i] = lim.LimDiff(s.u[i-1], s.u[i], s.u[i+1])
				s.fx[i] = lim.LimDiff(s.f[i-1], s.f[i], s.f[i+1])

				// y derivs
				s.uy[i] = lim.LimDiff(s.u[i-stride], s.u[i], s.u[i+stride])
				s.gy[i] = lim.LimDiff(s.g[i-stride], s.g[i], s.g[i+stride])
			}
		}
	}
}
