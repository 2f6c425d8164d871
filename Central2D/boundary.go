package Central2D

/*
Periodic boundary conditions

Cells with physical coordinates in [NGhost, Nx+NGhost) x [NGhost, Ny+NGhost)
are canonical; every other cell is a periodic image of a canonical cell. The
ghost values must be refreshed before each half step so that stencils
reaching NGhost cells outward in either direction see correct data.
*/

// wrapOffset is the flat index of the canonical image of physical cell (ix,iy)
func (s *Solver[P, L]) wrapOffset(k, ix, iy int) int {
	return s.offset(k,
		(ix+s.Nx-NGhost)%s.Nx+NGhost,
		(iy+s.Ny-NGhost)%s.Ny+NGhost)
}

// applyPeriodic overwrites the padding region with canonical values; the
// canonical region is untouched.
func (s *Solver[P, L]) applyPeriodic() {
	var (
		u = s.u
	)
	for k := 0; k < s.NField; k++ {
		// Copy data between right and left boundaries
		for iy := 0; iy < s.NyAll; iy++ {
			for ix := 0; ix < NGhost; ix++ {
				u[s.offset(k, ix, iy)] = u[s.wrapOffset(k, ix, iy)]
				u[s.offset(k, s.Nx+NGhost+ix, iy)] = u[s.wrapOffset(k, s.Nx+NGhost+ix, iy)]
			}
		}
		// Copy data between top and bottom boundaries
		for iy := 0; iy < NGhost; iy++ {
			for ix := 0; ix < s.NxAll; ix++ {
				u[s.offset(k, ix, iy)] = u[s.wrapOffset(k, ix, iy)]
				u[s.offset(k, ix, s.Ny+NGhost+iy)] = u[s.wrapOffset(k, ix, s.Ny+NGhost+iy)]
			}
		}
	}
}
