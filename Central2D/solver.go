package Central2D

/*
Jiang-Tadmor central difference scheme on staggered grids

The scheme alternates between a primary grid and a grid staggered by half a
cell in each direction. On even half-steps the solution array holds cell
averages centered at (x_i, y_j); on odd half-steps it holds averages for the
offset grid. Run always takes an even number of half-steps, so callers only
ever see data on the primary grid.

The solver is physics-agnostic: the governing equations arrive as a Physics
policy (flux and wave speed), and oscillation control arrives as a Limiter
policy. Both are type parameters so the stencil loops compile against the
concrete policy with no call overhead.
*/

// NGhost is the ghost cell padding width. The 3-point limiter stencil, the
// predictor margin and the corrector's io-shifted loop bounds are all tied to
// this value; they must change together.
const NGhost = 3

// Physics computes flux vectors and characteristic speed bounds for a
// specific hyperbolic system, e.g. the shallow water equations. Inputs are
// NFields contiguous per-field sequences of ncell values separated by
// fieldStride elements.
type Physics interface {
	NFields() int
	Flux(fx, fy, u []float64, ncell, fieldStride int)
	WaveSpeed(cxy, u []float64, ncell, fieldStride int)
}

// Limiter estimates a scaled derivative from three successive grid values,
// suppressing the estimate where the samples oscillate.
type Limiter interface {
	LimDiff(fm, f0, fp float64) float64
}

type Solver[P Physics, L Limiter] struct {
	Phys P
	Lim  L

	Nx, Ny       int     // Number of (non-ghost) cells in x/y
	NxAll, NyAll int     // Total cells in x/y (including ghost)
	Dx, Dy       float64 // Cell size in x/y
	CFL          float64 // Allowed CFL number
	NField       int     // Number of conserved quantities per cell

	Stats RunStats

	u  []float64 // Solution values
	f  []float64 // Fluxes in x
	g  []float64 // Fluxes in y
	ux []float64 // x differences of u
	uy []float64 // y differences of u
	fx []float64 // x differences of f
	gy []float64 // y differences of g
	v  []float64 // Solution values at next step
}

// RunStats accumulates over successive Run calls
type RunStats struct {
	Steps  int     // Total half steps taken
	LastDT float64 // dt used on the final half step pair
	MaxCFL float64 // Largest dt*max(cx/dx,cy/dy) actually used
}

func NewSolver[P Physics, L Limiter](phys P, lim L, width, height float64,
	nx, ny int, cfl float64) (s *Solver[P, L]) {
	var (
		nxAll  = nx + 2*NGhost
		nyAll  = ny + 2*NGhost
		nField = phys.NFields()
		n      = nField * nxAll * nyAll
	)
	s = &Solver[P, L]{
		Phys:   phys,
		Lim:    lim,
		Nx:     nx,
		Ny:     ny,
		NxAll:  nxAll,
		NyAll:  nyAll,
		Dx:     width / float64(nx),
		Dy:     height / float64(ny),
		CFL:    cfl,
		NField: nField,
		u:      make([]float64, n),
		f:      make([]float64, n),
		g:      make([]float64, n),
		ux:     make([]float64, n),
		uy:     make([]float64, n),
		fx:     make([]float64, n),
		gy:     make([]float64, n),
		v:      make([]float64, n),
	}
	return
}

// offset maps (field, physical x, physical y) to the flat buffer index.
// Buffers are field major, then row major; the lower left ghost corner of
// each field is (0,0).
func (s *Solver[P, L]) offset(k, ix, iy int) int {
	return (k*s.NyAll+iy)*s.NxAll + ix
}

// At reads a solution value by logical index, i in [0,Nx), j in [0,Ny).
// The ghost offset is applied internally.
func (s *Solver[P, L]) At(k, i, j int) float64 {
	return s.u[s.offset(k, i+NGhost, j+NGhost)]
}

// Set writes a solution value by logical index
func (s *Solver[P, L]) Set(k, i, j int, val float64) {
	s.u[s.offset(k, i+NGhost, j+NGhost)] = val
}

// Run advances the simulation by tfinal from the current state. tfinal is an
// offset, not an absolute time, so Run can be called repeatedly, for example
// to write a plot frame between periods of time advancement.
//
// Run always takes an even number of half steps so that the final state lies
// on the primary grid. A zero or negative tfinal is a no-op.
func (s *Solver[P, L]) Run(tfinal float64) {
	if tfinal <= 0 {
		return
	}
	var (
		t    float64
		dt   float64
		done bool
	)
	for !done {
		for io := 0; io < 2; io++ {
			s.applyPeriodic()
			cx, cy := s.computeFluxSpeeds()
			s.limitedDerivs()
			if io == 0 {
				cMax := cx / s.Dx
				if cy/s.Dy > cMax {
					cMax = cy / s.Dy
				}
				dt = s.CFL / cMax
				if t+2*dt >= tfinal {
					dt = (tfinal - t) / 2
					done = true
				}
				if cfl := dt * cMax; cfl > s.Stats.MaxCFL {
					s.Stats.MaxCFL = cfl
				}
			}
			s.computeStep(io, dt)
			t += dt
			s.Stats.Steps++
		}
	}
	s.Stats.LastDT = dt
}
