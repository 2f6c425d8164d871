package Shallow2D

import "math"

/*
Shallow water equations

The unknowns per cell are the water height h and the horizontal momentum
components hu, hv. The governing equations in conservation form are

	U_t = F(U)_x + G(U)_y

	U = [ h, hu, hv ]
	F = [ hu, h u^2 + g h^2/2, h u v ]
	G = [ hv, h u v, h v^2 + g h^2/2 ]

expressing conservation of volume and linear momentum. The characteristic
wave speed is |velocity| + sqrt(g h) in each direction, which bounds the CFL
time step choice in the solver.

Shallow satisfies the Central2D.Physics contract: the flux and wave speed
functions operate on ncell contiguous per-field value sequences separated by
fieldStride elements. A zero or negative height is undefined behavior here,
the solver's solution check aborts the run before that state can propagate.
*/

type Shallow struct {
	Gravity float64
}

func NewShallow() (sw Shallow) {
	sw = Shallow{Gravity: 9.8}
	return
}

func (sw Shallow) NFields() int { return 3 }

func (sw Shallow) Flux(fx, fy, u []float64, ncell, fieldStride int) {
	var (
		h, hu, hv    = u, u[fieldStride:], u[2*fieldStride:]
		fh, fhu, fhv = fx, fx[fieldStride:], fx[2*fieldStride:]
		gh, ghu, ghv = fy, fy[fieldStride:], fy[2*fieldStride:]
		halfG        = 0.5 * sw.Gravity
	)
	copy(fh[:ncell], hu[:ncell])
	copy(gh[:ncell], hv[:ncell])
	for i := 0; i < ncell; i++ {
		hi, hui, hvi := h[i], hu[i], hv[i]
		invH := 1 / hi
		fhu[i] = hui*hui*invH + halfG*hi*hi
		fhv[i] = hui * hvi * invH
		ghu[i] = hui * hvi * invH
		ghv[i] = hvi*hvi*invH + halfG*hi*hi
	}
}

// WaveSpeed raises cxy to at least the maximum characteristic speed
// magnitude over the given cells in each direction; it never lowers the
// incoming bounds.
func (sw Shallow) WaveSpeed(cxy, u []float64, ncell, fieldStride int) {
	var (
		h, hu, hv = u, u[fieldStride:], u[2*fieldStride:]
		cx, cy    = cxy[0], cxy[1]
	)
	for i := 0; i < ncell; i++ {
		hi, hui, hvi := h[i], hu[i], hv[i]
		rootGH := math.Sqrt(sw.Gravity * hi)
		if c := math.Abs(hui/hi) + rootGH; c > cx {
			cx = c
		}
		if c := math.Abs(hvi/hi) + rootGH; c > cy {
			cy = c
		}
	}
	cxy[0] = cx
	cxy[1] = cy
}
