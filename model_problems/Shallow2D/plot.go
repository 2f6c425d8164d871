package Shallow2D

import (
	"image/color"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// Plot draws the height and x-momentum profiles along the domain centerline.
// The first call creates the chart window.
func (sim *Simulation[L]) Plot(pm *PlotMeta) {
	var (
		s    = sim.Solver
		blue = color.RGBA{R: 50, G: 0, B: 255, A: 255}
		red  = color.RGBA{R: 255, G: 0, B: 50, A: 255}
	)
	if !pm.Plot {
		return
	}
	sim.plotOnce.Do(func() {
		sim.chart = chart2d.NewChart2D(0, float32(sim.IP.Width), -0.5, 3.0,
			1920, 1080, utils2.WHITE, utils2.BLACK)
	})
	var (
		j     = s.Ny / 2
		hLine = make([]float32, 0, 4*(s.Nx-1))
		mLine = make([]float32, 0, 4*(s.Nx-1))
	)
	for i := 0; i < s.Nx-1; i++ {
		x1 := float32((float64(i) + 0.5) * s.Dx)
		x2 := float32((float64(i) + 1.5) * s.Dx)
		hLine = append(hLine,
			x1, float32(s.At(0, i, j)),
			x2, float32(s.At(0, i+1, j)))
		mLine = append(mLine,
			x1, float32(s.At(1, i, j)),
			x2, float32(s.At(1, i+1, j)))
	}
	sim.chart.AddLine(hLine, blue)
	sim.chart.AddLine(mLine, red)
	if pm.Delay != 0 {
		time.Sleep(pm.Delay)
	}
}
