package Shallow2D

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"

	"github.com/notargets/gocentral/Central2D"
	"github.com/notargets/gocentral/InputParameters"
)

type InitType uint

const (
	IC_StillWater InitType = iota
	IC_DamBreak
	IC_Wave
)

var (
	InitNames = map[string]InitType{
		"stillwater": IC_StillWater,
		"dambreak":   IC_DamBreak,
		"wave":       IC_Wave,
	}
	InitPrintNames = []string{"Still Water", "Dam Break", "Wave"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use initial condition named %s", label)
		panic(err)
	}
	return
}

// PlotMeta controls the optional live graph and solution output per frame
type PlotMeta struct {
	Plot       bool
	Delay      time.Duration
	OutputFile string
}

type Simulation[L Central2D.Limiter] struct {
	Solver *Central2D.Solver[Shallow, L]
	IP     *InputParameters.InputParameters2D
	Case   InitType

	plotOnce sync.Once
	chart    *chart2d.Chart2D
	output   *meshWriter
}

func NewSimulation[L Central2D.Limiter](lim L,
	ip *InputParameters.InputParameters2D) (sim *Simulation[L]) {
	sim = &Simulation[L]{
		Solver: Central2D.NewSolver(Shallow{Gravity: ip.Gravity}, lim,
			ip.Width, ip.Height, ip.Nx, ip.Ny, ip.CFL),
		IP:   ip,
		Case: NewInitType(ip.InitType),
	}
	sim.Initialize()
	return
}

// Initialize writes cell average values at logical cell centers
func (sim *Simulation[L]) Initialize() {
	var (
		s      = sim.Solver
		w, h   = sim.IP.Width, sim.IP.Height
		radius = 0.125 * math.Min(w, h)
	)
	for j := 0; j < s.Ny; j++ {
		y := (float64(j) + 0.5) * s.Dy
		for i := 0; i < s.Nx; i++ {
			x := (float64(i) + 0.5) * s.Dx
			var height, xMom, yMom float64
			switch sim.Case {
			case IC_DamBreak:
				// Raised disk of water over a still background
				dx, dy := x-0.5*w, y-0.5*h
				height = 1.0
				if dx*dx+dy*dy < radius*radius {
					height = 2.0
				}
			case IC_Wave:
				// Sinusoidal height profile riding on unit x momentum
				height = 1.0 + 0.2*math.Sin(2*math.Pi*x/w)
				xMom = 1.0
			case IC_StillWater:
				fallthrough
			default:
				height = 1.0
			}
			s.Set(0, i, j, height)
			s.Set(1, i, j, xMom)
			s.Set(2, i, j, yMom)
		}
	}
}

// Run advances the simulation to FinalTime in NumFrames pieces, checking the
// conserved quantities and optionally plotting / writing a solution frame
// after each piece.
func (sim *Simulation[L]) Run(pm *PlotMeta) {
	var (
		s      = sim.Solver
		frames = sim.IP.NumFrames
	)
	if frames < 1 {
		frames = 1
	}
	frameTime := sim.IP.FinalTime / float64(frames)
	sim.PrintInitialization()
	s.SolutionCheck()
	if len(pm.OutputFile) != 0 {
		sim.output = newMeshWriter(pm.OutputFile, s)
		defer sim.output.Close()
	}
	elapsed := time.Duration(0)
	var start time.Time
	for frame := 1; frame <= frames; frame++ {
		start = time.Now()
		s.Run(frameTime)
		elapsed += time.Now().Sub(start)
		sim.PrintUpdate(frame, frameTime)
		s.SolutionCheck()
		if sim.output != nil {
			sim.output.WriteFrame(sim.heightField())
		}
		sim.Plot(pm)
	}
	sim.PrintFinal(elapsed)
}

func (sim *Simulation[L]) PrintInitialization() {
	var (
		ip = sim.IP
	)
	fmt.Printf("Shallow Water Equations in 2 Dimensions\n")
	fmt.Printf("Jiang-Tadmor staggered central scheme\n")
	fmt.Printf("Initial Condition: %s\n", sim.Case.Print())
	fmt.Printf("CFL = %8.4f, Grid = %d x %d, Domain = %4.2f x %4.2f\n\n",
		ip.CFL, ip.Nx, ip.Ny, ip.Width, ip.Height)
	fmt.Printf("Solving until finaltime = %8.5f over %d frames\n",
		ip.FinalTime, ip.NumFrames)
}

func (sim *Simulation[L]) PrintUpdate(frame int, frameTime float64) {
	var (
		stats = sim.Solver.Stats
	)
	fmt.Printf("%8d%8.5f%8.5f steps = %d\n",
		frame, float64(frame)*frameTime, stats.LastDT, stats.Steps)
}

func (sim *Simulation[L]) PrintFinal(elapsed time.Duration) {
	var (
		s     = sim.Solver
		steps = s.Stats.Steps
	)
	if steps == 0 {
		return
	}
	rate := float64(elapsed.Microseconds()) / (float64(s.Nx*s.Ny) * float64(steps))
	fmt.Printf("\nRate of execution = %8.5f us/(cell*half-step) over %d half-steps\n",
		rate, steps)
}
