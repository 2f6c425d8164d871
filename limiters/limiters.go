package limiters

import (
	"fmt"
	"math"
	"strings"
)

type LimiterType uint

const (
	LIMITER_MinMod LimiterType = iota
	LIMITER_Central
)

var (
	LimiterNames = map[string]LimiterType{
		"minmod":  LIMITER_MinMod,
		"central": LIMITER_Central,
	}
	LimiterPrintNames = []string{"MinMod", "Central Difference"}
)

func (lt LimiterType) Print() (txt string) {
	txt = LimiterPrintNames[lt]
	return
}

func NewLimiterType(label string) (lt LimiterType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if lt, ok = LimiterNames[label]; !ok {
		err = fmt.Errorf("unable to use limiter named %s", label)
		panic(err)
	}
	return
}

/*
MinMod is the classic minmod limited difference over three successive grid
values: the smaller of the one-sided differences scaled by Theta, capped by
the central difference, and zero when the one-sided differences disagree in
sign. Theta = 2 gives the most aggressive (least dissipative) stable choice;
Theta = 1 reduces to plain minmod.
*/
type MinMod struct {
	Theta float64
}

func NewMinMod() (mm MinMod) {
	mm = MinMod{Theta: 2.0}
	return
}

// xmin returns min(a,b) when both share a sign, else 0, without branching
func xmin(a, b float64) float64 {
	return (math.Copysign(0.5, a) + math.Copysign(0.5, b)) *
		math.Min(math.Abs(a), math.Abs(b))
}

func (mm MinMod) LimDiff(fm, f0, fp float64) (df float64) {
	var (
		du1 = f0 - fm         // Difference to left
		du2 = fp - f0         // Difference to right
		duc = 0.5 * (fp - fm) // Centered difference
	)
	df = xmin(mm.Theta*xmin(du1, du2), duc)
	return
}

// Central is the unlimited centered difference. It admits oscillations near
// discontinuities and exists for smooth-data runs and convergence testing.
type Central struct{}

func (cd Central) LimDiff(fm, f0, fp float64) (df float64) {
	df = 0.5 * (fp - fm)
	return
}
