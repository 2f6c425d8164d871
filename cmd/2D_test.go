package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/notargets/gocentral/InputParameters"
)

func TestRun2D(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
CFL: 0.45
FinalTime: 0.5
Nx: 100
Ny: 50
Width: 2.
Height: 1.
InitType: Wave # Can be DamBreak or StillWater
Limiter: MinMod
NumFrames: 5
`)
	input := InputParameters.NewInputParameters2D()
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.CFL, 0.45)
	assert.Equal(t, input.Nx, 100)
	assert.Equal(t, input.Ny, 50)
	assert.Equal(t, input.Width, 2.)
	assert.Equal(t, input.InitType, "Wave")
	// Fields absent from the file keep their defaults
	assert.Equal(t, input.Gravity, 9.8)
	input.Print()
	assert.Equal(t, input.FinalTime, 0.5)
}
