package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters2D struct {
	Title     string  `yaml:"Title"`
	CFL       float64 `yaml:"CFL"`
	FinalTime float64 `yaml:"FinalTime"`
	Nx        int     `yaml:"Nx"`
	Ny        int     `yaml:"Ny"`
	Width     float64 `yaml:"Width"`
	Height    float64 `yaml:"Height"`
	Gravity   float64 `yaml:"Gravity"`
	InitType  string  `yaml:"InitType"`
	Limiter   string  `yaml:"Limiter"`
	NumFrames int     `yaml:"NumFrames"` // Diagnostic / output frames within FinalTime
}

func NewInputParameters2D() (ip *InputParameters2D) {
	ip = &InputParameters2D{
		Title:     "Central Scheme 2D",
		CFL:       0.45,
		FinalTime: 1.0,
		Nx:        200,
		Ny:        200,
		Width:     1.0,
		Height:    1.0,
		Gravity:   9.8,
		InitType:  "DamBreak",
		Limiter:   "MinMod",
		NumFrames: 10,
	}
	return
}

func (ip *InputParameters2D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters2D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d x %d]\t\t= Nx x Ny\n", ip.Nx, ip.Ny)
	fmt.Printf("[%4.2f x %4.2f]\t\t= Width x Height\n", ip.Width, ip.Height)
	fmt.Printf("%8.5f\t\t= Gravity\n", ip.Gravity)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%s]\t\t= Limiter\n", ip.Limiter)
	fmt.Printf("[%d]\t\t\t= NumFrames\n", ip.NumFrames)
}
