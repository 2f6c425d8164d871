/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gocentral/InputParameters"
	"github.com/notargets/gocentral/limiters"
	"github.com/notargets/gocentral/model_problems/Shallow2D"
)

type Model2D struct {
	ICFile     string
	Graph      bool
	Delay      time.Duration
	OutputFile string
	Profile    bool
	Perf       bool
}

// Model is any simulation runnable from the command line
type Model interface {
	Run(pm *Shallow2D.PlotMeta)
}

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Two dimensional shallow water solver on a periodic structured grid",
	Long:  `Two dimensional shallow water solver on a periodic structured grid`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("2D called")
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		m2d.OutputFile, _ = cmd.Flags().GetString("outputFile")
		m2d.Profile, _ = cmd.Flags().GetBool("profile")
		m2d.Perf, _ = cmd.Flags().GetBool("perf")
		dr, _ := cmd.Flags().GetInt("delay")
		m2d.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput(m2d)
		Run2D(m2d, ip)
	},
}

func processInput(m2d *Model2D) (ip *InputParameters.InputParameters2D) {
	var (
		err error
	)
	ip = InputParameters.NewInputParameters2D()
	if len(m2d.ICFile) == 0 {
		exampleFile := `
########################################
Title: "Dam Break"
CFL: 0.45
FinalTime: 1.
Nx: 200
Ny: 200
Width: 1.
Height: 1.
Gravity: 9.8
InitType: DamBreak # Can be "StillWater" or "Wave"
Limiter: MinMod # Can be "Central"
NumFrames: 10
########################################
`
		fmt.Printf("No input parameters file (-I), using defaults\n")
		fmt.Printf("Example File:%s\n", exampleFile)
	} else {
		var data []byte
		if data, err = ioutil.ReadFile(m2d.ICFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- Grid dimensions\n\t- Initial conditions")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	TwoDCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	TwoDCmd.Flags().StringP("outputFile", "o", "", "write triangulated mesh and solution frames to this file")
	TwoDCmd.Flags().Bool("profile", false, "write a CPU profile of the solve")
	TwoDCmd.Flags().Bool("perf", false, "count retired CPU instructions over the solve (linux)")
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParameters2D) {
	if m2d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	pm := &Shallow2D.PlotMeta{
		Plot:       m2d.Graph,
		Delay:      m2d.Delay,
		OutputFile: m2d.OutputFile,
	}
	var m Model
	switch limiters.NewLimiterType(ip.Limiter) {
	case limiters.LIMITER_Central:
		m = Shallow2D.NewSimulation(limiters.Central{}, ip)
	case limiters.LIMITER_MinMod:
		fallthrough
	default:
		m = Shallow2D.NewSimulation(limiters.NewMinMod(), ip)
	}
	solve := func() {
		m.Run(pm)
	}
	if m2d.Perf {
		runWithPerf(solve)
	} else {
		solve()
	}
}
