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
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/goles-cfd/goles/InputParameters"
	"github.com/goles-cfd/goles/flowfield"
	"github.com/goles-cfd/goles/grid"
	"github.com/goles-cfd/goles/output"
	"github.com/goles-cfd/goles/turbulence"
)

type ModelLES struct {
	ICFile  string
	Profile bool
	PlotOff bool
}

// LESCmd represents the les command
var LESCmd = &cobra.Command{
	Use:   "les",
	Short: "Three dimensional LES turbulence closure on a structured grid",
	Long: `Runs the Dynamic Smagorinsky sub-grid scale model over a structured
3-D grid and writes Tecplot snapshots plus an eddy-viscosity heat map`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			mles = &ModelLES{}
		)
		if mles.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mles.Profile, _ = cmd.Flags().GetBool("profile")
		mles.PlotOff, _ = cmd.Flags().GetBool("noPlots")
		ip := processInput(mles)
		if err = RunLES(mles, ip); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(LESCmd)
	LESCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with run parameters")
	LESCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
	LESCmd.Flags().Bool("noPlots", false, "suppress snapshot and heat map output")
}

func processInput(mles *ModelLES) (ip *InputParameters.InputParametersLES) {
	var (
		err error
	)
	if len(mles.ICFile) == 0 {
		fmt.Printf("error: must supply an input parameters file (-I, --inputConditionsFile)\n")
		exampleFile := `
########################################
Title: "Taylor-Green Vortex"
NX: 32
NY: 32
NZ: 32
DX: 0.19634954   # 2*Pi/32
DY: 0.19634954
DZ: 0.19634954
Gamma: 1.4
GasConstant: 287.05
FilterKernel: box
InitType: taylorgreen
Steps: 1
PlotSteps: 1
########################################
`
		fmt.Printf("Example of YAML input file:%s", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(mles.ICFile)
	if err != nil {
		fmt.Printf("unable to read input parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	ip = &InputParameters.InputParametersLES{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("unable to parse input parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	ip.Print()
	return
}

func RunLES(mles *ModelLES, ip *InputParameters.InputParametersLES) (err error) {
	if mles.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	g := grid.New(ip.NX, ip.NY, ip.NZ, ip.DX, ip.DY, ip.DZ)
	if ip.Small > 0 {
		g.Small = ip.Small
	}
	kernel, err := turbulence.KernelByName(ip.FilterKernel)
	if err != nil {
		return err
	}
	fs := flowfield.NewState(g)
	switch ip.InitType {
	case "uniform":
		fs.InitUniform(g, 1.225, 10., 0., 0., 101325., ip.Gamma)
	case "taylorgreen", "":
		fs.InitTaylorGreen(g, 1.225, 10., 101325., ip.Gamma)
	default:
		return fmt.Errorf("unknown InitType %q, want \"taylorgreen\" or \"uniform\"", ip.InitType)
	}
	log.WithFields(log.Fields{
		"cells":   g.InteriorCells(),
		"deltaSq": g.DeltaSq,
		"kernel":  ip.FilterKernel,
	}).Info("starting eddy viscosity estimation")

	for step := 1; step <= ip.Steps; step++ {
		turbulence.DynamicSmagorinsky(g, fs.Rho, fs.RhoU, fs.RhoV, fs.RhoW, fs.MuSGS, kernel)
		logStepStats(g, fs, step)
		if !mles.PlotOff && ip.PlotSteps > 0 && step%ip.PlotSteps == 0 {
			if err = output.WriteTecplotFile(step, g, fs, ip.Gamma, ip.GasConstant); err != nil {
				return err
			}
			name := fmt.Sprintf("muSGS-%d.png", step)
			if err = output.WriteHeatMap(name, "Eddy viscosity, mid k-plane",
				g, fs.MuSGS, g.NZ/2+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// logStepStats reports interior eddy-viscosity statistics for the step
func logStepStats(g grid.Grid, fs *flowfield.State, step int) {
	mu := make([]float64, 0, g.InteriorCells())
	for i := 1; i <= g.NX; i++ {
		for j := 1; j <= g.NY; j++ {
			for k := 1; k <= g.NZ; k++ {
				mu = append(mu, fs.MuSGS.Elements[g.Idx(i, j, k)])
			}
		}
	}
	log.WithFields(log.Fields{
		"step":     step,
		"muMean":   stat.Mean(mu, nil),
		"muStdDev": stat.StdDev(mu, nil),
		"muMax":    floats.Max(mu),
	}).Info("eddy viscosity field updated")
}
