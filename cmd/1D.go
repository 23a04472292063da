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
	"os"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/hyper1d/FD1D"
	"github.com/notargets/hyper1d/InputParameters"
	"github.com/notargets/hyper1d/model_problems"
)

type Model1D struct {
	ICFile  string
	Profile bool
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional hyperbolic model problem solutions",
	Long: `
Marches a one dimensional model problem - the first order wave equation or
the inviscid / viscous Burgers equation - using the finite difference scheme
named in the input parameters file,

hyper1d 1D -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		if m1d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		ip := processInput(m1d)
		applyOverrides(cmd, ip)
		Run1D(m1d, ip)
	},
}

func processInput(m1d *Model1D) (ip *InputParameters.InputParameters1D) {
	var (
		err error
	)
	if len(m1d.ICFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Moving Shock"
Model: InviscidBurgers
Scheme: MacCormack
GridPoints: 101
Courant: 0.5
MaxSteps: 500
BCLeft: 1.
BCRight: 0.
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		fmt.Printf("Schemes: %s\n", strings.Join(InputParameters.SchemeOptions(), ", "))
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(m1d.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters1D{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func applyOverrides(cmd *cobra.Command, ip *InputParameters.InputParameters1D) {
	if cmd.Flags().Changed("scheme") {
		ip.Scheme, _ = cmd.Flags().GetString("scheme")
	}
	if cmd.Flags().Changed("n") {
		ip.GridPoints, _ = cmd.Flags().GetInt("n")
	}
	if cmd.Flags().Changed("courant") {
		ip.Courant, _ = cmd.Flags().GetFloat64("courant")
	}
	if cmd.Flags().Changed("maxSteps") {
		ip.MaxSteps, _ = cmd.Flags().GetInt("maxSteps")
	}
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Model\n\t- Scheme\n\t- Courant")
	OneDCmd.Flags().StringP("scheme", "s", "", "override the scheme named in the input file")
	OneDCmd.Flags().IntP("n", "n", 0, "override the number of grid points in the input file")
	OneDCmd.Flags().Float64("courant", 0, "override the Courant number in the input file")
	OneDCmd.Flags().Int("maxSteps", 0, "override the maximum step count in the input file")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile for the march")
}

type Model interface {
	Run() error
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) {
	var (
		C   Model
		err error
	)
	if m1d.Profile {
		defer profile.Start().Stop()
	}
	ip.Print()
	model, err := ip.ModelKind()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	switch model {
	case FD1D.LinearWave:
		C, err = model_problems.NewWave1D(ip)
	default:
		C, err = model_problems.NewBurgers1D(ip)
	}
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = C.Run(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
