package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParametersLES struct {
	Title        string  `yaml:"Title"`
	NX           int     `yaml:"NX"` // Interior cells per axis
	NY           int     `yaml:"NY"`
	NZ           int     `yaml:"NZ"`
	DX           float64 `yaml:"DX"` // Uniform cell spacing per axis
	DY           float64 `yaml:"DY"`
	DZ           float64 `yaml:"DZ"`
	Gamma        float64 `yaml:"Gamma"`
	GasConstant  float64 `yaml:"GasConstant"`
	FilterKernel string  `yaml:"FilterKernel"` // "box" or "gaussian"
	Small        float64 `yaml:"Small"`        // Least-squares regularizer
	InitType     string  `yaml:"InitType"`     // "taylorgreen" or "uniform"
	Steps        int     `yaml:"Steps"`
	PlotSteps    int     `yaml:"PlotSteps"`
}

func (ip *InputParametersLES) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	if ip.Gamma == 0 {
		ip.Gamma = 1.4
	}
	if ip.GasConstant == 0 {
		ip.GasConstant = 287.05
	}
	if ip.Steps == 0 {
		ip.Steps = 1
	}
	return nil
}

func (ip *InputParametersLES) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d x %d]\t\t= Interior Cells\n", ip.NX, ip.NY, ip.NZ)
	fmt.Printf("[%g x %g x %g]\t= Cell Spacing\n", ip.DX, ip.DY, ip.DZ)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%8.3f\t\t= GasConstant\n", ip.GasConstant)
	fmt.Printf("[%s]\t\t\t= Filter Kernel\n", ip.FilterKernel)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%d]\t\t\t\t= Steps\n", ip.Steps)
	fmt.Printf("[%d]\t\t\t\t= PlotSteps\n", ip.PlotSteps)
}
