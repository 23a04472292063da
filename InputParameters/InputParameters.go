package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/hyper1d/FD1D"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title           string  `yaml:"Title"`
	Model           string  `yaml:"Model"`  // LinearWave, InviscidBurgers, ViscousBurgers
	Scheme          string  `yaml:"Scheme"` // see SchemeOptions
	GridPoints      int     `yaml:"GridPoints"`
	Courant         float64 `yaml:"Courant"`
	Diffusion       float64 `yaml:"Diffusion"`
	ConvectionSpeed float64 `yaml:"ConvectionSpeed"`
	MaxSteps        int     `yaml:"MaxSteps"`
	Tolerance       float64 `yaml:"Tolerance"`
	BCLeft          float64 `yaml:"BCLeft"`
	BCRight         float64 `yaml:"BCRight"`
	LimiterFunction string  `yaml:"LimiterFunction"`
	Limiter         string  `yaml:"Limiter"`
	Eps             float64 `yaml:"Eps"`
	Accuracy        string  `yaml:"Accuracy"` // first-order, second-order, third-order
}

// SchemeOptions lists the scheme names accepted in the input file.
func SchemeOptions() []string {
	return []string{
		"ExplicitFirstUpwind",
		"Lax",
		"MidpointLeapfrog",
		"LaxWendroff",
		"LaxWendroffMultiStep",
		"MacCormack",
		"FourthOrderRungeKutta",
		"ModifiedRungeKutta",
		"FTCS",
		"FTBCS",
		"DuFortFrankel",
		"EulersBTCS",
		"CrankNicolson",
		"BeamAndWarming",
		"BTBCS",
		"FirstOrderTVD",
		"SecondOrderTVD",
	}
}

func (ip *InputParameters1D) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.Validate()
}

func (ip *InputParameters1D) Validate() error {
	if ip.GridPoints < 3 {
		return fmt.Errorf("GridPoints = %d, need at least 3 nodes", ip.GridPoints)
	}
	if ip.MaxSteps <= 0 {
		return fmt.Errorf("MaxSteps = %d, must be positive", ip.MaxSteps)
	}
	if _, err := ip.ModelKind(); err != nil {
		return err
	}
	for _, opt := range SchemeOptions() {
		if ip.Scheme == opt {
			return nil
		}
	}
	return fmt.Errorf("unknown Scheme %q, valid options are %v", ip.Scheme, SchemeOptions())
}

// ModelKind resolves the Model string to the FD1D enumeration.
func (ip *InputParameters1D) ModelKind() (FD1D.ModelKind, error) {
	switch ip.Model {
	case "LinearWave":
		return FD1D.LinearWave, nil
	case "InviscidBurgers":
		return FD1D.InviscidBurgers, nil
	case "ViscousBurgers":
		return FD1D.ViscousBurgers, nil
	}
	return 0, fmt.Errorf("unknown Model %q, valid options are LinearWave, InviscidBurgers, ViscousBurgers", ip.Model)
}

// AccuracyOrder resolves the Accuracy string for the BTBCS scheme.
// An empty string selects first order.
func (ip *InputParameters1D) AccuracyOrder() (FD1D.AccuracyOrder, error) {
	switch ip.Accuracy {
	case "", "first-order":
		return FD1D.FirstOrder, nil
	case "second-order":
		return FD1D.SecondOrder, nil
	case "third-order":
		return FD1D.ThirdOrder, nil
	}
	return 0, fmt.Errorf("unknown Accuracy %q, valid options are first-order, second-order, third-order", ip.Accuracy)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Model\n", ip.Model)
	fmt.Printf("[%s]\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("%8d\t\t= GridPoints\n", ip.GridPoints)
	fmt.Printf("%8.5f\t\t= Courant\n", ip.Courant)
	fmt.Printf("%8.5f\t\t= Diffusion\n", ip.Diffusion)
	fmt.Printf("%8.5f\t\t= ConvectionSpeed\n", ip.ConvectionSpeed)
	fmt.Printf("%8d\t\t= MaxSteps\n", ip.MaxSteps)
	if ip.LimiterFunction != "" {
		fmt.Printf("[%s]\t= LimiterFunction\n", ip.LimiterFunction)
		fmt.Printf("[%s]\t\t\t= Limiter\n", ip.Limiter)
	}
	if ip.Accuracy != "" {
		fmt.Printf("[%s]\t\t= Accuracy\n", ip.Accuracy)
	}
}
