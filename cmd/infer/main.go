// ffnet-infer: forward pass through a fixed-topology network
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ffnet/nn"
	"ffnet/utils"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	archStr    = flag.String("arch", "2 1 2 1", "Architecture: \"inputs layers size outputs\"")
	inputStr   = flag.String("input", "", "Comma separated input values")
	inputFile  = flag.String("input-file", "", "Input JSON file (array of numbers)")
	activation = flag.String("activation", "sigmoid", "Activation applied by every neuron")
	repeat     = flag.Int("repeat", 1, "Number of forward passes to time")
	showLayers = flag.Bool("layers", false, "Print every layer's weight matrix")
	verbose    = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	config, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// already checked by ValidateConfig
	act, _ := nn.LookupActivator(config.Activation)

	var stats utils.TimingStats
	start := time.Now()
	net := nn.NewWithActivator(config.Network, act)
	stats.BuildTime = time.Since(start)

	if *verbose {
		printSummary(net, *showLayers)
	}

	var out []float64
	forwardStart := time.Now()
	for i := 0; i < config.Repeat; i++ {
		out = net.Infer(config.Input)
	}
	stats.ForwardPassTime = time.Since(forwardStart)
	stats.TotalTime = time.Since(start)

	fmt.Printf("Output: %v\n", out)
	if *verbose && len(out) > 1 {
		fmt.Printf("Argmax: %d\n", floats.MaxIdx(out))
	}
	utils.PrintTimingStats(&stats, config.Repeat)
}

func loadConfig() (*utils.Config, error) {
	network, err := utils.ParseArchitecture(*archStr)
	if err != nil {
		return nil, err
	}

	var input []float64
	switch {
	case *inputFile != "":
		input, err = utils.LoadInput(*inputFile)
	case *inputStr != "":
		input, err = utils.ParseInput(*inputStr)
	default:
		// all-zero input when none is given
		if network.NumInputs > 0 {
			input = make([]float64, network.NumInputs)
		}
	}
	if err != nil {
		return nil, err
	}

	config := &utils.Config{
		Network:    network,
		Activation: *activation,
		Input:      input,
		Repeat:     *repeat,
	}
	if err := utils.ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func printSummary(net *nn.Network, weights bool) {
	c := net.Config()
	fmt.Printf("Network: %d inputs, %d hidden x %d, %d outputs\n", c.NumInputs, c.NumLayers, c.LayerSize, c.NumOutputs)
	for i, l := range net.Layers() {
		fmt.Printf("  Layer %d: %d neurons, fan-in %d\n", i, l.Size(), l.FanIn())
		if !weights {
			continue
		}
		if m := l.Matrix(); m != nil {
			fmt.Printf("    W = %v\n", mat.Formatted(m, mat.Prefix("        "), mat.Squeeze()))
		}
	}
}
