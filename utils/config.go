package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ffnet/nn"
)

// Config holds everything the infer command needs for one run.
type Config struct {
	Network    nn.Configuration
	Activation string
	Input      []float64
	Repeat     int
}

// ParseArchitecture parses "inputs layers size outputs" into a network
// configuration. With three fields the layer size is omitted and must only
// be used with zero hidden layers.
func ParseArchitecture(archStr string) (nn.Configuration, error) {
	archParts := strings.Fields(archStr)
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nn.Configuration{}, fmt.Errorf("architecture field %d: %w", i, err)
		}
		arch[i] = n
	}
	switch len(arch) {
	case 3:
		if arch[1] != 0 {
			return nn.Configuration{}, fmt.Errorf("architecture %q: layer size required with %d hidden layers", archStr, arch[1])
		}
		return nn.Configuration{NumInputs: arch[0], NumLayers: 0, NumOutputs: arch[2]}, nil
	case 4:
		return nn.Configuration{NumInputs: arch[0], NumLayers: arch[1], LayerSize: arch[2], NumOutputs: arch[3]}, nil
	default:
		return nn.Configuration{}, fmt.Errorf("architecture %q: want 3 or 4 fields, got %d", archStr, len(arch))
	}
}

// ParseInput parses a comma or whitespace separated list of numbers.
func ParseInput(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	input := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("input value %d: %w", i, err)
		}
		input[i] = x
	}
	return input, nil
}

// LoadInput reads a JSON array of numbers from path.
func LoadInput(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var input []float64
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to unmarshal input: %w", err)
	}
	return input, nil
}

// ValidateConfig checks the network shape eagerly and that the input fits it,
// so the command reports a usage error instead of panicking in Infer.
func ValidateConfig(config *Config) error {
	if err := config.Network.Validate(); err != nil {
		return err
	}

	if len(config.Input) != config.Network.NumInputs {
		return fmt.Errorf("input has %d values, network expects %d", len(config.Input), config.Network.NumInputs)
	}

	if config.Repeat <= 0 {
		return fmt.Errorf("repeat must be positive")
	}

	if _, err := nn.LookupActivator(config.Activation); err != nil {
		return err
	}

	return nil
}
