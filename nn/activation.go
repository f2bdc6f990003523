package nn

import (
	"fmt"
	"math"
)

// Activator maps a neuron's normalized weighted sum to its output signal.
type Activator interface {
	Activate(sum float64) float64
	fmt.Stringer
}

// ActivatorLookup resolves activators by the name they report from String.
var ActivatorLookup = map[string]Activator{
	"sigmoid": Sigmoid{},
}

// LookupActivator returns the registered activator called name.
func LookupActivator(name string) (Activator, error) {
	act, ok := ActivatorLookup[name]
	if !ok {
		return nil, fmt.Errorf("unknown activator %q", name)
	}
	return act, nil
}

// Sigmoid is the logistic function 1 / (1 + e^-x).
type Sigmoid struct{}

func (s Sigmoid) Activate(sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

func (s Sigmoid) String() string {
	return "sigmoid"
}

// ActivatorFunc adapts a plain function to the Activator interface.
type ActivatorFunc func(float64) float64

func (f ActivatorFunc) Activate(sum float64) float64 {
	return f(sum)
}

func (f ActivatorFunc) String() string {
	return "func"
}
