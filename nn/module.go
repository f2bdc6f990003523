package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Neuron is a single unit: a fixed-length weight vector, the divisor its
// weighted sum is normalized by, and the activation applied afterwards.
type Neuron struct {
	weights   []float64
	weightSum float64
	act       Activator
}

// Weights returns the neuron's weights, one per input signal. The slice is
// shared with the network; writing to it does not update WeightSum.
func (n *Neuron) Weights() []float64 { return n.weights }

// WeightSum returns the normalization divisor. Under default construction it
// is the fan-in count and is never recomputed from the weight values.
func (n *Neuron) WeightSum() float64 { return n.weightSum }

// Activator returns the neuron's activation.
func (n *Neuron) Activator() Activator { return n.act }

// fire computes act(dot(signals, weights) / weightSum). The caller checks
// that len(signals) matches the fan-in.
func (n *Neuron) fire(signals []float64) float64 {
	return n.act.Activate(floats.Dot(signals, n.weights) / n.weightSum)
}

// Layer is an ordered group of neurons sharing the same fan-in.
type Layer struct {
	index   int
	neurons []Neuron
	fanIn   int
}

// Neurons returns the layer's neurons in construction order.
func (l *Layer) Neurons() []Neuron { return l.neurons }

// FanIn returns the number of signals every neuron in the layer consumes.
func (l *Layer) FanIn() int { return l.fanIn }

// Size returns the number of neurons, which is also the layer's output width.
func (l *Layer) Size() int { return len(l.neurons) }

// Forward fires every neuron on src and writes the results to dst in
// neuron order. dst must hold at least Size() values and must not overlap
// src. A neuron whose weight count differs from len(src) panics with a
// *ShapeError before anything is computed for it.
func (l *Layer) Forward(dst, src []float64) []float64 {
	dst = dst[:len(l.neurons)]
	for i := range l.neurons {
		n := &l.neurons[i]
		if len(n.weights) != len(src) {
			panic(&ShapeError{Layer: l.index, Neuron: i, Want: len(n.weights), Got: len(src)})
		}
		dst[i] = n.fire(src)
	}
	return dst
}

// Matrix returns the layer's weights as a Size() x FanIn() matrix, one row
// per neuron. It returns nil for layers with no neurons or no inputs.
func (l *Layer) Matrix() *mat.Dense {
	if len(l.neurons) == 0 || l.fanIn == 0 {
		return nil
	}
	m := mat.NewDense(len(l.neurons), l.fanIn, nil)
	for i := range l.neurons {
		m.SetRow(i, l.neurons[i].weights)
	}
	return m
}

// ShapeError reports a neuron receiving a different number of signals than
// it has weights. Infer panics with it; it is never returned.
type ShapeError struct {
	Layer  int
	Neuron int
	Want   int
	Got    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("nn: layer %d neuron %d expects %d inputs, got %d", e.Layer, e.Neuron, e.Want, e.Got)
}
