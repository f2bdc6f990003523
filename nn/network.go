package nn

import (
	"fmt"
)

// Configuration describes the shape of a network. LayerSize is ignored when
// NumLayers is 0.
type Configuration struct {
	NumInputs  int
	NumLayers  int
	LayerSize  int
	NumOutputs int
}

// Validate reports the first width that would produce a degenerate network.
// New does not call it; a malformed configuration only surfaces when Infer
// reaches the mismatched layer.
func (c Configuration) Validate() error {
	if c.NumInputs <= 0 {
		return fmt.Errorf("num inputs must be positive, got %d", c.NumInputs)
	}
	if c.NumLayers < 0 {
		return fmt.Errorf("num layers must not be negative, got %d", c.NumLayers)
	}
	if c.NumLayers > 0 && c.LayerSize <= 0 {
		return fmt.Errorf("layer size must be positive with %d hidden layers, got %d", c.NumLayers, c.LayerSize)
	}
	if c.NumOutputs <= 0 {
		return fmt.Errorf("num outputs must be positive, got %d", c.NumOutputs)
	}
	return nil
}

// Network is a fixed stack of layers plus the scratch storage Infer reuses
// between calls. A Network must not be used by more than one goroutine at a
// time; use Clone to give each goroutine its own.
type Network struct {
	config  Configuration
	layers  []Layer
	scratch [2][]float64
}

// New builds NumLayers hidden layers of LayerSize neurons followed by an
// output layer of NumOutputs neurons, every one using the sigmoid.
func New(c Configuration) *Network {
	return NewWithActivator(c, Sigmoid{})
}

// NewWithActivator builds the same topology as New with act assigned to
// every neuron. Every weight starts at 1.0 and every neuron's weight sum is
// its fan-in count. Construction never fails; see Configuration.Validate.
func NewWithActivator(c Configuration, act Activator) *Network {
	layers := make([]Layer, c.NumLayers+1)
	widest := c.NumInputs
	for li := range layers {
		numNeurons := c.LayerSize
		if li == c.NumLayers {
			numNeurons = c.NumOutputs
		}
		numWeights := c.LayerSize
		if li == 0 {
			numWeights = c.NumInputs
		}
		neurons := make([]Neuron, max(numNeurons, 0))
		for i := range neurons {
			weights := make([]float64, max(numWeights, 0))
			for j := range weights {
				weights[j] = 1.0
			}
			neurons[i] = Neuron{
				weights:   weights,
				weightSum: float64(numWeights),
				act:       act,
			}
		}
		layers[li] = Layer{index: li, neurons: neurons, fanIn: max(numWeights, 0)}
		widest = max(widest, len(neurons))
	}
	return &Network{
		config: c,
		layers: layers,
		scratch: [2][]float64{
			make([]float64, 0, max(widest, 0)),
			make([]float64, 0, max(widest, 0)),
		},
	}
}

// Config returns the configuration the network was built from.
func (net *Network) Config() Configuration { return net.config }

// Layers returns the layers from input-facing to output-facing.
func (net *Network) Layers() []Layer { return net.layers }

// Clone returns a network sharing net's layers, which are never modified
// after construction, with scratch storage of its own.
func (net *Network) Clone() *Network {
	return &Network{
		config: net.config,
		layers: net.layers,
		scratch: [2][]float64{
			make([]float64, 0, cap(net.scratch[0])),
			make([]float64, 0, cap(net.scratch[1])),
		},
	}
}

// Infer runs the forward pass and returns the output layer's signals.
//
// The returned slice is owned by the network and is overwritten by the next
// call. Passing an input whose length differs from NumInputs panics with a
// *ShapeError; nothing is truncated or padded.
func (net *Network) Infer(input []float64) []float64 {
	src := net.load(input)
	dst := net.scratch[1]
	for i := range net.layers {
		out := net.layers[i].Forward(dst[:cap(dst)], src)
		src, dst = out, src
	}
	return src
}

// load copies input into the first scratch buffer, growing it if input is
// wider than anything the network was sized for.
func (net *Network) load(input []float64) []float64 {
	if cap(net.scratch[0]) < len(input) {
		net.scratch[0] = make([]float64, 0, len(input))
	}
	buf := net.scratch[0][:len(input)]
	copy(buf, input)
	return buf
}
