package record

import (
	"github.com/hupe1980/mstledger/model"
)

// UnknownWeight marks an input whose MST weight has not been computed.
const UnknownWeight = -1.0

// InputSolution records how to generate an input and, once known, the weight
// of its minimum spanning tree.
type InputSolution struct {
	Base
	mstWeight float64
}

// InputSolutionParams configures NewInputSolution.
type InputSolutionParams struct {
	model.Input
	MSTWeight float64
}

// DefaultInputSolutionParams returns params with an unknown MST weight.
func DefaultInputSolutionParams() InputSolutionParams {
	return InputSolutionParams{MSTWeight: UnknownWeight}
}

// NewInputSolution builds an InputSolution.
func NewInputSolution(p InputSolutionParams) *InputSolution {
	return &InputSolution{Base: Base{input: p.Input}, mstWeight: p.MSTWeight}
}

// ParseInputSolution decodes the tokens of an input log line.
func ParseInputSolution(tokens []string) (*InputSolution, error) {
	if err := checkArity(KindInputSolution, tokens); err != nil {
		return nil, err
	}
	in, err := model.ParseInput(tokens[:model.InputArity])
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	w, err := model.ParseFloat("mst_weight", tokens[model.InputArity])
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	return NewInputSolution(InputSolutionParams{Input: in, MSTWeight: w}), nil
}

func (s *InputSolution) Kind() Kind { return KindInputSolution }

// Key returns the input's identity.
func (s *InputSolution) Key() model.ID { return s.input.ID() }

// MSTWeight returns the MST weight, or UnknownWeight.
func (s *InputSolution) MSTWeight() float64 { return s.mstWeight }

// HasMSTWeight reports whether the MST weight is known.
func (s *InputSolution) HasMSTWeight() bool { return s.mstWeight >= 0 }

// UpdateMSTWeight sets the MST weight and reports whether it changed.
func (s *InputSolution) UpdateMSTWeight(w float64) bool {
	if model.CompareFloat(s.mstWeight, w) == 0 {
		return false
	}
	s.mstWeight = w
	return true
}

// Compare orders by input, then by MST weight.
func (s *InputSolution) Compare(other *InputSolution) int {
	if c := s.input.Compare(other.input); c != 0 {
		return c
	}
	return model.CompareFloat(s.mstWeight, other.mstWeight)
}

func (s *InputSolution) Line() string {
	return s.input.Line() + "\t" + model.FormatFloat(s.mstWeight)
}

func (s *InputSolution) HeaderLine() string {
	return s.input.HeaderLine() + "\tCorrectMSTWeight"
}

// StoragePath returns the name of the input log this solution belongs in.
func (s *InputSolution) StoragePath() (string, error) {
	return InputSolutionPath(s.input.Precision, s.input.Dims, s.input.Min, s.input.Max), nil
}
