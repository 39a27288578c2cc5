package record

import (
	"fmt"
	"strconv"

	"github.com/hupe1980/mstledger/model"
)

// WeightResult records the MST weight a revision found for a complete graph
// with weights (or vertex coordinates) drawn from [0,1].
type WeightResult struct {
	Result
	mstWeight float64
}

// WeightParams configures NewWeightResult.
type WeightParams struct {
	model.Input
	Rev       string
	RunNum    int
	MSTWeight float64

	// CompleteGraph sets NumEdges to n(n-1)/2 for the NumVerts given,
	// overriding any NumEdges value.
	CompleteGraph bool
}

// DefaultWeightParams returns precision 15 params over [0,1] with the edge
// count derived from the vertex count.
func DefaultWeightParams() WeightParams {
	return WeightParams{
		Input: model.Input{
			Precision: 15,
			Min:       0,
			Max:       1,
		},
		CompleteGraph: true,
	}
}

// NewWeightResult builds a WeightResult.
func NewWeightResult(p WeightParams) *WeightResult {
	if p.CompleteGraph {
		p.NumEdges = model.CompleteGraphEdges(p.NumVerts)
	}
	r := &WeightResult{Result: newResult(p.Input, p.Rev, p.RunNum), mstWeight: p.MSTWeight}
	r.warnInt(KindWeight, "precision", p.Precision, 15)
	r.warnFloat(KindWeight, "min_val", p.Min, 0)
	r.warnFloat(KindWeight, "max_val", p.Max, 1)
	if exp := model.CompleteGraphEdges(p.NumVerts); p.NumEdges != exp {
		r.warn(KindWeight, "num_edges", strconv.Itoa(p.NumEdges),
			fmt.Sprintf("complete graph, i.e., %d", exp))
	}
	return r
}

// ParseWeightResult decodes the tokens of a weight log line.
func ParseWeightResult(tokens []string) (*WeightResult, error) {
	if err := checkArity(KindWeight, tokens); err != nil {
		return nil, err
	}
	in, rev, run, err := parseResult(tokens)
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	w, err := model.ParseFloat("mst_weight", tokens[9])
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	return NewWeightResult(WeightParams{Input: in, Rev: rev, RunNum: run, MSTWeight: w}), nil
}

func (r *WeightResult) Kind() Kind { return KindWeight }

// MSTWeight returns the weight of the MST the run produced.
func (r *WeightResult) MSTWeight() float64 { return r.mstWeight }

// Compare orders by input, revision and run number, then MST weight.
func (r *WeightResult) Compare(other *WeightResult) int {
	if c := r.compare(&other.Result); c != 0 {
		return c
	}
	return model.CompareFloat(r.mstWeight, other.mstWeight)
}

func (r *WeightResult) Line() string {
	return r.line() + "\t" + model.FormatFixed(r.mstWeight, 15)
}

func (r *WeightResult) HeaderLine() string {
	return r.headerLine() + "\tMST Weight"
}

// StoragePath returns the weight log of the input's weight type.
// It fails for inputs outside precision 15 over [0,1].
func (r *WeightResult) StoragePath() (string, error) {
	wt, ok := r.input.WeightType()
	if !ok {
		return "", fmt.Errorf("%w: no weight type for input %s", ErrNoStoragePath, r.input.Line())
	}
	return WeightPath(wt), nil
}
