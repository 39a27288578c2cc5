package record

import (
	"github.com/hupe1980/mstledger/model"
)

// PerfResult records how long a revision took to find the MST of an input.
type PerfResult struct {
	Result
	timeSec   float64
	mstWeight float64
}

// PerfParams configures NewPerfResult.
type PerfParams struct {
	model.Input
	Rev       string
	RunNum    int
	TimeSec   float64
	MSTWeight float64
}

// DefaultPerfParams returns params describing a precision 1 edge-mode input
// over the generator's default weight range.
func DefaultPerfParams() PerfParams {
	return PerfParams{Input: model.Input{
		Precision: 1,
		Dims:      0,
		Min:       model.DefaultEdgeMin,
		Max:       model.DefaultEdgeMax,
	}}
}

// NewPerfResult builds a PerfResult.
func NewPerfResult(p PerfParams) *PerfResult {
	r := &PerfResult{Result: newResult(p.Input, p.Rev, p.RunNum), timeSec: p.TimeSec, mstWeight: p.MSTWeight}
	r.warnInt(KindPerf, "precision", p.Precision, 1)
	r.warnInt(KindPerf, "dimensionality", p.Dims, 0)
	r.warnFloat(KindPerf, "min_val", p.Min, model.DefaultEdgeMin)
	r.warnFloat(KindPerf, "max_val", p.Max, model.DefaultEdgeMax)
	return r
}

// ParsePerfResult decodes the tokens of a performance log line.
func ParsePerfResult(tokens []string) (*PerfResult, error) {
	if err := checkArity(KindPerf, tokens); err != nil {
		return nil, err
	}
	in, rev, run, err := parseResult(tokens)
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	t, err := model.ParseFloat("time_sec", tokens[9])
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	w, err := model.ParseFloat("mst_weight", tokens[10])
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	return NewPerfResult(PerfParams{Input: in, Rev: rev, RunNum: run, TimeSec: t, MSTWeight: w}), nil
}

func (r *PerfResult) Kind() Kind { return KindPerf }

// TimeSec returns the measured running time in seconds.
func (r *PerfResult) TimeSec() float64 { return r.timeSec }

// MSTWeight returns the weight of the MST the run produced.
func (r *PerfResult) MSTWeight() float64 { return r.mstWeight }

// Compare orders by input, revision and run number, then running time.
func (r *PerfResult) Compare(other *PerfResult) int {
	if c := r.compare(&other.Result); c != 0 {
		return c
	}
	return model.CompareFloat(r.timeSec, other.timeSec)
}

func (r *PerfResult) Line() string {
	return r.line() + "\t" + model.FormatFixed(r.timeSec, 2) + "\t" + model.FormatFixed(r.mstWeight, 1)
}

func (r *PerfResult) HeaderLine() string {
	return r.headerLine() + "\tTime(sec)\tMSTWeight"
}

// StoragePath returns the performance log of the result's revision.
func (r *PerfResult) StoragePath() (string, error) {
	return PerfPath(r.rev), nil
}
