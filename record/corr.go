package record

import (
	"github.com/hupe1980/mstledger/model"
)

// Correctness flag values as they appear in a log line.
const (
	Incorrect = 0
	Correct   = 1
)

// CorrResult records whether a revision computed the right MST for an input.
type CorrResult struct {
	Result
	correct bool
}

// CorrParams configures NewCorrResult.
type CorrParams struct {
	model.Input
	Rev     string
	RunNum  int
	Correct int
}

// DefaultCorrParams returns params with the conventional precision of 1.
func DefaultCorrParams() CorrParams {
	return CorrParams{Input: model.Input{Precision: 1}}
}

// NewCorrResult builds a CorrResult. Correct must be 0 or 1.
func NewCorrResult(p CorrParams) (*CorrResult, error) {
	if p.Correct != Correct && p.Correct != Incorrect {
		return nil, &ValueError{Field: "corr", Value: p.Correct}
	}
	r := &CorrResult{Result: newResult(p.Input, p.Rev, p.RunNum), correct: p.Correct == Correct}
	r.warnInt(KindCorr, "precision", p.Precision, 1)
	return r, nil
}

// ParseCorrResult decodes the tokens of a correctness log line.
func ParseCorrResult(tokens []string) (*CorrResult, error) {
	if err := checkArity(KindCorr, tokens); err != nil {
		return nil, err
	}
	in, rev, run, err := parseResult(tokens)
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	corr, err := model.ParseInt("corr", tokens[9])
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	r, err := NewCorrResult(CorrParams{Input: in, Rev: rev, RunNum: run, Correct: corr})
	if err != nil {
		return nil, model.NewDecodeError(err)
	}
	return r, nil
}

func (r *CorrResult) Kind() Kind { return KindCorr }

// IsCorrect reports whether the revision found the correct MST.
func (r *CorrResult) IsCorrect() bool { return r.correct }

// Compare orders by input, revision and run number, then incorrect before correct.
func (r *CorrResult) Compare(other *CorrResult) int {
	if c := r.compare(&other.Result); c != 0 {
		return c
	}
	return model.CompareBool(r.correct, other.correct)
}

func (r *CorrResult) Line() string {
	if r.correct {
		return r.line() + "\t1"
	}
	return r.line() + "\t0"
}

func (r *CorrResult) HeaderLine() string {
	return r.headerLine() + "\tCorrect?"
}

// StoragePath returns the correctness log of the result's revision.
func (r *CorrResult) StoragePath() (string, error) {
	return CorrPath(r.rev), nil
}
