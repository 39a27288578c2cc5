package record

import (
	"strconv"
	"strings"

	"github.com/hupe1980/mstledger/model"
)

// Base carries the input every record describes.
type Base struct {
	input    model.Input
	warnings []Warning
}

// Input returns the record's input parameters.
func (b *Base) Input() model.Input { return b.input }

// Warnings returns the convention deviations found at construction.
func (b *Base) Warnings() []Warning { return b.warnings }

func (b *Base) warn(kind Kind, field, got, want string) {
	b.warnings = append(b.warnings, Warning{Kind: kind, Field: field, Got: got, Want: want})
}

func (b *Base) warnInt(kind Kind, field string, got, want int) {
	if got != want {
		b.warn(kind, field, strconv.Itoa(got), strconv.Itoa(want))
	}
}

func (b *Base) warnFloat(kind Kind, field string, got, want float64) {
	if got != want {
		b.warn(kind, field, model.FormatFloat(got), model.FormatFloat(want))
	}
}

// Result is embedded by the records that describe a run of some revision.
type Result struct {
	Base
	rev    string
	runNum int
}

func newResult(in model.Input, rev string, runNum int) Result {
	if rev == "" {
		rev = NoRev
	}
	return Result{Base: Base{input: in}, rev: rev, runNum: runNum}
}

// Rev returns the revision that produced the result.
func (r *Result) Rev() string { return r.rev }

// RunNum returns the run number of the result.
func (r *Result) RunNum() int { return r.runNum }

// Key returns the result's identity: its input plus the run number.
func (r *Result) Key() RunID {
	return RunID{Input: r.input.ID(), Run: r.runNum}
}

func (r *Result) compare(other *Result) int {
	if c := r.input.Compare(other.input); c != 0 {
		return c
	}
	if c := model.CompareString(r.rev, other.rev); c != 0 {
		return c
	}
	return model.CompareInt(r.runNum, other.runNum)
}

func (r *Result) line() string {
	return r.input.Line() + "\t" + r.rev + "\t" + strconv.Itoa(r.runNum)
}

func (r *Result) headerLine() string {
	pad := len(r.rev) - 3
	if pad < 0 {
		pad = 0
	}
	return r.input.HeaderLine() + "\tRev" + strings.Repeat(" ", pad) + "\tRun#"
}

// parseResult decodes the shared leading tokens of a result line:
// seven input fields, the revision and the run number.
func parseResult(tokens []string) (model.Input, string, int, error) {
	in, err := model.ParseInput(tokens[:model.InputArity])
	if err != nil {
		return model.Input{}, "", 0, err
	}
	run, err := model.ParseInt("run_num", tokens[model.InputArity+1])
	if err != nil {
		return model.Input{}, "", 0, err
	}
	return in, tokens[model.InputArity], run, nil
}
