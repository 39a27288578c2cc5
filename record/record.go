package record

import (
	"fmt"
	"strings"

	"github.com/hupe1980/mstledger/model"
)

// NoRev is stored in place of an empty revision.
const NoRev = "n/a"

// Kind enumerates the record variants.
type Kind uint8

const (
	KindInputSolution Kind = iota
	KindCorr
	KindPerf
	KindWeight
)

var kindNames = [...]string{
	KindInputSolution: "InputSolution",
	KindCorr:          "CorrResult",
	KindPerf:          "PerfResult",
	KindWeight:        "WeightResult",
}

var kindNouns = [...]string{
	KindInputSolution: "input solution",
	KindCorr:          "correctness result",
	KindPerf:          "performance result",
	KindWeight:        "weight result",
}

// Token counts of a log line per variant.
const (
	InputSolutionArity = 8
	CorrArity          = 10
	PerfArity          = 11
	WeightArity        = 10
)

var kindArity = [...]int{
	KindInputSolution: InputSolutionArity,
	KindCorr:          CorrArity,
	KindPerf:          PerfArity,
	KindWeight:        WeightArity,
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Arity returns the number of tokens in a log line of this kind.
func (k Kind) Arity() int {
	if int(k) < len(kindArity) {
		return kindArity[k]
	}
	return 0
}

// Any is the variant-independent view of a record.
type Any interface {
	Kind() Kind
	Input() model.Input
	Line() string
	HeaderLine() string
	StoragePath() (string, error)
	Warnings() []Warning
}

// KindInfo is one row of the dispatch table.
type KindInfo struct {
	Kind    Kind
	Name    string   // short name used on the command line
	Aliases []string // accepted alternatives, e.g. the type name
	Dir     string   // storage directory of the variant's logs
	Decode  func(tokens []string) (Any, error)
}

var kinds = []KindInfo{
	{
		Kind:    KindInputSolution,
		Name:    "input",
		Aliases: []string{"inputs", "inputsolution", "solution"},
		Dir:     InputDir,
		Decode:  decodeAs(ParseInputSolution),
	},
	{
		Kind:    KindCorr,
		Name:    "corr",
		Aliases: []string{"corrresult", "correctness"},
		Dir:     CorrDir,
		Decode:  decodeAs(ParseCorrResult),
	},
	{
		Kind:    KindPerf,
		Name:    "perf",
		Aliases: []string{"perfresult", "performance"},
		Dir:     PerfDir,
		Decode:  decodeAs(ParsePerfResult),
	},
	{
		Kind:    KindWeight,
		Name:    "weight",
		Aliases: []string{"weightresult"},
		Dir:     WeightDir,
		Decode:  decodeAs(ParseWeightResult),
	},
}

// Kinds returns the dispatch table in Kind order.
func Kinds() []KindInfo {
	out := make([]KindInfo, len(kinds))
	copy(out, kinds)
	return out
}

// LookupKind finds a dispatch table row by short name, alias or type name,
// ignoring case.
func LookupKind(name string) (KindInfo, bool) {
	name = strings.ToLower(name)
	for _, k := range kinds {
		if name == k.Name || name == strings.ToLower(k.Kind.String()) {
			return k, true
		}
		for _, a := range k.Aliases {
			if name == a {
				return k, true
			}
		}
	}
	return KindInfo{}, false
}

// RunID is the identity key of result records.
type RunID struct {
	Input model.ID
	Run   int
}

// Warning describes a field that deviates from its variant's convention.
type Warning struct {
	Kind  Kind
	Field string
	Got   string
	Want  string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s with %s %s (expected %s)", kindNouns[w.Kind], w.Field, w.Got, w.Want)
}

// ValueError reports a discrete-valued field outside its allowed set.
type ValueError struct {
	Field string
	Value int
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s value: %d", e.Field, e.Value)
}

func decodeAs[R Any](parse func([]string) (R, error)) func([]string) (Any, error) {
	return func(tokens []string) (Any, error) {
		r, err := parse(tokens)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
}

func checkArity(kind Kind, tokens []string) error {
	if len(tokens) != kind.Arity() {
		return &model.DataError{
			Op:  "decode",
			Err: &model.ArityError{Kind: kind.String(), Expected: kind.Arity(), Actual: len(tokens), Tokens: tokens},
		}
	}
	return nil
}
