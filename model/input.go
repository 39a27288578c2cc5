package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InputArity is the number of tokens that describe an Input.
const InputArity = 7

// Default edge weight range used by the input generator in edge mode.
const (
	DefaultEdgeMin = 0.0
	DefaultEdgeMax = 100000.0
)

// Input identifies a generated test input by its defining parameters.
//
// Dims is 0 for edge-weight mode; a positive value is the dimensionality of the
// vertex positions the edge weights are derived from.
type Input struct {
	Precision int
	Dims      int
	Min       float64
	Max       float64
	NumVerts  int
	NumEdges  int
	Seed      int64
}

// NewInput returns an Input from its typed fields.
func NewInput(prec, dims int, minVal, maxVal float64, numVerts, numEdges int, seed int64) Input {
	return Input{
		Precision: prec,
		Dims:      dims,
		Min:       minVal,
		Max:       maxVal,
		NumVerts:  numVerts,
		NumEdges:  numEdges,
		Seed:      seed,
	}
}

// ParseInput builds an Input from exactly InputArity tokens in Line order.
func ParseInput(tokens []string) (Input, error) {
	if len(tokens) != InputArity {
		return Input{}, &ArityError{Kind: "Input", Expected: InputArity, Actual: len(tokens), Tokens: tokens}
	}

	var (
		in  Input
		err error
	)
	if in.Precision, err = ParseInt("precision", tokens[0]); err != nil {
		return Input{}, err
	}
	if in.Dims, err = ParseInt("dims", tokens[1]); err != nil {
		return Input{}, err
	}
	if in.Min, err = ParseFloat("min", tokens[2]); err != nil {
		return Input{}, err
	}
	if in.Max, err = ParseFloat("max", tokens[3]); err != nil {
		return Input{}, err
	}
	if in.NumVerts, err = ParseInt("num_verts", tokens[4]); err != nil {
		return Input{}, err
	}
	if in.NumEdges, err = ParseInt("num_edges", tokens[5]); err != nil {
		return Input{}, err
	}
	if in.Seed, err = ParseInt64("seed", tokens[6]); err != nil {
		return Input{}, err
	}
	return in, nil
}

// Compare orders inputs field by field; the first unequal field decides.
func (in Input) Compare(other Input) int {
	if c := CompareInt(in.Precision, other.Precision); c != 0 {
		return c
	}
	if c := CompareInt(in.Dims, other.Dims); c != 0 {
		return c
	}
	if c := CompareFloat(in.Min, other.Min); c != 0 {
		return c
	}
	if c := CompareFloat(in.Max, other.Max); c != 0 {
		return c
	}
	if c := CompareInt(in.NumVerts, other.NumVerts); c != 0 {
		return c
	}
	if c := CompareInt(in.NumEdges, other.NumEdges); c != 0 {
		return c
	}
	return CompareInt(in.Seed, other.Seed)
}

// Equal reports whether all seven fields are equal under Compare.
func (in Input) Equal(other Input) bool {
	return in.Compare(other) == 0
}

// Hash is a rolling hash over the vertex count, edge count and seed.
//
// Precision, dims, min and max do not participate, so inputs that differ only
// in those fields collide. Map lookups still compare full identities.
func (in Input) Hash() int64 {
	ret := int64(in.NumVerts)
	ret = ret*31 + int64(in.NumEdges)
	return ret*31 + in.Seed
}

// ID is the comparable canonical identity of an Input.
//
// Floats are kept as bit patterns with -0 folded into +0 and every NaN folded
// into a single NaN, so two IDs are == exactly when their inputs Compare to 0.
type ID struct {
	Precision int
	Dims      int
	MinBits   uint64
	MaxBits   uint64
	NumVerts  int
	NumEdges  int
	Seed      int64
}

// ID returns the canonical identity of in.
func (in Input) ID() ID {
	return ID{
		Precision: in.Precision,
		Dims:      in.Dims,
		MinBits:   canonicalBits(in.Min),
		MaxBits:   canonicalBits(in.Max),
		NumVerts:  in.NumVerts,
		NumEdges:  in.NumEdges,
		Seed:      in.Seed,
	}
}

// Input converts the identity back into the Input it was derived from.
func (id ID) Input() Input {
	return Input{
		Precision: id.Precision,
		Dims:      id.Dims,
		Min:       math.Float64frombits(id.MinBits),
		Max:       math.Float64frombits(id.MaxBits),
		NumVerts:  id.NumVerts,
		NumEdges:  id.NumEdges,
		Seed:      id.Seed,
	}
}

func canonicalBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	case f == 0:
		return 0
	default:
		return math.Float64bits(f)
	}
}

// Line returns the tab-separated canonical text of the input.
func (in Input) Line() string {
	return strings.Join([]string{
		strconv.Itoa(in.Precision),
		strconv.Itoa(in.Dims),
		FormatFloat(in.Min),
		FormatFloat(in.Max),
		strconv.Itoa(in.NumVerts),
		strconv.Itoa(in.NumEdges),
		strconv.FormatInt(in.Seed, 10),
	}, "\t")
}

// String implements fmt.Stringer.
func (in Input) String() string {
	return in.Line()
}

// HeaderLine returns the column header comment for input lines.
//
// The Max column is padded so it roughly lines up with values of the same
// width as in.Max.
func (in Input) HeaderLine() string {
	pad := len(FormatFloat(in.Max)) - 3
	if pad < 0 {
		pad = 0
	}
	return "#Prec\tDim\tMin\tMax" + strings.Repeat(" ", pad) + "\t|V|\t|E|\tSeed               "
}

// WeightType classifies inputs of weight results. It is only defined for
// precision 15 inputs over [0,1].
func (in Input) WeightType() (string, bool) {
	if in.Precision != 15 || in.Min != 0 || in.Max != 1 {
		return "", false
	}
	if in.Dims > 0 {
		return fmt.Sprintf("loc%d", in.Dims), true
	}
	return "edge", true
}

// GeneratorArgs returns the input generator arguments that reproduce in.
func (in Input) GeneratorArgs() string {
	args := fmt.Sprintf("-p %d -n %d %d -r %d", in.Precision, in.NumEdges, in.NumVerts, in.Seed)
	if in.Dims == 0 && (in.Min != DefaultEdgeMin || in.Max != DefaultEdgeMax) {
		args += fmt.Sprintf(" -e %.1f,%.1f", in.Min, in.Max)
	} else if in.Dims > 0 {
		args += fmt.Sprintf(" -v %d,%.1f,%.1f", in.Dims, in.Min, in.Max)
	}
	return args
}

// CompleteGraphEdges returns the edge count of a complete graph on n vertices.
func CompleteGraphEdges(n int) int {
	return n * (n - 1) / 2
}
