package footer

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hupe1980/mstledger/model"
)

// ErrFieldMissing is wrapped by ExtractError when a mandatory field is absent.
var ErrFieldMissing = errors.New("field missing")

// ExtractError reports a footer that yields no model.Input. Field is empty
// when the footer line itself could not be read.
type ExtractError struct {
	Path  string
	Field string
	Err   error
}

func (e *ExtractError) Error() string {
	msg := "failed to extract the footer"
	if e.Field != "" {
		msg += " field " + e.Field
	}
	if e.Path != "" {
		msg += " from " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExtractError) Unwrap() error { return e.Err }

// Generator names that open a footer line.
const (
	EdgeGenerator   = "gen_random_edge_lengths"
	VertexGenerator = "gen_random_vertex_positions"
)

var (
	dimsPattern = regexp.MustCompile(` d=(\S*)`)
	fields      = []struct {
		name    string
		pattern *regexp.Regexp
		set     func(in *model.Input, token string) error
	}{
		{"m", regexp.MustCompile(` m=(\S*)`), func(in *model.Input, tok string) (err error) {
			in.NumVerts, err = model.ParseInt("num_verts", tok)
			return err
		}},
		{"n", regexp.MustCompile(` n=(\S*)`), func(in *model.Input, tok string) (err error) {
			in.NumEdges, err = model.ParseInt("num_edges", tok)
			return err
		}},
		{"min", regexp.MustCompile(` min=(\S*)`), func(in *model.Input, tok string) (err error) {
			in.Min, err = model.ParseFloat("min_val", tok)
			return err
		}},
		{"max", regexp.MustCompile(` max=(\S*)`), func(in *model.Input, tok string) (err error) {
			in.Max, err = model.ParseFloat("max_val", tok)
			return err
		}},
		{"prec", regexp.MustCompile(` prec=(\S*)`), func(in *model.Input, tok string) (err error) {
			in.Precision, err = model.ParseInt("precision", tok)
			return err
		}},
		{"seed", regexp.MustCompile(` seed=(\S*)`), func(in *model.Input, tok string) (err error) {
			in.Seed, err = model.ParseInt64("seed", tok)
			return err
		}},
	}
)

// Parse extracts an input from a footer line. Each field is matched on its
// own, so their order and any surrounding text are irrelevant. The d field
// is optional and defaults to 0 (edge mode); every other field is required.
func Parse(line string) (model.Input, error) {
	var in model.Input

	if m := dimsPattern.FindStringSubmatch(line); m != nil {
		d, err := model.ParseInt("dimensionality", m[1])
		if err != nil {
			return model.Input{}, &ExtractError{Field: "d", Err: err}
		}
		in.Dims = d
	}

	for _, f := range fields {
		m := f.pattern.FindStringSubmatch(line)
		if m == nil {
			return model.Input{}, &ExtractError{Field: f.name, Err: ErrFieldMissing}
		}
		if err := f.set(&in, m[1]); err != nil {
			return model.Input{}, &ExtractError{Field: f.name, Err: err}
		}
	}
	return in, nil
}

// Format returns the footer line the generator writes for in.
func Format(in model.Input) string {
	if in.Dims > 0 {
		return fmt.Sprintf("%s: m=%d n=%d d=%d min=%s max=%s prec=%d seed=%d",
			VertexGenerator, in.NumVerts, in.NumEdges, in.Dims,
			model.FormatFixed(in.Min, 1), model.FormatFixed(in.Max, 1), in.Precision, in.Seed)
	}
	return fmt.Sprintf("%s: m=%d n=%d min=%s max=%s prec=%d seed=%d",
		EdgeGenerator, in.NumVerts, in.NumEdges,
		model.FormatFixed(in.Min, 1), model.FormatFixed(in.Max, 1), in.Precision, in.Seed)
}
