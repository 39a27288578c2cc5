package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/mstledger/footer"
	"github.com/hupe1980/mstledger/model"
	"github.com/spf13/cobra"
)

// MaxPrecision is the largest number of decimals a double holds reliably.
const MaxPrecision = 15

type generateOptions struct {
	numEdges    string
	precision   int
	edgeRange   string
	vertexRange string
	seed        int64
	style       string
}

func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "geninput [flags] NUM_VERTICES",
		Short: "Describe a connected graph with no self-loops or parallel edges",
		Long: `Validates the generator parameters and prints the footer line of the
generated input, from which the ledger recovers the input's parameters.

Edge weights are drawn from MIN,MAX (-e, min exclusive) or derived from
vertex positions in DIM dimensions (-v); the two are mutually exclusive.`,
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case len(args) < 1:
				return errors.New("missing NUM_VERTICES")
			case len(args) > 1:
				return errors.New("too many arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := opts.seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			in, err := opts.input(args[0], seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), footer.Format(in))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.numEdges, "num-edges", "n", "complete", "number of edges, an integer or 'complete'")
	f.IntVarP(&opts.precision, "precision", "p", 1, "number of decimal places of edge weights")
	f.StringVarP(&opts.edgeRange, "edge-weight-range", "e", "", "range of edge weights as MIN,MAX (default 0,100000)")
	f.StringVarP(&opts.vertexRange, "vertex-pos-range", "v", "", "dimensionality and range of vertex positions as DIM,MIN,MAX")
	f.Int64VarP(&opts.seed, "seed", "r", 0, "random seed (default: time based)")
	f.StringVarP(&opts.style, "style", "s", "", "how to place edges (not supported)")

	return cmd
}

// input validates the options and returns the input they describe.
func (o *generateOptions) input(numVertsArg string, seed int64) (model.Input, error) {
	numVerts, err := strconv.Atoi(numVertsArg)
	if err != nil {
		return model.Input{}, errors.New("NUM_VERTICES must be an integer")
	}

	numEdges, err := o.edgeCount(numVerts)
	if err != nil {
		return model.Input{}, err
	}

	switch {
	case o.precision < 1:
		return model.Input{}, errors.New("-p must be at least 1")
	case o.precision > MaxPrecision:
		return model.Input{}, fmt.Errorf("-p must be no more than %d (doubles cannot accurately represent more than this)", MaxPrecision)
	}

	if o.style != "" {
		return model.Input{}, errors.New("option -s is not yet supported")
	}
	if o.edgeRange != "" && o.vertexRange != "" {
		return model.Input{}, errors.New("option -e and -v are mutually exclusive")
	}

	in := model.Input{
		Precision: o.precision,
		Min:       model.DefaultEdgeMin,
		Max:       model.DefaultEdgeMax,
		NumVerts:  numVerts,
		NumEdges:  numEdges,
		Seed:      seed,
	}

	switch {
	case o.vertexRange != "":
		in.Dims, in.Min, in.Max, err = parseVertexRange(o.vertexRange)
	case o.edgeRange != "":
		in.Min, in.Max, err = parseEdgeRange(o.edgeRange)
	}
	if err != nil {
		return model.Input{}, err
	}
	return in, nil
}

func (o *generateOptions) edgeCount(numVerts int) (int, error) {
	switch o.numEdges {
	case "", "c", "complete":
		return model.CompleteGraphEdges(numVerts), nil
	}
	n, err := strconv.Atoi(o.numEdges)
	if err != nil {
		return 0, errors.New("-n must either be an integer or 'complete'")
	}
	if n > numVerts*numVerts {
		return 0, errors.New("-n may not be larger than NUM_VERTICES squared")
	}
	return n, nil
}

func parseEdgeRange(s string) (minVal, maxVal float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New("option -e requires its arguments to be in the form float,float")
	}
	if minVal, err = strconv.ParseFloat(parts[0], 64); err == nil {
		maxVal, err = strconv.ParseFloat(parts[1], 64)
	}
	if err != nil {
		return 0, 0, errors.New("option -e requires its arguments to be in the form float,float")
	}
	if minVal < 0 {
		return 0, 0, errors.New("option -e requires minimum edge length (exclusive) to be >= 0.0")
	}
	if minVal > maxVal {
		return 0, 0, errors.New("option -e requires the minimum edge length < maximum edge length")
	}
	return minVal, maxVal, nil
}

func parseVertexRange(s string) (dims int, minVal, maxVal float64, err error) {
	const format = "option -v requires its arguments to be in the form int,float,float"

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, errors.New(format)
	}
	if dims, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, errors.New(format)
	}
	if minVal, err = strconv.ParseFloat(parts[1], 64); err == nil {
		maxVal, err = strconv.ParseFloat(parts[2], 64)
	}
	if err != nil {
		return 0, 0, 0, errors.New(format)
	}
	if dims < 0 {
		return 0, 0, 0, errors.New("option -v requires dimensionality to be a strictly positive integer")
	}
	if minVal > maxVal {
		return 0, 0, 0, errors.New("option -v requires the minimum position <= maximum position")
	}
	return dims, minVal, maxVal, nil
}
