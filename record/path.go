package record

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Storage directories, relative to the ledger root.
const (
	InputDir  = "input"
	CorrDir   = "result/corr"
	PerfDir   = "result/perf"
	WeightDir = "result/weight"
)

// ErrNoStoragePath is returned when a record's parameters map to no log.
var ErrNoStoragePath = errors.New("no storage path")

// InputSolutionPath routes an input to one of the input logs:
//
//	perf.inputs          edge mode, precision 1, [0,100000]
//	p2-redge.inputs      edge mode, precision 15, [0,1]
//	other-redge.inputs   any other edge-mode input
//	p2-rvert-{d}d.inputs vertex mode, 2 <= d <= 4, precision 15, [0,1]
//	other-rvert.inputs   any other vertex-mode input
func InputSolutionPath(prec, dims int, minVal, maxVal float64) string {
	part2 := prec == 15 && minVal == 0 && maxVal == 1

	var name string
	if dims == 0 {
		switch {
		case prec == 1 && minVal == 0 && maxVal == 100000:
			name = "perf.inputs"
		case part2:
			name = "p2-redge.inputs"
		default:
			name = "other-redge.inputs"
		}
	} else {
		if part2 && dims >= 2 && dims <= 4 {
			name = fmt.Sprintf("p2-rvert-%dd.inputs", dims)
		} else {
			name = "other-rvert.inputs"
		}
	}
	return path.Join(InputDir, name)
}

// CorrPath returns the correctness log of a revision.
func CorrPath(rev string) string { return path.Join(CorrDir, revFileName(rev)) }

// PerfPath returns the performance log of a revision.
func PerfPath(rev string) string { return path.Join(PerfDir, revFileName(rev)) }

// WeightPath returns the weight log of a weight type.
func WeightPath(weightType string) string { return path.Join(WeightDir, weightType) }

// revFileName maps a revision to a single path element. Escaping is
// injective, so distinct revisions never share a log.
func revFileName(rev string) string {
	if rev == "" {
		rev = NoRev
	}
	name := url.PathEscape(rev)
	if strings.Trim(name, ".") == "" {
		name = strings.ReplaceAll(name, ".", "%2E")
	}
	return name
}
