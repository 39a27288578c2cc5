package mstledger

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/mstledger/internal/conv"
	"github.com/hupe1980/mstledger/model"
)

// RunIndex records which run numbers exist per input.
type RunIndex struct {
	runs map[model.ID]*roaring.Bitmap
}

// NewRunIndex returns an empty index.
func NewRunIndex() *RunIndex {
	return &RunIndex{runs: make(map[model.ID]*roaring.Bitmap)}
}

// IndexRuns builds an index from result records.
func IndexRuns[R interface {
	Input() model.Input
	RunNum() int
}](records []R) *RunIndex {
	idx := NewRunIndex()
	for _, r := range records {
		idx.Add(r.Input(), r.RunNum())
	}
	return idx
}

// Add marks run as present for in. Runs outside [0, MaxUint32] are ignored
// and reported as false.
func (x *RunIndex) Add(in model.Input, run int) bool {
	v, err := conv.RunToUint32(run)
	if err != nil {
		return false
	}
	id := in.ID()
	bm, ok := x.runs[id]
	if !ok {
		bm = roaring.New()
		x.runs[id] = bm
	}
	return bm.CheckedAdd(v)
}

// Has reports whether run is present for in.
func (x *RunIndex) Has(in model.Input, run int) bool {
	bm, ok := x.runs[in.ID()]
	if !ok {
		return false
	}
	v, err := conv.RunToUint32(run)
	return err == nil && bm.Contains(v)
}

// Runs returns the runs present for in in ascending order.
func (x *RunIndex) Runs(in model.Input) []int {
	bm, ok := x.runs[in.ID()]
	if !ok {
		return nil
	}
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Next returns one past the highest run of in, or 0 when in has none.
func (x *RunIndex) Next(in model.Input) int {
	bm, ok := x.runs[in.ID()]
	if !ok || bm.IsEmpty() {
		return 0
	}
	return int(bm.Maximum()) + 1
}

// Missing returns the runs in [0, n) not yet present for in.
func (x *RunIndex) Missing(in model.Input, n int) []int {
	if n <= 0 {
		return nil
	}
	want := roaring.New()
	want.AddRange(0, uint64(n))
	if bm, ok := x.runs[in.ID()]; ok {
		want.AndNot(bm)
	}
	out := make([]int, 0, want.GetCardinality())
	for _, v := range want.ToArray() {
		out = append(out, int(v))
	}
	return out
}

// Count returns the number of runs present for in.
func (x *RunIndex) Count(in model.Input) int {
	if bm, ok := x.runs[in.ID()]; ok {
		return int(bm.GetCardinality())
	}
	return 0
}

// Inputs returns the indexed inputs in ascending order.
func (x *RunIndex) Inputs() []model.Input {
	out := make([]model.Input, 0, len(x.runs))
	for id := range x.runs {
		out = append(out, id.Input())
	}
	slices.SortFunc(out, model.Input.Compare)
	return out
}

// Len returns the number of indexed inputs.
func (x *RunIndex) Len() int { return len(x.runs) }
