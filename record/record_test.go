package record

import (
	"errors"
	"math"
	"path"
	"strings"
	"testing"

	"github.com/hupe1980/mstledger/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputSolutionWeightLifecycle(t *testing.T) {
	p := DefaultInputSolutionParams()
	p.Input = model.NewInput(15, 2, 0, 1, 10, 45, 7)
	s := NewInputSolution(p)

	assert.False(t, s.HasMSTWeight())
	assert.True(t, s.UpdateMSTWeight(3.14159))
	assert.True(t, s.HasMSTWeight())
	assert.False(t, s.UpdateMSTWeight(3.14159))
	assert.True(t, strings.HasSuffix(s.Line(), "\t3.14159"))
	assert.Equal(t, "15\t2\t0.0\t1.0\t10\t45\t7\t3.14159", s.Line())
}

func TestInputSolutionUpdateNaN(t *testing.T) {
	s := NewInputSolution(InputSolutionParams{MSTWeight: math.NaN()})
	assert.False(t, s.UpdateMSTWeight(math.NaN()))
	assert.False(t, s.HasMSTWeight())
}

func TestCorrResultRejectsInvalidFlag(t *testing.T) {
	p := DefaultCorrParams()
	p.Correct = 2

	_, err := NewCorrResult(p)
	require.Error(t, err)

	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 2, ve.Value)
	assert.Contains(t, err.Error(), "2")
}

func TestCorrResultFromTokens(t *testing.T) {
	r, err := ParseCorrResult(strings.Fields("1 0 0.0 100000.0 100 200 42 abc123 3 1"))
	require.NoError(t, err)

	assert.True(t, r.IsCorrect())
	assert.Equal(t, "abc123", r.Rev())
	assert.Equal(t, 3, r.RunNum())
	assert.Empty(t, r.Warnings())
	assert.Equal(t, "1\t0\t0.0\t100000.0\t100\t200\t42\tabc123\t3\t1", r.Line())

	_, err = ParseCorrResult(strings.Fields("1 0 0.0 100000.0 100 200 42 abc123 3 7"))
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
	assert.True(t, model.IsDataError(err))
}

func TestCorrResultPrecisionWarning(t *testing.T) {
	p := DefaultCorrParams()
	p.Precision = 15
	p.Correct = Correct

	r, err := NewCorrResult(p)
	require.NoError(t, err)
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "correctness result with precision 15 (expected 1)", r.Warnings()[0].String())
}

func TestEmptyRevIsNormalized(t *testing.T) {
	r := NewPerfResult(DefaultPerfParams())
	assert.Equal(t, NoRev, r.Rev())

	path, err := r.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "result/perf/n%2Fa", path)
}

func TestArityEnforcement(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.Kind.String(), func(t *testing.T) {
			tokens := []string{"1", "2", "3"}
			_, err := k.Decode(tokens)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrArity))
			assert.True(t, model.IsDataError(err))

			var ae *model.ArityError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, k.Kind.Arity(), ae.Expected)
			assert.Equal(t, 3, ae.Actual)
		})
	}
}

func TestParseErrorIsWrapped(t *testing.T) {
	_, err := ParsePerfResult(strings.Fields("1 0 0.0 100000.0 100 200 42 abc 0 fast 12.5"))
	require.Error(t, err)
	assert.True(t, model.IsDataError(err))

	var pe *model.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "time_sec", pe.Field)
}

func TestPerfResultWarnings(t *testing.T) {
	p := DefaultPerfParams()
	p.Precision = 3
	p.Dims = 2
	p.Min = 0.5
	p.Max = 10

	r := NewPerfResult(p)
	var fields []string
	for _, w := range r.Warnings() {
		fields = append(fields, w.Field)
	}
	assert.Equal(t, []string{"precision", "dimensionality", "min_val", "max_val"}, fields)
}

func TestPerfResultLine(t *testing.T) {
	p := DefaultPerfParams()
	p.NumVerts, p.NumEdges, p.Seed = 1000, 5000, 9
	p.Rev, p.RunNum = "deadbeef", 2
	p.TimeSec, p.MSTWeight = 1.5, 12345

	r := NewPerfResult(p)
	assert.Equal(t, "1\t0\t0.0\t100000.0\t1000\t5000\t9\tdeadbeef\t2\t1.50\t12345.0", r.Line())
	assert.Equal(t, "#Prec\tDim\tMin\tMax     \t|V|\t|E|\tSeed               \tRev     \tRun#\tTime(sec)\tMSTWeight", r.HeaderLine())

	back, err := ParsePerfResult(strings.Fields(r.Line()))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Compare(back))
}

func TestWeightResultDefaults(t *testing.T) {
	p := DefaultWeightParams()
	p.Dims, p.NumVerts, p.Seed = 3, 10, 1
	p.Rev, p.MSTWeight = "r1", 0.123456789012345

	r := NewWeightResult(p)
	assert.Equal(t, 45, r.Input().NumEdges)
	assert.Empty(t, r.Warnings())
	assert.Equal(t, "15\t3\t0.0\t1.0\t10\t45\t1\tr1\t0\t0.123456789012345", r.Line())

	path, err := r.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "result/weight/loc3", path)
}

func TestWeightResultEdgeCountWarning(t *testing.T) {
	p := DefaultWeightParams()
	p.NumVerts, p.NumEdges = 10, 20
	p.CompleteGraph = false

	r := NewWeightResult(p)
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "weight result with num_edges 20 (expected complete graph, i.e., 45)", r.Warnings()[0].String())
}

func TestWeightResultKeepsParsedEdgeCount(t *testing.T) {
	line := "15\t2\t0.0\t1.0\t10\t-1\t7\tr1\t0\t0.500000000000000"

	r, err := ParseWeightResult(strings.Fields(line))
	require.NoError(t, err)
	assert.Equal(t, -1, r.Input().NumEdges)
	assert.Equal(t, line, r.Line())
	require.Len(t, r.Warnings(), 1)
	assert.Equal(t, "weight result with num_edges -1 (expected complete graph, i.e., 45)", r.Warnings()[0].String())

	complete, err := ParseWeightResult(strings.Fields("15 2 0.0 1.0 10 45 7 r1 0 0.5"))
	require.NoError(t, err)
	assert.NotEqual(t, complete.Key(), r.Key())
}

func TestWeightResultWithoutWeightType(t *testing.T) {
	p := DefaultWeightParams()
	p.Precision = 1
	p.NumVerts = 4

	r := NewWeightResult(p)
	_, err := r.StoragePath()
	assert.ErrorIs(t, err, ErrNoStoragePath)
}

func TestResultCompareTieBreaks(t *testing.T) {
	in := model.NewInput(1, 0, 0, 100000, 10, 20, 1)
	mk := func(rev string, run, corr int) *CorrResult {
		r, err := NewCorrResult(CorrParams{Input: in, Rev: rev, RunNum: run, Correct: corr})
		require.NoError(t, err)
		return r
	}

	assert.Equal(t, -1, mk("a", 5, 1).Compare(mk("b", 0, 0)))
	assert.Equal(t, -1, mk("a", 1, 1).Compare(mk("a", 2, 0)))
	assert.Equal(t, -1, mk("a", 1, 0).Compare(mk("a", 1, 1)))
	assert.Equal(t, 0, mk("a", 1, 1).Compare(mk("a", 1, 1)))

	// identity ignores revision and outcome
	assert.Equal(t, mk("a", 1, 0).Key(), mk("b", 1, 1).Key())
	assert.NotEqual(t, mk("a", 1, 0).Key(), mk("a", 2, 0).Key())
}

func TestInputSolutionPathRouting(t *testing.T) {
	tests := []struct {
		prec     int
		dims     int
		min, max float64
		want     string
	}{
		{1, 0, 0, 100000, "input/perf.inputs"},
		{15, 0, 0, 1, "input/p2-redge.inputs"},
		{3, 0, 0, 1, "input/other-redge.inputs"},
		{15, 2, 0, 1, "input/p2-rvert-2d.inputs"},
		{15, 4, 0, 1, "input/p2-rvert-4d.inputs"},
		{15, 5, 0, 1, "input/other-rvert.inputs"},
		{1, 3, 0, 100000, "input/other-rvert.inputs"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, InputSolutionPath(tt.prec, tt.dims, tt.min, tt.max))
		})
	}
}

func TestRevFileName(t *testing.T) {
	assert.Equal(t, "result/corr/abc", CorrPath("abc"))
	assert.Equal(t, "result/corr/a%2Fb", CorrPath("a/b"))
	assert.Equal(t, "result/corr/%2E%2E", CorrPath(".."))
	assert.Equal(t, "result/corr/n%2Fa", CorrPath(""))
	assert.Equal(t, "result/corr/n%2Fa", CorrPath(NoRev))
}

func TestRevFileNameIsInjective(t *testing.T) {
	revs := []string{"a/b", "a_b", `a\b`, "a%2Fb", "..", "%2E%2E", "_..", ".", "feature/x", "feature_x", "v1.2"}

	seen := make(map[string]string, len(revs))
	for _, rev := range revs {
		name := CorrPath(rev)
		assert.Equal(t, CorrDir, path.Dir(name), "rev %q escapes its directory", rev)
		if prev, ok := seen[name]; ok {
			t.Errorf("revisions %q and %q share log %s", prev, rev, name)
		}
		seen[name] = rev
	}
}

func TestLookupKind(t *testing.T) {
	k, ok := LookupKind("corr")
	require.True(t, ok)
	assert.Equal(t, KindCorr, k.Kind)

	k, ok = LookupKind("WeightResult")
	require.True(t, ok)
	assert.Equal(t, KindWeight, k.Kind)

	_, ok = LookupKind("bogus")
	assert.False(t, ok)

	rec, err := k.Decode(strings.Fields("15 0 0.0 1.0 4 6 1 r 0 1.5"))
	require.NoError(t, err)
	assert.Equal(t, KindWeight, rec.Kind())
}
