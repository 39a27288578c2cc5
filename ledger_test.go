package mstledger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/hupe1980/mstledger/blobstore"
	"github.com/hupe1980/mstledger/model"
	"github.com/hupe1980/mstledger/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var perfInput = model.NewInput(1, 0, 0, 100000, 100, 200, 42)

func corr(t *testing.T, in model.Input, rev string, run, correct int) *record.CorrResult {
	t.Helper()
	r, err := record.NewCorrResult(record.CorrParams{Input: in, Rev: rev, RunNum: run, Correct: correct})
	require.NoError(t, err)
	return r
}

func TestAddToLog(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	l := New(store)

	changed, err := l.AddCorrResult(ctx, corr(t, perfInput, "abc123", 0, record.Correct))
	require.NoError(t, err)
	assert.True(t, changed)

	data, err := blobstore.ReadAll(ctx, store, "result/corr/abc123")
	require.NoError(t, err)
	assert.Equal(t,
		"#Prec\tDim\tMin\tMax     \t|V|\t|E|\tSeed               \tRev   \tRun#\tCorrect?\n"+
			"1\t0\t0.0\t100000.0\t100\t200\t42\tabc123\t0\t1\n",
		string(data))

	t.Run("identical record leaves the log alone", func(t *testing.T) {
		changed, err := l.AddCorrResult(ctx, corr(t, perfInput, "abc123", 0, record.Correct))
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("differing record replaces", func(t *testing.T) {
		changed, err := l.AddCorrResult(ctx, corr(t, perfInput, "abc123", 0, record.Incorrect))
		require.NoError(t, err)
		assert.True(t, changed)

		d, err := l.LoadCorrResults(ctx, "abc123", true)
		require.NoError(t, err)
		require.Equal(t, 1, d.Len())
		assert.False(t, d.Records()[0].IsCorrect())
	})

	t.Run("override", func(t *testing.T) {
		changed, err := AddToLog[record.RunID](ctx, l, corr(t, perfInput, "abc123", 1, record.Correct), record.ParseCorrResult, "scratch/corr")
		require.NoError(t, err)
		assert.True(t, changed)

		ok, err := blobstore.Exists(ctx, store, "scratch/corr")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAddInputSolutionUpdatesWeight(t *testing.T) {
	ctx := context.Background()
	l := New(blobstore.NewMemoryStore())

	p := record.DefaultInputSolutionParams()
	p.Input = model.NewInput(15, 0, 0, 1, 10, 45, 7)
	s := record.NewInputSolution(p)

	changed, err := l.AddInputSolution(ctx, s)
	require.NoError(t, err)
	assert.True(t, changed)

	s.UpdateMSTWeight(1.25)
	changed, err = l.AddInputSolution(ctx, s)
	require.NoError(t, err)
	assert.True(t, changed)

	d, err := l.LoadInputSolutions(ctx, "input/p2-redge.inputs", true)
	require.NoError(t, err)
	got, ok := d.Get(p.Input.ID())
	require.True(t, ok)
	assert.Equal(t, 1.25, got.MSTWeight())
}

func TestAddWithoutStoragePath(t *testing.T) {
	p := record.DefaultWeightParams()
	p.Precision = 1
	p.NumVerts = 4

	_, err := New(blobstore.NewMemoryStore()).AddWeightResult(context.Background(), record.NewWeightResult(p))
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrNoStoragePath)
	assert.True(t, model.IsDataError(err))
}

func TestAddRecord(t *testing.T) {
	ctx := context.Background()
	l := New(blobstore.NewMemoryStore())

	for _, k := range record.Kinds() {
		var line string
		switch k.Kind {
		case record.KindInputSolution:
			line = "1 0 0.0 100000.0 100 200 42 7.5"
		case record.KindCorr:
			line = "1 0 0.0 100000.0 100 200 42 r1 0 1"
		case record.KindPerf:
			line = "1 0 0.0 100000.0 100 200 42 r1 0 0.25 7.5"
		case record.KindWeight:
			line = "15 2 0.0 1.0 10 45 3 r1 0 0.5"
		}
		rec, err := k.Decode(strings.Fields(line))
		require.NoError(t, err)

		changed, err := l.AddRecord(ctx, rec, "")
		require.NoError(t, err, k.Name)
		assert.True(t, changed, k.Name)
	}

	names, err := l.Store().List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"input/perf.inputs", "result/corr/r1", "result/perf/r1", "result/weight/loc2"}, names)
}

func TestWarningsAreReported(t *testing.T) {
	var (
		buf  bytes.Buffer
		seen []record.Warning
	)
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := New(blobstore.NewMemoryStore(),
		WithLogger(logger),
		WithWarningHandler(func(w record.Warning) { seen = append(seen, w) }),
	)

	in := model.NewInput(15, 0, 0, 100000, 100, 200, 42)
	_, err := l.AddCorrResult(context.Background(), corr(t, in, "r", 0, record.Correct))
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, "precision", seen[0].Field)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "field=precision")
	assert.Contains(t, buf.String(), "log saved")
}

func TestLoadLogsDecodedWarnings(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	in := model.NewInput(15, 0, 0, 100000, 100, 200, 42)
	require.NoError(t, store.Put(ctx, record.CorrPath("r"), []byte(corr(t, in, "r", 0, record.Correct).Line()+"\n")))

	var (
		buf  bytes.Buffer
		seen []record.Warning
	)
	l := New(store,
		WithLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithWarningHandler(func(w record.Warning) { seen = append(seen, w) }),
	)

	d, err := l.LoadCorrResults(ctx, "r", true)
	require.NoError(t, err)
	require.Equal(t, 1, d.Len())
	assert.Empty(t, seen)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "field=precision")
	assert.NotContains(t, buf.String(), "level=WARN")

	buf.Reset()
	quiet := New(store, WithLogger(NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))))
	_, err = quiet.LoadCorrResults(ctx, "r", true)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "field=precision")
}

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	metrics := &BasicMetricsCollector{}
	l := New(blobstore.NewMemoryStore(), WithMetricsCollector(metrics))

	r := corr(t, perfInput, "r", 0, record.Correct)
	_, err := l.AddCorrResult(ctx, r)
	require.NoError(t, err)
	_, err = l.AddCorrResult(ctx, r)
	require.NoError(t, err)
	_, err = l.LoadCorrResults(ctx, "missing", true)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.AddCount)
	assert.Equal(t, int64(1), stats.AddChanged)
	assert.Equal(t, int64(0), stats.AddErrors)
	assert.Equal(t, int64(1), stats.SaveCount)
	assert.Equal(t, int64(3), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.Equal(t, int64(1), stats.LoadRecords)
}

func TestLoadMany(t *testing.T) {
	ctx := context.Background()
	l := New(blobstore.NewMemoryStore(), WithLoadConcurrency(2))

	revs := []string{"r1", "r2", "r3"}
	for i, rev := range revs {
		for run := 0; run <= i; run++ {
			p := record.DefaultPerfParams()
			p.Input = perfInput
			p.Rev, p.RunNum, p.TimeSec = rev, run, float64(run)
			_, err := l.AddPerfResult(ctx, record.NewPerfResult(p))
			require.NoError(t, err)
		}
	}

	names := []string{record.PerfPath("r1"), record.PerfPath("r2"), record.PerfPath("r3"), record.PerfPath("none")}
	logs, err := LoadMany[record.RunID](ctx, l, names, record.ParsePerfResult, false)
	require.NoError(t, err)
	require.Len(t, logs, 4)
	assert.Equal(t, 1, logs[record.PerfPath("r1")].Len())
	assert.Equal(t, 3, logs[record.PerfPath("r3")].Len())
	assert.Equal(t, 0, logs[record.PerfPath("none")].Len())

	_, err = LoadMany[record.RunID](ctx, l, names, record.ParsePerfResult, true)
	require.Error(t, err)
	assert.True(t, model.IsDataError(err))
}

func TestNextRunNum(t *testing.T) {
	ctx := context.Background()
	l := New(blobstore.NewMemoryStore())

	next, err := l.NextRunNum(ctx, record.KindCorr, "r", perfInput)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	for _, run := range []int{0, 1, 4} {
		_, err := l.AddCorrResult(ctx, corr(t, perfInput, "r", run, record.Correct))
		require.NoError(t, err)
	}
	next, err = l.NextRunNum(ctx, record.KindCorr, "r", perfInput)
	require.NoError(t, err)
	assert.Equal(t, 5, next)

	// other revisions keep their own corr logs
	next, err = l.NextRunNum(ctx, record.KindCorr, "q", perfInput)
	require.NoError(t, err)
	assert.Equal(t, 0, next)

	// weight logs are shared by all revisions
	wp := record.DefaultWeightParams()
	wp.NumVerts, wp.Rev, wp.RunNum = 10, "w1", 2
	_, err = l.AddWeightResult(ctx, record.NewWeightResult(wp))
	require.NoError(t, err)

	next, err = l.NextRunNum(ctx, record.KindWeight, "w2", record.NewWeightResult(wp).Input())
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	_, err = l.NextRunNum(ctx, record.KindWeight, "w2", perfInput)
	assert.ErrorIs(t, err, record.ErrNoStoragePath)

	_, err = l.NextRunNum(ctx, record.KindInputSolution, "", perfInput)
	assert.ErrorIs(t, err, ErrNoRuns)
}

// gatedStore holds the first Put until released.
type gatedStore struct {
	blobstore.BlobStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (s *gatedStore) Put(ctx context.Context, name string, data []byte) error {
	first := false
	s.once.Do(func() { first = true })
	if first {
		close(s.entered)
		<-s.release
	}
	return s.BlobStore.Put(ctx, name, data)
}

// Two writers to one log: A reads, B reads and saves, A saves. B's record is
// lost. This is the documented behavior of an unlocked ledger.
func TestConcurrentWritersLoseUpdates(t *testing.T) {
	ctx := context.Background()
	store := &gatedStore{
		BlobStore: blobstore.NewMemoryStore(),
		entered:   make(chan struct{}),
		release:   make(chan struct{}),
	}
	l := New(store)

	a := corr(t, perfInput, "r", 0, record.Correct)
	b := corr(t, perfInput, "r", 1, record.Correct)

	done := make(chan error, 1)
	go func() {
		_, err := l.AddCorrResult(ctx, a)
		done <- err
	}()
	<-store.entered

	changed, err := l.AddCorrResult(ctx, b)
	require.NoError(t, err)
	assert.True(t, changed)

	close(store.release)
	require.NoError(t, <-done)

	d, err := l.LoadCorrResults(ctx, "r", true)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	_, ok := d.Get(a.Key())
	assert.True(t, ok)
	_, ok = d.Get(b.Key())
	assert.False(t, ok)
}

func TestLookupKind(t *testing.T) {
	k, err := LookupKind("perf")
	require.NoError(t, err)
	assert.Equal(t, record.KindPerf, k.Kind)

	_, err = LookupKind("latency")
	var uk *ErrUnknownKind
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "latency", uk.Name)
}
