package mstledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hupe1980/mstledger/blobstore"
	"github.com/hupe1980/mstledger/dataset"
	"github.com/hupe1980/mstledger/model"
	"github.com/hupe1980/mstledger/record"
	"golang.org/x/sync/errgroup"
)

// LogRecord is a record that knows which log it belongs to.
type LogRecord[K comparable, R any] interface {
	dataset.Record[K, R]
	Kind() record.Kind
	StoragePath() (string, error)
	Warnings() []record.Warning
}

// Ledger reads and appends records in the logs of a blob store.
type Ledger struct {
	store blobstore.BlobStore
	opts  options
}

// New creates a Ledger over store.
func New(store blobstore.BlobStore, optFns ...Option) *Ledger {
	return &Ledger{store: store, opts: applyOptions(optFns)}
}

// Store returns the underlying blob store.
func (l *Ledger) Store() blobstore.BlobStore { return l.store }

// Logger returns the ledger's logger.
func (l *Ledger) Logger() *Logger { return l.opts.logger }

func (l *Ledger) reportWarnings(ctx context.Context, ws []record.Warning) {
	for _, w := range ws {
		l.opts.logger.LogWarning(ctx, w)
		if l.opts.warningHandler != nil {
			l.opts.warningHandler(w)
		}
	}
}

// AddToLog merges r into its log and rewrites the log if that changed it.
//
// The log is r.StoragePath() unless override is non-empty. A missing log is
// created. The returned bool reports whether the log was rewritten.
//
// AddToLog is a read-modify-write without locking; see the package
// documentation for what happens with concurrent writers.
func AddToLog[K comparable, R LogRecord[K, R]](ctx context.Context, l *Ledger, r R, decode dataset.Decoder[R], override string) (changed bool, err error) {
	start := time.Now()
	defer func() { l.opts.metricsCollector.RecordAdd(changed, time.Since(start), err) }()

	name := override
	if name == "" {
		if name, err = r.StoragePath(); err != nil {
			return false, &model.DataError{Op: "write", Msg: fmt.Sprintf("no log for %s %s", r.Kind(), r.Line()), Err: err}
		}
	}
	l.reportWarnings(ctx, r.Warnings())

	d, err := Load[K](ctx, l, name, decode, false)
	if err != nil {
		return false, err
	}
	changed = d.Add(r)
	l.opts.logger.LogAdd(ctx, name, r.Kind(), changed)
	if !changed {
		return false, nil
	}
	if err := save(ctx, l, name, d); err != nil {
		return false, err
	}
	return true, nil
}

func save[K comparable, R dataset.Record[K, R]](ctx context.Context, l *Ledger, name string, d *dataset.Dataset[K, R]) error {
	start := time.Now()
	err := d.SaveToFile(ctx, l.store, name)
	l.opts.metricsCollector.RecordSave(time.Since(start), err)
	l.opts.logger.LogSave(ctx, name, d.Len(), err)
	return err
}

// Load reads the named log. A missing log is an empty dataset unless
// mustExist is set. Warnings on decoded records are logged at debug level
// only; the warning handler sees them once, when the record is added.
func Load[K comparable, R dataset.Record[K, R]](ctx context.Context, l *Ledger, name string, decode dataset.Decoder[R], mustExist bool) (*dataset.Dataset[K, R], error) {
	start := time.Now()
	d, err := dataset.ReadFromFile[K](ctx, l.store, name, decode, mustExist)

	n := 0
	if d != nil {
		n = d.Len()
	}
	l.opts.metricsCollector.RecordLoad(n, time.Since(start), err)
	l.opts.logger.LogLoad(ctx, name, n, err)
	if err == nil && l.opts.logger.Enabled(ctx, slog.LevelDebug) {
		for _, r := range d.Records() {
			if wr, ok := any(r).(interface{ Warnings() []record.Warning }); ok {
				for _, w := range wr.Warnings() {
					l.opts.logger.LogLoadWarning(ctx, name, w)
				}
			}
		}
	}
	return d, err
}

// LoadMany loads several logs concurrently. The first failure cancels the
// remaining loads and is returned.
func LoadMany[K comparable, R dataset.Record[K, R]](ctx context.Context, l *Ledger, names []string, decode dataset.Decoder[R], mustExist bool) (map[string]*dataset.Dataset[K, R], error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*dataset.Dataset[K, R], len(names))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.loadConcurrency)
	for _, name := range names {
		g.Go(func() error {
			d, err := Load[K](gctx, l, name, decode, mustExist)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = d
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddInputSolution adds s to its input log.
func (l *Ledger) AddInputSolution(ctx context.Context, s *record.InputSolution) (bool, error) {
	return AddToLog[model.ID](ctx, l, s, record.ParseInputSolution, "")
}

// AddCorrResult adds r to the correctness log of its revision.
func (l *Ledger) AddCorrResult(ctx context.Context, r *record.CorrResult) (bool, error) {
	return AddToLog[record.RunID](ctx, l, r, record.ParseCorrResult, "")
}

// AddPerfResult adds r to the performance log of its revision.
func (l *Ledger) AddPerfResult(ctx context.Context, r *record.PerfResult) (bool, error) {
	return AddToLog[record.RunID](ctx, l, r, record.ParsePerfResult, "")
}

// AddWeightResult adds r to the log of its weight type.
func (l *Ledger) AddWeightResult(ctx context.Context, r *record.WeightResult) (bool, error) {
	return AddToLog[record.RunID](ctx, l, r, record.ParseWeightResult, "")
}

// AddRecord adds a record of any kind, to override when it is non-empty.
func (l *Ledger) AddRecord(ctx context.Context, rec record.Any, override string) (bool, error) {
	switch r := rec.(type) {
	case *record.InputSolution:
		return AddToLog[model.ID](ctx, l, r, record.ParseInputSolution, override)
	case *record.CorrResult:
		return AddToLog[record.RunID](ctx, l, r, record.ParseCorrResult, override)
	case *record.PerfResult:
		return AddToLog[record.RunID](ctx, l, r, record.ParsePerfResult, override)
	case *record.WeightResult:
		return AddToLog[record.RunID](ctx, l, r, record.ParseWeightResult, override)
	default:
		return false, fmt.Errorf("mstledger: unsupported record type %T", rec)
	}
}

// LoadInputSolutions reads an input log by name, e.g. record.InputSolutionPath(...).
func (l *Ledger) LoadInputSolutions(ctx context.Context, name string, mustExist bool) (*dataset.Dataset[model.ID, *record.InputSolution], error) {
	return Load[model.ID](ctx, l, name, record.ParseInputSolution, mustExist)
}

// LoadCorrResults reads the correctness log of rev.
func (l *Ledger) LoadCorrResults(ctx context.Context, rev string, mustExist bool) (*dataset.Dataset[record.RunID, *record.CorrResult], error) {
	return Load[record.RunID](ctx, l, record.CorrPath(rev), record.ParseCorrResult, mustExist)
}

// LoadPerfResults reads the performance log of rev.
func (l *Ledger) LoadPerfResults(ctx context.Context, rev string, mustExist bool) (*dataset.Dataset[record.RunID, *record.PerfResult], error) {
	return Load[record.RunID](ctx, l, record.PerfPath(rev), record.ParsePerfResult, mustExist)
}

// LoadWeightResults reads the log of a weight type ("edge", "loc2", ...).
func (l *Ledger) LoadWeightResults(ctx context.Context, weightType string, mustExist bool) (*dataset.Dataset[record.RunID, *record.WeightResult], error) {
	return Load[record.RunID](ctx, l, record.WeightPath(weightType), record.ParseWeightResult, mustExist)
}

// RunIndex indexes the run numbers already recorded in the log a result of
// kind for rev and in would go to. Weight logs are shared by all revisions,
// so their index covers every revision.
func (l *Ledger) RunIndex(ctx context.Context, kind record.Kind, rev string, in model.Input) (*RunIndex, error) {
	switch kind {
	case record.KindCorr:
		d, err := l.LoadCorrResults(ctx, rev, false)
		if err != nil {
			return nil, err
		}
		return IndexRuns(d.Records()), nil
	case record.KindPerf:
		d, err := l.LoadPerfResults(ctx, rev, false)
		if err != nil {
			return nil, err
		}
		return IndexRuns(d.Records()), nil
	case record.KindWeight:
		wt, ok := in.WeightType()
		if !ok {
			return nil, fmt.Errorf("%w: no weight type for input %s", record.ErrNoStoragePath, in.Line())
		}
		d, err := l.LoadWeightResults(ctx, wt, false)
		if err != nil {
			return nil, err
		}
		return IndexRuns(d.Records()), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoRuns, kind)
	}
}

// NextRunNum returns the first run number after the highest one recorded
// for in, or 0 when there is none.
func (l *Ledger) NextRunNum(ctx context.Context, kind record.Kind, rev string, in model.Input) (int, error) {
	idx, err := l.RunIndex(ctx, kind, rev, in)
	if err != nil {
		return 0, err
	}
	return idx.Next(in), nil
}
