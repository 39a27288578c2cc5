// Package mstledger records the inputs, correctness results, timings and MST
// weights produced while benchmarking minimum-spanning-tree implementations.
//
// Records live in tab-separated logs inside a blob store, one log per input
// class, revision or weight type (see package record for the layout). A
// Ledger adds records with a read-modify-write cycle:
//
//	store := blobstore.NewLocalStore("./data")
//	l := mstledger.New(store, mstledger.WithLogLevel(slog.LevelDebug))
//
//	r, err := record.NewCorrResult(record.CorrParams{Input: in, Rev: "abc123", Correct: record.Correct})
//	if err != nil { ... }
//	changed, err := l.AddCorrResult(ctx, r)
//
// # Concurrency
//
// A Ledger holds no locks. Two writers adding to the same log at the same
// time race: each reads the log, merges its own record and replaces the log,
// so the record of the writer that saves first can be lost. Run at most one
// writer per log. Writers to different logs never interfere.
//
// # Errors
//
// Every read, write and decode failure is a *model.DataError; parse failures
// wrap a *model.ParseError and arity mismatches match model.ErrArity.
// Convention deviations in a record are warnings, not errors: they are logged
// and passed to the handler set with WithWarningHandler.
package mstledger
