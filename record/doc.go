// Package record implements the ledger's typed records.
//
// Every record embeds exactly one model.Input through Base. The three result
// variants additionally embed Result, which carries the revision and run
// number that complete their identity key.
//
//	InputSolution  Base   + MST weight                 key: model.ID
//	CorrResult     Result + correct flag               key: RunID
//	PerfResult     Result + time (s) + MST weight      key: RunID
//	WeightResult   Result + MST weight                 key: RunID
//
// Records are built either from a Params struct, whose Default* constructor
// holds the variant's conventional values, or from the whitespace separated
// tokens of a log line with the Parse* functions. Deviations from a variant's
// conventions never fail construction; they are collected as Warnings.
//
// Kinds exposes a dispatch table (name, arity, decoder) for callers that pick
// the variant at runtime, such as the command line tools.
package record
