// Package fs abstracts the file system so stores and scrapers can be tested
// against injected failures.
//
// Production code uses [Default] ([LocalFS]). Tests wrap it in a [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("result/perf", fs.Fault{FailAfterBytes: 16})
//
// There is no context.Context here; local file operations are not
// interruptible. Remote access goes through package blobstore.
package fs
