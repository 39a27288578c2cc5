// Package blobstore is the storage layer under the ledger's log files.
//
// A log is a named blob. Names are slash-separated paths relative to the
// ledger root, e.g. "result/perf/abc123". Put replaces a blob as a whole, so
// readers never observe a half-written log.
//
// # Implementations
//
//   - LocalStore: a directory tree; atomic temp-file-and-rename writes, mmap reads
//   - MemoryStore: in-process map for tests and dry runs
//   - minio.Store, s3.Store: object storage backends
//
// # Decorators
//
//   - RateLimitedStore: throttles requests against remote backends
//   - CodecStore: compresses logs with a codec.Codec
//
// All implementations must be safe for concurrent use. Concurrent Put calls to
// the same name are last-writer-wins; the store does not merge them.
package blobstore
