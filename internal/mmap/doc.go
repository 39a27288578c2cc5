// Package mmap maps ledger logs read-only into memory.
//
//	m, err := mmap.Open("result/perf/abc123")
//	if err != nil { ... }
//	defer m.Close()
//	data := m.Bytes()
//
// On unix the file is mapped with mmap(2) and advised for sequential access.
// Elsewhere the file is read into the heap behind the same API.
package mmap
