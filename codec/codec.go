// Package codec compresses ledger logs for archival backends.
//
// A codec is selected by name in the configuration and identified on disk by
// its file extension, so switching codecs leaves logs written under the old one
// in place under their old names.
package codec

import (
	"fmt"
	"sort"
)

// Codec compresses and decompresses whole log files.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Name is the stable configuration name.
	Name() string
	// Ext is appended to blob names; empty for None.
	Ext() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var registry = map[string]Codec{
	"none": None{},
	"zstd": Zstd{},
	"lz4":  LZ4{},
}

// ByName returns a built-in codec by its configuration name.
func ByName(name string) (Codec, bool) {
	if name == "" {
		return None{}, true
	}
	c, ok := registry[name]
	return c, ok
}

// MustByName is like ByName but panics on unknown names.
func MustByName(name string) Codec {
	c, ok := ByName(name)
	if !ok {
		panic(fmt.Sprintf("codec: unknown codec %q", name))
	}
	return c
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// None stores data unchanged.
type None struct{}

func (None) Name() string                           { return "none" }
func (None) Ext() string                            { return "" }
func (None) Compress(data []byte) ([]byte, error)   { return data, nil }
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
