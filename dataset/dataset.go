package dataset

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/hupe1980/mstledger/model"
)

// Record is implemented by every record variant stored in a Dataset.
type Record[K comparable, R any] interface {
	// Key is the record's identity; at most one record per key is kept.
	Key() K
	// Compare totally orders records; 0 means identical content.
	Compare(other R) int
	Line() string
	HeaderLine() string
}

// Decoder builds a record from the whitespace-separated tokens of a line.
type Decoder[R any] func(tokens []string) (R, error)

// Dataset maps keys to records. It is not safe for concurrent mutation.
type Dataset[K comparable, R Record[K, R]] struct {
	items map[K]R
}

// New returns an empty dataset.
func New[K comparable, R Record[K, R]]() *Dataset[K, R] {
	return &Dataset[K, R]{items: make(map[K]R)}
}

// Len returns the number of records.
func (d *Dataset[K, R]) Len() int { return len(d.items) }

// Get returns the record stored under k.
func (d *Dataset[K, R]) Get(k K) (R, bool) {
	r, ok := d.items[k]
	return r, ok
}

// Add merges r into the dataset and reports whether the dataset changed.
//
// A record whose key is absent is inserted. A record identical to the stored
// one (Compare == 0) is a no-op. Otherwise r replaces the stored record.
func (d *Dataset[K, R]) Add(r R) bool {
	k := r.Key()
	if old, ok := d.items[k]; ok && old.Compare(r) == 0 {
		return false
	}
	d.items[k] = r
	return true
}

// Records returns the records in ascending Compare order.
func (d *Dataset[K, R]) Records() []R {
	out := make([]R, 0, len(d.items))
	for _, r := range d.items {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b R) int { return a.Compare(b) })
	return out
}

// Keys returns the keys in the order of Records.
func (d *Dataset[K, R]) Keys() []K {
	recs := d.Records()
	keys := make([]K, len(recs))
	for i, r := range recs {
		keys[i] = r.Key()
	}
	return keys
}

// Encode renders the dataset in log format. An empty dataset encodes to no
// bytes at all, not even a header.
func (d *Dataset[K, R]) Encode() []byte {
	recs := d.Records()
	if len(recs) == 0 {
		return nil
	}

	var b bytes.Buffer
	b.WriteString(recs[0].HeaderLine())
	b.WriteByte('\n')
	for _, r := range recs {
		b.WriteString(r.Line())
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// WriteTo writes the encoded dataset to w.
func (d *Dataset[K, R]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Encode())
	return int64(n), err
}

// maxLineSize bounds a single log line.
const maxLineSize = 1 << 20

// Read decodes a log. Comment lines are skipped; every other line, blank
// ones included, must decode. When two lines share a key the later one wins.
func Read[K comparable, R Record[K, R]](r io.Reader, decode Decoder[R]) (*Dataset[K, R], error) {
	d := New[K, R]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := decode(strings.Fields(line))
		if err != nil {
			return nil, lineError(lineNo, err)
		}
		d.items[rec.Key()] = rec
	}
	if err := sc.Err(); err != nil {
		return nil, &model.DataError{Op: "read", Line: lineNo + 1, Err: err}
	}
	return d, nil
}

// lineError locates a decode failure. A bare decode DataError is unwrapped so
// the message reads "read failed (line N): <cause>".
func lineError(lineNo int, err error) error {
	var de *model.DataError
	if errors.As(err, &de) && de.Op == "decode" && de.Path == "" && de.Line == 0 && de.Err != nil {
		err = de.Err
	}
	return &model.DataError{Op: "read", Line: lineNo, Err: err}
}
