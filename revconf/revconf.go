// Package revconf reads the tracked-revisions file: one tab-separated line of
// five columns per revision under test, with the revision id in the third
// column and its tag (the algorithm it implements) in the fourth. Lines that
// start with '#' are comments.
package revconf

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hupe1980/mstledger/internal/fs"
	"github.com/hupe1980/mstledger/model"
)

// Columns is the number of tab-separated columns of every entry line.
const Columns = 5

const (
	revColumn = 2
	tagColumn = 3
)

// Entry is one tracked revision.
type Entry struct {
	Line    int
	Rev     string
	Tag     string
	Columns [Columns]string
}

// Config is a parsed tracked-revisions file.
type Config struct {
	Name    string
	Entries []Entry
}

// Parse reads a tracked-revisions file from r. name is only used in errors.
// A line without exactly five columns fails the whole file.
func Parse(r io.Reader, name string) (*Config, error) {
	c := &Config{Name: name}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.SplitN(line, "\t", Columns+1)
		if len(cols) != Columns {
			return nil, &model.DataError{
				Op:   "config",
				Path: name,
				Line: lineNo,
				Msg:  fmt.Sprintf("line should have five columns (has %d): %q", len(cols), line),
			}
		}

		e := Entry{Line: lineNo, Rev: cols[revColumn], Tag: cols[tagColumn]}
		copy(e.Columns[:], cols)
		c.Entries = append(c.Entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, &model.DataError{Op: "config", Path: name, Msg: "I/O error while reading tracked revisions", Err: err}
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(fsys fs.FileSystem, path string) (*Config, error) {
	if fsys == nil {
		fsys = fs.Default
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &model.DataError{Op: "config", Path: path, Msg: "I/O error while reading tracked revisions", Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Revisions returns the tracked revisions in file order.
func (c *Config) Revisions() []string {
	out := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		out = append(out, e.Rev)
	}
	return out
}

// AlgsAndRevs maps every tag to its revisions in file order.
func (c *Config) AlgsAndRevs() map[string][]string {
	out := make(map[string][]string)
	for _, e := range c.Entries {
		out[e.Tag] = append(out[e.Tag], e.Rev)
	}
	return out
}

// Tags returns the distinct tags in ascending order.
func (c *Config) Tags() []string {
	var tags []string
	for _, e := range c.Entries {
		if !slices.Contains(tags, e.Tag) {
			tags = append(tags, e.Tag)
		}
	}
	slices.Sort(tags)
	return tags
}
