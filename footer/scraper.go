package footer

import (
	"bytes"
	"errors"
	"io"

	"github.com/hupe1980/mstledger/internal/fs"
	"github.com/hupe1980/mstledger/model"
)

const tailBlockSize = 4096

var errNoFooter = errors.New("file has no footer line")

// Scraper extracts inputs from the footers of generated files.
type Scraper struct {
	FS fs.FileSystem
}

// NewScraper returns a Scraper over fsys, or the local file system when
// fsys is nil.
func NewScraper(fsys fs.FileSystem) *Scraper {
	if fsys == nil {
		fsys = fs.Default
	}
	return &Scraper{FS: fsys}
}

// Extract reads the last non-empty line of the file at path and parses it.
// Every failure is an *ExtractError.
func (s *Scraper) Extract(path string) (model.Input, error) {
	line, err := s.lastLine(path)
	if err != nil {
		return model.Input{}, &ExtractError{Path: path, Err: err}
	}

	in, err := Parse(line)
	if err != nil {
		var ee *ExtractError
		if errors.As(err, &ee) {
			ee.Path = path
		}
		return model.Input{}, err
	}
	return in, nil
}

// lastLine reads the file backwards in blocks until it holds a complete
// non-empty final line.
func (s *Scraper) lastLine(path string) (string, error) {
	fsys := s.FS
	if fsys == nil {
		fsys = fs.Default
	}

	f, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	var tail []byte
	for off := info.Size(); off > 0; {
		n := min(int64(tailBlockSize), off)
		off -= n

		block := make([]byte, n, n+int64(len(tail)))
		if _, err := f.ReadAt(block, off); err != nil && err != io.EOF {
			return "", err
		}
		tail = append(block, tail...)

		trimmed := bytes.TrimRight(tail, " \t\r\n")
		if len(trimmed) == 0 {
			continue
		}
		if i := bytes.LastIndexByte(trimmed, '\n'); i >= 0 {
			return string(trimmed[i+1:]), nil
		}
	}

	trimmed := bytes.TrimRight(tail, " \t\r\n")
	if len(trimmed) == 0 {
		return "", errNoFooter
	}
	return string(trimmed), nil
}
