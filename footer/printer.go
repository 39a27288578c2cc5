package footer

import (
	"errors"
	"strings"
)

// Mode selects how a Printer renders input paths.
type Mode int

const (
	// ModeFooter renders the generator arguments read from the footer and
	// falls back to ModeFast when the footer cannot be extracted.
	ModeFooter Mode = iota
	// ModeFast renders the path relative to Root without opening the file.
	ModeFast
)

func (m Mode) String() string {
	switch m {
	case ModeFooter:
		return "footer"
	case ModeFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Printer renders generated input paths for reports.
type Printer struct {
	Mode    Mode
	Root    string // generated inputs root, stripped in fast mode
	Scraper *Scraper
}

// Print renders path according to p.Mode.
func (p *Printer) Print(path string) string {
	if p.Mode == ModeFast {
		return p.fast(path)
	}

	s := p.Scraper
	if s == nil {
		s = NewScraper(nil)
	}
	in, err := s.Extract(path)
	if err != nil {
		var ee *ExtractError
		if errors.As(err, &ee) {
			return p.fast(path)
		}
		return path
	}
	return "I(" + in.GeneratorArgs() + ")"
}

func (p *Printer) fast(path string) string {
	if p.Root != "" && strings.HasPrefix(path, p.Root) {
		return path[len(p.Root):]
	}
	return path
}
