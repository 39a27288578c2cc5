package mstledger

import (
	"errors"
	"fmt"

	"github.com/hupe1980/mstledger/record"
)

// ErrNoRuns is returned when run numbers are requested for a kind that has none.
var ErrNoRuns = errors.New("record kind has no run numbers")

// ErrUnknownKind indicates a record kind name that matches no variant.
type ErrUnknownKind struct {
	Name string
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown record kind %q", e.Name)
}

// LookupKind resolves a kind name through record.LookupKind.
func LookupKind(name string) (record.KindInfo, error) {
	k, ok := record.LookupKind(name)
	if !ok {
		return record.KindInfo{}, &ErrUnknownKind{Name: name}
	}
	return k, nil
}
