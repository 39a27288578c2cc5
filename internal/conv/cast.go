package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is wrapped by every failed conversion.
var ErrOutOfRange = errors.New("run number out of range")

// RunToUint32 converts a run number for storage in a bitmap.
func RunToUint32(run int) (uint32, error) {
	if run < 0 || uint64(run) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d does not fit in uint32", ErrOutOfRange, run)
	}
	return uint32(run), nil
}

// Uint32ToRun converts a stored bitmap value back to a run number.
func Uint32ToRun(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d does not fit in int", ErrOutOfRange, v)
	}
	return int(v), nil
}
