// Package conv converts run numbers between the int used by records and the
// uint32 the run bitmaps store, with bounds checks.
package conv
