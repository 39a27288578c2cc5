// Package dataset holds a keyed, ordered collection of ledger records and
// converts it to and from the tab-separated log format.
//
// A log is a header comment followed by one record per line:
//
//	#Prec	Dim	Min	Max     	|V|	|E|	Seed               	Rev	Run#	Correct?
//	1	0	0.0	100000.0	100	200	42	abc	0	1
//
// Lines starting with '#' are skipped on read. Reads are all-or-nothing: the
// first malformed line aborts the read with a *model.DataError carrying its
// line number.
package dataset
