// Package footer reads and writes the annotation line that closes every
// generated input file.
//
// The generator ends each input with a line such as
//
//	gen_random_edge_lengths: m=100 n=200 min=0.0 max=100000.0 prec=1 seed=42
//
// from which a Scraper recovers the model.Input that produced the file. A
// Printer renders input paths for reports, either from that footer or, when
// no footer can be read, from the path alone.
package footer
