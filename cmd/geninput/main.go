// Command geninput validates input generator arguments and prints the footer
// line that describes the graph they produce.
//
//	geninput -p 15 -v 3,0,1 -r 7 100
//	gen_random_vertex_positions: m=100 n=4950 d=3 min=0.0 max=1.0 prec=15 seed=7
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
