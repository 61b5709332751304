// Package graphfile parses the grid-graph input file format (spec §6)
// into a gridgraph.Graph plus its region rectangles, for the master
// process to load before partitioning.
//
// Format:
//
//	# comment lines, ignored
//	W H E [REGIONS]
//	n ILF        (one per node, N = W*H of them; ILF is read and discarded)
//	e HEAD TAIL  (one per edge, E of them, HEAD non-decreasing)
//	r X Y W H    (optional, REGIONS of them)
package graphfile
