// Package partition assigns spatial grid regions to zones so as to
// minimize per-zone cost variance.
//
// AssignZones implements the contract of spec §4.3: regions are sorted
// by edge count, a weight key (node count or edge count — whichever
// has the larger standard deviation) is chosen, and FindPartition
// computes the contiguous split of the sorted regions into zoneCount
// non-empty (where possible) groups that minimizes the sum of squared
// per-zone weight totals.
//
// FindPartition itself is a pure dynamic-programming function over a
// weight slice; it carries no notion of grids, regions or zones, so it
// is tested and reasoned about independently of the rest of the
// package.
package partition
