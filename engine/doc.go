// Package engine spawns the one-goroutine-per-zone topology described
// in spec.md §5 and SPEC_FULL.md's CSP redesign: a master goroutine
// parses input and broadcasts the partitioned graph, and one driver
// goroutine per zone runs the simulation to completion, all sharing a
// single zonenet.Fabric.
package engine
