// Package gridgraph defines the immutable, compressed-adjacency grid
// graph that the simulation runs over.
//
// A Graph is built once (by graphfile.Parse on the master, via
// Builder) and is never mutated afterward: every zone receives the
// same frozen copy over the zonenet.Fabric's Boot broadcast and reads it
// concurrently without locking, which is sound only because nothing
// ever writes to it again.
//
// Nodes are numbered row-major over a Width×Height grid. Each node's
// adjacency run starts with a self-loop, followed by its out-neighbors
// in file order — see Builder for how that shape is assembled from a
// stream of (head, tail) edges. Builder does not remove duplicate
// edges: a neighbor listed twice in the input appears twice in the run.
package gridgraph
