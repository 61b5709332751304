package boot

import "github.com/gridzone/ratsim/gridgraph"

// Payload is what the master publishes on Fabric.Boot: the frozen
// graph (zone assignment already installed), the global RNG seed, and
// every agent's initial node.
type Payload struct {
	Graph      *gridgraph.Graph
	GlobalSeed uint32
	InitialPos []int
}
