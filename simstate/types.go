package simstate

import "github.com/gridzone/ratsim/rng"

// State is the per-zone simulation state S_z. Pos, Resident, and Seed
// are globally indexed by agent id; every zone stores all of them, but
// only the entries where Resident is set are authoritative. Count and
// Weight are globally indexed by node id; they are authoritative only
// over LocalNodes ∪ every import list, and stale elsewhere. SumWeight
// (by node id) and CumWeight (by adjacency slot) are rebuilt only for
// LocalNodes.
type State struct {
	Zone int
	R    int // total agent count, identical across zones
	N    int // total node count, identical across zones

	Pos      []int
	Resident []bool
	Seed     []rng.Seed

	Count     []int
	Weight    []float64
	SumWeight []float64
	CumWeight []float64

	LoadFactor float64
	BatchSize  int
}
