// Package simstate holds a single zone's mutable simulation state
// (S_z in the data model): agent positions and residency, per-agent
// RNG seeds, and the node-level count/weight/cumulative-weight arrays
// the batch loop and the exchange protocol read and write every step.
package simstate
