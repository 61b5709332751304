// Package boot implements the master's load-and-broadcast sequence
// (C8): parse the graph and agent files, partition the grid into
// zones, publish the graph/zone-map/initial-positions broadcast, and
// let every zone (including the master) build its own topology and
// simulation state from it.
package boot
