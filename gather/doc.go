// Package gather implements the rank-0 collection the driver runs
// before every display frame: each non-master zone reports the
// node/count pairs for its local nodes, and the master overwrites the
// matching slots in its full Count array. The master's own local nodes
// are already authoritative and are left untouched.
package gather
