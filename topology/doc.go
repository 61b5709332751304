// Package topology builds each zone's boundary view of the graph: the
// list of nodes it owns, and for every foreign zone, which of its own
// nodes it must publish (export) and which foreign nodes it must read
// (import) on every batch's boundary exchange.
//
// Build runs once per zone right after boot broadcasts the graph and
// the zone assignment; its output is treated as immutable for the
// lifetime of the run.
package topology
