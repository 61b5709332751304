// Package exchange implements the three boundary exchanges a batch
// runs in fixed order over zonenet: E1 moves agents that crossed a
// zone boundary, E2 propagates boundary node counts, and E3 propagates
// boundary node weights. Every exchange follows the same shape — post
// a (possibly empty) send to every peer, receive from every peer, wait
// for the sends to land — so a peer with no boundary traffic this
// batch never blocks the others.
//
// Precondition: topo.Peers() must agree between any two zones that
// share a boundary — if zone A lists B as a peer, B must list A. This
// holds automatically for the grid files spec.md describes, which
// encode every edge in both directions (an undirected edge 0-1 is two
// declared edges, e 0 1 and e 1 0); a graph file with a one-way
// boundary edge produces a Peers() mismatch, and the side that omits
// the peer never receives the other's post, deadlocking that batch.
package exchange
