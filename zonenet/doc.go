// Package zonenet is the transport layer zones use to talk to each
// other. It stands in for the reference engine's MPI communicator: one
// goroutine plays the role of each zone's process, and Fabric wires a
// dedicated channel between every ordered pair of zones for each
// exchange tag, so agent migration, boundary counts, and boundary
// weights can never be mis-received as one another.
//
// A run starts with a single collective Broadcast (the master
// publishes the graph, zone assignment, and initial agent positions);
// afterwards every exchange goes through an Endpoint's
// PostSend/Recv/Wait trio, always in the order the batch protocol
// requires: post every send for this round, receive from every peer,
// then wait for the sends to land.
package zonenet
