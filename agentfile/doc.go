// Package agentfile parses the agent placement file format (spec §6):
// a header giving the graph's node count and the agent count, followed
// by one initial node id per agent.
//
// Format:
//
//	# comment lines, ignored
//	N R        (N must match the loaded graph's node count)
//	nid        (one per agent, R of them)
package agentfile
