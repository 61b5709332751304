// Package simulate is the per-zone driver (C6). Starting from a state
// whose census is already taken (boot.Setup does that), it runs the
// initial weight computation and the repeated batch loop that
// walks agent ids in slices of State.BatchSize, selecting a weighted
// random move for every resident agent and running the E1/E2/E3
// boundary exchanges in order. It hands off to gather and display on
// display frames and stops once the configured step count is reached.
package simulate
