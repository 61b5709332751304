// Command ratsim runs the distributed agent-migration grid simulation
// described in spec.md: parse a grid graph and agent placement file,
// partition the grid into zones, and simulate agent migration with
// one goroutine per zone.
package main

func main() {
	Execute()
}
