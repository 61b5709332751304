// Package rng implements the linear-congruential seed evolution and the
// weighted-move numeric kernels shared by every zone of the simulation.
//
// Every exported function here is a pure function of its inputs: no
// package-level state is kept, so the same (seed, inputs) pair always
// produces the same result regardless of which zone or goroutine calls
// it. This is what lets an agent's random sequence follow it across a
// zone boundary: the live 32-bit seed travels in the migration record
// (exchange.AgentRecord), and the receiving zone resumes the sequence
// exactly where the sender left off.
package rng
