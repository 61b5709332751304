// Package logging provides the engine's leveled diagnostic logger.
// Every component that needs to report progress or a warning takes a
// Logger rather than writing to stderr directly, so tests can swap in
// a buffering logger and the CLI can wire verbosity to -q.
package logging
