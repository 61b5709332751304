// Package display renders the engine's human-readable output stream
// (spec §6): one STEP/counts/END block per display frame, followed by
// a final DONE once the run completes.
package display
