// Package instrument provides opt-in timing instrumentation for the
// engine's major activities (startup, weight computation, boundary
// exchange, and so on).
//
// Enabling instrumentation (the CLI's -I flag) does two things: it
// accumulates wall-clock time per Activity the way the original
// engine's activity stack did, and it opens an OpenTelemetry span for
// every Start/Finish pair, which the telemetry package's stdout trace
// exporter writes out. When disabled, Start/Finish are no-ops.
//
// Stack misuse (overflow, underflow, mismatched finish) is a
// recoverable condition per the error-handling design: instrumentation
// disables itself and logs a warning rather than aborting the run.
package instrument
