package instrument

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// maxDepth bounds the activity nesting depth; a run that exceeds it is
// almost certainly missing a Finish call somewhere.
const maxDepth = 20

type frame struct {
	activity Activity
	span     trace.Span
}

// Tracker accumulates per-Activity wall-clock time and, when a real
// tracer is wired in, mirrors each Start/Finish pair as an
// OpenTelemetry span. A Tracker with tracking disabled (either at
// construction or after a stack misuse) makes every Start and Finish
// call a no-op.
type Tracker struct {
	mu     sync.Mutex
	warn   func(format string, args ...any)
	tracer trace.Tracer

	tracking     bool
	initialized  bool
	stack        []frame
	accum        [activityCount]time.Duration
	currentStart time.Time
	globalStart  time.Time
}

// New returns a Tracker. enabled mirrors the CLI's -I flag; tracer may
// be the global no-op tracer when OpenTelemetry export isn't wired up.
// warn receives a formatted message whenever the stack is misused.
func New(enabled bool, tracer trace.Tracer, warn func(format string, args ...any)) *Tracker {
	return &Tracker{
		tracking: enabled,
		tracer:   tracer,
		warn:     warn,
	}
}

func (t *Tracker) init() {
	if t.initialized {
		return
	}
	t.initialized = true
	t.globalStart = time.Now()
	t.currentStart = t.globalStart
}

// Start opens Activity a as a child of the currently running activity
// (if any) and returns a context carrying its span, for Finish-side
// symmetry and so callers can pass it on to further spans.
func (t *Tracker) Start(ctx context.Context, a Activity) context.Context {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return ctx
	}
	t.init()

	old := ActivityNone
	if len(t.stack) > 0 {
		old = t.stack[len(t.stack)-1].activity
	}
	now := time.Now()
	t.accum[old] += now.Sub(t.currentStart)
	t.currentStart = now

	if len(t.stack)+1 >= maxDepth {
		t.warn("runaway instrumentation activity stack, disabling")
		t.tracking = false
		return ctx
	}

	spanCtx, span := t.tracer.Start(ctx, a.String())
	t.stack = append(t.stack, frame{activity: a, span: span})

	return spanCtx
}

// Finish closes the innermost open activity, which must be a. A
// mismatched or unbalanced Finish disables tracking and warns, per the
// error-handling design's "instrumentation misuse" category.
func (t *Tracker) Finish(a Activity) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return
	}
	t.init()

	if len(t.stack) == 0 {
		t.warn("popped off bottom of instrumentation activity stack, disabling")
		t.tracking = false
		return
	}
	top := t.stack[len(t.stack)-1]
	if top.activity != a {
		t.warn("started activity %s, but now finishing activity %s, disabling", top.activity, a)
		t.tracking = false
		return
	}

	now := time.Now()
	t.accum[a] += now.Sub(t.currentStart)
	t.currentStart = now
	top.span.End()
	t.stack = t.stack[:len(t.stack)-1]
}

// Snapshot is a point-in-time readout of accumulated activity time.
type Snapshot struct {
	Elapsed time.Duration
	ByName  map[string]time.Duration
}

// Report returns the accumulated durations per activity, folding any
// time not attributed to a known activity into ActivityNone. Report
// returns the zero Snapshot when tracking was never started; after a
// stack misuse has disabled tracking it still returns the time
// accumulated up to that point.
func (t *Tracker) Report() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking && !t.initialized {
		return Snapshot{}
	}

	byName := make(map[string]time.Duration, activityCount)
	for a := Activity(0); a < activityCount; a++ {
		byName[a.String()] = t.accum[a]
	}

	return Snapshot{
		Elapsed: time.Since(t.globalStart),
		ByName:  byName,
	}
}
