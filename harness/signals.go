package harness

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for harness events.
var (
	SignalRunComplete = capitan.NewSignal("harness.run.complete", "Filtered run finished")
)

// Keys for typed event data.
var (
	KeyPassed   = capitan.NewIntKey("passed")
	KeyFailed   = capitan.NewIntKey("failed")
	KeyDuration = capitan.NewDurationKey("duration")
)

// emitRunComplete emits an event when a filtered run finishes.
func emitRunComplete(passed, failed int, duration time.Duration) {
	capitan.Emit(context.Background(), SignalRunComplete,
		KeyPassed.Field(passed),
		KeyFailed.Field(failed),
		KeyDuration.Field(duration),
	)
}
