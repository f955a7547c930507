package fathom

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for engine events. Operations are total, so there is one
// completion event per operation rather than a start/complete pair.
var (
	SignalEngineBuilt         = capitan.NewSignal("fathom.engine.built", "Engine schema compiled")
	SignalEqualComplete       = capitan.NewSignal("fathom.equal.complete", "Deep equality finished")
	SignalCompareComplete     = capitan.NewSignal("fathom.compare.complete", "Deep ordering finished")
	SignalHashComplete        = capitan.NewSignal("fathom.hash.complete", "Deep hashing finished")
	SignalCloneComplete       = capitan.NewSignal("fathom.clone.complete", "Deep copy finished")
	SignalFingerprintComplete = capitan.NewSignal("fathom.fingerprint.complete", "Fingerprint finished")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyCategory = capitan.NewStringKey("category")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyResult   = capitan.NewIntKey("result")
)

// emitEngineBuilt emits an event when a type's schema is compiled.
func emitEngineBuilt(ctx context.Context, typeName string, category Category) {
	capitan.Emit(ctx, SignalEngineBuilt,
		KeyTypeName.Field(typeName),
		KeyCategory.Field(category.String()),
	)
}

// emitEqualComplete emits an event when deep equality finishes.
// Result is 1 for equal, 0 for unequal.
func emitEqualComplete(ctx context.Context, typeName string, duration time.Duration, equal bool) {
	result := 0
	if equal {
		result = 1
	}
	capitan.Emit(ctx, SignalEqualComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyResult.Field(result),
	)
}

// emitCompareComplete emits an event when deep ordering finishes.
func emitCompareComplete(ctx context.Context, typeName string, duration time.Duration, result int) {
	capitan.Emit(ctx, SignalCompareComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyResult.Field(result),
	)
}

// emitHashComplete emits an event when deep hashing finishes.
func emitHashComplete(ctx context.Context, typeName string, duration time.Duration) {
	capitan.Emit(ctx, SignalHashComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	)
}

// emitCloneComplete emits an event when deep copy finishes.
func emitCloneComplete(ctx context.Context, typeName string, duration time.Duration) {
	capitan.Emit(ctx, SignalCloneComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	)
}

// emitFingerprintComplete emits an event when fingerprinting finishes.
func emitFingerprintComplete(ctx context.Context, typeName string, duration time.Duration) {
	capitan.Emit(ctx, SignalFingerprintComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	)
}
