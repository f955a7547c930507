package fathom

import (
	"context"
	"testing"
	"time"
)

func TestEmitEngineBuilt(_ *testing.T) {
	// Should not panic
	emitEngineBuilt(context.Background(), "TestType", CategoryRecord)
}

func TestEmitEqualComplete(_ *testing.T) {
	emitEqualComplete(context.Background(), "TestType", 10*time.Microsecond, true)
	emitEqualComplete(context.Background(), "TestType", 10*time.Microsecond, false)
}

func TestEmitCompareComplete(_ *testing.T) {
	emitCompareComplete(context.Background(), "TestType", 10*time.Microsecond, -1)
}

func TestEmitHashComplete(_ *testing.T) {
	emitHashComplete(context.Background(), "TestType", 10*time.Microsecond)
}

func TestEmitCloneComplete(_ *testing.T) {
	emitCloneComplete(context.Background(), "TestType", 10*time.Microsecond)
}

func TestEmitFingerprintComplete(_ *testing.T) {
	emitFingerprintComplete(context.Background(), "TestType", 10*time.Microsecond)
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalEngineBuilt", SignalEngineBuilt},
		{"SignalEqualComplete", SignalEqualComplete},
		{"SignalCompareComplete", SignalCompareComplete},
		{"SignalHashComplete", SignalHashComplete},
		{"SignalCloneComplete", SignalCloneComplete},
		{"SignalFingerprintComplete", SignalFingerprintComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTypeName", KeyTypeName},
		{"KeyCategory", KeyCategory},
		{"KeyDuration", KeyDuration},
		{"KeyResult", KeyResult},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
