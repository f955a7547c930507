// Package harness discovers, filters, and runs tagged zero-argument test
// procedures, recording pass/fail results and optionally rendering a
// summary table.
//
// Procedures are registered under a declaring scope and a tag, and runs
// are filtered by regular-expression patterns over both. A procedure
// fails by panicking; Fail panics with a formatted failure message and
// any other panic is recorded verbatim.
package harness

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"
)

// Proc is a tagged, zero-argument test procedure.
type Proc struct {
	Scope string // declaring-scope name, e.g. a suite or package
	Tag   string // procedure name within the scope
	Fn    func()
}

// Result records one procedure's outcome.
type Result struct {
	Scope   string
	Tag     string
	Passed  bool
	Err     error // nil when Passed
	Elapsed time.Duration
}

// failure is the panic payload produced by Fail, distinguishing a
// deliberate assertion failure from an unexpected panic.
type failure struct {
	msg string
}

// Fail aborts the calling procedure and records it as failed.
func Fail(format string, args ...any) {
	panic(failure{msg: fmt.Sprintf(format, args...)})
}

// Expect fails the calling procedure unless cond holds.
func Expect(cond bool, format string, args ...any) {
	if !cond {
		Fail(format, args...)
	}
}

// Runner collects procedures and executes pattern-filtered runs.
// Safe for concurrent registration; Run executes matching procedures
// sequentially in registration order.
type Runner struct {
	mu    sync.Mutex
	procs []Proc
}

// NewRunner returns an empty runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Register adds a procedure under a scope and tag.
func (r *Runner) Register(scope, tag string, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procs = append(r.procs, Proc{Scope: scope, Tag: tag, Fn: fn})
}

// Run executes every procedure whose scope matches scopePattern and
// whose tag matches tagPattern. An empty pattern matches everything.
// The only error is a pattern that does not compile; procedure failures
// are recorded in the results, never returned.
func (r *Runner) Run(scopePattern, tagPattern string) ([]Result, error) {
	scopeRe, err := compilePattern(scopePattern)
	if err != nil {
		return nil, fmt.Errorf("scope pattern: %w", err)
	}
	tagRe, err := compilePattern(tagPattern)
	if err != nil {
		return nil, fmt.Errorf("tag pattern: %w", err)
	}

	r.mu.Lock()
	procs := make([]Proc, len(r.procs))
	copy(procs, r.procs)
	r.mu.Unlock()

	start := time.Now()
	var results []Result
	for _, p := range procs {
		if scopeRe != nil && !scopeRe.MatchString(p.Scope) {
			continue
		}
		if tagRe != nil && !tagRe.MatchString(p.Tag) {
			continue
		}
		results = append(results, execute(p))
	}

	passed, failed := 0, 0
	for _, res := range results {
		if res.Passed {
			passed++
		} else {
			failed++
		}
	}
	emitRunComplete(passed, failed, time.Since(start))

	return results, nil
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}

// execute runs one procedure, converting a panic into a failed result.
func execute(p Proc) (res Result) {
	res = Result{Scope: p.Scope, Tag: p.Tag, Passed: true}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		if rec := recover(); rec != nil {
			res.Passed = false
			if f, ok := rec.(failure); ok {
				res.Err = errors.New(f.msg)
			} else {
				res.Err = fmt.Errorf("panic: %v", rec)
			}
		}
	}()
	p.Fn()
	return res
}
