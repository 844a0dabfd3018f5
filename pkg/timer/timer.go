// Package timer collects wall-clock timings of nested code regions and
// reconstructs the call hierarchy from the recorded log.
package timer

import (
	"fmt"
	"reflect"
	"runtime"
	"time"
)

// timeNow is swapped out by tests that need deterministic durations.
var timeNow = time.Now

// LogFunc receives progress messages emitted when a scope starts and ends.
// A nil LogFunc is silent.
type LogFunc func(msg string)

// Record is one completed timed region.
type Record struct {
	Name    string
	Seconds float64
	Depth   int
}

// Timer accumulates timing records for nested regions. Depth 0 is a
// top-level region; depth k means k other regions were still open when this
// one started. Records are appended on scope exit, so a region's children
// always precede it in the log.
//
// A Timer is not safe for concurrent use: depth tracking assumes a single
// sequential call stack. Use one Timer per goroutine.
type Timer struct {
	records      []Record
	currentDepth int
}

// New creates an empty Timer.
func New() *Timer {
	return &Timer{currentDepth: -1}
}

// Scope is an open timed region. It must be closed exactly once with End,
// typically via defer so the record is appended on every exit path.
type Scope struct {
	t     *Timer
	name  string
	depth int
	start time.Time
	logFn LogFunc
	done  bool
}

// Time opens a timed region. The returned Scope must be ended by the caller:
//
//	sc := tm.Time("load", nil)
//	defer sc.End()
func (t *Timer) Time(name string, logFn LogFunc) *Scope {
	if logFn != nil {
		logFn("Starting " + name)
	}
	t.currentDepth++
	return &Scope{
		t:     t,
		name:  name,
		depth: t.currentDepth,
		logFn: logFn,
		start: timeNow(),
	}
}

// End closes the scope, appending one Record with the depth captured at
// start. Calling End more than once has no effect after the first call.
func (s *Scope) End() {
	if s.done {
		return
	}
	s.done = true
	elapsed := timeNow().Sub(s.start).Seconds()
	s.t.records = append(s.t.records, Record{
		Name:    s.name,
		Seconds: elapsed,
		Depth:   s.depth,
	})
	s.t.currentDepth--
	if s.logFn != nil {
		s.logFn(fmt.Sprintf("%s done, took %gs", s.name, elapsed))
	}
}

// WrapFunc returns a function that runs fn inside a timed scope. An empty
// name defaults to fn's runtime qualified name. Wrapped functions sharing a
// Timer nest correctly when they call each other.
func (t *Timer) WrapFunc(fn func(), name string, logFn LogFunc) func() {
	if name == "" {
		name = funcName(fn)
	}
	return func() {
		sc := t.Time(name, logFn)
		defer sc.End()
		fn()
	}
}

// WrapErrFunc is WrapFunc for functions returning an error. The error
// passes through unchanged; the record is appended either way.
func (t *Timer) WrapErrFunc(fn func() error, name string, logFn LogFunc) func() error {
	if name == "" {
		name = funcName(fn)
	}
	return func() error {
		sc := t.Time(name, logFn)
		defer sc.End()
		return fn()
	}
}

func funcName(fn interface{}) string {
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return "func"
}

// Len returns the number of completed records.
func (t *Timer) Len() int {
	return len(t.records)
}

// Records returns a copy of the record log in arrival (completion) order.
func (t *Timer) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Reset discards all records. Open scopes from before a Reset must not be
// ended afterwards.
func (t *Timer) Reset() {
	t.records = nil
	t.currentDepth = -1
}

// MaxDepth returns the largest recorded depth, or -1 when the log is empty.
func (t *Timer) MaxDepth() int {
	max := -1
	for _, r := range t.records {
		if r.Depth > max {
			max = r.Depth
		}
	}
	return max
}

func (t *Timer) depths() []int {
	depths := make([]int, len(t.records))
	for i, r := range t.records {
		depths[i] = r.Depth
	}
	return depths
}
