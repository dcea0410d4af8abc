// Package debugtest provides test doubles for code that uses debug loggers.
//
// A [Recorder] captures everything written to a [debug.LogFunc], and
// [Environment] is a deterministic [debug.Environment] whose default sink is
// a Recorder:
//
//	env := debugtest.NewEnvironment()
//	f := debug.NewFactory(env)
//	f.Enable("app:*")
//
//	f.New("app:db").Log("connected to %s", "primary")
//	env.Recorder.Lines() // []string{"app:db connected to primary"}
package debugtest

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.jacobcolvin.com/obug/debug"
)

// Call is a single recorded sink invocation.
type Call struct {
	Namespace string
	Args      []any
}

// Line joins the call's arguments with spaces.
func (c Call) Line() string {
	parts := make([]string, len(c.Args))
	for i, arg := range c.Args {
		parts[i] = fmt.Sprint(arg)
	}

	return strings.Join(parts, " ")
}

// Recorder records sink invocations. Safe for concurrent use.
type Recorder struct {
	calls []Call
	mu    sync.Mutex
}

// Log records a call. It satisfies [debug.LogFunc].
func (r *Recorder) Log(d *debug.Debugger, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, Call{
		Namespace: d.Namespace(),
		Args:      append([]any(nil), args...),
	})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Call(nil), r.calls...)
}

// Lines returns [Call.Line] for every recorded call.
func (r *Recorder) Lines() []string {
	calls := r.Calls()

	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Line()
	}

	return lines
}

// Reset discards the recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = nil
}

// Environment is a [debug.Environment] with in-memory persistence and a
// plain "<namespace> <message>" display format.
type Environment struct {
	Recorder *Recorder

	// Palette is returned by Colors.
	Palette []string
	// Stored is the persisted enable-spec.
	Stored string
	// Saved lists every spec passed to Save, in order.
	Saved []string
	// Diffs lists the diff of every FormatArgs call, in order.
	Diffs []time.Duration

	ColorsEnabled bool

	mu sync.Mutex
}

// NewEnvironment returns an [Environment] with a six entry palette.
func NewEnvironment() *Environment {
	return &Environment{
		Recorder: &Recorder{},
		Palette:  []string{"6", "2", "3", "4", "5", "1"},
	}
}

// UseColors implements [debug.Environment].
func (e *Environment) UseColors() bool {
	return e.ColorsEnabled
}

// Colors implements [debug.Environment].
func (e *Environment) Colors() []string {
	return e.Palette
}

// Log implements [debug.Environment] by recording to e.Recorder.
func (e *Environment) Log(d *debug.Debugger, args ...any) {
	e.Recorder.Log(d, args...)
}

// Load implements [debug.Environment].
func (e *Environment) Load() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.Stored
}

// Save implements [debug.Environment].
func (e *Environment) Save(spec string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Stored = spec
	e.Saved = append(e.Saved, spec)
}

// FormatArgs implements [debug.Environment] by prefixing the message with
// the namespace.
func (e *Environment) FormatArgs(d *debug.Debugger, diff time.Duration, args []any) []any {
	e.mu.Lock()
	e.Diffs = append(e.Diffs, diff)
	e.mu.Unlock()

	args[0] = d.Namespace() + " " + fmt.Sprint(args[0])

	return args
}

// SavedSpecs returns a copy of e.Saved.
func (e *Environment) SavedSpecs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.Saved...)
}

// FormatDiffs returns a copy of e.Diffs.
func (e *Environment) FormatDiffs() []time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]time.Duration(nil), e.Diffs...)
}
