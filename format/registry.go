package format

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrInvalidVerb indicates a formatter was registered for a character that is
// not an ASCII letter.
var ErrInvalidVerb = errors.New("invalid format verb")

// Subject is the logging instance a [Func] renders a value for.
type Subject interface {
	Namespace() string
	UseColors() bool
}

// Func renders v for inclusion in a message template. The [Subject] may be
// nil when formatting outside of a debugger.
type Func func(v any, s Subject) string

// Registry maps format verbs to formatters. Safe for concurrent use; changes
// apply to every subsequent [Registry.Format] call.
//
// Create instances with [NewRegistry] or [NewDefaultRegistry].
type Registry struct {
	funcs map[byte]Func
	mu    sync.RWMutex
}

// NewRegistry returns an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{funcs: map[byte]Func{}}
}

// NewDefaultRegistry returns a [Registry] holding the built-in formatters.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for verb, fn := range builtins() {
		r.funcs[verb] = fn
	}

	return r
}

// Register installs fn for verb, replacing any existing formatter.
func (r *Registry) Register(verb byte, fn Func) error {
	if !isVerb(verb) {
		return fmt.Errorf("%w: %q", ErrInvalidVerb, verb)
	}

	if fn == nil {
		return fmt.Errorf("%w: nil formatter for %q", ErrInvalidVerb, verb)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcs[verb] = fn

	return nil
}

// Unregister removes the formatter for verb, if any.
func (r *Registry) Unregister(verb byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.funcs, verb)
}

// Lookup returns the formatter registered for verb.
func (r *Registry) Lookup(verb byte) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[verb]

	return fn, ok
}

// Verbs returns the registered verbs in ascending order.
func (r *Registry) Verbs() []byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	verbs := make([]byte, 0, len(r.funcs))
	for verb := range r.funcs {
		verbs = append(verbs, verb)
	}

	slices.Sort(verbs)

	return verbs
}

// Format expands the tokens in template using args and returns the expanded
// template together with the arguments no formatter consumed.
//
// A formatter that panics is not recovered.
func (r *Registry) Format(template string, args []any, s Subject) (string, []any) {
	if !strings.Contains(template, "%") {
		return template, args
	}

	var (
		b    strings.Builder
		rest = make([]any, 0, len(args))
		next int
	)

	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '%' || i+1 == len(template) {
			b.WriteByte(c)
			continue
		}

		verb := template[i+1]

		switch {
		case verb == '%':
			b.WriteByte('%')

			i++

		case isVerb(verb):
			i++

			fn, ok := r.Lookup(verb)
			if ok && next < len(args) {
				b.WriteString(fn(args[next], s))

				next++

				continue
			}

			b.WriteByte('%')
			b.WriteByte(verb)

			// Unknown verbs keep their argument in place for the sink.
			if !ok && next < len(args) {
				rest = append(rest, args[next])
				next++
			}

		default:
			b.WriteByte(c)
		}
	}

	rest = append(rest, args[next:]...)

	return b.String(), rest
}

func isVerb(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
