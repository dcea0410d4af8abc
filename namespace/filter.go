package namespace

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

var whitespace = regexp.MustCompile(`\s+`)

// Filter holds the include and exclude patterns of an enable-spec. Safe for
// concurrent use.
//
// Create instances with [NewFilter].
type Filter struct {
	raw      string
	includes []string
	excludes []string
	version  atomic.Uint64
	mu       sync.RWMutex
}

// NewFilter returns an empty [Filter] with every namespace disabled.
func NewFilter() *Filter {
	return &Filter{}
}

// Split normalizes spec into its pattern tokens. Whitespace runs act as
// commas and empty tokens are dropped.
func Split(spec string) []string {
	spec = whitespace.ReplaceAllString(strings.TrimSpace(spec), ",")

	var tokens []string

	for tok := range strings.SplitSeq(spec, ",") {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// Enable replaces the filter state with the patterns in spec. An empty spec
// disables everything.
func (f *Filter) Enable(spec string) {
	var includes, excludes []string

	for _, tok := range Split(spec) {
		if name, ok := strings.CutPrefix(tok, "-"); ok {
			excludes = append(excludes, name)
		} else {
			includes = append(includes, tok)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.raw = spec
	f.includes = includes
	f.excludes = excludes
	f.version.Add(1)
}

// Disable clears the filter and returns a spec that reproduces the state it
// had before the call: inclusions in order, followed by the exclusions each
// prefixed with `-`.
func (f *Filter) Disable() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := make([]string, 0, len(f.includes)+len(f.excludes))
	parts = append(parts, f.includes...)

	for _, ex := range f.excludes {
		parts = append(parts, "-"+ex)
	}

	f.raw = ""
	f.includes = nil
	f.excludes = nil
	f.version.Add(1)

	return strings.Join(parts, ",")
}

// Enabled reports whether name is active. Any matching exclusion disables
// name regardless of the inclusions.
func (f *Filter) Enabled(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, ex := range f.excludes {
		if MatchesTemplate(name, ex) {
			return false
		}
	}

	for _, in := range f.includes {
		if MatchesTemplate(name, in) {
			return true
		}
	}

	return false
}

// Namespaces returns the enable-spec most recently passed to [Filter.Enable].
func (f *Filter) Namespaces() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.raw
}

// Includes returns a copy of the inclusion patterns.
func (f *Filter) Includes() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.includes)
}

// Excludes returns a copy of the exclusion patterns, without their `-`
// prefix.
func (f *Filter) Excludes() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.excludes)
}

// Version returns a counter that increases on every [Filter.Enable] call.
// The zero value is never returned once the filter has been enabled.
func (f *Filter) Version() uint64 {
	return f.version.Load()
}
