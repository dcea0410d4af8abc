package console

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/davecgh/go-spew/spew"

	"go.jacobcolvin.com/obug/format"
)

const envPrefix = "DEBUG_"

var (
	// annotationPattern matches go-spew annotations such as "(string)",
	// "(len=2)" and "(func(int) error)".
	annotationPattern = regexp.MustCompile(`\((?:[^()]|\([^()]*\))*\)`)
	annotationStyle   = lipgloss.NewStyle().Faint(true)
)

// InspectOptions holds the settings read from DEBUG_* environment variables,
// keyed by the camel-cased remainder of the variable name. Values are bool,
// float64 or nil.
type InspectOptions map[string]any

// ParseInspectOptions extracts [InspectOptions] from environ, a list of
// "KEY=value" pairs as returned by [os.Environ]. The prefix is matched
// case-insensitively.
//
// Values are coerced: "yes", "on", "true" and "enabled" become true; "no",
// "off", "false" and "disabled" become false; "null" becomes nil; anything
// else is parsed as a number, and is NaN when that fails.
func ParseInspectOptions(environ []string) InspectOptions {
	opts := InspectOptions{}

	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || len(key) <= len(envPrefix) || !strings.EqualFold(key[:len(envPrefix)], envPrefix) {
			continue
		}

		opts[camelCase(key[len(envPrefix):])] = coerce(value)
	}

	return opts
}

// Bool returns the option as a bool. ok is false when the option is unset.
// Numbers are true when non-zero.
func (o InspectOptions) Bool(key string) (v, ok bool) {
	raw, ok := o[key]
	if !ok {
		return false, false
	}

	switch raw := raw.(type) {
	case bool:
		return raw, true
	case float64:
		return raw != 0 && !math.IsNaN(raw), true
	default:
		return false, true
	}
}

// Int returns the option as an int. ok is false when the option is unset or
// not a finite number.
func (o InspectOptions) Int(key string) (int, bool) {
	raw, ok := o[key].(float64)
	if !ok || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, false
	}

	return int(raw), true
}

func camelCase(s string) string {
	parts := strings.Split(strings.ToLower(s), "_")

	var b strings.Builder
	b.WriteString(parts[0])

	for _, p := range parts[1:] {
		if p == "" {
			b.WriteByte('_')
			continue
		}

		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}

	return b.String()
}

func coerce(value string) any {
	switch strings.ToLower(value) {
	case "null":
		return nil
	case "yes", "on", "true", "enabled":
		return true
	case "no", "off", "false", "disabled":
		return false
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		if strings.TrimSpace(value) == "" {
			return float64(0)
		}

		return math.NaN()
	}

	return n
}

// newSpewConfig returns the go-spew settings used for `%o` and `%O`. A depth
// of zero or less means unlimited nesting.
func newSpewConfig(depth int) *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                max(depth, 0),
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
}

// inspect renders v with cs. When multiline is false the dump is collapsed
// to a single line. When colors is true the type and length annotations are
// dimmed.
func inspect(cs *spew.ConfigState, v any, multiline, colors bool) string {
	out := strings.TrimRight(cs.Sdump(v), "\n")

	if !multiline {
		lines := strings.Split(out, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}

		out = strings.Join(lines, " ")
	}

	if colors {
		out = annotationPattern.ReplaceAllStringFunc(out, func(s string) string { return annotationStyle.Render(s) })
	}

	return out
}

// RegisterFormatters adds `%o` (single-line inspection) and `%O` (multi-line
// inspection) to r. Both dim go-spew's annotations when the debugger uses
// colors.
func (e *Environment) RegisterFormatters(r *format.Registry) {
	//nolint:errcheck // 'o' and 'O' are valid verbs.
	r.Register('o', func(v any, s format.Subject) string {
		return inspect(e.spew, v, false, useColors(s))
	})
	//nolint:errcheck // 'o' and 'O' are valid verbs.
	r.Register('O', func(v any, s format.Subject) string {
		return inspect(e.spew, v, true, useColors(s))
	})
}

func useColors(s format.Subject) bool {
	return s != nil && s.UseColors()
}
