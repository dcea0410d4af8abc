package console

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"

	"go.jacobcolvin.com/obug/debug"
	"go.jacobcolvin.com/obug/log"
	"go.jacobcolvin.com/obug/store"
)

// dateLayout matches JavaScript's Date.prototype.toISOString.
const dateLayout = "2006-01-02T15:04:05.000Z"

var (
	// Colors256 is the palette used when the output supports at least 256
	// colors. It excludes colors that are hard to read on dark or light
	// backgrounds.
	Colors256 = []string{
		"20", "21", "26", "27", "32", "33", "38", "39", "40", "41", "42", "43",
		"44", "45", "56", "57", "62", "63", "68", "69", "74", "75", "76", "77",
		"78", "79", "80", "81", "92", "93", "98", "99", "112", "113", "128", "129",
		"134", "135", "148", "149", "160", "161", "162", "163", "164", "165", "166", "167",
		"168", "169", "170", "171", "172", "173", "178", "179", "184", "185", "196", "197",
		"198", "199", "200", "201", "202", "203", "204", "205", "206", "207", "208", "209",
		"214", "215", "220", "221",
	}

	// BasicColors is the palette used on terminals with 16 colors or fewer.
	BasicColors = []string{"6", "2", "3", "4", "5", "1"}
)

// Environment is a [debug.Environment] that writes to a terminal. Safe for
// concurrent use.
//
// Create instances with [NewEnvironment].
type Environment struct {
	w        io.Writer
	store    store.Store
	logger   *slog.Logger
	now      func() time.Time
	spew     *spew.ConfigState
	opts     InspectOptions
	palette  []string
	environ  []string
	colors   *bool
	hideDate *bool
	depth    *int
	mu       sync.Mutex
}

// Option configures an [Environment].
type Option func(*Environment)

// WithWriter sets the output. The default is [os.Stderr].
func WithWriter(w io.Writer) Option {
	return func(e *Environment) {
		e.w = w
	}
}

// WithStore sets where the enable-spec is persisted. The default is the
// DEBUG environment variable.
func WithStore(s store.Store) Option {
	return func(e *Environment) {
		e.store = s
	}
}

// WithLogger sets the logger that receives persistence failures, which are
// otherwise swallowed. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Environment) {
		e.logger = l
	}
}

// WithEnviron sets the environment the DEBUG_* options and the color
// profile are read from. The default is [os.Environ].
func WithEnviron(environ []string) Option {
	return func(e *Environment) {
		e.environ = environ
	}
}

// WithColors forces color output on or off, overriding DEBUG_COLORS and
// terminal detection.
func WithColors(v bool) Option {
	return func(e *Environment) {
		e.colors = &v
	}
}

// WithHideDate controls the timestamp of uncolored output, overriding
// DEBUG_HIDE_DATE.
func WithHideDate(v bool) Option {
	return func(e *Environment) {
		e.hideDate = &v
	}
}

// WithDepth limits how deeply `%o` and `%O` descend into nested values,
// overriding DEBUG_DEPTH. Zero means unlimited.
func WithDepth(n int) Option {
	return func(e *Environment) {
		e.depth = &n
	}
}

// WithPalette replaces the palette detected from the color profile.
func WithPalette(palette []string) Option {
	return func(e *Environment) {
		e.palette = palette
	}
}

// WithClock sets the time source for timestamps of uncolored output.
func WithClock(now func() time.Time) Option {
	return func(e *Environment) {
		e.now = now
	}
}

// NewEnvironment creates an [Environment] with the given options.
func NewEnvironment(opts ...Option) *Environment {
	e := &Environment{
		w:      os.Stderr,
		store:  store.Env{Key: store.DefaultKey},
		logger: log.Discard(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.environ == nil {
		e.environ = os.Environ()
	}

	e.opts = ParseInspectOptions(e.environ)

	if e.colors == nil {
		v, ok := e.opts.Bool("colors")
		if !ok {
			v = isTerminal(e.w)
		}

		e.colors = &v
	}

	if e.hideDate == nil {
		v, _ := e.opts.Bool("hideDate")
		e.hideDate = &v
	}

	if e.depth == nil {
		v, _ := e.opts.Int("depth")
		e.depth = &v
	}

	if e.palette == nil {
		switch colorprofile.Detect(e.w, e.environ) {
		case colorprofile.ANSI256, colorprofile.TrueColor:
			e.palette = Colors256
		default:
			e.palette = BasicColors
		}
	}

	e.spew = newSpewConfig(*e.depth)

	return e
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd()))
}

// InspectOptions returns a copy of the options parsed from DEBUG_*
// environment variables.
func (e *Environment) InspectOptions() InspectOptions {
	return maps.Clone(e.opts)
}

// UseColors implements [debug.Environment].
func (e *Environment) UseColors() bool {
	return *e.colors
}

// Colors implements [debug.Environment].
func (e *Environment) Colors() []string {
	return slices.Clone(e.palette)
}

// Load implements [debug.Environment]. Failures are logged at debug level
// and treated as an empty spec.
func (e *Environment) Load() string {
	spec, err := e.store.Load()
	if err != nil {
		e.logger.Debug("load debug spec", slog.Any("err", err))
		return ""
	}

	return spec
}

// Save implements [debug.Environment]. Failures are logged at debug level.
func (e *Environment) Save(spec string) {
	err := e.store.Save(spec)
	if err != nil {
		e.logger.Debug("save debug spec", slog.String("spec", spec), slog.Any("err", err))
	}
}

// FormatArgs implements [debug.Environment].
//
// With colors, every line of the message is prefixed with the namespace in
// bold and the humanized diff is appended as an extra argument. Without
// colors, the message is prefixed with a timestamp and the namespace.
func (e *Environment) FormatArgs(d *debug.Debugger, diff time.Duration, args []any) []any {
	msg := fmt.Sprint(args[0])

	if d.UseColors() {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color()))
		prefix := "  " + style.Bold(true).Render(d.Namespace()) + " "

		args[0] = prefix + strings.ReplaceAll(msg, "\n", "\n"+prefix)

		return append(args, style.Render("+"+Humanize(diff)))
	}

	args[0] = e.date() + d.Namespace() + " " + msg

	return args
}

func (e *Environment) date() string {
	if *e.hideDate {
		return ""
	}

	return e.now().UTC().Format(dateLayout) + " "
}

// Log implements [debug.Environment]. It writes args separated by spaces
// and terminated by a newline. Values other than strings, errors and scalars
// are rendered on one line with go-spew.
func (e *Environment) Log(_ *debug.Debugger, args ...any) {
	var b strings.Builder

	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(e.sprint(arg))
	}

	b.WriteByte('\n')

	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := io.WriteString(e.w, b.String())
	if err != nil {
		e.logger.Debug("write debug message", slog.Any("err", err))
	}
}

func (e *Environment) sprint(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return fmt.Sprint(v)
	default:
		return inspect(e.spew, v, false, false)
	}
}
