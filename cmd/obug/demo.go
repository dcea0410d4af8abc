package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/obug/debug"
)

// ErrJobFailed is reported by the sample worker.
var ErrJobFailed = errors.New("job failed")

type request struct {
	Headers map[string]string
	Method  string
	Path    string
}

// demo emits a fixed rotation of sample messages from a small tree of
// namespaces below "demo".
type demo struct {
	app    *debug.Debugger
	db     *debug.Debugger
	http   *debug.Debugger
	worker *debug.Debugger
	step   int
}

func newDemo(f *debug.Factory) *demo {
	app := f.New("demo:app")

	return &demo{
		app:    app,
		db:     app.Extend("db"),
		http:   app.Extend("http"),
		worker: app.Extend("worker"),
	}
}

// Step emits the next sample message.
func (d *demo) Step() {
	n := d.step / 5

	switch d.step % 5 {
	case 0:
		d.app.Log("starting iteration %d", n)
	case 1:
		d.db.Log("query %j took %dms", map[string]any{"table": "users", "limit": 10}, 12+n)
	case 2:
		d.http.Log("request %o", request{
			Method:  "GET",
			Path:    fmt.Sprintf("/users/%d", n),
			Headers: map[string]string{"Accept": "application/json"},
		})
	case 3:
		d.worker.Log(fmt.Errorf("%w: job %d", ErrJobFailed, n))
	case 4:
		d.worker.Log("batch done\nprocessed=%d failed=%d", 10, 1)
	}

	d.step++
}

// enableDemo enables the sample namespaces when no spec is active.
func enableDemo(f *debug.Factory) {
	if f.Namespaces() == "" {
		f.Enable("demo:*")
	}
}

func (a *app) newDemoCmd() *cobra.Command {
	var (
		count    int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Emit sample debug messages to stderr",
		Long: `demo emits sample messages from the namespaces demo:app, demo:app:db,
demo:app:http and demo:app:worker. When no enable-spec is active, "demo:*"
is enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.newFactory(a.stderr)
			if err != nil {
				return err
			}

			enableDemo(f)

			d := newDemo(f)
			ctx := cmd.Context()

			for i := range count {
				if i > 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case <-time.After(interval):
					}
				}

				d.Step()
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of messages to emit")
	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "delay between messages")

	return cmd
}
