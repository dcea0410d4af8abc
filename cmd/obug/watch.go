package main

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/obug/console"
	"go.jacobcolvin.com/obug/debug"
	"go.jacobcolvin.com/obug/log"
)

const defaultMaxLines = 500

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (a *app) newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "View sample debug messages live and edit the filter",
		Long: `watch runs the demo emitters in a full-screen view. Type to edit the
enable-spec, press enter to apply it, and esc or ctrl+c to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub := log.NewPublisher()
			//nolint:errcheck // Publisher.Close never fails.
			defer pub.Close()

			var opts []console.Option
			if a.console.Colors == console.ColorsAuto {
				opts = append(opts, console.WithColors(true))
			}

			f, err := a.newFactory(pub, opts...)
			if err != nil {
				return err
			}

			enableDemo(f)

			m := newWatchModel(f, newDemo(f), pub, interval)

			_, err = tea.NewProgram(m,
				tea.WithContext(cmd.Context()),
				tea.WithOutput(a.stdout),
			).Run()

			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 250*time.Millisecond, "delay between sample messages")

	return cmd
}

// lineMsg carries one line of debug output.
type lineMsg string

// outputClosedMsg signals that the publisher was closed.
type outputClosedMsg struct{}

// emitMsg signals that the next sample message is due.
type emitMsg struct{}

// watchModel is the bubbletea model for the watch command.
type watchModel struct {
	factory  *debug.Factory
	demo     *demo
	sub      *log.Subscription
	input    string
	status   string
	lines    []string
	interval time.Duration
	maxLines int
	height   int
}

func newWatchModel(f *debug.Factory, d *demo, pub *log.Publisher, interval time.Duration) *watchModel {
	return &watchModel{
		factory:  f,
		demo:     d,
		sub:      pub.Subscribe(),
		input:    f.Namespaces(),
		interval: interval,
		maxLines: defaultMaxLines,
	}
}

// Init starts reading output and emitting sample messages.
func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.waitForLine(), m.emit())
}

func (m *watchModel) waitForLine() tea.Cmd {
	return func() tea.Msg {
		line, ok := <-m.sub.C()
		if !ok {
			return outputClosedMsg{}
		}

		return lineMsg(line)
	}
}

func (m *watchModel) emit() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return emitMsg{}
	})
}

// Update handles key presses, output lines and the emit timer.
func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.sub.Close()
			return m, tea.Quit

		case "enter":
			m.factory.Enable(m.input)
			m.status = "applied " + m.factory.Namespaces()

		case "backspace":
			runes := []rune(m.input)
			if len(runes) > 0 {
				m.input = string(runes[:len(runes)-1])
			}

		default:
			m.input += msg.Text
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height

	case lineMsg:
		m.lines = append(m.lines, string(msg))
		if len(m.lines) > m.maxLines {
			m.lines = m.lines[len(m.lines)-m.maxLines:]
		}

		return m, m.waitForLine()

	case outputClosedMsg:
		return m, nil

	case emitMsg:
		m.demo.Step()

		return m, m.emit()
	}

	return m, nil
}

// View renders the latest output above the filter prompt.
func (m *watchModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true

	return v
}

func (m *watchModel) render() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("obug watch"))
	b.WriteString(statusStyle.Render("  enter: apply  esc: quit"))
	b.WriteByte('\n')

	lines := m.lines
	if m.height > 3 && len(lines) > m.height-3 {
		lines = lines[len(lines)-(m.height-3):]
	}

	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(promptStyle.Render("DEBUG=") + m.input)

	if m.status != "" {
		b.WriteString("  " + statusStyle.Render(m.status))
	}

	return b.String()
}
