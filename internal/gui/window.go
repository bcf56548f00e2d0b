package gui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	errs "github.com/Aman-CERP/libcheck/internal/errors"
)

// tickMsg marks the end of one wait interval.
type tickMsg struct {
	n  int
	at time.Time
}

// windowModel is the bubbletea model behind Show.
type windowModel struct {
	ctx     context.Context
	opts    Options
	styles  Styles
	spinner spinner.Model

	ticks    int
	done     bool
	quitting bool
}

func newWindowModel(ctx context.Context, opts Options) *windowModel {
	styles := GetStyles(opts.NoColor || DetectNoColor())
	return &windowModel{
		ctx:    ctx,
		opts:   opts,
		styles: styles,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.Spinner),
		),
	}
}

// Init implements tea.Model.
func (m *windowModel) Init() tea.Cmd {
	if m.opts.Iterations <= 0 {
		m.done = true
		return tea.Quit
	}
	return m.tick()
}

// tick waits one interval. It returns early with no message when the
// context ends so no timer goroutine outlives the program.
func (m *windowModel) tick() tea.Cmd {
	ctx, d, n := m.ctx, m.opts.Interval, m.ticks+1
	return func() tea.Msg {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil
		case at := <-t.C:
			return tickMsg{n: n, at: at}
		}
	}
}

// Update implements tea.Model.
func (m *windowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		m.ticks = msg.n
		// The spinner's own follow-up tick is dropped; the window's
		// context-aware tick paces it instead.
		m.spinner, _ = m.spinner.Update(spinner.TickMsg{ID: m.spinner.ID(), Time: msg.at})
		if m.ticks >= m.opts.Iterations {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// View implements tea.Model.
func (m *windowModel) View() string {
	title := m.spinner.View() + " " + m.styles.Title.Render(m.opts.Title)

	inner := m.opts.Width - 2
	if inner < 1 {
		inner = 1
	}
	label := m.styles.Label.Width(inner).Render(m.opts.Label)
	body := lipgloss.Place(inner, m.opts.Height, lipgloss.Center, lipgloss.Center, label)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.styles.Window.Width(m.opts.Width).Render(body),
	)
}

// Result reports how the window closed.
type Result struct {
	// Iterations is the number of completed waits.
	Iterations int
	// Completed is false when the window was closed early.
	Completed bool
}

// Show draws the window to out and pumps its event loop until the
// configured iterations have elapsed or ctx ends.
func Show(ctx context.Context, opts Options, out io.Writer) (Result, error) {
	if opts.Width < 4 || opts.Height < 1 {
		return Result{}, errs.New(errs.ErrCodeInvalidConfig,
			fmt.Sprintf("window size %dx%d too small", opts.Width, opts.Height), nil)
	}
	if opts.Iterations > 0 && opts.Interval <= 0 {
		return Result{}, errs.New(errs.ErrCodeInvalidConfig, "interval must be positive", nil)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newWindowModel(runCtx, opts)
	p := tea.NewProgram(model,
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(runCtx),
		tea.WithoutSignalHandler(),
	)

	final, err := p.Run()
	if ctx.Err() != nil {
		return Result{Iterations: model.ticks}, errs.New(errs.ErrCodeCancelled, "window closed before completion", ctx.Err())
	}
	if err != nil {
		return Result{Iterations: model.ticks}, errs.New(errs.ErrCodeWindowFailed, "failed to run window event loop", err)
	}

	m, ok := final.(*windowModel)
	if !ok {
		return Result{}, errs.InternalError("unexpected model type", nil)
	}
	return Result{Iterations: m.ticks, Completed: m.done}, nil
}
