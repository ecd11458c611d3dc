package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/linebar/internal/config"
	"github.com/pablasso/linebar/internal/demo"
	"github.com/pablasso/linebar/internal/progress"
	"github.com/pablasso/linebar/internal/tui/components"
	"github.com/pablasso/linebar/internal/tui/msgs"
	"github.com/pablasso/linebar/internal/tui/styles"
	"github.com/rs/zerolog"
)

// Minimum terminal dimensions for the bars to be useful.
const (
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

const (
	defaultAnimation = 600 * time.Millisecond
	labelWidth       = 12
	verticalGap      = 3
)

// frameCache holds the last rendered bars until an indicator invalidates.
type frameCache struct {
	dirty  bool
	width  int
	height int
	bars   string
}

// Model is the Bubble Tea model hosting the indicators.
type Model struct {
	width  int
	height int

	horizontal *progress.Dual
	vertical   *progress.Dual
	single     *progress.Single

	horizontalGauge *components.Gauge
	verticalGauge   *components.Gauge
	singleGauge     *components.Gauge

	scheduler *frameScheduler
	frame     *frameCache

	keys      keyMap
	help      help.Model
	statusBar components.StatusBar

	demo       *demo.Config
	targets    *demo.Targets
	demoPaused bool

	reloads   <-chan config.Update
	feed      <-chan float64
	reloadErr error

	log zerolog.Logger
}

// Run starts the TUI application.
func Run(opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewModel(opts)
	if opts.Watcher != nil {
		go func() {
			if err := opts.Watcher.Run(ctx); err != nil && ctx.Err() == nil {
				m.log.Error().Err(err).Msg("config watcher stopped")
			}
		}()
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// NewModel builds the bars and applies opts to them.
func NewModel(opts Options) Model {
	m := Model{
		scheduler: newFrameScheduler(frameInterval),
		frame:     &frameCache{dirty: true},
		keys:      defaultKeyMap(),
		help:      help.New(),
		statusBar: components.NewStatusBar(),
		feed:      opts.Targets,
		log:       zerolog.Nop(),
	}
	if opts.Logger != nil {
		m.log = *opts.Logger
	}
	if opts.Watcher != nil {
		m.reloads = opts.Watcher.Updates()
	}

	base := []progress.Option{
		progress.WithScheduler(m.scheduler),
		progress.WithInvalidator(progress.InvalidateFunc(m.invalidate)),
		progress.WithDiagnostics(m.log),
	}
	if opts.Easing != nil {
		base = append(base, progress.WithEasing(opts.Easing))
	}

	m.horizontal = progress.NewDual(base...)
	m.horizontal.SetBackgroundLineWidth(3)
	m.horizontal.SetProgressLineWidth(3)

	m.vertical = progress.NewDual(base...)
	m.vertical.SetBackgroundLineWidth(2)
	m.vertical.SetProgressLineWidth(2)

	m.single = progress.NewSingle(base...)
	m.single.SetBackgroundLineWidth(1)
	m.single.SetProgressLineWidth(1)
	m.single.SetLineMode(progress.CapSquare)

	for _, ind := range m.indicators() {
		ind.SetBackgroundLineColor(styles.TrackColor)
		ind.SetProgressLineColor(styles.FillColor)
		ind.SetAnimateProgress(true)
		ind.SetAnimationDuration(defaultAnimation)
	}
	m.single.SetProgressLineColor(styles.AccentColor)

	if opts.Demo != nil {
		cfg := *opts.Demo
		m.demo = &cfg
		m.targets = demo.NewTargets(cfg.Seed)
		for _, ind := range m.indicators() {
			ind.SetAnimationDuration(cfg.Animation)
		}
	}

	m.apply(opts.Indicator)

	m.horizontalGauge = components.NewGauge(m.horizontal, progress.Insets{Start: 1, End: 1})
	m.verticalGauge = components.NewGauge(m.vertical, progress.Insets{Start: 1, End: 1})
	m.singleGauge = components.NewGauge(m.single, progress.Insets{Start: 1, End: 1})

	return m
}

func (m Model) invalidate() {
	m.frame.dirty = true
}

func (m Model) indicators() []*progress.Indicator {
	return []*progress.Indicator{m.horizontal.Indicator, m.vertical.Indicator, m.single.Indicator}
}

// apply writes option values to every bar. The layout has one horizontal and
// one vertical slot, so the orientation of each Dual is pinned afterwards.
func (m Model) apply(o progress.Options) {
	m.horizontal.Apply(o)
	m.horizontal.SetOrientation(progress.Horizontal)
	m.vertical.Apply(o)
	m.vertical.SetOrientation(progress.Vertical)
	m.single.Apply(o)
}

// setTarget moves every bar to v, clamped to each bar's range.
func (m Model) setTarget(v float64) {
	for _, ind := range m.indicators() {
		ind.SetProgress(math.Min(math.Max(v, ind.Min()), ind.Max()))
	}
}

// step moves the bars by a tenth of the range in the given direction.
func (m Model) step(dir float64) {
	h := m.horizontal
	m.setTarget(h.Target() + dir*(h.Max()-h.Min())/10)
}

func (m Model) demoTick() tea.Cmd {
	if m.demo == nil {
		return nil
	}
	return tea.Tick(m.demo.Interval, func(t time.Time) tea.Msg {
		return msgs.DemoTickMsg(t)
	})
}

func waitForReload(updates <-chan config.Update) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return msgs.ReloadMsg{Options: u.Options, Err: u.Err}
	}
}

func waitForTarget(feed <-chan float64) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-feed
		if !ok {
			return msgs.TargetsClosedMsg{}
		}
		return msgs.TargetMsg{Value: v}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.demoTick(),
		waitForReload(m.reloads),
		waitForTarget(m.feed),
		m.scheduler.cmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var quit bool
		m, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.frame.dirty = true

	case frameMsg:
		m.scheduler.fire(time.Time(msg))

	case msgs.DemoTickMsg:
		if !m.demoPaused {
			h := m.horizontal
			m.setTarget(m.targets.Next(h.Min(), h.Max()))
		}
		cmd = m.demoTick()

	case msgs.ReloadMsg:
		m.reloadErr = msg.Err
		if msg.Err == nil {
			m.apply(msg.Options)
		}
		cmd = waitForReload(m.reloads)

	case msgs.TargetMsg:
		m.setTarget(msg.Value)
		cmd = waitForTarget(m.feed)

	case msgs.TargetsClosedMsg:
		m.log.Debug().Msg("target feed closed")
		m.feed = nil
	}

	return m, tea.Batch(cmd, m.scheduler.cmd())
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, true
	case key.Matches(msg, m.keys.Random):
		h := m.horizontal
		if m.targets == nil {
			m.targets = demo.NewTargets(0)
		}
		m.setTarget(m.targets.Next(h.Min(), h.Max()))
	case key.Matches(msg, m.keys.Decrease):
		m.step(-1)
	case key.Matches(msg, m.keys.Increase):
		m.step(1)
	case key.Matches(msg, m.keys.Reverse):
		m.horizontal.SetReverse(!m.horizontal.Reverse())
		m.vertical.SetReverse(!m.vertical.Reverse())
	case key.Matches(msg, m.keys.Cap):
		next := progress.CapSquare
		if m.horizontal.LineMode() == progress.CapSquare {
			next = progress.CapRound
		}
		m.horizontal.SetLineMode(next)
		m.vertical.SetLineMode(next)
	case key.Matches(msg, m.keys.Animate):
		on := !m.horizontal.AnimateProgress()
		for _, ind := range m.indicators() {
			ind.SetAnimateProgress(on)
		}
	case key.Matches(msg, m.keys.PauseDemo):
		m.demoPaused = !m.demoPaused
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, false
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting..."
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("linebar"))
	b.WriteString("\n")
	b.WriteString(m.renderBars())
	b.WriteString("\n\n")
	b.WriteString(m.statusBar.Render(m.width, m.statusItems()))
	if m.reloadErr != nil {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("config: %v", m.reloadErr)))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTerminalTooSmall() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ErrorStyle.Render("Terminal too small"),
		styles.SubtleStyle.Render(fmt.Sprintf("Minimum: %dx%d", MinTerminalWidth, MinTerminalHeight)),
		styles.SubtleStyle.Render(fmt.Sprintf("Current: %dx%d", m.width, m.height)),
	)
}

// barsHeight is the space left for the bars after title, status and help.
func (m Model) barsHeight() int {
	reserved := 6
	if m.help.ShowAll {
		reserved += 2
	}
	return max(m.height-reserved, 1)
}

func (m Model) renderBars() string {
	if !m.frame.dirty && m.frame.width == m.width && m.frame.height == m.height {
		return m.frame.bars
	}

	height := m.barsHeight()
	vCols, _ := m.verticalGauge.Size(m.width, height)
	leftWidth := max(m.width-vCols-verticalGap-labelWidth, 0)

	left := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.LabelStyle.Render("dual"),
			m.horizontalGauge.View(leftWidth, height),
		),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			styles.LabelStyle.Render("single"),
			m.singleGauge.View(leftWidth, height),
		),
	)
	bars := lipgloss.JoinHorizontal(lipgloss.Top,
		left,
		strings.Repeat(" ", verticalGap),
		m.verticalGauge.View(m.width, height),
	)

	m.frame.bars = bars
	m.frame.width = m.width
	m.frame.height = m.height
	m.frame.dirty = false
	return bars
}

func (m Model) statusItems() []string {
	h := m.horizontal
	state := "idle"
	if h.Animating() {
		state = "animating"
	}
	items := []string{
		fmt.Sprintf("value %.1f", h.Progress()),
		fmt.Sprintf("%.0f%%", h.Percent()),
		state,
		h.LineMode().String(),
	}
	if h.Reverse() {
		items = append(items, "reversed")
	}
	if !h.AnimateProgress() {
		items = append(items, "animation off")
	}
	if m.demo != nil {
		if m.demoPaused {
			items = append(items, "demo paused")
		} else {
			items = append(items, "demo "+string(m.demo.Preset))
		}
	}
	return items
}
