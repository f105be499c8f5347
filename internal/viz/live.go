package viz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bgcircles/internal/host"
	"github.com/san-kum/bgcircles/internal/scene"
)

const (
	// Nominal terminal cell size; each braille dot covers 4x4 px.
	CellWidthPx  = 8
	CellHeightPx = 16
	DotPx        = 4

	statusRows = 1
)

// FrameMsg is one display refresh.
type FrameMsg time.Time

// Model hosts a scene.Component inside a Bubble Tea program: window size
// messages become resize notifications and FrameMsg becomes the frame tick.
type Model struct {
	comp   *scene.Component
	host   *host.Manual
	fps    int
	snap   scene.Snapshot
	canvas *Canvas
	smooth *ScaleSmoother
	theme  Theme
	circle colorful.Color
	base   colorful.Color

	cols, rows int
	frames     int
	quitting   bool
}

type ModelOption func(*Model)

func WithTheme(name string) ModelOption {
	return func(m *Model) { m.theme = GetTheme(name) }
}

// NewModel mounts a component on a fresh host. The viewport is unknown
// until the first tea.WindowSizeMsg arrives.
func NewModel(opts scene.Options, fps int, seed int64, logger *slog.Logger, mopts ...ModelOption) *Model {
	if fps <= 0 {
		fps = 60
	}
	m := &Model{
		host:   host.NewManual(scene.Viewport{}, time.Now()),
		fps:    fps,
		smooth: NewScaleSmoother(fps),
		theme:  ThemeMidnight,
		canvas: NewCanvas(0, 0, colorful.Color{}),
	}
	for _, o := range mopts {
		o(m)
	}
	m.host.SetFrameInterval(time.Second / time.Duration(fps))
	m.circle = ParseColor(opts.Color, m.theme.Circle)
	m.base = ParseColor(opts.Background, m.theme.Background)

	m.comp = scene.NewComponent(m.host, opts, m.render,
		scene.WithRand(rand.New(rand.NewSource(seed))),
		scene.WithLogger(logger),
	)
	// Mount cannot fail on a fresh component.
	_ = m.comp.Mount()
	return m
}

func (m *Model) Component() *scene.Component { return m.comp }

func (m *Model) Snapshot() scene.Snapshot { return m.snap }

func (m *Model) Canvas() *Canvas { return m.canvas }

func (m *Model) Theme() Theme { return m.theme }

func (m *Model) Frames() int { return m.frames }

func (m *Model) render(s scene.Snapshot) {
	m.snap = s
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return FrameMsg(t) })
}

// Update handles input, resizes and display refreshes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.comp.Unmount()
			return m, tea.Quit
		case " ":
			m.comp.SetAnimated(!m.comp.Options().Animated)
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.circle = ParseColor(m.theme.Circle, scene.DefaultColor)
			m.base = ParseColor(m.theme.Background, scene.DefaultBackground)
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(0, msg.Height-statusRows)
		m.canvas = NewCanvas(m.cols, m.rows, m.base)
		m.host.Resize(float64(m.cols*CellWidthPx), float64(m.rows*CellHeightPx))
	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		m.host.FrameAt(time.Time(msg))
		m.frames++
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) draw() {
	m.canvas.Clear(m.base)
	for _, c := range m.snap.Circles {
		scale := m.smooth.Next(c.ID, c.Scale)
		r := c.Size * scale / 2 / DotPx
		m.canvas.FillDisc(c.X/DotPx, c.Y/DotPx, r, m.circle, c.Opacity)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(renderCanvas(m.canvas))
	b.WriteString(m.status())
	return b.String()
}

func (m *Model) status() string {
	bar, label, value, hint := statusStyles(m.theme)
	state := m.comp.State().String()
	if !m.snap.Viewport.Known() {
		state = "waiting"
	}
	parts := []string{
		value.Render(" bgcircles "),
		label.Render("circles ") + value.Render(fmt.Sprint(len(m.snap.Circles))),
		label.Render("viewport ") + value.Render(m.snap.Viewport.String()),
		label.Render("stepper ") + value.Render(state),
		label.Render("theme ") + value.Render(m.theme.Name),
		hint.Render("space pause · t theme · q quit"),
	}
	line := strings.Join(parts, bar.Render("  "))
	if w := lipgloss.Width(line); m.cols > w {
		line += bar.Render(strings.Repeat(" ", m.cols-w))
	}
	return line
}

// renderCanvas turns the canvas into styled rows. Fully covered cells are
// painted as background blocks; partially covered cells keep their braille
// pattern so disc edges stay visible.
func renderCanvas(c *Canvas) string {
	var b strings.Builder
	baseHex := c.Base().Hex()
	for row := 0; row < c.Height; row++ {
		var run strings.Builder
		runFg, runBg := "", ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().Background(lipgloss.Color(runBg))
			if runFg != "" {
				style = style.Foreground(lipgloss.Color(runFg))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			fg, bg, ch := "", baseHex, ' '
			switch r {
			case brailleEmpty:
			case brailleFull:
				bg = c.Colors[row][col].Hex()
			default:
				fg, ch = c.Colors[row][col].Hex(), r
			}
			if fg != runFg || bg != runBg {
				flush()
				runFg, runBg = fg, bg
			}
			run.WriteRune(ch)
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}
