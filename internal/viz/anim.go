package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/vthrow/internal/trajectory"
)

const (
	DefaultFPS    = 20
	defaultWidth  = 24
	defaultHeight = 16
	ballSize      = 2
	trailLength   = 12
	headroom      = 1.1
)

type Options struct {
	FPS    int
	Width  int // canvas cells
	Height int // canvas cells
	Title  string
	Loop   bool
	Theme  string
}

type TickMsg time.Time

// Model animates a sampled trajectory one frame per tick.
type Model struct {
	tr      *trajectory.Trajectory
	opts    Options
	canvas  *Canvas
	frame   int
	running bool
	yMax    float64
	trail   []int
	theme   int
}

func NewModel(tr *trajectory.Trajectory, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultFPS
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	yMax := math.Max(tr.Peak(), tr.Params.Y0) * headroom
	if yMax <= 0 {
		yMax = 1
	}

	m := Model{
		tr:      tr,
		opts:    opts,
		canvas:  NewCanvas(opts.Width, opts.Height),
		running: true,
		yMax:    yMax,
		trail:   make([]int, 0, trailLength),
		theme:   themeIndex(opts.Theme),
	}
	m.draw()
	return m
}

func (m Model) Frame() int      { return m.frame }
func (m Model) Running() bool   { return m.running }
func (m Model) Canvas() *Canvas { return m.canvas }
func (m Model) Theme() Theme    { return Themes[m.theme] }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.restart()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "right", "l":
			if !m.running {
				m.advance()
			}
		case "left", "h":
			if !m.running && m.frame > 0 {
				m.frame--
				m.trail = m.trail[:0]
				m.draw()
			}
		}
		return m, nil
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) restart() {
	m.frame = 0
	m.trail = m.trail[:0]
	m.running = true
	m.draw()
}

// advance moves to the next frame; at the end it loops or pauses.
func (m *Model) advance() {
	if m.frame >= m.tr.Len()-1 {
		if m.opts.Loop {
			m.frame = 0
			m.trail = m.trail[:0]
		} else {
			m.running = false
		}
		m.draw()
		return
	}
	m.trail = append(m.trail, m.row(m.tr.At(m.frame).Y))
	if len(m.trail) > trailLength {
		m.trail = m.trail[1:]
	}
	m.frame++
	m.draw()
}

// row maps a height to a sub-pixel row. Heights below ground sit on the
// ground line; heights above the window are clamped to the top.
func (m *Model) row(y float64) int {
	ground := m.canvas.PixelHeight() - 1
	r := ground - int(math.Round(y/m.yMax*float64(ground)))
	if r < 0 {
		r = 0
	}
	if r > ground {
		r = ground
	}
	return r
}

func (m *Model) draw() {
	c := m.canvas
	c.Clear()
	c.HLine(c.PixelHeight() - 1)

	cx := c.PixelWidth()/2 - ballSize/2
	for _, r := range m.trail {
		c.Set(cx, r)
	}
	if m.tr.Len() == 0 {
		return
	}
	r := m.row(m.tr.At(m.frame).Y) - ballSize + 1
	if r < 0 {
		r = 0
	}
	c.Block(cx, r, ballSize)
}

func (m Model) View() string {
	var b strings.Builder

	title := m.opts.Title
	if title == "" {
		title = "vertical throw"
	}
	theme := m.Theme()
	b.WriteString(theme.header().Render(strings.ToUpper(title)) + "\n")

	canvas := theme.canvas().Render(m.canvas.String())

	p := trajectory.Point{}
	if m.tr.Len() > 0 {
		p = m.tr.At(m.frame)
	}
	status := StatusRunning.Render("running")
	if !m.running {
		status = StatusPaused.Render("paused")
	}
	window := fmt.Sprintf("%.2f s", m.tr.Duration)
	if !m.tr.Bounded {
		window += " (never lands)"
	}

	var stats strings.Builder
	stats.WriteString(status + "\n\n")
	label, value := theme.label(), theme.value()
	stats.WriteString(label.Render("t") + value.Render(fmt.Sprintf("%8.2f s", p.T)) + "\n")
	stats.WriteString(label.Render("height") + value.Render(fmt.Sprintf("%8.2f m", p.Y)) + "\n")
	stats.WriteString(label.Render("velocity") + value.Render(fmt.Sprintf("%8.2f m/s", p.V)) + "\n")
	stats.WriteString(label.Render("window") + value.Render(window) + "\n")
	stats.WriteString(label.Render("y max") + value.Render(fmt.Sprintf("%.2f m", m.yMax)) + "\n\n")
	stats.WriteString(ProgressBar(m.progress(), 20))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(stats.String())))
	b.WriteString("\n" + helpStyle.Render("space pause  h/l step  r restart  t theme  q quit") + "\n")
	return b.String()
}

func (m Model) progress() float64 {
	if m.tr.Len() < 2 {
		return 1
	}
	return float64(m.frame) / float64(m.tr.Len()-1)
}

// Run shows the animation until the user quits.
func Run(tr *trajectory.Trajectory, opts Options) error {
	_, err := tea.NewProgram(NewModel(tr, opts), tea.WithAltScreen()).Run()
	return err
}
