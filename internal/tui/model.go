package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathviz/animation"
	"github.com/katalvlaran/pathviz/builder"
	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/ui"
)

// logLines is how many run-log entries the view shows.
const logLines = 5

// Model is the bubbletea model for one interactive session.
type Model struct {
	session *controller.Session
	host    *Host
	overlay ui.Overlay
	cursor  grid.Coord
	paints  []string
	keys    keyMap
	help    help.Model

	seed       int64
	width      int
	message    string
	messageErr bool
}

// New builds a model over g. Session options are applied before the
// model's own step and reset hooks.
func New(g *grid.Grid, opts ...controller.Option) (*Model, error) {
	m := &Model{
		host:    NewHost(),
		overlay: make(ui.Overlay),
		keys:    keys,
		help:    help.New(),
		seed:    time.Now().UnixNano(),
	}
	opts = append(opts,
		controller.WithOnStep(m.overlay.Apply),
		controller.WithOnReset(func(controller.ResetMode) { clear(m.overlay) }),
	)
	s, err := controller.New(g, m.host, opts...)
	if err != nil {
		return nil, err
	}
	m.session = s
	m.cursor = g.Start()
	m.paints = append([]string{""}, g.Table().Names()...)
	return m, nil
}

// Session returns the underlying interaction controller.
func (m *Model) Session() *controller.Session { return m.session }

// Cursor returns the selected cell.
func (m *Model) Cursor() grid.Coord { return m.cursor }

// Overlay returns the cells revealed so far.
func (m *Model) Overlay() ui.Overlay { return m.overlay }

// Run starts an alt-screen program for m and blocks until it quits or ctx
// is done.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case fireMsg:
		m.host.fire(msg.id)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	return m, m.host.Cmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Paint):
		m.edit(s.Paint(m.cursor))
	case key.Matches(msg, m.keys.Erase):
		m.edit(s.Erase(m.cursor))
	case key.Matches(msg, m.keys.MoveStart):
		m.edit(s.MoveStart(m.cursor))
	case key.Matches(msg, m.keys.MoveFinish):
		m.edit(s.MoveFinish(m.cursor))

	case key.Matches(msg, m.keys.Algorithm):
		s.SelectAlgorithm(s.Algorithm().Next())
		m.notify("algorithm: " + s.Algorithm().String())
	case key.Matches(msg, m.keys.NodeType):
		m.nextPaint()

	case key.Matches(msg, m.keys.Start):
		if !s.Editable() {
			m.fail("animation in progress")
			return
		}
		clear(m.overlay)
		sum, ok := s.Start()
		switch {
		case !ok:
			m.fail("search failed")
		case sum.Found:
			m.notify(sum.String())
		default:
			m.fail(sum.String())
		}
	case key.Matches(msg, m.keys.Pause):
		s.TogglePause()
	case key.Matches(msg, m.keys.Restart):
		if !s.Restart() {
			m.fail("nothing to restart")
		}
	case key.Matches(msg, m.keys.Skip):
		s.Skip()

	case key.Matches(msg, m.keys.Reset):
		m.reset(controller.Reset)
	case key.Matches(msg, m.keys.ClearGrid):
		m.reset(controller.ClearGrid)
	case key.Matches(msg, m.keys.NoWalls):
		m.reset(controller.RemoveWalls)
	case key.Matches(msg, m.keys.Maze):
		m.maze()

	case key.Matches(msg, m.keys.Faster):
		s.SetSpeed(s.Speed().Faster())
		m.notify("speed: " + s.Speed().String())
	case key.Matches(msg, m.keys.Slower):
		s.SetSpeed(s.Speed().Slower())
		m.notify("speed: " + s.Speed().String())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
}

func (m *Model) moveCursor(dr, dc int) {
	next := grid.Coord{Row: m.cursor.Row + dr, Col: m.cursor.Col + dc}
	if m.session.Grid().InBounds(next) {
		m.cursor = next
	}
}

func (m *Model) edit(changed bool) {
	switch {
	case !m.session.Editable():
		m.fail("grid is locked while animating")
	case changed:
		m.message = ""
	}
}

func (m *Model) nextPaint() {
	cur := m.session.NodeType()
	i := 0
	for j, name := range m.paints {
		if name == cur {
			i = j
			break
		}
	}
	next := m.paints[(i+1)%len(m.paints)]
	if err := m.session.SelectNodeType(next); err != nil {
		m.fail(err.Error())
		return
	}
	m.notify("paint: " + paintLabel(next))
}

func (m *Model) reset(mode controller.ResetMode) {
	m.session.Reset(mode)
	m.notify(mode.String())
}

// maze carves a new maze and moves the cursor to Start.
func (m *Model) maze() {
	s := m.session
	if !s.Editable() {
		m.fail("grid is locked while animating")
		return
	}
	if err := builder.Maze(s.Grid(), builder.WithSeed(m.seed)); err != nil {
		m.fail(err.Error())
		return
	}
	m.seed++
	s.Reset(controller.Reset)
	m.cursor = s.Grid().Start()
	m.notify("maze generated")
}

// SetSeed fixes the seed of the next generated maze.
func (m *Model) SetSeed(seed int64) { m.seed = seed }

func (m *Model) notify(text string) {
	m.message, m.messageErr = text, false
}

func (m *Model) fail(text string) {
	m.message, m.messageErr = text, true
}

func paintLabel(name string) string {
	if name == "" {
		return grid.Air
	}
	return name
}

// ------------------------------------------------------------------------
// View
// ------------------------------------------------------------------------

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pathviz"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(gridBoxStyle.Render(m.renderGrid()))
	b.WriteString("\n")

	if m.message != "" {
		style := successStyle
		if m.messageErr {
			style = errorStyle
		}
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(style.Render(m.message)))
		b.WriteString("\n")
	}

	runs := m.session.Log()
	if len(runs) > logLines {
		runs = runs[len(runs)-logLines:]
	}
	for _, r := range runs {
		b.WriteString(logStyle.Render(r.String()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) status() string {
	s := m.session
	sched := s.Scheduler()
	return fmt.Sprintf("%s · paint %s · speed %s · %s %d/%d · cursor %s",
		s.Algorithm(), paintLabel(s.NodeType()), s.Speed(),
		sched.State(), sched.Current(), sched.Len(), m.cursor)
}

func (m *Model) renderGrid() string {
	g := m.session.Grid()
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			b.WriteString(m.cell(grid.Coord{Row: r, Col: c}))
		}
	}
	return b.String()
}

func (m *Model) cell(c grid.Coord) string {
	g := m.session.Grid()
	n := g.At(c)
	glyph := g.Symbol(c)
	var style lipgloss.Style
	switch k, revealed := m.overlay[c]; {
	case n.Role == grid.Start:
		style = startCell
	case n.Role == grid.Finish:
		style = finishCell
	case revealed && k == animation.OnShortestPath:
		glyph, style = ui.PathGlyph, pathCell
	case revealed:
		glyph, style = ui.VisitedGlyph, visitedCell
	case n.Blocking():
		style = wallCell
	default:
		var ok bool
		if style, ok = terrainCells[n.Terrain]; !ok {
			style = airCell
		}
	}
	if c == m.cursor {
		style = style.Reverse(true)
	}
	return style.Render(string(glyph))
}
