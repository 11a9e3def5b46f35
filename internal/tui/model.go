// Package tui is a terminal frontend: a bubbletea program that feeds key and
// mouse events to the controller and draws the board with half-block
// characters, two cell rows per terminal line.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"golife/internal/game"
	"golife/internal/render"
)

const historyLen = 120

type tickMsg time.Time

type splashDoneMsg struct{}

// Model is the bubbletea model wrapping a controller.
type Model struct {
	ctrl    *game.Controller
	frame   *render.Frame
	hold    time.Duration
	splash  bool
	history []float64
	err     error

	board  lipgloss.Style
	status lipgloss.Style
	muted  lipgloss.Style
}

// NewModel draws the splash into a fresh frame and returns the model. The
// controller must map pointer pixels one-to-one (scale 1).
func NewModel(ctrl *game.Controller, theme render.Theme, hold time.Duration) (*Model, error) {
	m := &Model{
		ctrl:   ctrl,
		frame:  render.NewFrame(ctrl.Grid().Size(), theme),
		hold:   hold,
		splash: true,
		board: lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.Hex(theme.On))).
			Background(lipgloss.Color(render.Hex(theme.Off))),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color(render.Hex(theme.Accent))).Bold(true),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
	if err := ctrl.Splash(m.frame); err != nil {
		return nil, err
	}
	return m, nil
}

// Err returns the render failure that stopped the program, if any.
func (m *Model) Err() error { return m.err }

// Init holds the splash before the first tick.
func (m *Model) Init() tea.Cmd {
	return tea.Tick(m.hold, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.ctrl.Delay(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles ticks and input.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case splashDoneMsg:
		m.splash = false
		return m, func() tea.Msg { return tickMsg(time.Now()) }

	case tickMsg:
		if err := m.ctrl.Tick(m.frame); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.record()
		return m, m.tick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		ev, ok := KeyEvent(msg)
		if !ok {
			return m, nil
		}
		if m.splash {
			if ev.Key == game.KeyEscape {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.ctrl.Dispatch(ev) {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if m.splash {
			return m, nil
		}
		if ev, ok := MouseEvent(msg); ok {
			m.ctrl.Dispatch(ev)
		}
	}
	return m, nil
}

func (m *Model) record() {
	m.history = append(m.history, float64(m.ctrl.Grid().Population()))
	if len(m.history) > historyLen {
		m.history = m.history[len(m.history)-historyLen:]
	}
}

// View draws the board, the status line and the population plot.
func (m *Model) View() string {
	if !m.splash && m.err == nil {
		// Edits made between ticks show up right away. A failure stops the
		// program on the next message.
		if err := m.ctrl.Render(m.frame); err != nil {
			m.err = err
		}
	}

	var b strings.Builder
	b.WriteString(m.board.Render(boardText(m.frame, m.ctrl.Cursor().Row, m.ctrl.Cursor().Col, !m.splash)))
	b.WriteByte('\n')
	if m.splash {
		return b.String()
	}

	b.WriteString(m.status.Render(fmt.Sprintf("gen %d  pop %d  %s  delay %dms",
		m.ctrl.Generation(), m.ctrl.Grid().Population(), m.ctrl.Mode(), m.ctrl.Delay().Milliseconds())))
	b.WriteByte('\n')
	if len(m.history) > 1 {
		width := min(m.frame.Size(), 60)
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(width),
			asciigraph.Caption("population")))
		b.WriteByte('\n')
	}
	b.WriteString(m.muted.Render("space pause  tab clear  arrows/enter edit  click stamp  n step  r random  +/- speed  esc quit"))
	return b.String()
}

// boardText renders the frame with one terminal line per two pixel rows.
func boardText(f *render.Frame, curRow, curCol int, showCursor bool) string {
	size := f.Size()
	var b strings.Builder
	for row := 0; row < size; row += 2 {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < size; col++ {
			top := f.Lit(row, col)
			bottom := f.Lit(row+1, col)
			if showCursor && col == curCol && (row == curRow || row+1 == curRow) {
				b.WriteRune(cursorRune(row == curRow, top, bottom))
				continue
			}
			b.WriteRune(halfBlock(top, bottom))
		}
	}
	return b.String()
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

// cursorRune marks the cursor half with a shade so it stays visible over both
// live and dead cells.
func cursorRune(upper, top, bottom bool) rune {
	if upper {
		if bottom {
			return '▓'
		}
		return '▒'
	}
	if top {
		return '▓'
	}
	return '░'
}
