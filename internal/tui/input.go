package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"golife/internal/game"
)

// KeyEvent maps a terminal key to a controller event.
func KeyEvent(msg tea.KeyMsg) (game.Event, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return game.KeyPress(game.KeySpace), true
	case tea.KeyTab:
		return game.KeyPress(game.KeyTab), true
	case tea.KeyUp:
		return game.KeyPress(game.KeyUp), true
	case tea.KeyDown:
		return game.KeyPress(game.KeyDown), true
	case tea.KeyLeft:
		return game.KeyPress(game.KeyLeft), true
	case tea.KeyRight:
		return game.KeyPress(game.KeyRight), true
	case tea.KeyEnter:
		return game.KeyPress(game.KeyEnter), true
	case tea.KeyEsc:
		return game.KeyPress(game.KeyEscape), true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return game.Event{}, false
		}
		switch msg.Runes[0] {
		case ' ':
			return game.KeyPress(game.KeySpace), true
		case 'q':
			return game.KeyPress(game.KeyEscape), true
		case 'n':
			return game.KeyPress(game.KeyN), true
		case 'r':
			return game.KeyPress(game.KeyR), true
		case '+', '=':
			return game.KeyPress(game.KeyPlus), true
		case '-':
			return game.KeyPress(game.KeyMinus), true
		}
	}
	return game.Event{}, false
}

// MouseEvent maps a mouse release to a pointer event in cell pixels. Each
// terminal line holds two cell rows; the release lands on the upper one.
func MouseEvent(msg tea.MouseMsg) (game.Event, bool) {
	if msg.Action != tea.MouseActionRelease {
		return game.Event{}, false
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonNone {
		return game.Event{}, false
	}
	return game.PointerRelease(msg.X, msg.Y*2), true
}
