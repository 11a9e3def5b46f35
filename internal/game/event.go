package game

// Key names a keyboard key understood by the controller.
type Key int

const (
	// KeyNone is the zero Key and is ignored by the controller.
	KeyNone Key = iota
	// KeySpace toggles pause.
	KeySpace
	// KeyTab clears the board.
	KeyTab
	// KeyUp, KeyDown, KeyLeft and KeyRight move the cursor.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeyEnter toggles the cell under the cursor.
	KeyEnter
	// KeyEscape quits.
	KeyEscape
	// KeyN advances one generation.
	KeyN
	// KeyR refills the board from the seed.
	KeyR
	// KeyPlus shortens the tick delay and KeyMinus lengthens it.
	KeyPlus
	KeyMinus
)

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeySpace:  "space",
	KeyTab:    "tab",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyEnter:  "enter",
	KeyEscape: "escape",
	KeyN:      "n",
	KeyR:      "r",
	KeyPlus:   "+",
	KeyMinus:  "-",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// EventKind discriminates Event values.
type EventKind int

const (
	// EventPointerRelease is a mouse button release at pixel coordinates X, Y.
	EventPointerRelease EventKind = iota + 1
	// EventKeyPress is a key press carrying Key.
	EventKeyPress
	// EventClose is a window-close request.
	EventClose
)

// Event is one discrete item from an input source.
type Event struct {
	Kind EventKind
	Key  Key
	X, Y int
}

// PointerRelease builds a pointer event at pixel (x, y).
func PointerRelease(x, y int) Event { return Event{Kind: EventPointerRelease, X: x, Y: y} }

// KeyPress builds a key event.
func KeyPress(k Key) Event { return Event{Kind: EventKeyPress, Key: k} }

// Close builds a window-close event.
func Close() Event { return Event{Kind: EventClose} }

// Direction is a cursor move.
type Direction int

// Cursor directions. Up and Down change the row, Left and Right the column.
const (
	Up Direction = iota
	Down
	Left
	Right
)
