// Package core implements the blockfall grid simulation.
// It is UI-agnostic and deterministic for a given seed and clock: the platform
// feeds it input and timestamps, and reads the grid back through View.
package core

// Cell is the state of one grid position.
type Cell uint8

const (
	Empty      Cell = iota // no block
	ActiveCore             // solid cell of the falling piece; triggers locking
	ActiveAux              // padding cell of the falling piece; detaches on contact
	Locked                 // settled block, part of the stack
	Wall                   // sentinel for off-grid lookups, never stored
)

// String returns the cell name.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case ActiveCore:
		return "ActiveCore"
	case ActiveAux:
		return "ActiveAux"
	case Locked:
		return "Locked"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// Active reports whether the cell belongs to the falling piece.
func (c Cell) Active() bool {
	switch c {
	case ActiveCore, ActiveAux:
		return true
	case Empty, Locked, Wall:
		return false
	default:
		return false
	}
}

// Solid reports whether the cell is drawn as a filled tile.
// Aux padding is invisible, like the legacy renderer's.
func (c Cell) Solid() bool {
	switch c {
	case ActiveCore, Locked:
		return true
	case Empty, ActiveAux, Wall:
		return false
	default:
		return false
	}
}

// Code returns the legacy numeric code (0 empty, 1 core, 2 aux, 3 locked).
// Used by the debug overlay.
func (c Cell) Code() int {
	switch c {
	case Empty:
		return 0
	case ActiveCore:
		return 1
	case ActiveAux:
		return 2
	case Locked:
		return 3
	case Wall:
		return -1
	default:
		return -1
	}
}

// Rune returns the ASCII form used by Grid.String and ParseGrid.
func (c Cell) Rune() rune {
	switch c {
	case Empty:
		return '.'
	case ActiveCore:
		return 'C'
	case ActiveAux:
		return 'a'
	case Locked:
		return '#'
	case Wall:
		return '|'
	default:
		return '?'
	}
}

// cellFromRune is the inverse of Rune for storable cells.
func cellFromRune(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Empty, true
	case 'C':
		return ActiveCore, true
	case 'a':
		return ActiveAux, true
	case '#':
		return Locked, true
	default:
		return Empty, false
	}
}
