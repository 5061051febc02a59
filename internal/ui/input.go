package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

// HoldTicks is how long a movement key counts as held after its last
// press or auto-repeat event (~133ms at 60Hz)
const HoldTicks = 8

// KeyToDirection converts a key event to a movement direction
// For Pong, only up/down movement is allowed
func KeyToDirection(key tcell.Key, r rune) game.Direction {
	switch key {
	case tcell.KeyUp:
		return game.DirUp
	case tcell.KeyDown:
		return game.DirDown
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.DirUp
		case 's', 'S':
			return game.DirDown
		}
	}
	return game.DirNone
}

// KeyToReplayChoice maps a key on the game over screen to a menu choice
func KeyToReplayChoice(key tcell.Key, r rune) game.ReplayChoice {
	if key == tcell.KeyEscape {
		return game.ReplayExit
	}
	if key != tcell.KeyRune {
		return game.ReplayNone
	}
	switch r {
	case '3':
		return game.ReplayBestOf3
	case '5':
		return game.ReplayBestOf5
	case '7':
		return game.ReplayBestOf7
	}
	return game.ReplayNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// HeldKeys turns discrete key events into a pressed/released state.
// Terminals report presses and auto-repeats but no releases, so a key
// is released HoldTicks after its last event.
type HeldKeys struct {
	dir   game.Direction
	ticks int
}

// Press records a movement key event
func (h *HeldKeys) Press(dir game.Direction) {
	if dir == game.DirNone {
		return
	}
	h.dir = dir
	h.ticks = HoldTicks
}

// Direction returns the currently held direction
func (h *HeldKeys) Direction() game.Direction {
	return h.dir
}

// Tick counts down the hold timeout and releases the key when it expires
func (h *HeldKeys) Tick() {
	if h.ticks > 0 {
		h.ticks--
		if h.ticks == 0 {
			h.dir = game.DirNone
		}
	}
}

// Release drops any held key
func (h *HeldKeys) Release() {
	h.dir = game.DirNone
	h.ticks = 0
}
