package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

func TestKeyToDirection(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want game.Direction
	}{
		{tcell.KeyUp, 0, game.DirUp},
		{tcell.KeyDown, 0, game.DirDown},
		{tcell.KeyRune, 'w', game.DirUp},
		{tcell.KeyRune, 'W', game.DirUp},
		{tcell.KeyRune, 's', game.DirDown},
		{tcell.KeyRune, 'S', game.DirDown},
		{tcell.KeyRune, 'x', game.DirNone},
	}

	for _, tt := range tests {
		got := KeyToDirection(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToDirection(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestKeyToReplayChoice(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want game.ReplayChoice
	}{
		{tcell.KeyRune, '3', game.ReplayBestOf3},
		{tcell.KeyRune, '5', game.ReplayBestOf5},
		{tcell.KeyRune, '7', game.ReplayBestOf7},
		{tcell.KeyEscape, 0, game.ReplayExit},
		{tcell.KeyRune, '4', game.ReplayNone},
		{tcell.KeyRune, 'x', game.ReplayNone},
		{tcell.KeyEnter, 0, game.ReplayNone},
	}

	for _, tt := range tests {
		got := KeyToReplayChoice(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToReplayChoice(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestReplayKeysMatchLabels(t *testing.T) {
	for _, opt := range game.ReplayOptions {
		key, r := tcell.KeyRune, []rune(opt.Key)[0]
		if opt.Key == "ESC" {
			key, r = tcell.KeyEscape, 0
		}
		if got := KeyToReplayChoice(key, r); got != opt.Choice {
			t.Errorf("key %q selects %v, menu says %v", opt.Key, got, opt.Choice)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}

func TestHeldKeys(t *testing.T) {
	var h HeldKeys

	if h.Direction() != game.DirNone {
		t.Fatalf("expected nothing held initially")
	}

	h.Press(game.DirUp)
	for i := 0; i < HoldTicks-1; i++ {
		h.Tick()
		if h.Direction() != game.DirUp {
			t.Fatalf("key released early at tick %d", i)
		}
	}
	h.Tick()
	if h.Direction() != game.DirNone {
		t.Errorf("expected key released after %d ticks", HoldTicks)
	}
}

func TestHeldKeys_RepeatExtendsHold(t *testing.T) {
	var h HeldKeys

	h.Press(game.DirDown)
	for i := 0; i < 3*HoldTicks; i++ {
		if i%(HoldTicks/2) == 0 {
			h.Press(game.DirDown)
		}
		h.Tick()
		if h.Direction() != game.DirDown {
			t.Fatalf("auto-repeat should keep the key held, released at tick %d", i)
		}
	}
}

func TestHeldKeys_SwitchAndRelease(t *testing.T) {
	var h HeldKeys

	h.Press(game.DirUp)
	h.Press(game.DirDown)
	if h.Direction() != game.DirDown {
		t.Errorf("expected latest key to win")
	}

	h.Press(game.DirNone)
	if h.Direction() != game.DirDown {
		t.Errorf("DirNone must not change the held key")
	}

	h.Release()
	if h.Direction() != game.DirNone {
		t.Errorf("expected release to clear the key")
	}
	h.Tick()
	if h.Direction() != game.DirNone {
		t.Errorf("tick after release should stay released")
	}
}
