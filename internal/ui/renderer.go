package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// court maps field units onto the cells between the scoreboard row and the
// status bar
type court struct {
	scaleX, scaleY float64
	top, bottom    int
	width          int
}

func newCourt(screenW, screenH int, s game.Snapshot) court {
	return court{
		scaleX: float64(screenW) / float64(s.FieldWidth),
		scaleY: float64(screenH-2) / float64(s.FieldHeight), // -2 for status bars
		top:    1,
		bottom: screenH - 2,
		width:  screenW,
	}
}

// cells returns the cell box covered by r, at least one cell in each direction
func (c court) cells(r game.Rect) (x, y, w, h int) {
	x = int(r.X * c.scaleX)
	y = int(r.Y*c.scaleY) + c.top
	w = int((r.X+r.W)*c.scaleX) - x
	h = int((r.Y+r.H)*c.scaleY) + c.top - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

func (c court) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= c.top && y <= c.bottom
}

// Render draws the screen for the current match state
func (r *Renderer) Render(state game.Snapshot) {
	if state.GameOver {
		r.RenderGameOver(state)
		return
	}
	r.RenderGame(state)
}

// RenderGame displays the game screen
func (r *Renderer) RenderGame(state game.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	c := newCourt(screenW, screenH, state)

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Draw center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(state, screenW)

	r.renderPaddle(c, state.Player, tcell.StyleDefault.Foreground(PlayerColor))
	r.renderPaddle(c, state.AI, tcell.StyleDefault.Foreground(AIColor))

	bx, by, bw, bh := c.cells(state.Ball)
	ballX, ballY := bx+bw/2, by+bh/2
	if c.inside(ballX, ballY) {
		ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		r.screen.SetCell(ballX, ballY, ballStyle, BallChar)
	}

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	statusText := fmt.Sprintf(" W/S or arrows to move | First to %d wins | q to quit", state.MaxScore)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

func (r *Renderer) renderPaddle(c court, rect game.Rect, style tcell.Style) {
	x, y, w, h := c.cells(rect)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if c.inside(x+dx, y+dy) {
				r.screen.SetCell(x+dx, y+dy, style, PaddleChar)
			}
		}
	}
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(state game.Snapshot, screenW int) {
	// Scoreboard format: [ PLAYER 3 - 2 AI ]
	leftLabel := "PLAYER"
	rightLabel := "AI"
	scores := fmt.Sprintf(" %d - %d ", state.PlayerScore, state.AIScore)

	scoreboardText := "[ " + leftLabel + scores + rightLabel + " ]"
	x := (screenW - len(scoreboardText)) / 2

	scoreboardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	leftStyle := scoreboardStyle.Foreground(PlayerColor)
	rightStyle := scoreboardStyle.Foreground(AIColor)

	r.screen.DrawText(x, 0, "[ ", scoreboardStyle)
	x += 2
	r.screen.DrawText(x, 0, leftLabel, leftStyle)
	x += len(leftLabel)
	r.screen.DrawText(x, 0, scores, scoreboardStyle)
	x += len(scores)
	r.screen.DrawText(x, 0, rightLabel, rightStyle)
	x += len(rightLabel)
	r.screen.DrawText(x, 0, " ]", scoreboardStyle)
}

// RenderGameOver displays the winner, the final score and the replay menu
func (r *Renderer) RenderGameOver(state game.Snapshot) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	title := "=== GAME OVER ==="
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawCenteredText(screenH/2-6, title, titleStyle)

	winnerStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawCenteredText(screenH/2-4, state.WinnerText, winnerStyle)

	scoreText := fmt.Sprintf("Final Score: %d - %d", state.PlayerScore, state.AIScore)
	r.screen.DrawCenteredText(screenH/2-2, scoreText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	optionStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, opt := range state.ReplayOptions {
		text := fmt.Sprintf("Press %s for %s", opt.Key, opt.Label)
		r.screen.DrawCenteredText(screenH/2+1+i, text, optionStyle)
	}

	r.screen.Show()
}
