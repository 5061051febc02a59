package game

const (
	PaddleWidth  = 10
	PaddleHeight = 100
	PlayerSpeed  = 10 // Step per tick while a movement key is held
	AISpeed      = 6  // Fixed AI step, slower than the player on purpose
	PaddleMargin = 10 // Gap between a paddle and its side wall
)

// Paddle is a vertical bar. X/Y is the top-left corner.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

func NewPaddle(x, y float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Speed:  AISpeed,
	}
}

// Move shifts the paddle by delta and keeps it inside [0, fieldHeight-Height]
func (p *Paddle) Move(delta float64, fieldHeight int) {
	p.Y += delta
	p.clamp(fieldHeight)
}

// AutoTrack steps the paddle one Speed toward the ball's vertical center.
// It reacts to the current position only, so fast balls outrun it.
func (p *Paddle) AutoTrack(b *Ball, fieldHeight int) {
	diff := b.CenterY() - p.CenterY()
	if diff > -p.Speed && diff < p.Speed {
		return
	}
	if diff > 0 {
		p.Move(p.Speed, fieldHeight)
	} else {
		p.Move(-p.Speed, fieldHeight)
	}
}

func (p *Paddle) clamp(fieldHeight int) {
	maxY := float64(fieldHeight) - p.Height
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.Y < 0 {
		p.Y = 0
	}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
