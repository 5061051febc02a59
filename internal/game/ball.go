package game

import (
	"math"
	"math/rand"
)

const (
	BallSize       = 7
	ServeSpeedX    = 6.0
	ServeSpeedY    = 4.0
	MaxBounceAngle = math.Pi / 3 // 60 degrees max
	SpeedIncrement = 1.05        // 5% speed increase per paddle hit
	MaxBallSpeed   = 14.0
)

// Collision reports what the ball touched during CheckCollision
type Collision int

const (
	HitNone   Collision = 0
	HitWall   Collision = 1 << 0
	HitPaddle Collision = 1 << 1
)

// Ball is a square with X/Y at its top-left corner
type Ball struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	FieldWidth    int
	FieldHeight   int

	rng *rand.Rand
}

func NewBall(fieldWidth, fieldHeight int, rng *rand.Rand) *Ball {
	return &Ball{
		X:           float64(fieldWidth) / 2,
		Y:           float64(fieldHeight) / 2,
		Width:       BallSize,
		Height:      BallSize,
		FieldWidth:  fieldWidth,
		FieldHeight: fieldHeight,
		rng:         rng,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// CheckCollision bounces the ball off the top/bottom walls and off either
// paddle. Wall and paddle contact can both happen in one tick.
func (b *Ball) CheckCollision(player, ai *Paddle) Collision {
	hit := HitNone

	if b.Y <= 0 {
		b.Y = 0
		b.VY = math.Abs(b.VY)
		hit |= HitWall
	} else if b.Y+b.Height >= float64(b.FieldHeight) {
		b.Y = float64(b.FieldHeight) - b.Height
		b.VY = -math.Abs(b.VY)
		hit |= HitWall
	}

	// Only a paddle the ball is moving toward can reflect it
	if b.VX < 0 && b.overlaps(player) {
		b.bounceOffPaddle(player)
		b.X = player.X + player.Width
		hit |= HitPaddle
	} else if b.VX > 0 && b.overlaps(ai) {
		b.bounceOffPaddle(ai)
		b.X = ai.X - b.Width
		hit |= HitPaddle
	}

	return hit
}

func (b *Ball) overlaps(p *Paddle) bool {
	return b.Rect().Overlaps(p.Rect())
}

// bounceOffPaddle reverses horizontal direction and re-aims the ball based
// on where it struck the paddle (-1 top edge, 0 center, 1 bottom edge)
func (b *Ball) bounceOffPaddle(p *Paddle) {
	relativeHit := (b.CenterY() - p.CenterY()) / (p.Height / 2)
	if relativeHit < -1 {
		relativeHit = -1
	}
	if relativeHit > 1 {
		relativeHit = 1
	}

	bounceAngle := relativeHit * MaxBounceAngle
	speed := math.Min(b.Speed()*SpeedIncrement, MaxBallSpeed)

	if b.VX > 0 {
		b.VX = -speed * math.Cos(bounceAngle)
	} else {
		b.VX = speed * math.Cos(bounceAngle)
	}
	b.VY = speed * math.Sin(bounceAngle)
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Sqrt(b.VX*b.VX + b.VY*b.VY)
}

func (b *Ball) CenterY() float64 {
	return b.Y + b.Height/2
}

// Reset places the ball at the field center and serves it toward the given
// side at the canonical speed. The vertical sign is random.
func (b *Ball) Reset(toward Side) {
	b.X = float64(b.FieldWidth) / 2
	b.Y = float64(b.FieldHeight) / 2

	b.VX = ServeSpeedX
	if toward == SidePlayer {
		b.VX = -ServeSpeedX
	}
	b.VY = ServeSpeedY
	if b.rng != nil && b.rng.Intn(2) == 0 {
		b.VY = -ServeSpeedY
	}
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
