package game

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Rect is an axis-aligned box in field units
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges don't count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Snapshot is everything the renderer needs for one frame
type Snapshot struct {
	Tick          int
	FieldWidth    int
	FieldHeight   int
	Player        Rect
	AI            Rect
	Ball          Rect
	PlayerScore   int
	AIScore       int
	MaxScore      int
	GameOver      bool
	WinnerText    string
	ReplayOptions []ReplayOption
}
