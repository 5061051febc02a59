package game

import (
	"errors"
	"fmt"
)

// DefaultBestOf is the target score of the first match
const DefaultBestOf = 5

// ErrInvalidBestOf is returned for targets outside ValidBestOf
var ErrInvalidBestOf = errors.New("invalid best-of target")

// ValidBestOf lists the match lengths a player can choose
var ValidBestOf = []int{3, 5, 7}

const (
	PlayerWinsText = "PLAYER WINS!"
	AIWinsText     = "AI WINS!"
)

// Side identifies one half of the court
type Side int

const (
	SidePlayer Side = 0
	SideAI     Side = 1
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "ai"
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideAI
	}
	return SidePlayer
}

// Match tracks scores and the Playing/GameOver state of one best-of-N match
type Match struct {
	PlayerScore int
	AIScore     int
	MaxScore    int
	GameOver    bool
}

func NewMatch(bestOf int) (*Match, error) {
	if err := ValidateBestOf(bestOf); err != nil {
		return nil, err
	}
	return &Match{MaxScore: bestOf}, nil
}

// ValidateBestOf reports whether bestOf is one of ValidBestOf
func ValidateBestOf(bestOf int) error {
	for _, v := range ValidBestOf {
		if v == bestOf {
			return nil
		}
	}
	return fmt.Errorf("%w: %d (want one of %v)", ErrInvalidBestOf, bestOf, ValidBestOf)
}

// AwardPoint increments the side's score and reports whether the match just
// ended. Scores are frozen once the match is over.
func (m *Match) AwardPoint(side Side) bool {
	if m.GameOver {
		return false
	}
	if side == SidePlayer {
		m.PlayerScore++
	} else {
		m.AIScore++
	}
	m.GameOver = m.reachedTarget()
	return m.GameOver
}

func (m *Match) reachedTarget() bool {
	return m.PlayerScore >= m.MaxScore || m.AIScore >= m.MaxScore
}

// Winner returns the side that won. Only meaningful when GameOver is set.
// When both sides sit at the target the higher score wins and a tie goes to
// the AI, matching how the check has always been ordered.
func (m *Match) Winner() Side {
	if m.PlayerScore >= m.MaxScore && m.AIScore >= m.MaxScore {
		if m.PlayerScore > m.AIScore {
			return SidePlayer
		}
		return SideAI
	}
	if m.PlayerScore >= m.MaxScore {
		return SidePlayer
	}
	return SideAI
}

// WinnerText is derived from the scores and is empty while playing
func (m *Match) WinnerText() string {
	if !m.GameOver {
		return ""
	}
	if m.Winner() == SidePlayer {
		return PlayerWinsText
	}
	return AIWinsText
}

// Restart zeroes the scores and installs a new target
func (m *Match) Restart(bestOf int) error {
	if err := ValidateBestOf(bestOf); err != nil {
		return err
	}
	m.PlayerScore = 0
	m.AIScore = 0
	m.MaxScore = bestOf
	m.GameOver = false
	return nil
}
