package game

// ReplayChoice is what the player picked on the game over screen
type ReplayChoice int

const (
	ReplayNone ReplayChoice = iota
	ReplayBestOf3
	ReplayBestOf5
	ReplayBestOf7
	ReplayExit
)

// BestOf returns the match target for a restart choice, 0 otherwise
func (c ReplayChoice) BestOf() int {
	switch c {
	case ReplayBestOf3:
		return 3
	case ReplayBestOf5:
		return 5
	case ReplayBestOf7:
		return 7
	}
	return 0
}

func (c ReplayChoice) String() string {
	switch c {
	case ReplayBestOf3:
		return "Best of 3"
	case ReplayBestOf5:
		return "Best of 5"
	case ReplayBestOf7:
		return "Best of 7"
	case ReplayExit:
		return "Quit"
	}
	return "none"
}

// ReplayOption pairs a choice with the key label shown to the player
type ReplayOption struct {
	Choice ReplayChoice
	Key    string
	Label  string
}

// ReplayOptions are listed on the game over screen in this order
var ReplayOptions = []ReplayOption{
	{Choice: ReplayBestOf3, Key: "3", Label: ReplayBestOf3.String()},
	{Choice: ReplayBestOf5, Key: "5", Label: ReplayBestOf5.String()},
	{Choice: ReplayBestOf7, Key: "7", Label: ReplayBestOf7.String()},
	{Choice: ReplayExit, Key: "ESC", Label: ReplayExit.String()},
}
