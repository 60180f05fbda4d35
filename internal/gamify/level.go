package gamify

// UserLevel tracks the XP-based progression tier. Invariant after AddXP:
// 0 <= CurrentXP < XPForNextLevel().
type UserLevel struct {
	CurrentLevel int `json:"current_level"`
	CurrentXP    int `json:"current_xp"`
	TotalXP      int `json:"total_xp"`
}

func NewUserLevel() UserLevel {
	return UserLevel{CurrentLevel: 1}
}

// XPForNextLevel is the XP required to leave the current level.
func (l UserLevel) XPForNextLevel() int {
	return 100 * l.CurrentLevel
}

func (l UserLevel) ProgressToNextLevel() float64 {
	required := l.XPForNextLevel()
	if required <= 0 {
		return 0
	}
	return float64(l.CurrentXP) / float64(required)
}

// AddXP grants experience and reports whether at least one level-up
// happened. It keeps consuming the requirement until CurrentXP is below
// the threshold, so a single large grant can span multiple levels.
func (l *UserLevel) AddXP(amount int) bool {
	if amount <= 0 {
		return false
	}
	l.CurrentXP += amount
	l.TotalXP += amount

	leveledUp := false
	for l.CurrentXP >= l.XPForNextLevel() {
		l.CurrentXP -= l.XPForNextLevel()
		l.CurrentLevel++
		leveledUp = true
	}
	return leveledUp
}

func (l UserLevel) Title() string {
	switch {
	case l.CurrentLevel <= 5:
		return "Novice Focuser"
	case l.CurrentLevel <= 10:
		return "Apprentice"
	case l.CurrentLevel <= 20:
		return "Focused Worker"
	case l.CurrentLevel <= 30:
		return "Productivity Expert"
	case l.CurrentLevel <= 40:
		return "Focus Master"
	case l.CurrentLevel <= 50:
		return "Zen Master"
	case l.CurrentLevel <= 75:
		return "Legendary Focuser"
	case l.CurrentLevel <= 99:
		return "Productivity Sage"
	default:
		return "Ultimate Focus Champion"
	}
}
