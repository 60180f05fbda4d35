package gamify

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/focusgarden/internal/progress"
)

type ChallengeType string

const (
	ChallengePomodoros ChallengeType = "pomodoros"
	ChallengeFocusTime ChallengeType = "focus_time"
	ChallengeStreak    ChallengeType = "streak"
	ChallengeTheme     ChallengeType = "theme"
	ChallengeSounds    ChallengeType = "sounds"
	ChallengeWeekend   ChallengeType = "weekend"
)

// DailyChallenge is a per-day micro-goal. A completed challenge stays
// visible until the day rolls over and a fresh set is generated.
type DailyChallenge struct {
	ID              string        `json:"id"`
	Type            ChallengeType `json:"type"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Icon            string        `json:"icon"`
	Requirement     int           `json:"requirement"`
	CurrentProgress int           `json:"current_progress"`
	XPReward        int           `json:"xp_reward"`
	Date            string        `json:"date"`
}

func (c DailyChallenge) Completed() bool {
	return c.CurrentProgress >= c.Requirement
}

func (c DailyChallenge) ProgressFraction() float64 {
	if c.Requirement <= 0 {
		return 0
	}
	f := float64(c.CurrentProgress) / float64(c.Requirement)
	if f > 1 {
		return 1
	}
	return f
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// GenerateDaily builds the fixed challenge set for the given day, each
// starting at zero progress. A weekend challenge is appended on Saturday
// and Sunday.
func GenerateDaily(now time.Time) []DailyChallenge {
	day := progress.Day(now)
	challenges := []DailyChallenge{
		{
			ID:          fmt.Sprintf("daily_focus:%s", day),
			Type:        ChallengePomodoros,
			Title:       "Daily Focus",
			Description: "Complete 4 focus sessions today",
			Icon:        "🎯",
			Requirement: 4,
			XPReward:    50,
			Date:        day,
		},
		{
			ID:          fmt.Sprintf("two_hour_club:%s", day),
			Type:        ChallengeFocusTime,
			Title:       "Two Hour Club",
			Description: "Focus for 2 hours total today",
			Icon:        "⏰",
			Requirement: 120,
			XPReward:    75,
			Date:        day,
		},
	}

	if isWeekend(now) {
		challenges = append(challenges, DailyChallenge{
			ID:          fmt.Sprintf("weekend_warrior:%s", day),
			Type:        ChallengeWeekend,
			Title:       "Weekend Warrior",
			Description: "Complete 3 sessions on the weekend",
			Icon:        "🏋️",
			Requirement: 3,
			XPReward:    100,
			Date:        day,
		})
	}

	return challenges
}

// UpdateChallenges regenerates the set when the stored one is empty or
// stale, then feeds the live counters into the matching challenge types.
// The second return value lists challenges that transitioned to completed
// during this pass, so the caller can award their XP exactly once.
func UpdateChallenges(challenges []DailyChallenge, now time.Time, todayPomodoros, todayFocusMinutes int) ([]DailyChallenge, []DailyChallenge) {
	today := progress.Day(now)
	if len(challenges) == 0 || challenges[0].Date != today {
		challenges = GenerateDaily(now)
	}

	var justCompleted []DailyChallenge
	for i := range challenges {
		wasCompleted := challenges[i].Completed()
		// Only the counter-backed types are advanced here; the other
		// types keep whatever progress they already carry.
		switch challenges[i].Type {
		case ChallengePomodoros:
			challenges[i].CurrentProgress = todayPomodoros
		case ChallengeFocusTime:
			challenges[i].CurrentProgress = todayFocusMinutes
		}
		if !wasCompleted && challenges[i].Completed() {
			justCompleted = append(justCompleted, challenges[i])
		}
	}
	return challenges, justCompleted
}
