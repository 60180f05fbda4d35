package gamify

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// XPReward is the experience granted when an achievement of this rarity
// unlocks.
func (r Rarity) XPReward() int {
	switch r {
	case RarityRare:
		return 50
	case RarityEpic:
		return 100
	case RarityLegendary:
		return 250
	default:
		return 25
	}
}

func (r Rarity) Icon() string {
	switch r {
	case RarityRare:
		return "🥈"
	case RarityEpic:
		return "🥇"
	case RarityLegendary:
		return "💎"
	default:
		return "🥉"
	}
}

type Category string

const (
	CategoryMilestones  Category = "milestones"
	CategoryStreaks     Category = "streaks"
	CategoryTiming      Category = "timing"
	CategoryExploration Category = "exploration"
	CategoryDedication  Category = "dedication"
)

// Achievement is a static catalog entry. The catalog is immutable; user
// state lives in UserAchievement.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Rarity      Rarity
	Requirement int
	Category    Category
}

// Catalog is the fixed achievement set. IDs are persisted in user state,
// so they must stay stable.
func Catalog() []Achievement {
	return []Achievement{
		// Milestones
		{ID: "first_bloom", Title: "First Bloom", Description: "Complete your first focus session", Icon: "🌱", Rarity: RarityCommon, Requirement: 1, Category: CategoryMilestones},
		{ID: "getting_started", Title: "Getting Started", Description: "Complete 5 focus sessions", Icon: "🌿", Rarity: RarityCommon, Requirement: 5, Category: CategoryMilestones},
		{ID: "focused_10", Title: "Decade", Description: "Complete 10 focus sessions", Icon: "🍃", Rarity: RarityCommon, Requirement: 10, Category: CategoryMilestones},
		{ID: "quarter_century", Title: "Quarter Century", Description: "Complete 25 focus sessions", Icon: "🌳", Rarity: RarityRare, Requirement: 25, Category: CategoryMilestones},
		{ID: "half_century", Title: "Half Century", Description: "Complete 50 focus sessions", Icon: "🌲", Rarity: RarityRare, Requirement: 50, Category: CategoryMilestones},
		{ID: "centurion", Title: "Centurion", Description: "Complete 100 focus sessions", Icon: "💯", Rarity: RarityEpic, Requirement: 100, Category: CategoryMilestones},
		{ID: "master_500", Title: "Focus Master", Description: "Complete 500 focus sessions", Icon: "⭐", Rarity: RarityLegendary, Requirement: 500, Category: CategoryMilestones},

		// Streaks
		{ID: "two_day_streak", Title: "Building Habits", Description: "Maintain a 2-day streak", Icon: "🔥", Rarity: RarityCommon, Requirement: 2, Category: CategoryStreaks},
		{ID: "week_streak", Title: "On Fire", Description: "Maintain a 7-day streak", Icon: "🔥", Rarity: RarityRare, Requirement: 7, Category: CategoryStreaks},
		{ID: "two_week_streak", Title: "Unstoppable", Description: "Maintain a 14-day streak", Icon: "🔥", Rarity: RarityEpic, Requirement: 14, Category: CategoryStreaks},
		{ID: "month_streak", Title: "Consistency King", Description: "Maintain a 30-day streak", Icon: "👑", Rarity: RarityLegendary, Requirement: 30, Category: CategoryStreaks},

		// Timing
		{ID: "early_bird", Title: "Early Bird", Description: "Complete a session before 7am", Icon: "🌅", Rarity: RarityRare, Requirement: 1, Category: CategoryTiming},
		{ID: "night_owl", Title: "Night Owl", Description: "Complete a session after 10pm", Icon: "🌙", Rarity: RarityRare, Requirement: 1, Category: CategoryTiming},
		{ID: "weekend_warrior", Title: "Weekend Warrior", Description: "Complete 3 sessions on a weekend", Icon: "🎯", Rarity: RarityRare, Requirement: 3, Category: CategoryTiming},
		{ID: "marathon", Title: "Marathon", Description: "Complete 12 sessions in one day", Icon: "🏃", Rarity: RarityEpic, Requirement: 12, Category: CategoryTiming},

		// Exploration
		{ID: "theme_explorer", Title: "Theme Explorer", Description: "Try all garden themes", Icon: "🎨", Rarity: RarityRare, Requirement: 4, Category: CategoryExploration},
		{ID: "garden_master", Title: "Garden Master", Description: "Unlock all garden themes", Icon: "🌺", Rarity: RarityEpic, Requirement: 4, Category: CategoryExploration},
		{ID: "sound_master", Title: "Sound Master", Description: "Try all ambient sounds", Icon: "🎵", Rarity: RarityRare, Requirement: 9, Category: CategoryExploration},

		// Dedication
		{ID: "focused_10h", Title: "10 Hour Club", Description: "Focus for 10 hours total", Icon: "⏰", Rarity: RarityRare, Requirement: 600, Category: CategoryDedication},
		{ID: "focused_50h", Title: "Scholar", Description: "Focus for 50 hours total", Icon: "📚", Rarity: RarityEpic, Requirement: 3000, Category: CategoryDedication},
		{ID: "focused_100h", Title: "Master Scholar", Description: "Focus for 100 hours total", Icon: "🎓", Rarity: RarityLegendary, Requirement: 6000, Category: CategoryDedication},
		{ID: "perfectionist", Title: "Perfectionist", Description: "Complete 10 sessions without skipping", Icon: "✨", Rarity: RarityEpic, Requirement: 10, Category: CategoryDedication},
	}
}

func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Catalog() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// UserAchievement is per-user progress against one catalog entry.
// UnlockedAt is set at most once; unlocking is never reversed.
type UserAchievement struct {
	AchievementID string     `json:"achievement_id"`
	Progress      int        `json:"progress"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
}

func (a UserAchievement) Unlocked() bool {
	return a.UnlockedAt != nil
}

// NewUserAchievements creates zero-progress state for every catalog entry.
func NewUserAchievements() []UserAchievement {
	catalog := Catalog()
	out := make([]UserAchievement, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, UserAchievement{AchievementID: a.ID})
	}
	return out
}

// Stats carries the ledger-derived values achievement predicates evaluate
// against. CompletionHour is the local hour of the completion that
// triggered evaluation, or -1 outside a completion context.
type Stats struct {
	TotalPomodoros      int
	CurrentStreak       int
	TotalFocusMinutes   int
	UnlockedThemes      int
	ConsecutiveSessions int
	TodayPomodoros      int
	CompletionHour      int
	Weekend             bool
	SoundsTried         int
}

// EvaluateAchievements checks every locked catalog entry against the given
// stats and unlocks the ones whose predicate holds, stamping them with now.
// Re-evaluating an already-unlocked achievement is a no-op, so the call is
// idempotent and the unlocked set is monotonic.
func EvaluateAchievements(state []UserAchievement, stats Stats, now time.Time) []Achievement {
	var newlyUnlocked []Achievement

	for _, a := range Catalog() {
		idx := -1
		for i := range state {
			if state[i].AchievementID == a.ID {
				idx = i
				break
			}
		}
		if idx < 0 || state[idx].Unlocked() {
			continue
		}
		if !achieved(a, stats) {
			continue
		}

		state[idx].Progress = a.Requirement
		unlockedAt := now
		state[idx].UnlockedAt = &unlockedAt
		newlyUnlocked = append(newlyUnlocked, a)
	}

	return newlyUnlocked
}

func achieved(a Achievement, stats Stats) bool {
	switch a.ID {
	case "early_bird":
		return stats.CompletionHour >= 0 && stats.CompletionHour < 7
	case "night_owl":
		return stats.CompletionHour >= 22
	case "weekend_warrior":
		return stats.Weekend && stats.TodayPomodoros >= a.Requirement
	case "marathon":
		return stats.TodayPomodoros >= a.Requirement
	case "sound_master":
		return stats.SoundsTried >= a.Requirement
	case "perfectionist":
		return stats.ConsecutiveSessions >= a.Requirement
	}

	switch a.Category {
	case CategoryMilestones:
		return stats.TotalPomodoros >= a.Requirement
	case CategoryStreaks:
		return stats.CurrentStreak >= a.Requirement
	case CategoryDedication:
		return stats.TotalFocusMinutes >= a.Requirement
	case CategoryExploration:
		return stats.UnlockedThemes >= a.Requirement
	default:
		return false
	}
}
