package snapshot

import (
	"encoding/json"
	"strings"

	"github.com/sandeepkv93/focusgarden/internal/gamify"
	"github.com/sandeepkv93/focusgarden/internal/progress"
	"github.com/sandeepkv93/focusgarden/internal/task"
	"github.com/sandeepkv93/focusgarden/internal/timer"
)

// Blob-store keys for the three independently persisted entities.
const (
	KeySettings          = "settings"
	KeyProgress          = "progress"
	KeyLastCompletionDay = "last_completion_day"
)

// CurrentSchemaVersion marks the progress snapshot shape this codec emits.
// Version 1 (the legacy shape) carried only the ledger fields.
const CurrentSchemaVersion = 2

// Snapshot is the persisted progress aggregate: the ledger plus all
// gamification state.
type Snapshot struct {
	SchemaVersion int `json:"schema_version"`

	Ledger progress.Ledger `json:"ledger"`

	Level           gamify.UserLevel         `json:"level"`
	Achievements    []gamify.UserAchievement `json:"achievements"`
	DailyChallenges []gamify.DailyChallenge  `json:"daily_challenges"`
	CurrentTheme    string                   `json:"current_theme"`
	UnlockedThemes  []string                 `json:"unlocked_themes"`

	Tasks        task.List `json:"tasks"`
	ActiveTaskID string    `json:"active_task_id,omitempty"`

	TotalFocusMinutes      int `json:"total_focus_minutes"`
	ConsecutiveSessions    int `json:"consecutive_sessions"`
	TotalSessionsCompleted int `json:"total_sessions_completed"`
	TotalSessionsSkipped   int `json:"total_sessions_skipped"`
}

// Legacy is the version-1 progress shape: a flat ledger record with no
// gamification fields.
type Legacy struct {
	TotalPomodoros    int                    `json:"total_pomodoros"`
	TodayPomodoros    int                    `json:"today_pomodoros"`
	CurrentStreak     int                    `json:"current_streak"`
	Trees             int                    `json:"trees"`
	Clouds            int                    `json:"clouds"`
	Animals           []string               `json:"animals"`
	History           []progress.DailyRecord `json:"history"`
	LastCompletionDay string                 `json:"last_completion_day,omitempty"`
}

// Empty is the documented default state: level 1, every achievement at
// zero progress, only the default theme unlocked.
func Empty() Snapshot {
	return Snapshot{
		SchemaVersion:  CurrentSchemaVersion,
		Level:          gamify.NewUserLevel(),
		Achievements:   gamify.NewUserAchievements(),
		CurrentTheme:   gamify.DefaultThemeID,
		UnlockedThemes: []string{gamify.DefaultThemeID},
	}
}

// Migrate lifts a legacy record into the current shape. Ledger fields are
// copied verbatim; gamification fields start at their empty defaults;
// TotalFocusMinutes is derived from history and TotalSessionsCompleted
// from the cumulative total.
func Migrate(legacy Legacy) Snapshot {
	s := Empty()
	s.Ledger = progress.Ledger{
		TotalPomodoros:    legacy.TotalPomodoros,
		TodayPomodoros:    legacy.TodayPomodoros,
		CurrentStreak:     legacy.CurrentStreak,
		Trees:             legacy.Trees,
		Clouds:            legacy.Clouds,
		Animals:           legacy.Animals,
		History:           legacy.History,
		LastCompletionDay: legacy.LastCompletionDay,
	}
	s.TotalFocusMinutes = s.Ledger.TotalFocusMinutes()
	s.TotalSessionsCompleted = legacy.TotalPomodoros
	return s
}

// DecodeProgress accepts either schema version and returns a current-shape
// snapshot. Malformed data falls back to the documented empty state; a
// current-shape payload passes through untouched.
func DecodeProgress(data []byte) Snapshot {
	if len(data) == 0 {
		return Empty()
	}

	var current Snapshot
	if err := json.Unmarshal(data, &current); err == nil && current.SchemaVersion >= CurrentSchemaVersion {
		normalize(&current)
		return current
	}

	var legacy Legacy
	if err := json.Unmarshal(data, &legacy); err != nil {
		return Empty()
	}
	return Migrate(legacy)
}

// EncodeProgress always emits the current schema version.
func EncodeProgress(s Snapshot) ([]byte, error) {
	s.SchemaVersion = CurrentSchemaVersion
	normalize(&s)
	return json.Marshal(s)
}

// normalize repairs gamification defaults that older writes may have left
// empty, without touching ledger data.
func normalize(s *Snapshot) {
	if s.Level.CurrentLevel < 1 {
		s.Level = gamify.NewUserLevel()
	}
	if len(s.Achievements) == 0 {
		s.Achievements = gamify.NewUserAchievements()
	}
	if s.CurrentTheme == "" {
		s.CurrentTheme = gamify.DefaultThemeID
	}
	if len(s.UnlockedThemes) == 0 {
		s.UnlockedThemes = []string{gamify.DefaultThemeID}
	}
}

// DecodeSettings falls back to the default configuration on malformed or
// invalid data.
func DecodeSettings(data []byte) timer.Config {
	if len(data) == 0 {
		return timer.DefaultConfig()
	}
	var cfg timer.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return timer.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return timer.DefaultConfig()
	}
	return cfg
}

func EncodeSettings(cfg timer.Config) ([]byte, error) {
	return json.Marshal(cfg)
}

// DecodeLastCompletionDay expects an ISO yyyy-mm-dd string blob.
func DecodeLastCompletionDay(data []byte) string {
	day := strings.TrimSpace(string(data))
	if len(day) != len(progress.DayFormat) {
		return ""
	}
	return day
}

func EncodeLastCompletionDay(day string) []byte {
	return []byte(day)
}
