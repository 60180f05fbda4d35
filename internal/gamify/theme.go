package gamify

import "strings"

// DefaultThemeID is the zero-requirement theme every garden starts with.
const DefaultThemeID = "zen_garden"

// Theme is a garden look with a cumulative-pomodoro unlock threshold.
type Theme struct {
	ID                string
	Name              string
	Icon              string
	Description       string
	UnlockRequirement int
	Trees             []string
	Animals           []string
}

// Themes returns the catalog ordered by unlock requirement.
func Themes() []Theme {
	return []Theme{
		{
			ID:          DefaultThemeID,
			Name:        "Zen Garden",
			Icon:        "🌸",
			Description: "Peaceful Japanese garden with cherry blossoms and koi pond",
			Trees:       []string{"🌸", "🍁", "🌳"},
			Animals:     []string{"🦋", "🐦", "🐟"},
		},
		{
			ID:                "desert_oasis",
			Name:              "Desert Oasis",
			Icon:              "🌵",
			Description:       "Warm desert oasis with cacti and palm trees",
			UnlockRequirement: 25,
			Trees:             []string{"🌵", "🌴", "🌿"},
			Animals:           []string{"🦎", "🐪", "🦅"},
		},
		{
			ID:                "tropical_paradise",
			Name:              "Tropical Paradise",
			Icon:              "🌴",
			Description:       "Vibrant tropical paradise with exotic flowers and waterfalls",
			UnlockRequirement: 50,
			Trees:             []string{"🌴", "🌺", "🌻"},
			Animals:           []string{"🦜", "🦋", "🐠"},
		},
		{
			ID:                "enchanted_forest",
			Name:              "Enchanted Forest",
			Icon:              "🌲",
			Description:       "Mystical forest with glowing fireflies and ancient trees",
			UnlockRequirement: 100,
			Trees:             []string{"🌲", "🍄", "🌰"},
			Animals:           []string{"🦉", "🦔", "🧚"},
		},
	}
}

func ThemeByID(id string) (Theme, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, t := range Themes() {
		if t.ID == needle {
			return t, true
		}
	}
	return Theme{}, false
}

// UnlockedThemeIDs recomputes the unlocked set for a cumulative pomodoro
// total. The default theme is always included.
func UnlockedThemeIDs(totalPomodoros int) []string {
	var out []string
	for _, t := range Themes() {
		if t.UnlockRequirement <= totalPomodoros {
			out = append(out, t.ID)
		}
	}
	return out
}

// MergeUnlockedThemes unions the stored unlocked set with the freshly
// computed one so the set never shrinks, even if history is edited.
func MergeUnlockedThemes(stored []string, totalPomodoros int) []string {
	seen := make(map[string]bool, len(stored))
	out := make([]string, 0, len(stored))
	for _, id := range stored {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range UnlockedThemeIDs(totalPomodoros) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
