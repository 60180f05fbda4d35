package timer

import "strings"

// Preset is a named duration bundle applied through the command palette.
type Preset struct {
	ID                    string
	Name                  string
	Icon                  string
	FocusMinutes          int
	BreakMinutes          int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
}

func Presets() []Preset {
	return []Preset{
		{ID: "classic", Name: "Classic Pomodoro", Icon: "🎯", FocusMinutes: 25, BreakMinutes: 5, LongBreakMinutes: 15, CyclesBeforeLongBreak: 4},
		{ID: "power-hour", Name: "Power Hour", Icon: "🚀", FocusMinutes: 50, BreakMinutes: 10, LongBreakMinutes: 20, CyclesBeforeLongBreak: 4},
		{ID: "sprint", Name: "Quick Sprint", Icon: "⚡", FocusMinutes: 15, BreakMinutes: 3, LongBreakMinutes: 10, CyclesBeforeLongBreak: 4},
		{ID: "study", Name: "Study Session", Icon: "📚", FocusMinutes: 45, BreakMinutes: 15, LongBreakMinutes: 30, CyclesBeforeLongBreak: 4},
		{ID: "flow", Name: "Creative Flow", Icon: "🎨", FocusMinutes: 90, BreakMinutes: 20, LongBreakMinutes: 30, CyclesBeforeLongBreak: 4},
		{ID: "micro", Name: "Micro Task", Icon: "💡", FocusMinutes: 10, BreakMinutes: 2, LongBreakMinutes: 5, CyclesBeforeLongBreak: 4},
	}
}

func PresetByID(id string) (Preset, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for _, p := range Presets() {
		if p.ID == needle {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply maps the preset onto a configuration, keeping unrelated settings
// such as the sound flag.
func (p Preset) Apply(cfg Config) Config {
	cfg.FocusMinutes = p.FocusMinutes
	cfg.BreakMinutes = p.BreakMinutes
	cfg.LongBreakMinutes = p.LongBreakMinutes
	cfg.CyclesBeforeLongBreak = p.CyclesBeforeLongBreak
	return cfg
}
