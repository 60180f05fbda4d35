package timer

import "fmt"

// Config holds the user-tunable timer durations. Durations are minutes.
type Config struct {
	FocusMinutes          int  `json:"focus_minutes"`
	BreakMinutes          int  `json:"break_minutes"`
	LongBreakMinutes      int  `json:"long_break_minutes"`
	CyclesBeforeLongBreak int  `json:"cycles_before_long_break"`
	SoundEnabled          bool `json:"sound_enabled"`
}

func DefaultConfig() Config {
	return Config{
		FocusMinutes:          25,
		BreakMinutes:          5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
		SoundEnabled:          true,
	}
}

func (c Config) Validate() error {
	if c.FocusMinutes <= 0 {
		return fmt.Errorf("timer: focus minutes must be positive, got %d", c.FocusMinutes)
	}
	if c.BreakMinutes <= 0 {
		return fmt.Errorf("timer: break minutes must be positive, got %d", c.BreakMinutes)
	}
	if c.LongBreakMinutes <= 0 {
		return fmt.Errorf("timer: long break minutes must be positive, got %d", c.LongBreakMinutes)
	}
	if c.CyclesBeforeLongBreak <= 0 {
		return fmt.Errorf("timer: cycles before long break must be positive, got %d", c.CyclesBeforeLongBreak)
	}
	return nil
}

// DurationSec returns the full phase length in seconds for the given mode.
func (c Config) DurationSec(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return c.BreakMinutes * 60
	case ModeLongBreak:
		return c.LongBreakMinutes * 60
	default:
		return c.FocusMinutes * 60
	}
}
