package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/focusgarden/internal/timer"
)

// RuntimeConfig carries process-level settings from the environment.
// Timer durations here are startup overrides; zero means "use whatever
// the settings blob holds".
type RuntimeConfig struct {
	DesktopNotifications  bool
	StoreBackend          string
	StorePath             string
	SchedulerBuffer       int
	FocusMinutes          int
	BreakMinutes          int
	LongBreakMinutes      int
	CyclesBeforeLongBreak int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		StoreBackend:         "sqlite",
		SchedulerBuffer:      64,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("FOCUSGARDEN_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v := strings.TrimSpace(os.Getenv("FOCUSGARDEN_STORE")); v != "" {
		cfg.StoreBackend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("FOCUSGARDEN_STORE_PATH")); v != "" {
		cfg.StorePath = v
	}
	if v, ok := getEnvInt("FOCUSGARDEN_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvInt("FOCUSGARDEN_FOCUS_MINUTES"); ok && v > 0 {
		cfg.FocusMinutes = v
	}
	if v, ok := getEnvInt("FOCUSGARDEN_BREAK_MINUTES"); ok && v > 0 {
		cfg.BreakMinutes = v
	}
	if v, ok := getEnvInt("FOCUSGARDEN_LONG_BREAK_MINUTES"); ok && v > 0 {
		cfg.LongBreakMinutes = v
	}
	if v, ok := getEnvInt("FOCUSGARDEN_CYCLES_BEFORE_LONG_BREAK"); ok && v > 0 {
		cfg.CyclesBeforeLongBreak = v
	}
	return cfg
}

// overlayTimerConfig applies the non-zero env overrides on top of the
// persisted settings.
func (c RuntimeConfig) overlayTimerConfig(base timer.Config) timer.Config {
	out := base
	if c.FocusMinutes > 0 {
		out.FocusMinutes = c.FocusMinutes
	}
	if c.BreakMinutes > 0 {
		out.BreakMinutes = c.BreakMinutes
	}
	if c.LongBreakMinutes > 0 {
		out.LongBreakMinutes = c.LongBreakMinutes
	}
	if c.CyclesBeforeLongBreak > 0 {
		out.CyclesBeforeLongBreak = c.CyclesBeforeLongBreak
	}
	if err := out.Validate(); err != nil {
		return base
	}
	return out
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
