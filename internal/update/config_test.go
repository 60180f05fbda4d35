package update

import (
	"testing"

	"github.com/sandeepkv93/focusgarden/internal/timer"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DesktopNotifications {
		t.Fatal("desktop notifications must default off")
	}
	if cfg.StoreBackend != "sqlite" || cfg.SchedulerBuffer != 64 {
		t.Fatalf("unexpected runtime defaults: %+v", cfg)
	}
	if cfg.FocusMinutes != 0 || cfg.CyclesBeforeLongBreak != 0 {
		t.Fatalf("timer overrides must default unset: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("FOCUSGARDEN_DESKTOP_NOTIFICATIONS", "true")
	t.Setenv("FOCUSGARDEN_STORE", "file")
	t.Setenv("FOCUSGARDEN_STORE_PATH", "state/garden")
	t.Setenv("FOCUSGARDEN_SCHEDULER_BUFFER", "128")
	t.Setenv("FOCUSGARDEN_FOCUS_MINUTES", "50")
	t.Setenv("FOCUSGARDEN_BREAK_MINUTES", "10")
	t.Setenv("FOCUSGARDEN_LONG_BREAK_MINUTES", "30")
	t.Setenv("FOCUSGARDEN_CYCLES_BEFORE_LONG_BREAK", "2")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications true from env")
	}
	if cfg.StoreBackend != "file" || cfg.StorePath != "state/garden" {
		t.Fatalf("unexpected store config: %+v", cfg)
	}
	if cfg.SchedulerBuffer != 128 {
		t.Fatalf("unexpected scheduler buffer: %d", cfg.SchedulerBuffer)
	}
	if cfg.FocusMinutes != 50 || cfg.BreakMinutes != 10 || cfg.LongBreakMinutes != 30 || cfg.CyclesBeforeLongBreak != 2 {
		t.Fatalf("unexpected timer overrides: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("FOCUSGARDEN_SCHEDULER_BUFFER", "not-a-number")
	t.Setenv("FOCUSGARDEN_FOCUS_MINUTES", "-3")
	t.Setenv("FOCUSGARDEN_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.SchedulerBuffer != 64 {
		t.Fatalf("expected default buffer kept, got %d", cfg.SchedulerBuffer)
	}
	if cfg.FocusMinutes != 0 {
		t.Fatalf("expected negative override dropped, got %d", cfg.FocusMinutes)
	}
	if cfg.DesktopNotifications {
		t.Fatal("expected unparsable bool kept false")
	}
}

func TestOverlayTimerConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.FocusMinutes = 50
	cfg.CyclesBeforeLongBreak = 2

	out := cfg.overlayTimerConfig(timer.DefaultConfig())
	if out.FocusMinutes != 50 || out.CyclesBeforeLongBreak != 2 {
		t.Fatalf("expected overrides applied: %+v", out)
	}
	if out.BreakMinutes != timer.DefaultConfig().BreakMinutes {
		t.Fatalf("untouched fields must keep defaults: %+v", out)
	}
}

func TestOverlayTimerConfigRevertsInvalid(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.FocusMinutes = 50

	// A partial base plus partial overrides still fails validation; the
	// overlay must hand back the base untouched rather than a half-built
	// config.
	base := timer.Config{FocusMinutes: 25}
	out := cfg.overlayTimerConfig(base)
	if out != base {
		t.Fatalf("invalid overlay must revert to base: %+v", out)
	}
}
