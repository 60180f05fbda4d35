package timer

import "testing"

func testConfig() Config {
	return Config{
		FocusMinutes:          25,
		BreakMinutes:          5,
		LongBreakMinutes:      15,
		CyclesBeforeLongBreak: 4,
		SoundEnabled:          true,
	}
}

func runToZero(t *testing.T, s *Session) Outcome {
	t.Helper()
	s.Start()
	total := s.TotalSec()
	for i := 0; i < total; i++ {
		if out := s.Tick(); out.PhaseCompleted {
			return out
		}
	}
	t.Fatal("phase never completed")
	return Outcome{}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession(testConfig())
	if s.Mode() != ModeFocus {
		t.Fatalf("expected focus mode, got %q", s.Mode())
	}
	if s.RemainingSec() != 25*60 {
		t.Fatalf("expected 1500s remaining, got %d", s.RemainingSec())
	}
	if s.Running() {
		t.Fatal("expected session paused on creation")
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	s := NewSession(Config{FocusMinutes: -1})
	if s.Config() != DefaultConfig() {
		t.Fatalf("expected default config fallback, got %+v", s.Config())
	}
}

func TestTickNoOpWhilePaused(t *testing.T) {
	s := NewSession(testConfig())
	out := s.Tick()
	if out.PhaseCompleted || s.RemainingSec() != 25*60 {
		t.Fatalf("expected paused tick to be no-op, remaining %d", s.RemainingSec())
	}
}

func TestTickDecrementsAndCompletes(t *testing.T) {
	cfg := testConfig()
	cfg.FocusMinutes = 1
	s := NewSession(cfg)
	s.Start()
	for i := 0; i < 59; i++ {
		if out := s.Tick(); out.PhaseCompleted {
			t.Fatalf("completed early at tick %d", i)
		}
	}
	out := s.Tick()
	if !out.PhaseCompleted || !out.FocusCompleted {
		t.Fatalf("expected focus completion on final tick, got %+v", out)
	}
	if out.FocusMinutes != 1 {
		t.Fatalf("expected 1 credited minute, got %d", out.FocusMinutes)
	}
	if out.NextMode != ModeShortBreak {
		t.Fatalf("expected short break next, got %q", out.NextMode)
	}
	if s.Running() {
		t.Fatal("expected session stopped after completion")
	}
	if s.RemainingSec() != cfg.BreakMinutes*60 {
		t.Fatalf("expected break duration loaded, got %d", s.RemainingSec())
	}
}

func TestFourthCycleEntersLongBreak(t *testing.T) {
	cfg := testConfig()
	cfg.FocusMinutes = 1
	cfg.BreakMinutes = 1
	cfg.LongBreakMinutes = 2
	s := NewSession(cfg)

	for cycle := 1; cycle <= 4; cycle++ {
		out := runToZero(t, &s)
		if !out.FocusCompleted {
			t.Fatalf("cycle %d: expected focus completion", cycle)
		}
		if cycle < 4 && out.NextMode != ModeShortBreak {
			t.Fatalf("cycle %d: expected short break, got %q", cycle, out.NextMode)
		}
		if cycle == 4 {
			if out.NextMode != ModeLongBreak {
				t.Fatalf("cycle 4: expected long break, got %q", out.NextMode)
			}
			if s.RemainingSec() != 2*60 {
				t.Fatalf("expected long break duration, got %d", s.RemainingSec())
			}
			return
		}
		// finish the break to get back to focus
		out = runToZero(t, &s)
		if out.FocusCompleted || out.NextMode != ModeFocus {
			t.Fatalf("cycle %d: expected return to focus, got %+v", cycle, out)
		}
	}
}

func TestBreakCompletionReturnsToFocus(t *testing.T) {
	cfg := testConfig()
	cfg.BreakMinutes = 1
	s := NewSession(cfg)
	if !s.SwitchMode(ModeShortBreak) {
		t.Fatal("expected switch to short break while paused")
	}
	out := runToZero(t, &s)
	if out.FocusCompleted {
		t.Fatal("break completion must not credit a pomodoro")
	}
	if s.Mode() != ModeFocus || s.RemainingSec() != 25*60 {
		t.Fatalf("expected focus restored, mode=%q remaining=%d", s.Mode(), s.RemainingSec())
	}
}

func TestSwitchModeRejectedWhileRunning(t *testing.T) {
	s := NewSession(testConfig())
	s.Start()
	before := s.RemainingSec()
	if s.SwitchMode(ModeLongBreak) {
		t.Fatal("expected switch rejected while running")
	}
	if s.Mode() != ModeFocus || s.RemainingSec() != before {
		t.Fatalf("expected state unchanged, mode=%q remaining=%d", s.Mode(), s.RemainingSec())
	}
}

func TestConfigChangeNotAppliedMidPhase(t *testing.T) {
	s := NewSession(testConfig())
	s.Start()
	s.Tick()
	next := testConfig()
	next.FocusMinutes = 50
	if err := s.SetConfig(next); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if s.RemainingSec() != 25*60-1 {
		t.Fatalf("in-flight phase must keep old duration, remaining %d", s.RemainingSec())
	}
	s.Pause()
	s.Reset()
	// reset uses the configuration captured at the last mode entry
	if s.RemainingSec() != 25*60 {
		t.Fatalf("reset must restore captured duration, got %d", s.RemainingSec())
	}
	if !s.SwitchMode(ModeFocus) {
		t.Fatal("expected switch while paused")
	}
	if s.RemainingSec() != 50*60 {
		t.Fatalf("new config must apply at mode entry, got %d", s.RemainingSec())
	}
}

func TestSetConfigRejectsInvalidAndKeepsPrior(t *testing.T) {
	s := NewSession(testConfig())
	if err := s.SetConfig(Config{FocusMinutes: 0, BreakMinutes: 5, LongBreakMinutes: 15, CyclesBeforeLongBreak: 4}); err == nil {
		t.Fatal("expected invalid config rejected")
	}
	if s.Config() != testConfig() {
		t.Fatalf("expected prior config retained, got %+v", s.Config())
	}
}

func TestToggleAndReset(t *testing.T) {
	s := NewSession(testConfig())
	s.Toggle()
	if !s.Running() {
		t.Fatal("expected running after toggle")
	}
	s.Tick()
	s.Toggle()
	if s.Running() {
		t.Fatal("expected paused after second toggle")
	}
	if s.RemainingSec() != 25*60-1 {
		t.Fatalf("pause must preserve remaining time, got %d", s.RemainingSec())
	}
	s.Reset()
	if s.RemainingSec() != 25*60 || s.Running() {
		t.Fatalf("reset must restore full duration, remaining %d", s.RemainingSec())
	}
}

func TestSkipGrantsNoCredit(t *testing.T) {
	s := NewSession(testConfig())
	s.Start()
	s.Tick()
	next := s.Skip()
	if next != ModeShortBreak {
		t.Fatalf("expected skip into short break, got %q", next)
	}
	if s.CompletedCycles() != 0 {
		t.Fatalf("skip must not advance completed cycles, got %d", s.CompletedCycles())
	}
	if s.Running() {
		t.Fatal("expected paused after skip")
	}
	if s.Skip() != ModeFocus {
		t.Fatal("expected skip from break back to focus")
	}
}

func TestProgressFraction(t *testing.T) {
	cfg := testConfig()
	cfg.FocusMinutes = 1
	s := NewSession(cfg)
	if s.Progress() != 0 {
		t.Fatalf("expected zero progress at start, got %f", s.Progress())
	}
	s.Start()
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if got := s.Progress(); got != 0.5 {
		t.Fatalf("expected half progress, got %f", got)
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(1500); got != "25:00" {
		t.Fatalf("unexpected clock format: %q", got)
	}
	if got := FormatClock(61); got != "01:01" {
		t.Fatalf("unexpected clock format: %q", got)
	}
	if got := FormatClock(-5); got != "00:00" {
		t.Fatalf("negative seconds must clamp to zero, got %q", got)
	}
}

func TestPresetApply(t *testing.T) {
	p, ok := PresetByID("power-hour")
	if !ok {
		t.Fatal("expected power-hour preset")
	}
	cfg := p.Apply(testConfig())
	if cfg.FocusMinutes != 50 || cfg.BreakMinutes != 10 || cfg.LongBreakMinutes != 20 {
		t.Fatalf("unexpected preset config: %+v", cfg)
	}
	if !cfg.SoundEnabled {
		t.Fatal("preset must not clobber sound setting")
	}
	if _, ok := PresetByID("nope"); ok {
		t.Fatal("unknown preset id must not resolve")
	}
}
