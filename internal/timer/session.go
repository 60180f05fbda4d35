package timer

import "fmt"

type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

func (m Mode) Label() string {
	switch m {
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// Outcome reports what happened during a single tick.
type Outcome struct {
	PhaseCompleted bool
	FocusCompleted bool
	// FocusMinutes is the minutes credited for the finished focus phase,
	// taken from the configuration captured at phase entry.
	FocusMinutes int
	NextMode     Mode
}

// Session is the focus/break countdown state machine. It never touches
// ledger data directly; a finished focus phase is reported through the
// tick Outcome and applied by the caller.
//
// Configuration changes taken mid-phase are not retroactively applied to
// the in-flight countdown; they take effect at the next mode entry or
// reset. phaseCfg is the configuration captured when the current phase
// was entered.
type Session struct {
	mode            Mode
	remainingSec    int
	running         bool
	completedCycles int
	cfg             Config
	phaseCfg        Config
}

func NewSession(cfg Config) Session {
	if err := cfg.Validate(); err != nil {
		cfg = DefaultConfig()
	}
	s := Session{cfg: cfg}
	s.enterMode(ModeFocus)
	return s
}

func (s *Session) Mode() Mode           { return s.mode }
func (s *Session) Running() bool        { return s.running }
func (s *Session) RemainingSec() int    { return s.remainingSec }
func (s *Session) CompletedCycles() int { return s.completedCycles }
func (s *Session) Config() Config       { return s.cfg }

// TotalSec is the full length of the current phase.
func (s *Session) TotalSec() int {
	return s.phaseCfg.DurationSec(s.mode)
}

// Progress reports the elapsed fraction of the current phase in [0, 1].
func (s *Session) Progress() float64 {
	total := s.TotalSec()
	if total == 0 {
		return 0
	}
	return float64(total-s.remainingSec) / float64(total)
}

func (s *Session) Start() {
	s.running = true
}

func (s *Session) Pause() {
	s.running = false
}

func (s *Session) Toggle() {
	s.running = !s.running
}

// Reset stops the countdown and restores the full duration of the current
// mode using the configuration captured at the last mode entry.
func (s *Session) Reset() {
	s.running = false
	s.remainingSec = s.TotalSec()
}

// SwitchMode changes the active mode. Mode switches are only permitted
// while paused; the call reports false and leaves state unchanged when the
// timer is running.
func (s *Session) SwitchMode(mode Mode) bool {
	if s.running {
		return false
	}
	s.enterMode(mode)
	return true
}

// SetConfig replaces the live configuration. Invalid values are rejected
// and the prior configuration is retained. The new durations apply from
// the next mode entry or reset, never to the in-flight phase.
func (s *Session) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// Tick advances the countdown by one second. It is a no-op while paused.
// When the counter reaches zero the phase completes synchronously within
// the same tick.
func (s *Session) Tick() Outcome {
	if !s.running {
		return Outcome{}
	}
	if s.remainingSec > 0 {
		s.remainingSec--
	}
	if s.remainingSec == 0 {
		return s.handleComplete()
	}
	return Outcome{}
}

// Skip abandons the current phase and moves to the next mode without
// granting completion credit. Skipping a focus phase still advances to a
// break so the cadence is preserved, but completedCycles is untouched.
func (s *Session) Skip() Mode {
	s.running = false
	if s.mode == ModeFocus {
		s.enterMode(ModeShortBreak)
	} else {
		s.enterMode(ModeFocus)
	}
	return s.mode
}

func (s *Session) handleComplete() Outcome {
	s.running = false
	out := Outcome{PhaseCompleted: true}

	if s.mode == ModeFocus {
		s.completedCycles++
		out.FocusCompleted = true
		out.FocusMinutes = s.phaseCfg.FocusMinutes
		if s.completedCycles%s.cfg.CyclesBeforeLongBreak == 0 {
			s.enterMode(ModeLongBreak)
		} else {
			s.enterMode(ModeShortBreak)
		}
	} else {
		s.enterMode(ModeFocus)
	}

	out.NextMode = s.mode
	return out
}

func (s *Session) enterMode(mode Mode) {
	s.mode = mode
	s.phaseCfg = s.cfg
	s.remainingSec = s.phaseCfg.DurationSec(mode)
}

// FormatClock renders a second count as MM:SS.
func FormatClock(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}
