package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusgarden/internal/timer"
)

func (m Model) handleTimerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		if m.Session.Running() {
			m.Session.Pause()
			m.Status = StatusBar{Text: "timer paused", IsError: false}
			return m, nil
		}
		m.Session.Start()
		m.Status = StatusBar{Text: fmt.Sprintf("%s running", m.Session.Mode().Label()), IsError: false}
		return m, tea.Batch(tickCmd(), m.runSpinner.Tick)
	case "r":
		m.Session.Reset()
		m.Status = StatusBar{Text: "timer reset", IsError: false}
		return m, nil
	case "s":
		next := m.Session.Skip()
		m.skippedSession(next)
		return m, nil
	case "f":
		m.switchMode(timer.ModeFocus)
		return m, nil
	case "b":
		m.switchMode(timer.ModeShortBreak)
		return m, nil
	case "l":
		m.switchMode(timer.ModeLongBreak)
		return m, nil
	}
	return m, nil
}

// switchMode is silently rejected while the countdown runs; the session
// reports the refusal and the status bar explains it.
func (m *Model) switchMode(mode timer.Mode) {
	if !m.Session.SwitchMode(mode) {
		m.Status = StatusBar{Text: "pause the timer before switching modes", IsError: true}
		return
	}
	m.Status = StatusBar{Text: fmt.Sprintf("switched to %s", mode.Label()), IsError: false}
}

// onTick advances the countdown one second. The tick command is re-armed
// only while the timer keeps running, so a paused session generates no
// wakeups.
func (m Model) onTick() (tea.Model, tea.Cmd) {
	out := m.Session.Tick()
	if out.PhaseCompleted {
		if out.FocusCompleted {
			m.completedPomodoro(out)
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("break over — %s is ready", out.NextMode.Label()), IsError: false}
			m.notify("Break Over", m.Status.Text, "info")
		}
		return m, nil
	}
	if m.Session.Running() {
		return m, tickCmd()
	}
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TickMsg{} })
}
