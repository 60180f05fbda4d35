package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/focusgarden/internal/commands"
	"github.com/sandeepkv93/focusgarden/internal/gamify"
	"github.com/sandeepkv93/focusgarden/internal/scheduler"
	"github.com/sandeepkv93/focusgarden/internal/snapshot"
	"github.com/sandeepkv93/focusgarden/internal/storage"
	"github.com/sandeepkv93/focusgarden/internal/timer"
)

// sessionXP is the base experience for every completed focus session;
// challenge and achievement rewards stack on top of it.
const sessionXP = 10

// loadPersisted hydrates the snapshot and returns the stored timer
// configuration. A missing blob is a fresh install, not an error.
func (m *Model) loadPersisted() timer.Config {
	cfg := timer.DefaultConfig()
	if m.Store == nil {
		return cfg
	}
	ctx := context.Background()

	if raw, err := m.Store.Load(ctx, snapshot.KeySettings); err == nil {
		cfg = snapshot.DecodeSettings(raw)
	} else if !errors.Is(err, storage.ErrNotFound) {
		m.Status = StatusBar{Text: fmt.Sprintf("load settings failed: %v", err), IsError: true}
	}

	if raw, err := m.Store.Load(ctx, snapshot.KeyProgress); err == nil {
		m.Snapshot = snapshot.DecodeProgress(raw)
	} else if !errors.Is(err, storage.ErrNotFound) {
		m.Status = StatusBar{Text: fmt.Sprintf("load progress failed: %v", err), IsError: true}
	}

	if raw, err := m.Store.Load(ctx, snapshot.KeyLastCompletionDay); err == nil {
		if day := snapshot.DecodeLastCompletionDay(raw); day != "" {
			m.Snapshot.Ledger.LastCompletionDay = day
		}
	}

	return cfg
}

func (m *Model) persistProgress() {
	if m.Store == nil {
		return
	}
	ctx := context.Background()
	payload, err := snapshot.EncodeProgress(m.Snapshot)
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("encode progress failed: %v", err), IsError: true}
		return
	}
	if err := m.Store.Save(ctx, snapshot.KeyProgress, payload); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save progress failed: %v", err), IsError: true}
		return
	}
	if day := m.Snapshot.Ledger.LastCompletionDay; day != "" {
		if err := m.Store.Save(ctx, snapshot.KeyLastCompletionDay, snapshot.EncodeLastCompletionDay(day)); err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("save completion day failed: %v", err), IsError: true}
		}
	}
}

func (m *Model) persistSettings() {
	if m.Store == nil {
		return
	}
	payload, err := snapshot.EncodeSettings(m.Session.Config())
	if err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("encode settings failed: %v", err), IsError: true}
		return
	}
	if err := m.Store.Save(context.Background(), snapshot.KeySettings, payload); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("save settings failed: %v", err), IsError: true}
	}
}

// reconcileDay realigns the today counter and the challenge set with the
// current calendar day. Runs at load and on the midnight rollover event.
func (m *Model) reconcileDay() {
	now := m.now()
	m.Snapshot.Ledger.ReconcileDay(now)

	today, _ := m.Snapshot.Ledger.RecordFor(dayOf(now))
	challenges, _ := gamify.UpdateChallenges(m.Snapshot.DailyChallenges, now, today.Pomodoros, today.FocusMinutes)
	m.Snapshot.DailyChallenges = challenges
}

// completedPomodoro applies a finished focus phase to the whole snapshot:
// ledger first, then themes, challenges, achievements, XP, and a single
// persist at the end.
func (m *Model) completedPomodoro(out timer.Outcome) {
	now := m.now()
	comp := m.Snapshot.Ledger.RecordCompletion(now, out.FocusMinutes)

	m.Snapshot.TotalFocusMinutes += out.FocusMinutes
	m.Snapshot.TotalSessionsCompleted++
	m.Snapshot.ConsecutiveSessions++

	if m.Snapshot.ActiveTaskID != "" {
		m.Snapshot.Tasks.Accrue(m.Snapshot.ActiveTaskID)
	}

	m.Snapshot.UnlockedThemes = gamify.MergeUnlockedThemes(m.Snapshot.UnlockedThemes, m.Snapshot.Ledger.TotalPomodoros)

	todayRec, _ := m.Snapshot.Ledger.RecordFor(comp.Day)
	challenges, justCompleted := gamify.UpdateChallenges(m.Snapshot.DailyChallenges, now, todayRec.Pomodoros, todayRec.FocusMinutes)
	m.Snapshot.DailyChallenges = challenges

	xp := sessionXP
	for _, c := range justCompleted {
		xp += c.XPReward
		m.notify("Challenge Complete", fmt.Sprintf("%s %s (+%dxp)", c.Icon, c.Title, c.XPReward), "info")
	}

	stats := gamify.Stats{
		TotalPomodoros:      m.Snapshot.Ledger.TotalPomodoros,
		CurrentStreak:       m.Snapshot.Ledger.CurrentStreak,
		TotalFocusMinutes:   m.Snapshot.TotalFocusMinutes,
		UnlockedThemes:      len(m.Snapshot.UnlockedThemes),
		ConsecutiveSessions: m.Snapshot.ConsecutiveSessions,
		TodayPomodoros:      m.Snapshot.Ledger.TodayPomodoros,
		CompletionHour:      now.Hour(),
		Weekend:             now.Weekday() == time.Saturday || now.Weekday() == time.Sunday,
	}
	unlocked := gamify.EvaluateAchievements(m.Snapshot.Achievements, stats, now)
	for _, a := range unlocked {
		xp += a.Rarity.XPReward()
		m.notify("Achievement Unlocked", fmt.Sprintf("%s %s (+%dxp)", a.Icon, a.Title, a.Rarity.XPReward()), "info")
	}

	leveledUp := m.Snapshot.Level.AddXP(xp)

	m.persistProgress()

	status := fmt.Sprintf("focus session complete: +%dxp, a tree grew in your garden", xp)
	if len(comp.UnlockedAnimals) > 0 {
		status += fmt.Sprintf(", new visitor: %s", strings.Join(comp.UnlockedAnimals, ", "))
	}
	if leveledUp {
		status += fmt.Sprintf(" — level up! now level %d (%s)", m.Snapshot.Level.CurrentLevel, m.Snapshot.Level.Title())
	}
	m.Status = StatusBar{Text: status, IsError: false}
	m.notify("Session Complete", status, "info")

	if m.Session.Config().SoundEnabled {
		m.notify("Chime", "completion chime", "info")
	}
	m.armBreakNudge(now)
}

// skippedSession records a skip: no completion credit of any kind, and
// the consecutive-session counter resets.
func (m *Model) skippedSession(next timer.Mode) {
	m.Snapshot.TotalSessionsSkipped++
	m.Snapshot.ConsecutiveSessions = 0
	m.persistProgress()
	m.Status = StatusBar{Text: fmt.Sprintf("phase skipped, no credit — next: %s", next.Label()), IsError: false}
}

func (m *Model) applyScheduledEvent(ev scheduler.Event) {
	switch ev.Kind {
	case scheduler.KindDayRollover:
		m.reconcileDay()
		m.persistProgress()
		m.Status = StatusBar{Text: "a new day begins — today counter reset, fresh challenges", IsError: false}
		m.notify("New Day", m.Status.Text, "info")
		m.armDayRollover()
	case scheduler.KindBreakNudge:
		if !m.Session.Running() && m.Session.Mode() != timer.ModeFocus {
			m.Status = StatusBar{Text: "your break is waiting — press space to start it", IsError: false}
			m.notify("Break Nudge", m.Status.Text, "info")
		}
	default:
		m.Status = StatusBar{Text: fmt.Sprintf("event fired: %s", ev.ID), IsError: false}
	}
}

// armDayRollover schedules the next midnight event so the today counter
// resets without restarting the app.
func (m *Model) armDayRollover() {
	if m.Scheduler == nil {
		return
	}
	now := m.now()
	ev := scheduler.Event{
		ID:     fmt.Sprintf("rollover:%s", dayOf(now)),
		Kind:   scheduler.KindDayRollover,
		FireAt: scheduler.NextMidnight(now),
	}
	if err := m.Scheduler.Schedule(ev); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("schedule rollover failed: %v", err), IsError: true}
	}
}

// armBreakNudge reminds the user five minutes after a focus phase ends if
// the break has not been started.
func (m *Model) armBreakNudge(now time.Time) {
	if m.Scheduler == nil {
		return
	}
	ev := scheduler.Event{
		ID:     fmt.Sprintf("nudge:%s", now.Format("150405")),
		Kind:   scheduler.KindBreakNudge,
		FireAt: now.Add(5 * time.Minute),
	}
	_ = m.Scheduler.Schedule(ev)
}

func (m *Model) applyTheme(id string) error {
	theme, ok := gamify.ThemeByID(id)
	if !ok {
		return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown theme: %s", id)}
	}
	if !containsString(m.Snapshot.UnlockedThemes, theme.ID) {
		return &commands.CommandError{
			Code:    commands.ErrCodeInvalidArgument,
			Message: fmt.Sprintf("%s unlocks at %d sessions", theme.Name, theme.UnlockRequirement),
		}
	}
	m.Snapshot.CurrentTheme = theme.ID
	m.persistProgress()
	return nil
}

func (m *Model) updateConfiguration(mutate func(*timer.Config)) error {
	cfg := m.Session.Config()
	mutate(&cfg)
	if err := m.Session.SetConfig(cfg); err != nil {
		return err
	}
	m.persistSettings()
	return nil
}

// resetAllData wipes every persisted blob and restores the documented
// empty state. The timer configuration goes back to defaults too.
func (m *Model) resetAllData() {
	if m.Store != nil {
		ctx := context.Background()
		for _, key := range []string{snapshot.KeyProgress, snapshot.KeySettings, snapshot.KeyLastCompletionDay} {
			if err := m.Store.Delete(ctx, key); err != nil {
				m.Status = StatusBar{Text: fmt.Sprintf("reset failed on %s: %v", key, err), IsError: true}
				return
			}
		}
	}
	m.Snapshot = snapshot.Empty()
	m.Session = timer.NewSession(timer.DefaultConfig())
	m.reconcileDay()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Set: func(a commands.SetArgs) (commands.Result, error) {
			err := m.updateConfiguration(func(cfg *timer.Config) {
				switch a.Field {
				case "focus":
					cfg.FocusMinutes = a.Value
				case "break":
					cfg.BreakMinutes = a.Value
				case "longbreak":
					cfg.LongBreakMinutes = a.Value
				case "cycles":
					cfg.CyclesBeforeLongBreak = a.Value
				}
			})
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			return commands.Result{Message: fmt.Sprintf("%s set to %d, applies from the next phase", a.Field, a.Value)}, nil
		},
		Preset: func(a commands.PresetArgs) (commands.Result, error) {
			preset, ok := timer.PresetByID(a.ID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown preset: %s", a.ID)}
			}
			if err := m.Session.SetConfig(preset.Apply(m.Session.Config())); err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			m.persistSettings()
			return commands.Result{Message: fmt.Sprintf("%s %s applied, takes effect next phase", preset.Icon, preset.Name)}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			if err := m.applyTheme(a.ID); err != nil {
				return commands.Result{}, err
			}
			theme, _ := gamify.ThemeByID(a.ID)
			return commands.Result{Message: fmt.Sprintf("garden theme: %s %s", theme.Icon, theme.Name)}, nil
		},
		Sound: func(a commands.SoundArgs) (commands.Result, error) {
			err := m.updateConfiguration(func(cfg *timer.Config) { cfg.SoundEnabled = a.Enabled })
			if err != nil {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
			}
			state := "off"
			if a.Enabled {
				state = "on"
			}
			return commands.Result{Message: fmt.Sprintf("sound %s", state)}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			t := m.Snapshot.Tasks.Add(a.Title, m.now())
			if m.Snapshot.ActiveTaskID == "" {
				m.Snapshot.ActiveTaskID = t.ID
			}
			m.persistProgress()
			m.CurrentView = ViewTasks
			return commands.Result{Message: fmt.Sprintf("task added: %s", t.Title)}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			view, ok := viewForSubject(a.Subject)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", a.Subject)}
			}
			m.CurrentView = view
			return commands.Result{Message: fmt.Sprintf("showing %s", strings.ToLower(string(view)))}, nil
		},
		Reset: func() (commands.Result, error) {
			m.resetAllData()
			return commands.Result{Message: "all data reset — your garden starts over"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func viewForSubject(subject string) (View, bool) {
	switch subject {
	case "timer":
		return ViewTimer, true
	case "tasks":
		return ViewTasks, true
	case "garden":
		return ViewGarden, true
	case "stats":
		return ViewStats, true
	case "awards", "achievements":
		return ViewAwards, true
	default:
		return "", false
	}
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
