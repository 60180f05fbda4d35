package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/focusgarden/internal/gamify"
	"github.com/sandeepkv93/focusgarden/internal/task"
	"github.com/sandeepkv93/focusgarden/internal/timer"
	"github.com/sandeepkv93/focusgarden/internal/views"
)

// animalEmojis maps the milestone animal names the ledger records to
// their display form.
var animalEmojis = map[string]string{
	"butterfly": "🦋",
	"bird":      "🐦",
	"rabbit":    "🐰",
	"deer":      "🦌",
	"fox":       "🦊",
}

func (m Model) renderTimerView() string {
	cfg := m.Session.Config()
	activeTitle := ""
	if m.Snapshot.ActiveTaskID != "" {
		if t, ok := m.Snapshot.Tasks.Find(m.Snapshot.ActiveTaskID); ok {
			activeTitle = t.Title
		}
	}
	return views.RenderTimerPanel(views.TimerPanelData{
		ModeLabel:       m.Session.Mode().Label(),
		Clock:           timer.FormatClock(m.Session.RemainingSec()),
		Running:         m.Session.Running(),
		ProgressView:    m.timerProgress.ViewAs(m.Session.Progress()),
		ProgressPct:     int(m.Session.Progress() * 100),
		CompletedCycles: m.Session.CompletedCycles(),
		CyclesPerRound:  cfg.CyclesBeforeLongBreak,
		SoundOn:         cfg.SoundEnabled,
		ActiveTaskTitle: activeTitle,
	})
}

func (m Model) renderGardenView() string {
	theme, ok := gamify.ThemeByID(m.Snapshot.CurrentTheme)
	if !ok {
		theme, _ = gamify.ThemeByID(gamify.DefaultThemeID)
	}

	animals := make([]string, 0, len(m.Snapshot.Ledger.Animals))
	for _, name := range m.Snapshot.Ledger.Animals {
		if emoji, ok := animalEmojis[name]; ok {
			animals = append(animals, emoji)
		}
	}

	var locked []string
	for _, t := range gamify.Themes() {
		if !containsString(m.Snapshot.UnlockedThemes, t.ID) {
			locked = append(locked, fmt.Sprintf("%s (%d)", t.Name, t.UnlockRequirement))
		}
	}

	return views.RenderGardenPanel(views.GardenPanelData{
		ThemeName:      theme.Name,
		ThemeIcon:      theme.Icon,
		TreeEmojis:     theme.Trees,
		AnimalEmojis:   animals,
		Trees:          m.Snapshot.Ledger.Trees,
		Clouds:         m.Snapshot.Ledger.Clouds,
		TodayPomodoros: m.Snapshot.Ledger.TodayPomodoros,
		LockedThemes:   locked,
	})
}

func (m Model) renderStatsView() string {
	return views.RenderStatsPanel(views.StatsPanelData{
		TotalPomodoros:    m.Snapshot.Ledger.TotalPomodoros,
		TodayPomodoros:    m.Snapshot.Ledger.TodayPomodoros,
		CurrentStreak:     m.Snapshot.Ledger.CurrentStreak,
		TotalFocusMinutes: m.Snapshot.TotalFocusMinutes,
		SessionsSkipped:   m.Snapshot.TotalSessionsSkipped,
		Level:             m.Snapshot.Level.CurrentLevel,
		LevelTitle:        m.Snapshot.Level.Title(),
		CurrentXP:         m.Snapshot.Level.CurrentXP,
		XPForNextLevel:    m.Snapshot.Level.XPForNextLevel(),
		LevelProgressView: m.levelProgress.ViewAs(m.Snapshot.Level.ProgressToNextLevel()),
		TableView:         m.historyTable.View(),
	})
}

func (m Model) renderAwardsView() string {
	states := make(map[string]gamify.UserAchievement, len(m.Snapshot.Achievements))
	for _, ua := range m.Snapshot.Achievements {
		states[ua.AchievementID] = ua
	}

	unlocked := 0
	achievements := make([]views.AchievementRowData, 0, len(gamify.Catalog()))
	for _, a := range gamify.Catalog() {
		ua := states[a.ID]
		if ua.Unlocked() {
			unlocked++
		}
		achievements = append(achievements, views.AchievementRowData{
			Icon:        a.Icon,
			Title:       a.Title,
			Description: a.Description,
			RarityIcon:  a.Rarity.Icon(),
			Unlocked:    ua.Unlocked(),
			Progress:    ua.Progress,
			Requirement: a.Requirement,
		})
	}

	challenges := make([]views.ChallengeRowData, 0, len(m.Snapshot.DailyChallenges))
	for _, c := range m.Snapshot.DailyChallenges {
		challenges = append(challenges, views.ChallengeRowData{
			Icon:        c.Icon,
			Title:       c.Title,
			Progress:    c.CurrentProgress,
			Requirement: c.Requirement,
			XPReward:    c.XPReward,
			Completed:   c.Completed(),
		})
	}

	return views.RenderAwardsPanel(views.AwardsPanelData{
		Unlocked:     unlocked,
		Total:        len(gamify.Catalog()),
		Achievements: achievements,
		Challenges:   challenges,
	})
}

func (m Model) renderTasksView() string {
	tasks := m.Snapshot.Tasks.Tasks
	rowData := make([]views.TaskRowData, 0, len(tasks))
	for _, t := range tasks {
		rowData = append(rowData, views.TaskRowData{
			ID:                 t.ID,
			Title:              t.Title,
			CategoryIcon:       t.Category.Icon(),
			Priority:           t.Priority.Label(),
			CompletedPomodoros: t.CompletedPomodoros,
			EstimatedPomodoros: t.EstimatedPomodoros,
			Done:               t.Done,
		})
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		QuickAddView: m.quickAddInput.View(),
		ListView:     m.tasksList.View(),
		ActiveTaskID: m.Snapshot.ActiveTaskID,
		Tasks:        rowData,
		Cursor:       m.Tasks.Cursor,
	})
}

func (m Model) renderTaskNotesPane() string {
	t, ok := m.cursorTask()
	if !ok {
		return "notes:\n(no selection)"
	}
	return fmt.Sprintf("notes: %s\n\n%s\n\nmarkdown-preview:\n%s", t.Title, m.notesArea.View(), m.notesViewport.View())
}

func (m Model) renderThemesPane() string {
	var b strings.Builder
	b.WriteString("themes:\n")
	for _, t := range gamify.Themes() {
		state := fmt.Sprintf("locked (%d sessions)", t.UnlockRequirement)
		if containsString(m.Snapshot.UnlockedThemes, t.ID) {
			state = "unlocked"
		}
		marker := " "
		if t.ID == m.Snapshot.CurrentTheme {
			marker = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s — %s\n", marker, t.Icon, t.Name, state))
	}
	b.WriteString("switch with: /theme <id>")
	return b.String()
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) cursorTask() (task.Task, bool) {
	tasks := m.Snapshot.Tasks.Tasks
	if len(tasks) == 0 || m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.Tasks.Cursor], true
}
