package views

import (
	"fmt"
	"strings"
)

type TimerPanelData struct {
	ModeLabel       string
	Clock           string
	Running         bool
	ProgressView    string
	ProgressPct     int
	CompletedCycles int
	CyclesPerRound  int
	SoundOn         bool
	ActiveTaskTitle string
}

type GardenPanelData struct {
	ThemeName      string
	ThemeIcon      string
	TreeEmojis     []string
	AnimalEmojis   []string
	Trees          int
	Clouds         int
	TodayPomodoros int
	LockedThemes   []string
}

type HistoryRowData struct {
	Date         string
	Pomodoros    int
	FocusMinutes int
}

type StatsPanelData struct {
	TotalPomodoros    int
	TodayPomodoros    int
	CurrentStreak     int
	TotalFocusMinutes int
	SessionsSkipped   int
	Level             int
	LevelTitle        string
	CurrentXP         int
	XPForNextLevel    int
	LevelProgressView string
	TableView         string
}

type AchievementRowData struct {
	Icon        string
	Title       string
	Description string
	RarityIcon  string
	Unlocked    bool
	Progress    int
	Requirement int
}

type ChallengeRowData struct {
	Icon        string
	Title       string
	Progress    int
	Requirement int
	XPReward    int
	Completed   bool
}

type AwardsPanelData struct {
	Unlocked     int
	Total        int
	Achievements []AchievementRowData
	Challenges   []ChallengeRowData
}

type TaskRowData struct {
	ID                 string
	Title              string
	CategoryIcon       string
	Priority           string
	CompletedPomodoros int
	EstimatedPomodoros int
	Done               bool
}

type TasksPanelData struct {
	QuickAddView string
	ListView     string
	ActiveTaskID string
	Tasks        []TaskRowData
	Cursor       int
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderTimerPanel(data TimerPanelData) string {
	var b strings.Builder
	b.WriteString("timer:\n")
	b.WriteString(fmt.Sprintf("mode: %s\n", data.ModeLabel))
	b.WriteString(fmt.Sprintf("clock: %s\n", data.Clock))
	state := "paused"
	if data.Running {
		state = "running"
	}
	b.WriteString(fmt.Sprintf("state: %s\n", state))
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString(fmt.Sprintf("cycle: %d/%d until long break\n", data.CompletedCycles%max(data.CyclesPerRound, 1), data.CyclesPerRound))
	sound := "off"
	if data.SoundOn {
		sound = "on"
	}
	b.WriteString(fmt.Sprintf("sound: %s\n", sound))
	if data.ActiveTaskTitle != "" {
		b.WriteString(fmt.Sprintf("task: %s\n", data.ActiveTaskTitle))
	} else {
		b.WriteString("task: (none)\n")
	}
	b.WriteString("actions: [space]start/pause [r]reset [s]skip [f/b/l]mode")
	return b.String()
}

func RenderGardenPanel(data GardenPanelData) string {
	var b strings.Builder
	b.WriteString("garden:\n")
	b.WriteString(fmt.Sprintf("theme: %s %s\n", data.ThemeIcon, data.ThemeName))

	if data.Clouds > 0 {
		clouds := data.Clouds
		if clouds > 8 {
			clouds = 8
		}
		b.WriteString(strings.Repeat("☁️ ", clouds) + "\n")
	}

	if data.Trees == 0 {
		b.WriteString("(empty soil — finish a focus session to plant your first tree)\n")
	} else {
		trees := data.Trees
		if trees > 40 {
			trees = 40
		}
		for i := 0; i < trees; i++ {
			emoji := "🌳"
			if len(data.TreeEmojis) > 0 {
				emoji = data.TreeEmojis[i%len(data.TreeEmojis)]
			}
			b.WriteString(emoji + " ")
			if (i+1)%10 == 0 {
				b.WriteString("\n")
			}
		}
		if trees%10 != 0 {
			b.WriteString("\n")
		}
	}

	if len(data.AnimalEmojis) > 0 {
		b.WriteString("animals: " + strings.Join(data.AnimalEmojis, " ") + "\n")
	}
	b.WriteString(fmt.Sprintf("trees: %d | clouds: %d | today: %d\n", data.Trees, data.Clouds, data.TodayPomodoros))
	if len(data.LockedThemes) > 0 {
		b.WriteString("locked themes: " + strings.Join(data.LockedThemes, ", "))
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("level %d — %s\n", data.Level, data.LevelTitle))
	b.WriteString(fmt.Sprintf("xp: %s %d/%d\n", data.LevelProgressView, data.CurrentXP, data.XPForNextLevel))
	b.WriteString(fmt.Sprintf("total sessions: %d | today: %d | streak: %d day(s)\n", data.TotalPomodoros, data.TodayPomodoros, data.CurrentStreak))
	b.WriteString(fmt.Sprintf("focus time: %s | skipped: %d\n", formatMinutes(data.TotalFocusMinutes), data.SessionsSkipped))
	b.WriteString("history:\n")
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderAwardsPanel(data AwardsPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("awards: %d/%d unlocked\n", data.Unlocked, data.Total))
	for _, a := range data.Achievements {
		mark := "  "
		if a.Unlocked {
			mark = "✔ "
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s (%d/%d) — %s\n", mark, a.RarityIcon, a.Icon, a.Title, a.Progress, a.Requirement, a.Description))
	}
	if len(data.Challenges) > 0 {
		b.WriteString("\ndaily challenges:\n")
		for _, c := range data.Challenges {
			state := fmt.Sprintf("%d/%d", c.Progress, c.Requirement)
			if c.Completed {
				state = "done"
			}
			b.WriteString(fmt.Sprintf("%s %s [%s] +%dxp\n", c.Icon, c.Title, state, c.XPReward))
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(data.QuickAddView + "\n")
	b.WriteString("actions: [enter]add [j/k]move [a]set-active [c]complete [d]delete\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks yet)")
		return strings.TrimSpace(b.String())
	}
	for i, t := range data.Tasks {
		cursor := " "
		if i == data.Cursor {
			cursor = ">"
		}
		active := ""
		if t.ID == data.ActiveTaskID {
			active = " [active]"
		}
		done := " "
		if t.Done {
			done = "x"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s %s (%d/%d 🍅)%s\n", cursor, done, t.CategoryIcon, t.Title, t.CompletedPomodoros, t.EstimatedPomodoros, active))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%dm", total)
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
