package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/focusgarden/internal/scheduler"
	"github.com/sandeepkv93/focusgarden/internal/views"
)

func (m Model) Init() tea.Cmd {
	m.armDayRollover()
	if m.Scheduler != nil {
		return waitForEventCmd(m.Scheduler.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			if typed.String() == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			next := m.handlePaletteKey(typed)
			return next, nil
		}

		keyStr := typed.String()
		if m.CurrentView == ViewTasks && m.Tasks.CaptureMode && keyStr != "ctrl+c" &&
			keyStr != m.Keys.Timer && keyStr != m.Keys.Tasks && keyStr != m.Keys.Garden &&
			keyStr != m.Keys.Stats && keyStr != m.Keys.Awards &&
			keyStr != m.Keys.Help && keyStr != "/" && keyStr != m.Keys.Quit {
			return m.handleTasksKey(typed), nil
		}

		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Timer:
			m.CurrentView = ViewTimer
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			return m, nil
		case m.Keys.Garden:
			m.CurrentView = ViewGarden
			return m, nil
		case m.Keys.Stats:
			m.CurrentView = ViewStats
			return m, nil
		case m.Keys.Awards:
			m.CurrentView = ViewAwards
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		if m.CurrentView == ViewTimer {
			return m.handleTimerKey(typed)
		}
		if m.CurrentView == ViewTasks {
			return m.handleTasksKey(typed), nil
		}
	case spinner.TickMsg:
		if m.Session.Running() {
			var cmd tea.Cmd
			m.runSpinner, cmd = m.runSpinner.Update(typed)
			return m, cmd
		}
	case TickMsg:
		return m.onTick()
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case QuickAddTaskMsg:
		m.addTask(typed.Title)
		return m, nil
	case SchedulerEventMsg:
		m.EventLog = append(m.EventLog, typed.Event)
		if len(m.EventLog) > 20 {
			m.EventLog = m.EventLog[len(m.EventLog)-20:]
		}
		m.applyScheduledEvent(typed.Event)
		if m.Scheduler != nil {
			return m, waitForEventCmd(m.Scheduler.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	// The bubble components render derived state; refresh them from the
	// snapshot so every frame reflects the latest mutation.
	m.syncBubbleData()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewTimer:
		leftPane = m.renderTimerView()
		rightPane = m.renderGardenView() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderTaskNotesPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewGarden:
		leftPane = m.renderGardenView()
		rightPane = m.renderThemesPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewStats:
		leftPane = m.renderStatsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewAwards:
		leftPane = m.renderAwardsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	notificationView := m.renderNotificationsView()
	if m.Session.Running() {
		notificationView = notificationView + "\n" + m.runSpinner.View() + " focusing"
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("focusgarden | view: %s | level %d %s", m.CurrentView, m.Snapshot.Level.CurrentLevel, m.Snapshot.Level.Title()),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notificationView,
		Footer: fmt.Sprintf("keys: %s timer | %s tasks | %s garden | %s stats | %s awards | / cmd | %s help | %s quit",
			m.Keys.Timer, m.Keys.Tasks, m.Keys.Garden, m.Keys.Stats, m.Keys.Awards, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewTimer, ViewTasks, ViewGarden, ViewStats, ViewAwards:
		return true
	default:
		return false
	}
}

func waitForEventCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return SchedulerEventMsg{Event: ev}
	}
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}
