package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	if m.Tasks.CaptureMode {
		switch msg.String() {
		case "esc":
			m.Tasks.CaptureMode = false
			m.quickAddInput.Blur()
			m.Status = StatusBar{Text: "task list mode", IsError: false}
			return m
		case "enter":
			m.addTask(m.quickAddInput.Value())
			m.quickAddInput.SetValue("")
			return m
		}
		var cmd tea.Cmd
		m.quickAddInput, cmd = m.quickAddInput.Update(msg)
		_ = cmd
		return m
	}

	switch msg.String() {
	case "i", "enter":
		m.Tasks.CaptureMode = true
		m.quickAddInput.Focus()
		m.Status = StatusBar{Text: "task capture mode", IsError: false}
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "down", "j":
		if m.Tasks.Cursor < len(m.Snapshot.Tasks.Tasks)-1 {
			m.Tasks.Cursor++
		}
	case "a":
		m.setActiveTaskAtCursor()
	case "c":
		m.completeTaskAtCursor()
	case "d":
		m.removeTaskAtCursor()
	default:
		if msg.Type == tea.KeyRunes {
			m.Tasks.CaptureMode = true
			m.quickAddInput.Focus()
			m.quickAddInput.SetValue(string(msg.Runes))
			return m
		}
	}
	return m
}

func (m *Model) addTask(title string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return
	}
	t := m.Snapshot.Tasks.Add(trimmed, m.now())
	if m.Snapshot.ActiveTaskID == "" {
		m.Snapshot.ActiveTaskID = t.ID
	}
	m.Tasks.Cursor = len(m.Snapshot.Tasks.Tasks) - 1
	m.persistProgress()
	m.Status = StatusBar{Text: fmt.Sprintf("task added: %s", t.Title), IsError: false}
}

func (m *Model) setActiveTaskAtCursor() {
	tasks := m.Snapshot.Tasks.Tasks
	if len(tasks) == 0 || m.Tasks.Cursor >= len(tasks) {
		return
	}
	t := tasks[m.Tasks.Cursor]
	if t.Done {
		m.Status = StatusBar{Text: "cannot focus a finished task", IsError: true}
		return
	}
	m.Snapshot.ActiveTaskID = t.ID
	m.persistProgress()
	m.Status = StatusBar{Text: fmt.Sprintf("focusing on: %s", t.Title), IsError: false}
}

func (m *Model) completeTaskAtCursor() {
	tasks := m.Snapshot.Tasks.Tasks
	if len(tasks) == 0 || m.Tasks.Cursor >= len(tasks) {
		return
	}
	t := tasks[m.Tasks.Cursor]
	if !m.Snapshot.Tasks.Complete(t.ID, m.now()) {
		return
	}
	if m.Snapshot.ActiveTaskID == t.ID {
		m.Snapshot.ActiveTaskID = ""
	}
	m.persistProgress()
	m.Status = StatusBar{Text: fmt.Sprintf("task finished: %s", t.Title), IsError: false}
}

func (m *Model) removeTaskAtCursor() {
	tasks := m.Snapshot.Tasks.Tasks
	if len(tasks) == 0 || m.Tasks.Cursor >= len(tasks) {
		return
	}
	t := tasks[m.Tasks.Cursor]
	if !m.Snapshot.Tasks.Remove(t.ID) {
		return
	}
	if m.Snapshot.ActiveTaskID == t.ID {
		m.Snapshot.ActiveTaskID = ""
	}
	if m.Tasks.Cursor >= len(m.Snapshot.Tasks.Tasks) && m.Tasks.Cursor > 0 {
		m.Tasks.Cursor--
	}
	m.persistProgress()
	m.Status = StatusBar{Text: fmt.Sprintf("task removed: %s", t.Title), IsError: false}
}
