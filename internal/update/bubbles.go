package update

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/focusgarden/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.tasksList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.tasksList.Title = "Tasks (list)"
	m.tasksList.SetShowHelp(false)
	m.tasksList.SetFilteringEnabled(false)

	cols := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Sessions", Width: 9},
		{Title: "Focus", Width: 8},
	}
	m.historyTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(8))

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.notesArea = textarea.New()
	m.notesArea.SetWidth(54)
	m.notesArea.SetHeight(6)
	m.notesArea.ShowLineNumbers = false
	m.notesArea.Placeholder = "Task notes (markdown)"

	m.timerProgress = progress.New(progress.WithDefaultGradient())
	m.levelProgress = progress.New(progress.WithDefaultGradient())

	m.runSpinner = spinner.New()
	m.runSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.notesViewport = viewport.New(54, 8)
}

func (m *Model) syncBubbleData() {
	tasks := m.Snapshot.Tasks.Tasks
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		desc := fmt.Sprintf("%s | %s | %d/%d 🍅", t.Category.Icon(), t.Priority.Label(), t.CompletedPomodoros, t.EstimatedPomodoros)
		items = append(items, listItem{title: t.Title, description: desc})
	}
	m.tasksList.SetItems(items)
	if len(items) > 0 && m.Tasks.Cursor < len(items) {
		m.tasksList.Select(m.Tasks.Cursor)
	}

	history := m.Snapshot.Ledger.History
	rows := make([]table.Row, 0, 7)
	for i := len(history) - 1; i >= 0 && len(rows) < 7; i-- {
		rec := history[i]
		rows = append(rows, table.Row{rec.Date, strconv.Itoa(rec.Pomodoros), fmt.Sprintf("%dm", rec.FocusMinutes)})
	}
	m.historyTable.SetRows(rows)

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}
	if m.CurrentView == ViewTasks && m.Tasks.CaptureMode {
		m.quickAddInput.Focus()
	}

	if t, ok := m.cursorTask(); ok {
		md := t.Notes
		if strings.TrimSpace(md) == "" {
			md = "_No notes_"
		}
		m.notesArea.SetValue(md)
		m.notesViewport.SetContent(views.RenderMarkdown(md))
	}

	_ = m.timerProgress.SetPercent(m.Session.Progress())
	_ = m.levelProgress.SetPercent(m.Snapshot.Level.ProgressToNextLevel())
}
