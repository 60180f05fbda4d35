package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/focusgarden/internal/views"
)

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Timer, Action: "switch to Timer"},
		{Key: m.Keys.Tasks, Action: "switch to Tasks"},
		{Key: m.Keys.Garden, Action: "switch to Garden"},
		{Key: m.Keys.Stats, Action: "switch to Stats"},
		{Key: m.Keys.Awards, Action: "switch to Awards"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewTimer:
		return []KeyBinding{
			{Key: "space", Action: "start/pause timer"},
			{Key: "r", Action: "reset current phase"},
			{Key: "s", Action: "skip phase (no credit)"},
			{Key: "f/b/l", Action: "focus/break/long break (paused only)"},
		}
	case ViewTasks:
		return []KeyBinding{
			{Key: "enter/i", Action: "capture a task"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "a", Action: "set active task"},
			{Key: "c", Action: "complete task"},
			{Key: "d", Action: "delete task"},
		}
	case ViewGarden:
		return []KeyBinding{
			{Key: "/theme <id>", Action: "switch garden theme"},
		}
	case ViewStats:
		return []KeyBinding{
			{Key: "/set <field> <n>", Action: "tune timer durations"},
		}
	case ViewAwards:
		return []KeyBinding{
			{Key: "-", Action: "awards unlock on their own"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
