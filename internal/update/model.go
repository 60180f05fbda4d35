package update

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/focusgarden/internal/scheduler"
	"github.com/sandeepkv93/focusgarden/internal/snapshot"
	"github.com/sandeepkv93/focusgarden/internal/storage"
	"github.com/sandeepkv93/focusgarden/internal/timer"
)

type View string

const (
	ViewTimer  View = "Timer"
	ViewTasks  View = "Tasks"
	ViewGarden View = "Garden"
	ViewStats  View = "Stats"
	ViewAwards View = "Awards"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Timer  string
	Tasks  string
	Garden string
	Stats  string
	Awards string
	Help   string
	Quit   string
}

type TasksState struct {
	Cursor      int
	CaptureMode bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Model is the whole application state driven through the Elm-style
// update loop. The Session countdown and the Snapshot aggregate are the
// two sources of truth; everything else is presentation state.
type Model struct {
	CurrentView View
	Session     timer.Session
	Snapshot    snapshot.Snapshot
	Store       storage.Store
	Scheduler   *scheduler.Engine
	EventLog    []scheduler.Event

	Tasks          TasksState
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	// now is swappable so tests can pin the clock.
	now func() time.Time

	// Bubble components used for rich TUI controls
	tasksList     list.Model
	historyTable  table.Model
	quickAddInput textinput.Model
	commandInput  textinput.Model
	notesArea     textarea.Model
	timerProgress progress.Model
	levelProgress progress.Model
	runSpinner    spinner.Model
	helpModel     help.Model
	notesViewport viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type QuickAddTaskMsg struct {
	Title string
}

type TickMsg struct{}

type SchedulerEventMsg struct {
	Event scheduler.Event
}

func NewModel() Model {
	m := Model{
		CurrentView: ViewTimer,
		Session:     timer.NewSession(timer.DefaultConfig()),
		Snapshot:    snapshot.Empty(),
		notifier:    NoopDesktopNotifier{},
		now:         time.Now,
		Keys: GlobalKeyMap{
			Timer:  "1",
			Tasks:  "2",
			Garden: "3",
			Stats:  "4",
			Awards: "5",
			Help:   "?",
			Quit:   "q",
		},
	}
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func NewModelWithScheduler(engine *scheduler.Engine) Model {
	m := NewModel()
	m.Scheduler = engine
	return m
}

// NewModelWithConfig builds a model wired to a persistent store. Settings,
// progress and the last completion day are loaded up front; malformed
// blobs fall back to documented defaults inside the codec. The today
// counter is reconciled against the current calendar day before the first
// frame renders.
func NewModelWithConfig(store storage.Store, engine *scheduler.Engine, notifier DesktopNotifier, cfg RuntimeConfig) Model {
	m := NewModel()
	m.Store = store
	m.Scheduler = engine
	m.DesktopEnabled = cfg.DesktopNotifications
	if notifier != nil {
		m.notifier = notifier
	}

	timerCfg := m.loadPersisted()
	timerCfg = cfg.overlayTimerConfig(timerCfg)
	m.Session = timer.NewSession(timerCfg)

	m.reconcileDay()
	m.syncBubbleData()
	return m
}
