package task

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryWork     Category = "work"
	CategoryStudy    Category = "study"
	CategoryCreative Category = "creative"
	CategoryPersonal Category = "personal"
	CategoryHome     Category = "home"
	CategoryCustom   Category = "custom"
)

func (c Category) Icon() string {
	switch c {
	case CategoryStudy:
		return "📚"
	case CategoryCreative:
		return "🎨"
	case CategoryPersonal:
		return "💪"
	case CategoryHome:
		return "🏠"
	case CategoryCustom:
		return "📌"
	default:
		return "💼"
	}
}

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Medium"
	}
}

// Task is a focus target. The active task accrues one completed pomodoro
// per finished focus session.
type Task struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Notes              string     `json:"notes,omitempty"`
	Category           Category   `json:"category"`
	Priority           Priority   `json:"priority"`
	EstimatedPomodoros int        `json:"estimated_pomodoros"`
	CompletedPomodoros int        `json:"completed_pomodoros"`
	Done               bool       `json:"done"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

func (t Task) ProgressFraction() float64 {
	if t.EstimatedPomodoros <= 0 {
		return 0
	}
	f := float64(t.CompletedPomodoros) / float64(t.EstimatedPomodoros)
	if f > 1 {
		return 1
	}
	return f
}

// List owns the ordered task collection and the id sequence, mirroring how
// the quick-add flow assigns ids.
type List struct {
	Tasks  []Task `json:"tasks"`
	NextID int    `json:"next_id"`
}

func (l *List) Add(title string, now time.Time) Task {
	if l.NextID <= 0 {
		l.NextID = 1
	}
	t := Task{
		ID:                 fmt.Sprintf("task-%d", l.NextID),
		Title:              title,
		Category:           CategoryWork,
		Priority:           PriorityMedium,
		EstimatedPomodoros: 1,
		CreatedAt:          now,
	}
	l.NextID++
	l.Tasks = append(l.Tasks, t)
	return t
}

func (l *List) Find(id string) (Task, bool) {
	if idx := l.index(id); idx >= 0 {
		return l.Tasks[idx], true
	}
	return Task{}, false
}

// Accrue credits one completed pomodoro to the task. Reaching the estimate
// does not auto-complete the task; finishing is an explicit user action.
func (l *List) Accrue(id string) bool {
	idx := l.index(id)
	if idx < 0 {
		return false
	}
	l.Tasks[idx].CompletedPomodoros++
	return true
}

func (l *List) Complete(id string, now time.Time) bool {
	idx := l.index(id)
	if idx < 0 || l.Tasks[idx].Done {
		return false
	}
	l.Tasks[idx].Done = true
	completedAt := now
	l.Tasks[idx].CompletedAt = &completedAt
	return true
}

func (l *List) Remove(id string) bool {
	idx := l.index(id)
	if idx < 0 {
		return false
	}
	l.Tasks = append(l.Tasks[:idx], l.Tasks[idx+1:]...)
	return true
}

// Pending returns the tasks not yet marked done, in insertion order.
func (l *List) Pending() []Task {
	out := make([]Task, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		if !t.Done {
			out = append(out, t)
		}
	}
	return out
}

func (l *List) index(id string) int {
	for i := range l.Tasks {
		if l.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
