package task

import (
	"testing"
	"time"
)

var created = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func TestAddAssignsSequentialIDs(t *testing.T) {
	var l List
	first := l.Add("write report", created)
	second := l.Add("review notes", created)
	if first.ID != "task-1" || second.ID != "task-2" {
		t.Fatalf("unexpected ids: %q %q", first.ID, second.ID)
	}
	if first.Category != CategoryWork || first.Priority != PriorityMedium || first.EstimatedPomodoros != 1 {
		t.Fatalf("unexpected defaults: %+v", first)
	}
}

func TestAccrueAndComplete(t *testing.T) {
	var l List
	added := l.Add("deep work", created)

	if !l.Accrue(added.ID) || !l.Accrue(added.ID) {
		t.Fatal("expected accrue to succeed")
	}
	got, ok := l.Find(added.ID)
	if !ok || got.CompletedPomodoros != 2 {
		t.Fatalf("expected 2 completed pomodoros, got %+v", got)
	}
	if got.Done {
		t.Fatal("accrual past the estimate must not auto-complete the task")
	}

	done := created.Add(time.Hour)
	if !l.Complete(added.ID, done) {
		t.Fatal("expected complete to succeed")
	}
	if l.Complete(added.ID, done) {
		t.Fatal("completing twice must report false")
	}
	got, _ = l.Find(added.ID)
	if !got.Done || got.CompletedAt == nil || !got.CompletedAt.Equal(done) {
		t.Fatalf("unexpected completed task: %+v", got)
	}
}

func TestAccrueUnknownID(t *testing.T) {
	var l List
	if l.Accrue("task-404") {
		t.Fatal("accrue on unknown id must report false")
	}
}

func TestPendingExcludesDone(t *testing.T) {
	var l List
	a := l.Add("one", created)
	l.Add("two", created)
	l.Complete(a.ID, created)

	pending := l.Pending()
	if len(pending) != 1 || pending[0].Title != "two" {
		t.Fatalf("unexpected pending list: %+v", pending)
	}
}

func TestRemove(t *testing.T) {
	var l List
	a := l.Add("one", created)
	if !l.Remove(a.ID) {
		t.Fatal("expected remove to succeed")
	}
	if l.Remove(a.ID) {
		t.Fatal("removing twice must report false")
	}
	if len(l.Tasks) != 0 {
		t.Fatalf("expected empty list, got %+v", l.Tasks)
	}
}

func TestProgressFraction(t *testing.T) {
	task := Task{EstimatedPomodoros: 4, CompletedPomodoros: 2}
	if task.ProgressFraction() != 0.5 {
		t.Fatalf("expected 0.5, got %f", task.ProgressFraction())
	}
	task.CompletedPomodoros = 9
	if task.ProgressFraction() != 1 {
		t.Fatalf("expected clamp to 1, got %f", task.ProgressFraction())
	}
}
