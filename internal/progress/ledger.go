package progress

import "time"

// DayFormat is the calendar-day key used throughout the ledger and the
// persisted history (ISO yyyy-mm-dd).
const DayFormat = "2006-01-02"

func Day(t time.Time) string {
	return t.Format(DayFormat)
}

type DailyRecord struct {
	Date         string `json:"date"`
	Pomodoros    int    `json:"pomodoros"`
	FocusMinutes int    `json:"focus_minutes"`
}

type animalMilestone struct {
	Count  int
	Animal string
}

// animalMilestones is ordered by count. An animal unlocks only the instant
// the cumulative total hits its threshold exactly, never retroactively.
var animalMilestones = []animalMilestone{
	{3, "butterfly"},
	{7, "bird"},
	{15, "rabbit"},
	{25, "deer"},
	{40, "fox"},
}

// AnimalMilestones exposes the unlock table for display.
func AnimalMilestones() map[string]int {
	out := make(map[string]int, len(animalMilestones))
	for _, m := range animalMilestones {
		out[m.Animal] = m.Count
	}
	return out
}

// Ledger is the cumulative completion record: totals, per-day history,
// streak, and the garden counters derived from completions. It is mutated
// only by RecordCompletion, ReconcileDay and ResetAll.
type Ledger struct {
	TotalPomodoros    int           `json:"total_pomodoros"`
	TodayPomodoros    int           `json:"today_pomodoros"`
	CurrentStreak     int           `json:"current_streak"`
	Trees             int           `json:"trees"`
	Clouds            int           `json:"clouds"`
	Animals           []string      `json:"animals"`
	History           []DailyRecord `json:"history"`
	LastCompletionDay string        `json:"last_completion_day,omitempty"`
}

// Completion reports the side effects of one recorded session.
type Completion struct {
	Day             string
	FocusMinutes    int
	UnlockedAnimals []string
}

// RecordCompletion applies one finished focus session to the ledger. Each
// call counts as exactly one more session; callers invoke it at most once
// per genuine completion.
func (l *Ledger) RecordCompletion(now time.Time, focusMinutes int) Completion {
	today := Day(now)
	yesterday := Day(now.AddDate(0, 0, -1))

	l.TotalPomodoros++

	// Streak rule runs before LastCompletionDay is overwritten. Same-day
	// repeats keep incrementing; see the pinning test.
	if l.LastCompletionDay == yesterday || l.LastCompletionDay == today {
		l.CurrentStreak++
	} else {
		l.CurrentStreak = 1
	}

	idx := l.recordIndex(today)
	if idx >= 0 {
		l.History[idx].Pomodoros++
		l.History[idx].FocusMinutes += focusMinutes
	} else {
		l.History = append(l.History, DailyRecord{Date: today, Pomodoros: 1, FocusMinutes: focusMinutes})
		idx = len(l.History) - 1
	}
	l.TodayPomodoros = l.History[idx].Pomodoros

	l.Trees++
	if l.TotalPomodoros%2 == 0 {
		l.Clouds++
	}

	out := Completion{Day: today, FocusMinutes: focusMinutes}
	for _, m := range animalMilestones {
		if l.TotalPomodoros == m.Count && !l.HasAnimal(m.Animal) {
			l.Animals = append(l.Animals, m.Animal)
			out.UnlockedAnimals = append(out.UnlockedAnimals, m.Animal)
		}
	}

	l.LastCompletionDay = today
	return out
}

// ReconcileDay realigns TodayPomodoros with the record for the current
// calendar day. Called on load and at day rollover; this is how the daily
// reset happens without a scheduled job.
func (l *Ledger) ReconcileDay(now time.Time) {
	today := Day(now)
	if l.LastCompletionDay == today {
		return
	}
	if idx := l.recordIndex(today); idx >= 0 {
		l.TodayPomodoros = l.History[idx].Pomodoros
	} else {
		l.TodayPomodoros = 0
	}
}

func (l *Ledger) ResetAll() {
	*l = Ledger{}
}

func (l *Ledger) HasAnimal(animal string) bool {
	for _, a := range l.Animals {
		if a == animal {
			return true
		}
	}
	return false
}

// TotalFocusMinutes sums focus minutes across the whole history.
func (l *Ledger) TotalFocusMinutes() int {
	total := 0
	for _, rec := range l.History {
		total += rec.FocusMinutes
	}
	return total
}

// RecordFor returns the daily record for the given day key, if present.
func (l *Ledger) RecordFor(day string) (DailyRecord, bool) {
	if idx := l.recordIndex(day); idx >= 0 {
		return l.History[idx], true
	}
	return DailyRecord{}, false
}

func (l *Ledger) recordIndex(day string) int {
	for i := range l.History {
		if l.History[i].Date == day {
			return i
		}
	}
	return -1
}
