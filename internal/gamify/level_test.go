package gamify

import "testing"

func checkLevelInvariant(t *testing.T, l UserLevel) {
	t.Helper()
	if l.CurrentXP < 0 || l.CurrentXP >= l.XPForNextLevel() {
		t.Fatalf("level invariant violated: %+v (next requires %d)", l, l.XPForNextLevel())
	}
}

func TestNewUserLevel(t *testing.T) {
	l := NewUserLevel()
	if l.CurrentLevel != 1 || l.CurrentXP != 0 || l.TotalXP != 0 {
		t.Fatalf("unexpected initial level: %+v", l)
	}
	if l.XPForNextLevel() != 100 {
		t.Fatalf("level 1 must require 100 XP, got %d", l.XPForNextLevel())
	}
}

func TestAddXPSingleLevelUp(t *testing.T) {
	l := NewUserLevel()
	if l.AddXP(50) {
		t.Fatal("50 XP must not level up from level 1")
	}
	if !l.AddXP(60) {
		t.Fatal("expected level up at 110 XP")
	}
	if l.CurrentLevel != 2 || l.CurrentXP != 10 || l.TotalXP != 110 {
		t.Fatalf("unexpected level state: %+v", l)
	}
	checkLevelInvariant(t, l)
}

func TestAddXPLoopsAcrossMultipleLevels(t *testing.T) {
	l := NewUserLevel()
	// 100 (level 1) + 200 (level 2) + 50 leftover
	if !l.AddXP(350) {
		t.Fatal("expected level up from large grant")
	}
	if l.CurrentLevel != 3 || l.CurrentXP != 50 || l.TotalXP != 350 {
		t.Fatalf("unexpected level state: %+v", l)
	}
	checkLevelInvariant(t, l)
}

func TestAddXPNeverLeavesOvershoot(t *testing.T) {
	l := NewUserLevel()
	for _, amount := range []int{10, 999, 1, 4999, 100} {
		l.AddXP(amount)
		checkLevelInvariant(t, l)
	}
}

func TestAddXPIgnoresNonPositive(t *testing.T) {
	l := NewUserLevel()
	if l.AddXP(0) || l.AddXP(-10) {
		t.Fatal("non-positive XP must be ignored")
	}
	if l.TotalXP != 0 {
		t.Fatalf("expected zero total XP, got %d", l.TotalXP)
	}
}

func TestLevelTitles(t *testing.T) {
	cases := map[int]string{
		1:   "Novice Focuser",
		6:   "Apprentice",
		15:  "Focused Worker",
		45:  "Zen Master",
		100: "Ultimate Focus Champion",
	}
	for level, want := range cases {
		l := UserLevel{CurrentLevel: level}
		if got := l.Title(); got != want {
			t.Fatalf("level %d: expected title %q, got %q", level, want, got)
		}
	}
}
