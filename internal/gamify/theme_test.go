package gamify

import "testing"

func TestUnlockedThemeIDs(t *testing.T) {
	cases := []struct {
		total int
		want  int
	}{
		{0, 1},
		{24, 1},
		{25, 2},
		{50, 3},
		{100, 4},
		{500, 4},
	}
	for _, tc := range cases {
		got := UnlockedThemeIDs(tc.total)
		if len(got) != tc.want {
			t.Fatalf("total %d: expected %d themes, got %v", tc.total, tc.want, got)
		}
		if got[0] != DefaultThemeID {
			t.Fatalf("default theme must always be unlocked, got %v", got)
		}
	}
}

func TestMergeUnlockedThemesIsMonotonic(t *testing.T) {
	// Stored set has a theme the recomputation would not grant; the set
	// must never shrink.
	merged := MergeUnlockedThemes([]string{DefaultThemeID, "enchanted_forest"}, 25)
	want := map[string]bool{DefaultThemeID: true, "enchanted_forest": true, "desert_oasis": true}
	if len(merged) != len(want) {
		t.Fatalf("unexpected merged set: %v", merged)
	}
	for _, id := range merged {
		if !want[id] {
			t.Fatalf("unexpected theme %q in merged set %v", id, merged)
		}
	}
}

func TestThemeByID(t *testing.T) {
	theme, ok := ThemeByID("Desert_Oasis")
	if !ok || theme.UnlockRequirement != 25 {
		t.Fatalf("expected desert oasis at threshold 25, got %+v ok=%v", theme, ok)
	}
	if _, ok := ThemeByID("volcano"); ok {
		t.Fatal("unknown theme id must not resolve")
	}
}
