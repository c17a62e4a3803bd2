package planner

import (
	"testing"

	"oldisgold-api/internal/catalog"
)

func TestGenerateDurationSums(t *testing.T) {
	tests := []struct {
		level       string
		wantMinutes int
	}{
		{catalog.LevelBeginner, 9},      // 2+2+3+2
		{catalog.LevelIntermediate, 11}, // 3+3+3+2
		{catalog.LevelAdvanced, 11},     // 3+3+3+2
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			plan := Generate("user-1", tt.level)
			if plan.DurationMinutes != tt.wantMinutes {
				t.Errorf("DurationMinutes = %d, want %d", plan.DurationMinutes, tt.wantMinutes)
			}
			if plan.Difficulty != tt.level {
				t.Errorf("Difficulty = %q, want %q", plan.Difficulty, tt.level)
			}
			if plan.UserID != "user-1" {
				t.Errorf("UserID = %q, want user-1", plan.UserID)
			}
			if plan.PlanID == "" || plan.CreatedAt == "" {
				t.Error("plan_id and created_at must be set")
			}

			// The invariant: total equals the sum of the leading integer of
			// each exercise's duration field.
			sum := 0
			for _, e := range plan.Exercises {
				sum += leadingMinutes(e.Duration)
			}
			if plan.DurationMinutes != sum {
				t.Errorf("DurationMinutes = %d, exercises sum to %d", plan.DurationMinutes, sum)
			}
		})
	}
}

func TestGenerateUnknownLevelFallsBack(t *testing.T) {
	plan := Generate("user-1", "superhuman")
	if plan.Difficulty != catalog.LevelBeginner {
		t.Errorf("Difficulty = %q, want %q", plan.Difficulty, catalog.LevelBeginner)
	}
	if plan.DurationMinutes != 9 {
		t.Errorf("DurationMinutes = %d, want 9", plan.DurationMinutes)
	}
}

func TestGenerateDeterministicModuloIdentity(t *testing.T) {
	a := Generate("user-1", catalog.LevelIntermediate)
	b := Generate("user-1", catalog.LevelIntermediate)

	if a.PlanID == b.PlanID {
		t.Error("consecutive plans share a plan_id")
	}
	if len(a.Exercises) != len(b.Exercises) {
		t.Fatalf("exercise counts differ: %d vs %d", len(a.Exercises), len(b.Exercises))
	}
	for i := range a.Exercises {
		if a.Exercises[i] != b.Exercises[i] {
			t.Errorf("exercise %d differs: %+v vs %+v", i, a.Exercises[i], b.Exercises[i])
		}
	}
	if a.DurationMinutes != b.DurationMinutes {
		t.Errorf("durations differ: %d vs %d", a.DurationMinutes, b.DurationMinutes)
	}
}

func TestLeadingMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"3 min", 3},
		{"2 min", 2},
		{"10 min", 10},
		{"min", 0},
		{"", 0},
		{"  5 min ", 5},
	}

	for _, tt := range tests {
		if got := leadingMinutes(tt.duration); got != tt.want {
			t.Errorf("leadingMinutes(%q) = %d, want %d", tt.duration, got, tt.want)
		}
	}
}
