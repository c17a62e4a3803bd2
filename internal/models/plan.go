package models

// Exercise is one catalog-defined movement. Reps and Duration stay free-text
// ("10 each arm", "3 min") because the catalog is written for humans first.
type Exercise struct {
	Name         string `json:"name"`
	Reps         string `json:"reps"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

// WorkoutPlan is the current prescription for a user. Keyed by user_id in the
// store, so a regenerated plan always replaces the previous one.
type WorkoutPlan struct {
	PlanID          string     `json:"plan_id"`
	UserID          string     `json:"user_id"`
	Exercises       []Exercise `json:"exercises"`
	DurationMinutes int        `json:"duration_minutes"`
	Difficulty      string     `json:"difficulty"`
	CreatedAt       string     `json:"created_at"`
}
