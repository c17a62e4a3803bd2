package models

// Record type discriminators for the shared progress collection.
const (
	RecordTypeWorkout = "workout"
	RecordTypeMeal    = "meal"
)

// ProgressEntry is one logged workout or meal. Both kinds live in the same
// collection under a (user_id, progress_id) composite key and are told apart
// by RecordType, so the unused half of the fields is omitted from JSON.
type ProgressEntry struct {
	ProgressID string `json:"progress_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	RecordType string `json:"record_type"`

	// Workout fields.
	WorkoutCompleted   bool `json:"workout_completed,omitempty"`
	ExercisesCompleted int  `json:"exercises_completed,omitempty"`
	TotalExercises     int  `json:"total_exercises,omitempty"`
	DurationMinutes    int  `json:"duration_minutes,omitempty"`
	CaloriesBurned     int  `json:"calories_burned,omitempty"`

	// Meal fields.
	MealType string `json:"meal_type,omitempty"`
	FoodName string `json:"food_name,omitempty"`
	Calories int    `json:"calories,omitempty"`
	Protein  int    `json:"protein,omitempty"`
	Carbs    int    `json:"carbs,omitempty"`
	Fat      int    `json:"fat,omitempty"`

	CreatedAt string `json:"created_at"`
}

// ProgressStats summarizes a user's completed workouts.
type ProgressStats struct {
	TotalWorkouts int `json:"total_workouts"`
	TotalMinutes  int `json:"total_minutes"`
	Streak        int `json:"streak"`
}

// NutritionStats summarizes a user's logged meals.
type NutritionStats struct {
	TotalCalories int `json:"total_calories"`
	TotalProtein  int `json:"total_protein"`
}
