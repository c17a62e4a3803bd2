// Package catalog holds the fixed exercise library. Plans are derived from it
// and never written back, so the tables here are the single source of truth
// for what each fitness level prescribes.
package catalog

import "oldisgold-api/internal/models"

// Canonical fitness levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

var exercises = map[string][]models.Exercise{
	LevelBeginner: {
		{Name: "Seated Arm Raises", Reps: "10 each arm", Duration: "2 min", Instructions: "Raise arms slowly overhead"},
		{Name: "Ankle Circles", Reps: "10 each foot", Duration: "2 min", Instructions: "Rotate ankles in circles"},
		{Name: "Seated Marching", Reps: "20 steps", Duration: "3 min", Instructions: "Lift knees while seated"},
		{Name: "Neck Stretches", Reps: "5 each side", Duration: "2 min", Instructions: "Gentle neck rotations"},
	},
	LevelIntermediate: {
		{Name: "Standing Leg Raises", Reps: "10 each", Duration: "3 min", Instructions: "Hold chair, lift leg to side"},
		{Name: "Wall Push-ups", Reps: "10", Duration: "3 min", Instructions: "Push-ups against wall"},
		{Name: "Heel-to-Toe Walk", Reps: "20 steps", Duration: "3 min", Instructions: "Walk in straight line"},
		{Name: "Calf Raises", Reps: "15", Duration: "2 min", Instructions: "Rise on toes, hold chair"},
	},
	LevelAdvanced: {
		{Name: "Squats with Chair", Reps: "10", Duration: "3 min", Instructions: "Squat to chair height"},
		{Name: "Standing Marches", Reps: "30", Duration: "3 min", Instructions: "March in place with arm swing"},
		{Name: "Side Steps", Reps: "10 each side", Duration: "3 min", Instructions: "Step side to side"},
		{Name: "Standing Balance", Reps: "30 sec each leg", Duration: "2 min", Instructions: "Stand on one leg"},
	},
}

// Normalize maps an arbitrary level tag to a canonical one. Unknown tags fall
// back to beginner; that is the defined default, not an error.
func Normalize(level string) string {
	if _, ok := exercises[level]; ok {
		return level
	}
	return LevelBeginner
}

// Exercises returns the ordered exercise list for a level, after Normalize.
// The returned slice is a copy; callers may attach it to a plan freely.
func Exercises(level string) []models.Exercise {
	src := exercises[Normalize(level)]
	out := make([]models.Exercise, len(src))
	copy(out, src)
	return out
}

// Levels lists the canonical level tags in ascending order of difficulty.
func Levels() []string {
	return []string{LevelBeginner, LevelIntermediate, LevelAdvanced}
}
