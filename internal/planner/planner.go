// Package planner derives workout plans from the exercise catalog.
package planner

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"oldisgold-api/internal/catalog"
	"oldisgold-api/internal/models"
)

// Generate builds a fresh plan for a user at the given fitness level. The
// result is fully derived: same level means the same exercises and duration,
// only plan_id and created_at differ between calls.
func Generate(userID, fitnessLevel string) models.WorkoutPlan {
	level := catalog.Normalize(fitnessLevel)
	exercises := catalog.Exercises(level)

	total := 0
	for _, e := range exercises {
		total += leadingMinutes(e.Duration)
	}

	return models.WorkoutPlan{
		PlanID:          uuid.New().String(),
		UserID:          userID,
		Exercises:       exercises,
		DurationMinutes: total,
		Difficulty:      level,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
}

// leadingMinutes parses the leading integer of a catalog duration such as
// "3 min". Malformed entries count as zero rather than failing the plan.
func leadingMinutes(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}
