package handler

import (
	"encoding/json"
	"sort"
	"time"

	"oldisgold-api/internal/models"
	"oldisgold-api/internal/store"
)

// queryEntries loads one user's progress partition and keeps only entries of
// the wanted record type, oldest first.
func (h *Handler) queryEntries(userID, recordType string) ([]models.ProgressEntry, error) {
	docs, err := h.store.Query(store.Progress, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ProgressEntry, 0, len(docs))
	for _, doc := range docs {
		var entry models.ProgressEntry
		if err := json.Unmarshal(doc, &entry); err != nil {
			return nil, err
		}
		if entry.RecordType == recordType {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt < entries[j].CreatedAt
		}
		return entries[i].ProgressID < entries[j].ProgressID
	})
	return entries, nil
}

// computeProgressStats aggregates completed workouts. The streak is a real
// consecutive-day count over distinct entry dates, walked backward from
// today; a day with no workout yet does not zero the run until it is over,
// so the walk may anchor on yesterday instead.
func computeProgressStats(entries []models.ProgressEntry, today time.Time) models.ProgressStats {
	stats := models.ProgressStats{}
	days := make(map[string]bool)

	for _, e := range entries {
		if !e.WorkoutCompleted {
			continue
		}
		stats.TotalWorkouts++
		stats.TotalMinutes += e.DurationMinutes
		days[e.Date] = true
	}

	day := today
	if !days[day.Format(dateLayout)] {
		day = day.AddDate(0, 0, -1)
	}
	for days[day.Format(dateLayout)] {
		stats.Streak++
		day = day.AddDate(0, 0, -1)
	}
	return stats
}

func computeNutritionStats(meals []models.ProgressEntry) models.NutritionStats {
	stats := models.NutritionStats{}
	for _, m := range meals {
		stats.TotalCalories += m.Calories
		stats.TotalProtein += m.Protein
	}
	return stats
}
