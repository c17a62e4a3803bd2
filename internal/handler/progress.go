package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oldisgold-api/internal/models"
	"oldisgold-api/internal/store"
)

// Progress reads return at most this many entries, newest last.
const recentEntries = 10

type logProgressRequest struct {
	UserID             string `json:"user_id"`
	ExercisesCompleted int    `json:"exercises_completed"`
	TotalExercises     int    `json:"total_exercises"`
	DurationMinutes    int    `json:"duration_minutes"`
	CaloriesBurned     int    `json:"calories_burned"`
	Date               string `json:"date"`
}

// LogProgress appends a workout entry under a fresh progress_id.
func (h *Handler) LogProgress(c *gin.Context) {
	var req logProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}

	entry := models.ProgressEntry{
		ProgressID:         uuid.New().String(),
		UserID:             req.UserID,
		Date:               resolveDate(req.Date),
		RecordType:         models.RecordTypeWorkout,
		WorkoutCompleted:   true,
		ExercisesCompleted: req.ExercisesCompleted,
		TotalExercises:     req.TotalExercises,
		DurationMinutes:    req.DurationMinutes,
		CaloriesBurned:     req.CaloriesBurned,
		CreatedAt:          nowISO(),
	}

	key := store.Key{Partition: entry.UserID, Sort: entry.ProgressID}
	if err := h.store.Put(store.Progress, key, entry); err != nil {
		log.Printf("[ERROR] LogProgress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Progress saved",
		"progress_id": entry.ProgressID,
		"date":        entry.Date,
	})
}

// GetProgress returns a user's recent workout entries plus aggregate stats.
// Meals share the collection, so the discriminator filter matters here.
func (h *Handler) GetProgress(c *gin.Context) {
	userID := c.Param("user_id")

	entries, err := h.queryEntries(userID, models.RecordTypeWorkout)
	if err != nil {
		log.Printf("[ERROR] GetProgress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats := computeProgressStats(entries, time.Now().UTC())

	recent := entries
	if len(recent) > recentEntries {
		recent = recent[len(recent)-recentEntries:]
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"entries": recent,
		"stats":   stats,
	})
}

// DeleteProgress removes one entry by its composite key. Deleting an entry
// that is already gone is not an error.
func (h *Handler) DeleteProgress(c *gin.Context) {
	userID := c.Param("user_id")
	progressID := c.Param("progress_id")

	key := store.Key{Partition: userID, Sort: progressID}
	if err := h.store.Delete(store.Progress, key); err != nil {
		log.Printf("[ERROR] DeleteProgress: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progress deleted"})
}
