package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"oldisgold-api/internal/models"
	"oldisgold-api/internal/planner"
	"oldisgold-api/internal/store"
)

// SaveProfile writes the profile and a denormalized copy onto the user
// record, then regenerates the plan from the submitted fitness level. The two
// writes are sequential with no rollback; a failed second write leaves the
// collections out of step, which is why it is logged before surfacing.
func (h *Handler) SaveProfile(c *gin.Context) {
	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if profile.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}
	if profile.CreatedAt == "" {
		profile.CreatedAt = nowISO()
	}

	if err := h.store.Put(store.Profiles, store.Key{Partition: profile.UserID}, profile); err != nil {
		log.Printf("[ERROR] SaveProfile: save profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Put(store.Users, store.Key{Partition: profile.UserID}, profile.AsUser()); err != nil {
		log.Printf("[ERROR] SaveProfile: denormalized user write failed, profile %s is ahead of users: %v", profile.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan := planner.Generate(profile.UserID, profile.FitnessLevel)
	if err := h.store.Put(store.Plans, store.Key{Partition: profile.UserID}, plan); err != nil {
		log.Printf("[ERROR] SaveProfile: save plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved"})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Param("user_id")

	var profile models.Profile
	if err := h.store.Get(store.Profiles, store.Key{Partition: userID}, &profile); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		log.Printf("[ERROR] GetProfile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}
