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

// GetPlan returns the user's current plan. When no plan exists yet but the
// user does, one is generated and persisted on the spot.
func (h *Handler) GetPlan(c *gin.Context) {
	userID := c.Param("user_id")

	var plan models.WorkoutPlan
	err := h.store.Get(store.Plans, store.Key{Partition: userID}, &plan)
	if err == nil {
		c.JSON(http.StatusOK, plan)
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[ERROR] GetPlan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.store.Get(store.Users, store.Key{Partition: userID}, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] GetPlan: load user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan = planner.Generate(userID, user.FitnessLevel)
	if err := h.store.Put(store.Plans, store.Key{Partition: userID}, plan); err != nil {
		log.Printf("[ERROR] GetPlan: save generated plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// RegeneratePlan rebuilds the plan from the user's current fitness level and
// overwrites whatever plan existed before.
func (h *Handler) RegeneratePlan(c *gin.Context) {
	userID := c.Param("user_id")

	var user models.User
	if err := h.store.Get(store.Users, store.Key{Partition: userID}, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] RegeneratePlan: load user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan := planner.Generate(userID, user.FitnessLevel)
	if err := h.store.Put(store.Plans, store.Key{Partition: userID}, plan); err != nil {
		log.Printf("[ERROR] RegeneratePlan: save plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, plan)
}
