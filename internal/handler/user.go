package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oldisgold-api/internal/catalog"
	"oldisgold-api/internal/models"
	"oldisgold-api/internal/planner"
	"oldisgold-api/internal/store"
)

type createUserRequest struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	FitnessLevel     string   `json:"fitness_level"`
	Goals            []string `json:"goals"`
	HealthConditions []string `json:"health_conditions"`
}

// CreateUser stores a new user and immediately generates their first workout
// plan. A missing user_id gets a full random UUID; short truncated IDs are a
// collision hazard at scale.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = uuid.New().String()
	}
	if req.Name == "" {
		req.Name = "Friend"
	}
	if req.Age == 0 {
		req.Age = 65
	}

	user := models.User{
		UserID:           userID,
		Name:             req.Name,
		Age:              req.Age,
		FitnessLevel:     catalog.Normalize(req.FitnessLevel),
		Goals:            req.Goals,
		HealthConditions: req.HealthConditions,
		CreatedAt:        nowISO(),
	}

	if err := h.store.Put(store.Users, store.Key{Partition: userID}, user); err != nil {
		log.Printf("[ERROR] CreateUser: save user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan := planner.Generate(userID, user.FitnessLevel)
	if err := h.store.Put(store.Plans, store.Key{Partition: userID}, plan); err != nil {
		log.Printf("[ERROR] CreateUser: save initial plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) GetUser(c *gin.Context) {
	userID := c.Param("user_id")

	var user models.User
	if err := h.store.Get(store.Users, store.Key{Partition: userID}, &user); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[ERROR] GetUser: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
