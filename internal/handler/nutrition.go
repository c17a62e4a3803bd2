package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oldisgold-api/internal/models"
	"oldisgold-api/internal/store"
)

type logMealRequest struct {
	UserID   string `json:"user_id"`
	MealType string `json:"meal_type"`
	FoodName string `json:"food_name"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
	Date     string `json:"date"`
}

// LogMeal appends a meal entry to the shared progress collection.
func (h *Handler) LogMeal(c *gin.Context) {
	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id required"})
		return
	}
	if req.MealType == "" {
		req.MealType = "snack"
	}

	entry := models.ProgressEntry{
		ProgressID: uuid.New().String(),
		UserID:     req.UserID,
		Date:       resolveDate(req.Date),
		RecordType: models.RecordTypeMeal,
		MealType:   req.MealType,
		FoodName:   req.FoodName,
		Calories:   req.Calories,
		Protein:    req.Protein,
		Carbs:      req.Carbs,
		Fat:        req.Fat,
		CreatedAt:  nowISO(),
	}

	key := store.Key{Partition: entry.UserID, Sort: entry.ProgressID}
	if err := h.store.Put(store.Progress, key, entry); err != nil {
		log.Printf("[ERROR] LogMeal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Meal saved",
		"meal_id": entry.ProgressID,
		"date":    entry.Date,
	})
}

// GetMeals returns a user's logged meals with calorie and protein totals.
func (h *Handler) GetMeals(c *gin.Context) {
	userID := c.Param("user_id")

	meals, err := h.queryEntries(userID, models.RecordTypeMeal)
	if err != nil {
		log.Printf("[ERROR] GetMeals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": meals,
		"count": len(meals),
		"stats": computeNutritionStats(meals),
	})
}

// DeleteMeal removes one meal by its composite key; idempotent like
// DeleteProgress.
func (h *Handler) DeleteMeal(c *gin.Context) {
	userID := c.Param("user_id")
	mealID := c.Param("meal_id")

	key := store.Key{Partition: userID, Sort: mealID}
	if err := h.store.Delete(store.Progress, key); err != nil {
		log.Printf("[ERROR] DeleteMeal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}
