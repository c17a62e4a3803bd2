// Package server assembles the gin engine: middleware, CORS policy, the
// route table and the unmatched-route envelope.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"oldisgold-api/internal/handler"
	"oldisgold-api/internal/middleware"
)

func NewRouter(h *handler.Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimit())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Content-Type", "Authorization"}
	config.OptionsResponseStatusCode = http.StatusOK
	router.Use(cors.New(config))

	router.GET("/", h.Health)
	router.GET("/health", h.Health)

	router.POST("/users", h.CreateUser)
	router.GET("/users/:user_id", h.GetUser)

	router.POST("/profile", h.SaveProfile)
	router.GET("/profile/:user_id", h.GetProfile)

	router.GET("/plans/:user_id", h.GetPlan)
	router.POST("/plans/:user_id/regenerate", h.RegeneratePlan)

	router.POST("/progress", h.LogProgress)
	router.GET("/progress/:user_id", h.GetProgress)
	router.DELETE("/progress/:user_id/:progress_id", h.DeleteProgress)

	router.POST("/nutrition", h.LogMeal)
	router.GET("/nutrition/:user_id", h.GetMeals)
	router.DELETE("/nutrition/:user_id/:meal_id", h.DeleteMeal)

	router.NoRoute(func(c *gin.Context) {
		// Bare OPTIONS requests without preflight headers bypass the CORS
		// middleware; they still get a 200 with no body.
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusOK)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	return router
}
