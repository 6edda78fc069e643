package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/Mesele-shishay/Mu-Student-portal-api/docs"

	"github.com/gin-contrib/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MU Student Portal API
// @version 1.0
// @description Authenticates against the Mekelle University student portal and returns the scraped student record.
// @host localhost:3000
// @BasePath /
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	cfg := LoadConfig()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", handleHealth)
	router.POST("/student/data", handleStudentData(cfg))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success":   false,
			"error":     "Not Found",
			"timestamp": timestamp(),
		})
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "API is healthy",
		"timestamp": timestamp(),
	})
}

// @Summary Login and scrape the full student record
// @Tags Student
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Portal credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /student/data [post]
func handleStudentData(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		credentials, appErr := bindCredentials(c)
		if appErr != nil {
			renderError(c, appErr)
			return
		}

		service, err := NewStudentDataService(cfg)
		if err != nil {
			renderError(c, serviceUnavailableError("Failed to create portal session", err))
			return
		}

		data, err := service.GetStudentData(c.Request.Context(), credentials)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"data":      data,
			"timestamp": timestamp(),
		})
	}
}

// bindCredentials reads credentials from the JSON body, falling back to
// query parameters, and enforces the two-non-empty-strings-of-at-most-100
// contract before the scrape pipeline runs.
func bindCredentials(c *gin.Context) (LoginRequest, *AppError) {
	var credentials LoginRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		credentials.Username = c.Query("username")
		credentials.Password = c.Query("password")
	}

	var details []FieldError
	for _, field := range []struct {
		name  string
		value string
	}{
		{"username", credentials.Username},
		{"password", credentials.Password},
	} {
		if field.value == "" {
			details = append(details, FieldError{Field: field.name, Message: "is required"})
		} else if len(field.value) > 100 {
			details = append(details, FieldError{Field: field.name, Message: "must be at most 100 characters"})
		}
	}
	if len(details) > 0 {
		return credentials, validationError(details)
	}
	return credentials, nil
}

func renderError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"error":     "Internal Server Error",
			"code":      "INTERNAL_ERROR",
			"timestamp": timestamp(),
		})
		return
	}

	body := gin.H{
		"success":   false,
		"error":     appErr.Message,
		"code":      appErr.Code,
		"timestamp": timestamp(),
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode(), body)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
