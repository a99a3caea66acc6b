// main.go
package main

import (
	"log"
	"os"
	"time"

	"fitai/database"
	"fitai/handlers"
	"fitai/middleware"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Initialize services
	services.InitAchievementService(database.GetDB())
	services.InitCoachService(database.GetDB())

	// Seed the built-in achievement catalog
	log.Println("Seeding achievement catalog...")
	services.GetAchievementService().SeedAchievementsIfNeeded()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    8 * 1024 * 1024, // 8MB, room for chat/avatar image uploads
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// Serve uploaded files (avatars, chat images)
	app.Static("/uploads", "./uploads")
	app.Static("/images", "./static/images")

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// Achievement routes
	achievementGroup := api.Group("/achievements")
	achievementGroup.Use(middleware.AuthMiddleware)
	achievementGroup.Get("/", handlers.GetAchievements)
	achievementGroup.Get("/progress", handlers.GetAchievementsProgress)
	achievementGroup.Get("/user", handlers.GetUserAchievements)
	achievementGroup.Get("/equipped", handlers.GetEquippedAchievement)
	achievementGroup.Post("/check", handlers.CheckAchievements)
	achievementGroup.Post("/unlock", handlers.UnlockAchievement)
	achievementGroup.Post("/equip", handlers.EquipAchievement)

	// Workout routes
	workoutGroup := api.Group("/workouts")
	workoutGroup.Use(middleware.AuthMiddleware)
	workoutGroup.Get("/sessions", handlers.GetWorkoutSessions)
	workoutGroup.Post("/sessions", handlers.LogWorkoutSession)
	workoutGroup.Get("/schedule", handlers.GetWorkoutSchedule)
	workoutGroup.Post("/schedule", handlers.CreateWorkoutSchedule)
	workoutGroup.Delete("/schedule/:id", handlers.DeleteWorkoutSchedule)

	// Food log routes
	foodGroup := api.Group("/food-logs")
	foodGroup.Use(middleware.AuthMiddleware)
	foodGroup.Get("/", handlers.GetFoodLogs)
	foodGroup.Post("/", handlers.LogFoodEntry)

	// Progress routes
	progressGroup := api.Group("/progress")
	progressGroup.Use(middleware.AuthMiddleware)
	progressGroup.Get("/", handlers.GetProgress)
	progressGroup.Post("/", handlers.CreateProgress)
	progressGroup.Delete("/:id", handlers.DeleteProgress)

	// Friend routes
	friendGroup := api.Group("/friends")
	friendGroup.Use(middleware.AuthMiddleware)
	friendGroup.Get("/", handlers.GetFriends)
	friendGroup.Get("/search", handlers.SearchUsers)
	friendGroup.Get("/requests", handlers.GetFriendRequests)
	friendGroup.Post("/request", handlers.SendFriendRequest)
	friendGroup.Post("/respond", handlers.RespondFriendRequest)
	friendGroup.Get("/:id/profile", handlers.GetFriendProfile)
	friendGroup.Get("/:id/chat", handlers.GetDirectMessages)
	friendGroup.Post("/:id/chat", handlers.SendDirectMessage)

	// Profile routes
	profileGroup := api.Group("/profile")
	profileGroup.Use(middleware.AuthMiddleware)
	profileGroup.Get("/", handlers.GetProfile)
	profileGroup.Put("/", handlers.UpdateProfile)

	// AI coach routes
	api.Post("/chat", middleware.AuthMiddleware, handlers.CoachChat)
	api.Get("/messages", middleware.AuthMiddleware, handlers.GetCoachMessages)

	// Coach memory routes
	memoryGroup := api.Group("/memory")
	memoryGroup.Use(middleware.AuthMiddleware)
	memoryGroup.Get("/", handlers.GetMemories)
	memoryGroup.Post("/", handlers.CreateMemory)
	memoryGroup.Put("/", handlers.UpdateMemory)
	memoryGroup.Delete("/:id", handlers.DeleteMemory)

	// Routine routes
	routineGroup := api.Group("/routines")
	routineGroup.Use(middleware.AuthMiddleware)
	routineGroup.Get("/", handlers.GetRoutines)
	routineGroup.Post("/", handlers.CreateRoutine)
	routineGroup.Post("/activate", handlers.ActivateRoutine)

	// Nutrition plan routes
	nutritionGroup := api.Group("/nutrition")
	nutritionGroup.Use(middleware.AuthMiddleware)
	nutritionGroup.Get("/", handlers.GetNutritionPlans)
	nutritionGroup.Post("/", handlers.CreateNutritionPlan)
	nutritionGroup.Post("/activate", handlers.ActivateNutrition)
	nutritionGroup.Get("/active", handlers.GetActiveNutrition)

	// Feedback
	api.Post("/feedback", handlers.CreateFeedback)

	// WebSocket chat endpoint
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(handlers.ChatSocket))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🌐 WebSocket chat available at ws://localhost:%s/ws/chat", port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
