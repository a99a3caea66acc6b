// handlers/food.go
package handlers

import (
	"log"
	"time"

	"fitai/database"
	"fitai/middleware"
	"fitai/models"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
)

type LogFoodRequest struct {
	FoodItem  string `json:"food_item"`
	IsHealthy bool   `json:"is_healthy"`
	MealType  string `json:"meal_type"`
}

// LogFoodEntry records a food log dated now, then re-evaluates achievements
func LogFoodEntry(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req LogFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.FoodItem == "" || req.MealType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Food item and meal type are required"})
	}

	db := database.GetDB()
	entry := models.FoodLog{
		UserID:    userID,
		Date:      time.Now(),
		FoodItem:  req.FoodItem,
		IsHealthy: req.IsHealthy,
		MealType:  req.MealType,
	}

	if err := db.Create(&entry).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log food entry"})
	}

	if err := services.GetAchievementService().CheckAndUnlockAchievements(userID); err != nil {
		log.Printf("❌ Achievement check failed for user %d: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Food logged but achievement check failed"})
	}

	return c.Status(201).JSON(entry)
}

// GetFoodLogs lists the user's food logs, newest first
func GetFoodLogs(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var logs []models.FoodLog
	if err := db.Where("user_id = ?", userID).Order("date DESC").Find(&logs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch food logs"})
	}
	return c.JSON(logs)
}
