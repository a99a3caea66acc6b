// handlers/progress.go
package handlers

import (
	"log"
	"strconv"
	"time"

	"fitai/database"
	"fitai/middleware"
	"fitai/models"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
)

type ProgressRequest struct {
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	Notes  *string  `json:"notes"`
}

// GetProgress lists the user's entries, oldest first. The achievement
// engine's weight rule reads the first and last of this ordering.
func GetProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var entries []models.ProgressEntry
	if err := db.Where("user_id = ?", userID).Order("date ASC").Find(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch progress entries"})
	}
	return c.JSON(entries)
}

// CreateProgress records a new entry dated now, then re-evaluates achievements
func CreateProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Weight == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Weight is required"})
	}

	db := database.GetDB()
	entry := models.ProgressEntry{
		UserID: userID,
		Date:   time.Now(),
		Weight: req.Weight,
		Height: req.Height,
		Notes:  req.Notes,
	}

	if err := db.Create(&entry).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create progress entry"})
	}

	if err := services.GetAchievementService().CheckAndUnlockAchievements(userID); err != nil {
		log.Printf("❌ Achievement check failed for user %d: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Progress saved but achievement check failed"})
	}

	return c.Status(201).JSON(entry)
}

// DeleteProgress removes one of the user's own entries
func DeleteProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid progress id"})
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.ProgressEntry{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete progress entry"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Progress entry not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
