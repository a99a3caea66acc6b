// handlers/achievements.go
package handlers

import (
	"errors"

	"fitai/middleware"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
)

type UnlockRequest struct {
	Key string `json:"key"`
}

type EquipRequest struct {
	AchievementID uint `json:"achievement_id"`
	Equipped      bool `json:"equipped"`
}

// GetAchievements lists the whole catalog, seeding the built-ins first so a
// fresh database serves a complete list.
func GetAchievements(c *fiber.Ctx) error {
	svc := services.GetAchievementService()
	svc.SeedAchievementsIfNeeded()

	achievements, err := svc.ListAchievements()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}
	return c.JSON(achievements)
}

// GetAchievementsProgress returns every achievement annotated with the
// current user's unlock state and clamped progress.
func GetAchievementsProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	views, err := services.GetAchievementService().GetAchievementsWithProgress(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute achievement progress"})
	}
	return c.JSON(views)
}

// CheckAchievements forces a rule evaluation for the current user
func CheckAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	if err := services.GetAchievementService().CheckAndUnlockAchievements(userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check achievements"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Achievements checked and updated"})
}

// UnlockAchievement is the manual unlock path (testing/admin)
func UnlockAchievement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UnlockRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing 'key' field"})
	}

	ach, err := services.GetAchievementService().UnlockAchievementByKey(userID, req.Key)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Achievement not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unlock achievement"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Achievement '" + ach.Name + "' unlocked"})
}

// GetUserAchievements lists the current user's unlock rows, newest first
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	unlocks, err := services.GetAchievementService().GetUserAchievements(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}
	return c.JSON(unlocks)
}

// EquipAchievement equips one unlocked achievement, or clears the equipped
// badge when equipped=false.
func EquipAchievement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req EquipRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := services.GetAchievementService().SetEquipped(userID, req.AchievementID, req.Equipped); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Achievement not unlocked"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to equip achievement"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Achievement equipped successfully"})
}

// GetEquippedAchievement returns the equipped badge, 204 when none
func GetEquippedAchievement(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	badge, err := services.GetAchievementService().GetEquipped(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch equipped achievement"})
	}
	if badge == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(badge)
}
