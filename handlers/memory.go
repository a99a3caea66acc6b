// handlers/memory.go - CRUD over the AI coach's remembered facts
package handlers

import (
	"strconv"

	"fitai/database"
	"fitai/middleware"
	"fitai/models"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
)

type MemoryRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type UpdateMemoryRequest struct {
	ID    uint   `json:"id"`
	Value string `json:"value"`
}

// GetMemories lists the user's stored facts, most recently updated first
func GetMemories(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	memories, err := services.GetCoachService().Memories(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch memories"})
	}
	return c.JSON(memories)
}

// CreateMemory stores one fact for the user
func CreateMemory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req MemoryRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" || req.Value == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Key and value are required"})
	}

	db := database.GetDB()
	memory := models.UserMemory{UserID: userID, Key: req.Key, Value: req.Value}
	if err := db.Create(&memory).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save memory"})
	}
	return c.Status(201).JSON(memory)
}

// UpdateMemory changes the value of one of the user's facts
func UpdateMemory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateMemoryRequest
	if err := c.BodyParser(&req); err != nil || req.ID == 0 || req.Value == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Memory id and value are required"})
	}

	db := database.GetDB()
	var memory models.UserMemory
	if err := db.Where("id = ? AND user_id = ?", req.ID, userID).First(&memory).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Memory not found"})
	}

	memory.Value = req.Value
	if err := db.Save(&memory).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update memory"})
	}
	return c.JSON(memory)
}

// DeleteMemory removes one of the user's own facts
func DeleteMemory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid memory id"})
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserMemory{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete memory"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Memory not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Memory deleted"})
}
