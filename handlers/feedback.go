package handlers

import (
	"fitai/database"
	"fitai/models"

	"github.com/gofiber/fiber/v2"
)

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// CreateFeedback stores a feedback entry
func CreateFeedback(c *fiber.Ctx) error {
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Email == "" || req.Type == "" || req.Message == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All fields are required"})
	}

	feedback := models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Type:    req.Type,
		Message: req.Message,
	}
	if err := database.GetDB().Create(&feedback).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save feedback"})
	}
	return c.Status(201).JSON(fiber.Map{"success": true, "message": "Thanks for your feedback"})
}
