// handlers/chat.go - AI coach conversation endpoints
package handlers

import (
	"fitai/middleware"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
)

type CoachChatRequest struct {
	Content string `json:"content"`
}

// CoachChat forwards the user's message to the AI coach and returns the reply
func CoachChat(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CoachChatRequest
	if err := c.BodyParser(&req); err != nil || req.Content == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Message content is required"})
	}

	reply, err := services.GetCoachService().Chat(userID, req.Content)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Coach is unavailable right now"})
	}
	return c.JSON(reply)
}

// GetCoachMessages returns the stored conversation, oldest first
func GetCoachMessages(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	history, err := services.GetCoachService().History(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(fiber.Map{"messages": history})
}
