// handlers/profile.go
package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"fitai/database"
	"fitai/middleware"
	"fitai/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const avatarUploadDir = "./uploads/avatars"

// GetProfile returns the current user's profile
func GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Profile not found"})
	}
	return c.JSON(profile)
}

// UpdateProfile upserts the profile from a multipart form; the optional
// "image" part replaces the avatar.
func UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		profile = models.UserProfile{UserID: userID}
	}

	if v := c.FormValue("age"); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			profile.Age = &age
		}
	}
	if v := c.FormValue("weight"); v != "" {
		if weight, err := strconv.ParseFloat(v, 64); err == nil {
			profile.Weight = &weight
		}
	}
	if v := c.FormValue("height"); v != "" {
		if height, err := strconv.ParseFloat(v, 64); err == nil {
			profile.Height = &height
		}
	}
	if v := c.FormValue("goal"); v != "" {
		profile.Goal = v
	}
	if v := c.FormValue("level"); v != "" {
		profile.Level = v
	}
	if v := c.FormValue("bio"); v != "" {
		profile.Bio = v
	}
	if v := c.FormValue("socials"); v != "" {
		profile.Socials = v
	}

	if file, err := c.FormFile("image"); err == nil {
		if err := os.MkdirAll(avatarUploadDir, 0o755); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
		}
		filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
		if err := c.SaveFile(file, filepath.Join(avatarUploadDir, filename)); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save image"})
		}
		profile.Image = "/uploads/avatars/" + filename
	}

	if err := db.Save(&profile).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}
	return c.JSON(profile)
}
