// handlers/plans.go - Routines and nutrition plans (predefined + user-created)
package handlers

import (
	"fitai/database"
	"fitai/middleware"
	"fitai/models"
	"fitai/services"

	"github.com/gofiber/fiber/v2"
)

type PlanRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type ActivateRequest struct {
	RoutineID   int `json:"routine_id"`
	NutritionID int `json:"nutrition_id"`
}

// GetRoutines lists the user's routines followed by the predefined ones
func GetRoutines(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var own []models.Routine
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&own).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch routines"})
	}

	plans := make([]services.PredefinedPlan, 0, len(own))
	for _, r := range own {
		plans = append(plans, services.RoutineToPlan(r))
	}
	return c.JSON(services.MergePlans(services.PredefinedRoutines, plans))
}

// CreateRoutine stores a user-authored routine
func CreateRoutine(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Routine name is required"})
	}

	db := database.GetDB()
	routine := models.Routine{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
	}
	if err := db.Create(&routine).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create routine"})
	}
	return c.JSON(routine)
}

// ActivateRoutine pins the user's active routine (upsert by user). Negative
// ids select predefined routines.
func ActivateRoutine(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req ActivateRequest
	if err := c.BodyParser(&req); err != nil || req.RoutineID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Missing routine id"})
	}

	if req.RoutineID < 0 && services.PredefinedRoutineByID(req.RoutineID) == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Routine not found"})
	}
	db := database.GetDB()
	if req.RoutineID > 0 {
		var routine models.Routine
		if err := db.Where("id = ? AND user_id = ?", req.RoutineID, userID).First(&routine).Error; err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "Routine not found"})
		}
	}

	var active models.ActiveRoutine
	if err := db.Where("user_id = ?", userID).First(&active).Error; err == nil {
		active.RoutineID = req.RoutineID
		if err := db.Save(&active).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to activate routine"})
		}
	} else {
		active = models.ActiveRoutine{UserID: userID, RoutineID: req.RoutineID}
		if err := db.Create(&active).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to activate routine"})
		}
	}
	return c.JSON(fiber.Map{"success": true, "message": "Routine activated"})
}

// GetNutritionPlans lists the user's plans followed by the predefined ones
func GetNutritionPlans(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var own []models.NutritionPlan
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&own).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch nutrition plans"})
	}

	plans := make([]services.PredefinedPlan, 0, len(own))
	for _, n := range own {
		plans = append(plans, services.NutritionToPlan(n))
	}
	return c.JSON(services.MergePlans(services.PredefinedNutritionPlans, plans))
}

// CreateNutritionPlan stores a user-authored nutrition plan
func CreateNutritionPlan(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req PlanRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Plan name is required"})
	}

	db := database.GetDB()
	plan := models.NutritionPlan{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Content:     req.Content,
	}
	if err := db.Create(&plan).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create nutrition plan"})
	}
	return c.JSON(plan)
}

// ActivateNutrition pins the user's active nutrition plan (upsert by user)
func ActivateNutrition(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req ActivateRequest
	if err := c.BodyParser(&req); err != nil || req.NutritionID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Missing nutrition plan id"})
	}

	if req.NutritionID < 0 && services.PredefinedNutritionByID(req.NutritionID) == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Nutrition plan not found"})
	}
	db := database.GetDB()
	if req.NutritionID > 0 {
		var plan models.NutritionPlan
		if err := db.Where("id = ? AND user_id = ?", req.NutritionID, userID).First(&plan).Error; err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "Nutrition plan not found"})
		}
	}

	var active models.ActiveNutrition
	if err := db.Where("user_id = ?", userID).First(&active).Error; err == nil {
		active.NutritionID = req.NutritionID
		if err := db.Save(&active).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to activate nutrition plan"})
		}
	} else {
		active = models.ActiveNutrition{UserID: userID, NutritionID: req.NutritionID}
		if err := db.Create(&active).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to activate nutrition plan"})
		}
	}
	return c.JSON(fiber.Map{"success": true, "message": "Nutrition plan activated"})
}

// GetActiveNutrition returns the pinned plan, or an empty object when none
func GetActiveNutrition(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var active models.ActiveNutrition
	if err := db.Where("user_id = ?", userID).First(&active).Error; err != nil {
		return c.JSON(fiber.Map{})
	}

	if active.NutritionID < 0 {
		return c.JSON(fiber.Map{"nutrition": services.PredefinedNutritionByID(active.NutritionID)})
	}

	var plan models.NutritionPlan
	if err := db.First(&plan, active.NutritionID).Error; err != nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(fiber.Map{"nutrition": plan})
}
