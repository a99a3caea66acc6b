// handlers/workouts.go
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

type LogWorkoutRequest struct {
	ExerciseName  string  `json:"exercise_name"`
	MuscleGroup   *string `json:"muscle_group"`
	RepsAndWeight string  `json:"reps_and_weight"`
}

type ScheduleRequest struct {
	Day     string `json:"day"`
	Routine string `json:"routine"`
}

// LogWorkoutSession records one exercise entry as a new session dated now,
// then re-evaluates achievements.
func LogWorkoutSession(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req LogWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.ExerciseName == "" || req.RepsAndWeight == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Exercise name and reps/weight are required"})
	}

	db := database.GetDB()
	session := models.WorkoutSession{
		UserID: userID,
		Date:   time.Now(),
		Exercises: []models.ExerciseLog{
			{
				ExerciseName:  req.ExerciseName,
				MuscleGroup:   req.MuscleGroup,
				RepsAndWeight: req.RepsAndWeight,
			},
		},
	}

	if err := db.Create(&session).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log workout session"})
	}

	if err := services.GetAchievementService().CheckAndUnlockAchievements(userID); err != nil {
		log.Printf("❌ Achievement check failed for user %d: %v", userID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Workout logged but achievement check failed"})
	}

	return c.Status(201).JSON(session)
}

// GetWorkoutSessions lists the user's sessions with their exercise entries
func GetWorkoutSessions(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var sessions []models.WorkoutSession
	if err := db.Preload("Exercises").Where("user_id = ?", userID).Order("date DESC").Find(&sessions).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch workout sessions"})
	}
	return c.JSON(sessions)
}

// GetWorkoutSchedule lists the user's weekly plan slots
func GetWorkoutSchedule(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var schedule []models.WorkoutSchedule
	if err := db.Where("user_id = ?", userID).Order("day ASC").Find(&schedule).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch schedule"})
	}
	return c.JSON(schedule)
}

// CreateWorkoutSchedule adds a plan slot
func CreateWorkoutSchedule(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil || req.Day == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Day and routine are required"})
	}

	db := database.GetDB()
	entry := models.WorkoutSchedule{UserID: userID, Day: req.Day, Routine: req.Routine}
	if err := db.Create(&entry).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create schedule entry"})
	}
	return c.JSON(entry)
}

// DeleteWorkoutSchedule removes one of the user's own plan slots
func DeleteWorkoutSchedule(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid schedule id"})
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.WorkoutSchedule{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule entry"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Schedule entry not found"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Schedule entry deleted"})
}
