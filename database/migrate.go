// database/migrate.go - Database Migration Runner
package database

import (
	"fitai/models"
	"log"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Achievement{},
		&models.UserAchievement{},
		&models.WorkoutSession{},
		&models.ExerciseLog{},
		&models.FoodLog{},
		&models.ProgressEntry{},
		&models.WorkoutSchedule{},
		&models.Friendship{},
		&models.Routine{},
		&models.NutritionPlan{},
		&models.ActiveRoutine{},
		&models.ActiveNutrition{},
		&models.CoachMessage{},
		&models.UserMemory{},
		&models.DirectMessage{},
		&models.Feedback{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates the query-path indexes AutoMigrate doesn't cover
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")

	// Activity indexes (the achievement engine scans these per user)
	db.Exec("CREATE INDEX IF NOT EXISTS idx_workout_sessions_user_date ON workout_sessions(user_id, date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_food_logs_user_date ON food_logs(user_id, date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_progress_entries_user_date ON progress_entries(user_id, date)")

	// Achievement indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_equipped ON user_achievements(user_id, equipped)")

	// Friendship indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_friendships_requester ON friendships(requester_id, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_friendships_receiver ON friendships(receiver_id, status)")

	// Chat indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_direct_messages_pair ON direct_messages(sender_id, receiver_id, created_at)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_coach_messages_user ON coach_messages(user_id, created_at)")

	log.Println("✅ Indexes created successfully")
}
