// models/activity.go - Activity facts the achievement engine reads
package models

import "time"

// WorkoutSession groups the exercise entries logged in one visit.
type WorkoutSession struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	Date   time.Time `gorm:"not null;index" json:"date"`

	Exercises []ExerciseLog `gorm:"foreignKey:SessionID" json:"exercises,omitempty"`
	User      *User         `gorm:"foreignKey:UserID" json:"-"`
}

// ExerciseLog keeps RepsAndWeight as free text ("3x10 60kg", "45 min").
// Cardio entries encode minutes as the leading integer of that field.
type ExerciseLog struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	SessionID     uint    `gorm:"not null;index" json:"session_id"`
	ExerciseName  string  `gorm:"not null" json:"exercise_name"`
	MuscleGroup   *string `json:"muscle_group,omitempty"`
	RepsAndWeight string  `json:"reps_and_weight"`
}

type FoodLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	FoodItem  string    `gorm:"not null" json:"food_item"`
	IsHealthy bool      `gorm:"default:false" json:"is_healthy"`
	MealType  string    `gorm:"size:50" json:"meal_type"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type ProgressEntry struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	Date   time.Time `gorm:"not null;index" json:"date"`
	Weight *float64  `json:"weight"`
	Height *float64  `json:"height"`
	Notes  *string   `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// WorkoutSchedule is a free-form weekly plan slot.
type WorkoutSchedule struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Day     string `gorm:"size:20;not null" json:"day"`
	Routine string `gorm:"type:text" json:"routine"`

	CreatedAt time.Time `json:"created_at"`
}

func (WorkoutSession) TableName() string {
	return "workout_sessions"
}

func (ExerciseLog) TableName() string {
	return "exercise_logs"
}

func (FoodLog) TableName() string {
	return "food_logs"
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

func (WorkoutSchedule) TableName() string {
	return "workout_schedules"
}
