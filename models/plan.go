// models/plan.go - Routines and nutrition plans
package models

import "time"

type Routine struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Content     string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

type NutritionPlan struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Content     string `gorm:"type:text" json:"content"`

	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// ActiveRoutine pins at most one routine per user (upsert by user).
type ActiveRoutine struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"uniqueIndex;not null" json:"user_id"`
	RoutineID int  `gorm:"not null" json:"routine_id"` // negative ids reference predefined routines

	UpdatedAt time.Time `json:"updated_at"`
}

type ActiveNutrition struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"uniqueIndex;not null" json:"user_id"`
	NutritionID int  `gorm:"not null" json:"nutrition_id"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (Routine) TableName() string {
	return "routines"
}

func (NutritionPlan) TableName() string {
	return "nutrition_plans"
}

func (ActiveRoutine) TableName() string {
	return "active_routines"
}

func (ActiveNutrition) TableName() string {
	return "active_nutritions"
}
