// models/achievement.go
package models

import "time"

type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Key         string `gorm:"not null;uniqueIndex" json:"key"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"not null;index" json:"category"` // physical, nutrition, social
	Icon        string `json:"icon"`
	Rarity      string `gorm:"not null" json:"rarity"` // common, rare, epic, legendary

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserAchievement is the unlock record. The composite unique index is the only
// concurrency guard for unlocks: a second insert for the same pair fails with a
// duplicate-key error the engine swallows.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	Equipped      bool      `gorm:"default:false" json:"equipped"`

	// Relationships
	User        User        `gorm:"foreignKey:UserID" json:"-"`
	Achievement Achievement `gorm:"foreignKey:AchievementID" json:"achievement,omitempty"`
}

func (Achievement) TableName() string {
	return "achievements"
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
