// models/user.go
package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Profile      *UserProfile      `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Achievements []UserAchievement `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

// UserProfile holds the coaching attributes the AI coach reads. Its CreatedAt
// is also the account-age fact the achievement engine evaluates.
type UserProfile struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	UserID  uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	Age     *int     `json:"age"`
	Weight  *float64 `json:"weight"`
	Height  *float64 `json:"height"`
	Goal    string   `gorm:"size:100" json:"goal"`
	Level   string   `gorm:"size:50" json:"level"` // beginner, intermediate, advanced
	Bio     string   `gorm:"type:text" json:"bio"`
	Image   string   `json:"image"`
	Socials string   `gorm:"type:text" json:"socials,omitempty"` // raw JSON blob from the client

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
