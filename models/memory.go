// models/memory.go
package models

import "time"

// UserMemory is one fact the AI coach remembers across sessions ("goal:
// build muscle"). Keys are unique per user; re-learning a key updates it.
type UserMemory struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_memory_key" json:"user_id"`
	Key    string `gorm:"not null;size:100;uniqueIndex:idx_user_memory_key" json:"key"`
	Value  string `gorm:"not null;type:text" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserMemory) TableName() string {
	return "user_memories"
}
