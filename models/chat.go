// models/chat.go
package models

import "time"

const (
	CoachRoleUser      = "user"
	CoachRoleAssistant = "assistant"
)

// CoachMessage is one turn of the AI coach conversation.
type CoachMessage struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Role    string `gorm:"not null;size:20" json:"role"`
	Content string `gorm:"not null;type:text" json:"content"`

	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// DirectMessage is a chat message between two friends.
type DirectMessage struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	SenderID   uint    `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint    `gorm:"not null;index" json:"receiver_id"`
	Content    string  `gorm:"type:text" json:"content"`
	Image      *string `json:"image,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Sender   *User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"-"`
}

type Feedback struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Type    string `gorm:"not null;size:50" json:"type"`
	Message string `gorm:"not null;type:text" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

func (CoachMessage) TableName() string {
	return "coach_messages"
}

func (DirectMessage) TableName() string {
	return "direct_messages"
}

func (Feedback) TableName() string {
	return "feedback"
}
