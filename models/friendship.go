// models/friendship.go
package models

import "time"

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship is a single edge: the receiver accepting flips status to
// accepted, which makes the relation symmetric for counting purposes.
type Friendship struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RequesterID uint   `gorm:"not null;index" json:"requester_id"`
	ReceiverID  uint   `gorm:"not null;index" json:"receiver_id"`
	Status      string `gorm:"default:'pending';size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Receiver  *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}

func (Friendship) TableName() string {
	return "friendships"
}
