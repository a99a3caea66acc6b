// handlers/friends.go
package handlers

import (
	"strconv"

	"fitai/database"
	"fitai/middleware"
	"fitai/models"

	"github.com/gofiber/fiber/v2"
)

type FriendRequestBody struct {
	ReceiverID uint `json:"receiver_id"`
}

type RespondRequestBody struct {
	FriendshipID uint   `json:"friendship_id"`
	Action       string `json:"action"` // accept, reject
}

type FriendInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

func friendInfo(u models.User) FriendInfo {
	info := FriendInfo{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.Profile != nil {
		info.Image = u.Profile.Image
	}
	return info
}

// SearchUsers finds other users by name or email
func SearchUsers(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	q := c.Query("q")
	if q == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing search query"})
	}

	db := database.GetDB()
	var users []models.User
	if err := db.Preload("Profile").
		Where("id <> ? AND (name LIKE ? OR email LIKE ?)", userID, "%"+q+"%", "%"+q+"%").
		Limit(20).Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Search failed"})
	}

	results := make([]FriendInfo, 0, len(users))
	for _, u := range users {
		results = append(results, friendInfo(u))
	}
	return c.JSON(results)
}

// SendFriendRequest creates a pending friendship edge
func SendFriendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req FriendRequestBody
	if err := c.BodyParser(&req); err != nil || req.ReceiverID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Missing receiver id"})
	}

	if req.ReceiverID == userID {
		return c.Status(400).JSON(fiber.Map{"error": "You cannot add yourself"})
	}

	db := database.GetDB()

	var receiver models.User
	if err := db.First(&receiver, req.ReceiverID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var existing models.Friendship
	err = db.Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)",
		userID, req.ReceiverID, req.ReceiverID, userID).First(&existing).Error
	if err == nil {
		return c.Status(409).JSON(fiber.Map{"error": "A request or friendship with this user already exists"})
	}

	friendship := models.Friendship{
		RequesterID: userID,
		ReceiverID:  req.ReceiverID,
		Status:      models.FriendshipPending,
	}
	if err := db.Create(&friendship).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send friend request"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Friend request sent"})
}

// RespondFriendRequest accepts or rejects a pending request. Only the
// receiver may respond; rejecting deletes the edge.
func RespondFriendRequest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req RespondRequestBody
	if err := c.BodyParser(&req); err != nil || req.FriendshipID == 0 ||
		(req.Action != "accept" && req.Action != "reject") {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := database.GetDB()
	var friendship models.Friendship
	if err := db.First(&friendship, req.FriendshipID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Friend request not found"})
	}

	if friendship.ReceiverID != userID {
		return c.Status(403).JSON(fiber.Map{"error": "Only the receiver can respond to this request"})
	}

	if req.Action == "accept" {
		friendship.Status = models.FriendshipAccepted
		if err := db.Save(&friendship).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to accept request"})
		}
		return c.JSON(fiber.Map{"success": true, "message": "Friend request accepted"})
	}

	if err := db.Delete(&friendship).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reject request"})
	}
	return c.JSON(fiber.Map{"success": true, "message": "Friend request rejected"})
}

// GetFriendRequests lists every edge touching the user, with both profiles
func GetFriendRequests(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var edges []models.Friendship
	if err := db.Preload("Requester.Profile").Preload("Receiver.Profile").
		Where("requester_id = ? OR receiver_id = ?", userID, userID).
		Find(&edges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch friend requests"})
	}
	return c.JSON(edges)
}

// GetFriends lists the accepted friendships as plain friend profiles
func GetFriends(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var edges []models.Friendship
	if err := db.Preload("Requester.Profile").Preload("Receiver.Profile").
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?", userID, userID, models.FriendshipAccepted).
		Find(&edges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch friends"})
	}

	friends := make([]FriendInfo, 0, len(edges))
	for _, edge := range edges {
		if edge.RequesterID == userID && edge.Receiver != nil {
			friends = append(friends, friendInfo(*edge.Receiver))
		} else if edge.Requester != nil {
			friends = append(friends, friendInfo(*edge.Requester))
		}
	}
	return c.JSON(fiber.Map{"success": true, "friends": friends})
}

// GetFriendProfile returns a friend's public profile with their equipped badge
func GetFriendProfile(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	friendID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	db := database.GetDB()
	var friend models.User
	if err := db.Preload("Profile").First(&friend, friendID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"id":      friend.ID,
		"name":    friend.Name,
		"email":   friend.Email,
		"profile": friend.Profile,
	})
}
