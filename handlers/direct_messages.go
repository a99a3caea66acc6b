// handlers/direct_messages.go - Friend-to-friend chat: message history over
// REST, delivery fan-out over a room-based websocket channel.
package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"fitai/database"
	"fitai/middleware"
	"fitai/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const chatUploadDir = "./uploads/chat"

// GetDirectMessages returns the conversation with one friend, oldest first
func GetDirectMessages(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	friendID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	db := database.GetDB()
	var messages []models.DirectMessage
	if err := db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, friendID, friendID, userID).
		Order("created_at ASC").Find(&messages).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}
	return c.JSON(messages)
}

// SendDirectMessage stores a message (multipart: "content" and optional "image")
func SendDirectMessage(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	friendID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid user id"})
	}

	content := c.FormValue("content")

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
		if err := os.MkdirAll(chatUploadDir, 0o755); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to prepare upload directory"})
		}
		filename := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(file.Filename))
		if err := c.SaveFile(file, filepath.Join(chatUploadDir, filename)); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save image"})
		}
		url := "/uploads/chat/" + filename
		imageURL = &url
	}

	if content == "" && imageURL == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Empty message"})
	}

	db := database.GetDB()
	message := models.DirectMessage{
		SenderID:   userID,
		ReceiverID: uint(friendID),
		Content:    content,
		Image:      imageURL,
	}
	if err := db.Create(&message).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send message"})
	}
	return c.JSON(message)
}

// ================== REALTIME CHANNEL ==================

// SocketEvent mirrors the join_room / send_message / receive_message protocol
// the frontend speaks.
type SocketEvent struct {
	Type    string `json:"type"`
	RoomID  string `json:"room_id"`
	Sender  uint   `json:"sender,omitempty"`
	Content string `json:"content,omitempty"`
	Image   string `json:"image,omitempty"`
}

// socketWriter is the write side of one chat connection.
type socketWriter interface {
	WriteJSON(v interface{}) error
}

// chatClient owns the write lock for one connection. The websocket library
// forbids concurrent writers on a connection, so every write goes through
// send; a panic here would kill the process since hijacked-connection
// goroutines run outside the recover middleware.
type chatClient struct {
	sock socketWriter
	mu   sync.Mutex
}

func (c *chatClient) send(event SocketEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteJSON(event)
}

type chatHub struct {
	rooms map[string]map[*chatClient]bool
	mu    sync.RWMutex
}

func newChatHub() *chatHub {
	return &chatHub{rooms: make(map[string]map[*chatClient]bool)}
}

var hub = newChatHub()

func (h *chatHub) join(roomID string, client *chatClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*chatClient]bool)
	}
	h.rooms[roomID][client] = true
}

func (h *chatHub) leave(client *chatClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for roomID, members := range h.rooms {
		if members[client] {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

func (h *chatHub) broadcast(roomID string, event SocketEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[roomID] {
		if err := client.send(event); err != nil {
			log.Printf("websocket write failed: %v", err)
		}
	}
}

// ChatSocket handles one websocket connection for the chat channel
func ChatSocket(conn *websocket.Conn) {
	client := &chatClient{sock: conn}
	defer func() {
		hub.leave(client)
		conn.Close()
	}()

	for {
		var event SocketEvent
		if err := conn.ReadJSON(&event); err != nil {
			return
		}

		switch event.Type {
		case "join_room":
			hub.join(event.RoomID, client)
		case "send_message":
			event.Type = "receive_message"
			hub.broadcast(event.RoomID, event)
		}
	}
}
