// handlers/auth.go
package handlers

import (
	"os"
	"time"

	"fitai/database"
	"fitai/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token,omitempty"`
	User    UserInfo `json:"user,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type UserInfo struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Register creates a user together with a default profile
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Name, email and password are required"})
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Email is already registered"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to hash password"})
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Profile: &models.UserProfile{
			Goal:    "Not specified",
			Level:   "beginner",
			Bio:     "Hi! I'm new to FitAI.",
			Image:   "/images/defaults/avatar1.png",
			Socials: `{"instagram":"","x":"","youtube":""}`,
		},
	}

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to create account"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.Status(201).JSON(AuthResponse{
		Success: true,
		Token:   token,
		User: UserInfo{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}

// Login authenticates by email and password
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid email or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid email or password"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(AuthResponse{
		Success: true,
		Token:   token,
		User: UserInfo{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		},
	})
}

func generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
