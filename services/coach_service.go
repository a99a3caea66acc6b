// services/coach_service.go - AI coach conversation backend
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"fitai/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const coachSystemPrompt = "You are FitAI, a friendly and motivating personal fitness and nutrition coach. " +
	"Answer in the user's language, keep advice safe and realistic, and never prescribe medication."

// CoachService stores conversation turns and forwards them, together with a
// profile-aware system prompt, to a chat completion API.
type CoachService struct {
	db     *gorm.DB
	client *http.Client
}

func NewCoachService(db *gorm.DB) *CoachService {
	return &CoachService{
		db:     db,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// profileContext renders the user's profile into system-prompt text so the
// coach can personalize answers. A missing profile gets generic guidance.
func profileContext(profile *models.UserProfile) string {
	if profile == nil {
		return "The user has not completed their profile. Give generic, safe, balanced answers for an average fitness level."
	}

	format := func(v *float64, unit string) string {
		if v == nil {
			return "not specified"
		}
		return fmt.Sprintf("%.1f %s", *v, unit)
	}
	age := "not specified"
	if profile.Age != nil {
		age = fmt.Sprintf("%d", *profile.Age)
	}
	goal := profile.Goal
	if goal == "" {
		goal = "not specified"
	}
	level := profile.Level
	if level == "" {
		level = "not specified"
	}

	return fmt.Sprintf(
		"The user's profile:\n- Age: %s\n- Weight: %s\n- Height: %s\n- Goal: %s\n- Level: %s\n"+
			"Adapt your training and nutrition answers to these personal details.",
		age, format(profile.Weight, "kg"), format(profile.Height, "cm"), goal, level)
}

// memoryContext renders the stored facts for the system prompt.
func memoryContext(memories []models.UserMemory) string {
	if len(memories) == 0 {
		return "The user has no stored information yet."
	}
	lines := make([]string, 0, len(memories))
	for _, m := range memories {
		lines = append(lines, fmt.Sprintf("- %s: %s", m.Key, m.Value))
	}
	return "Known facts about the user:\n" + strings.Join(lines, "\n")
}

// Chat appends the user's message to the stored conversation, asks the model
// for a reply and persists both turns. Afterwards it analyzes the message for
// facts worth remembering; that step is best effort and never fails the chat.
func (s *CoachService) Chat(userID uint, content string) (*models.CoachMessage, error) {
	if content == "" {
		return nil, errors.New("message content is required")
	}

	var profile models.UserProfile
	var profilePtr *models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		profilePtr = &profile
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var history []models.CoachMessage
	if err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&history).Error; err != nil {
		return nil, err
	}

	var memories []models.UserMemory
	if err := s.db.Where("user_id = ?", userID).Find(&memories).Error; err != nil {
		return nil, err
	}

	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{
		Role:    "system",
		Content: coachSystemPrompt + "\n\n" + profileContext(profilePtr) + "\n\n" + memoryContext(memories),
	})
	for _, m := range history {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, chatMessage{Role: models.CoachRoleUser, Content: content})

	reply, err := s.complete(messages)
	if err != nil {
		return nil, err
	}

	userTurn := models.CoachMessage{UserID: userID, Role: models.CoachRoleUser, Content: content}
	if err := s.db.Create(&userTurn).Error; err != nil {
		return nil, err
	}
	assistantTurn := models.CoachMessage{UserID: userID, Role: models.CoachRoleAssistant, Content: reply}
	if err := s.db.Create(&assistantTurn).Error; err != nil {
		return nil, err
	}

	if err := s.rememberFacts(userID, content); err != nil {
		log.Printf("⚠️ Could not process coach memory for user %d: %v", userID, err)
	}

	return &assistantTurn, nil
}

const memoryExtractionPrompt = "From the following user message, detect whether it contains personal or " +
	"relevant information FitAI should remember for future sessions (for example: goals, habits, " +
	"preferences, injuries, schedules). Return a JSON list of key-value pairs, for example:\n" +
	`[{"key": "goal", "value": "build muscle"}]` + "\n\nUser message: \"\"\"%s\"\"\""

type memoryFact struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// parseMemoryFacts decodes the extraction reply. Models often wrap JSON in a
// markdown fence; strip it before decoding. A reply that is not a fact list
// yields no facts rather than an error.
func parseMemoryFacts(reply string) []memoryFact {
	text := strings.TrimSpace(reply)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var facts []memoryFact
	if err := json.Unmarshal([]byte(text), &facts); err != nil {
		return nil
	}
	kept := facts[:0]
	for _, f := range facts {
		if f.Key != "" && f.Value != "" {
			kept = append(kept, f)
		}
	}
	return kept
}

// rememberFacts runs the memory-analysis completion over the user's message
// and upserts whatever facts it finds, keyed per user.
func (s *CoachService) rememberFacts(userID uint, content string) error {
	reply, err := s.complete([]chatMessage{{
		Role:    "system",
		Content: fmt.Sprintf(memoryExtractionPrompt, content),
	}})
	if err != nil {
		return err
	}

	for _, fact := range parseMemoryFacts(reply) {
		row := models.UserMemory{UserID: userID, Key: fact.Key, Value: fact.Value}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Memories returns the stored facts, most recently updated first.
func (s *CoachService) Memories(userID uint) ([]models.UserMemory, error) {
	var memories []models.UserMemory
	err := s.db.Where("user_id = ?", userID).Order("updated_at DESC").Find(&memories).Error
	return memories, err
}

// History returns the stored conversation, oldest first.
func (s *CoachService) History(userID uint) ([]models.CoachMessage, error) {
	var history []models.CoachMessage
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&history).Error
	return history, err
}

// complete calls an OpenAI-compatible chat completions endpoint.
func (s *CoachService) complete(messages []chatMessage) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY not configured")
	}
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	body, err := json.Marshal(chatCompletionRequest{Model: model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("chat completion failed: %s", completion.Error.Message)
	}
	if resp.StatusCode != http.StatusOK || len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion failed with status %d", resp.StatusCode)
	}
	return completion.Choices[0].Message.Content, nil
}

var coachService *CoachService

// InitCoachService wires the process-wide coach instance
func InitCoachService(db *gorm.DB) {
	coachService = NewCoachService(db)
}

func GetCoachService() *CoachService {
	if coachService == nil {
		panic("Coach service not initialized. Call InitCoachService() first.")
	}
	return coachService
}
