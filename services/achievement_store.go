// services/achievement_store.go - Storage access for the achievement engine
package services

import (
	"errors"
	"time"

	"fitai/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound marks lookups for rows that do not exist (user, achievement,
// unlock record). Handlers map it to 404.
var ErrNotFound = errors.New("not found")

// ActivityStore is the read-only view over a user's logged activity. The
// engine never writes through it.
type ActivityStore interface {
	ListWorkoutSessions(userID uint) ([]models.WorkoutSession, error)
	ListFoodLogs(userID uint) ([]models.FoodLog, error)
	ListProgressEntries(userID uint) ([]models.ProgressEntry, error)
	CountAcceptedFriendships(userID uint) (int64, error)
	// GetAccountCreatedAt returns nil (not an error) when the user has no
	// profile yet; age-based rules are simply skipped then.
	GetAccountCreatedAt(userID uint) (*time.Time, error)
}

// CatalogStore owns achievement definitions and per-user unlock rows.
type CatalogStore interface {
	// UpsertAchievementByKey inserts the definition if the key is absent and
	// leaves existing rows untouched (the update clause is intentionally empty).
	UpsertAchievementByKey(def models.Achievement) error
	FindAchievementByKey(key string) (*models.Achievement, error)
	ListAllAchievements() ([]models.Achievement, error)
	ListUnlockedAchievementIDs(userID uint) (map[uint]bool, error)
	ListUserUnlocks(userID uint) ([]models.UserAchievement, error)
	// CreateUnlockRow reports created=false with a nil error when the
	// (user, achievement) pair already exists. Duplicate unlocks are an
	// expected outcome, not an error.
	CreateUnlockRow(userID, achievementID uint) (created bool, err error)
	ClearAllEquipped(userID uint) error
	SetEquippedRow(userID, achievementID uint) error
	FindEquippedAchievement(userID uint) (*models.Achievement, error)
}

// ================== GORM IMPLEMENTATIONS ==================

type gormActivityStore struct {
	db *gorm.DB
}

// NewGormActivityStore wraps a gorm handle as an ActivityStore.
func NewGormActivityStore(db *gorm.DB) ActivityStore {
	return &gormActivityStore{db: db}
}

func (s *gormActivityStore) ListWorkoutSessions(userID uint) ([]models.WorkoutSession, error) {
	var sessions []models.WorkoutSession
	err := s.db.Preload("Exercises").Where("user_id = ?", userID).Find(&sessions).Error
	return sessions, err
}

func (s *gormActivityStore) ListFoodLogs(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.Where("user_id = ?", userID).Find(&logs).Error
	return logs, err
}

func (s *gormActivityStore) ListProgressEntries(userID uint) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	err := s.db.Where("user_id = ?", userID).Order("date ASC").Find(&entries).Error
	return entries, err
}

func (s *gormActivityStore) CountAcceptedFriendships(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Friendship{}).
		Where("(requester_id = ? OR receiver_id = ?) AND status = ?", userID, userID, models.FriendshipAccepted).
		Count(&count).Error
	return count, err
}

func (s *gormActivityStore) GetAccountCreatedAt(userID uint) (*time.Time, error) {
	var profile models.UserProfile
	err := s.db.Select("created_at").Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	createdAt := profile.CreatedAt
	return &createdAt, nil
}

type gormCatalogStore struct {
	db *gorm.DB
}

// NewGormCatalogStore wraps a gorm handle as a CatalogStore.
func NewGormCatalogStore(db *gorm.DB) CatalogStore {
	return &gormCatalogStore{db: db}
}

func (s *gormCatalogStore) UpsertAchievementByKey(def models.Achievement) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&def).Error
}

func (s *gormCatalogStore) FindAchievementByKey(key string) (*models.Achievement, error) {
	var ach models.Achievement
	err := s.db.Where("key = ?", key).First(&ach).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ach, nil
}

func (s *gormCatalogStore) ListAllAchievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := s.db.Order("id ASC").Find(&achievements).Error
	return achievements, err
}

func (s *gormCatalogStore) ListUnlockedAchievementIDs(userID uint) (map[uint]bool, error) {
	var ids []uint
	err := s.db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	owned := make(map[uint]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}
	return owned, nil
}

func (s *gormCatalogStore) ListUserUnlocks(userID uint) ([]models.UserAchievement, error) {
	var unlocks []models.UserAchievement
	err := s.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&unlocks).Error
	return unlocks, err
}

func (s *gormCatalogStore) CreateUnlockRow(userID, achievementID uint) (bool, error) {
	row := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	if err := s.db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *gormCatalogStore) ClearAllEquipped(userID uint) error {
	return s.db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Update("equipped", false).Error
}

func (s *gormCatalogStore) SetEquippedRow(userID, achievementID uint) error {
	return s.db.Model(&models.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Update("equipped", true).Error
}

func (s *gormCatalogStore) FindEquippedAchievement(userID uint) (*models.Achievement, error) {
	var ua models.UserAchievement
	err := s.db.Preload("Achievement").
		Where("user_id = ? AND equipped = ?", userID, true).
		First(&ua).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ua.Achievement, nil
}
