// services/achievement_service.go - Achievement unlock and progress engine
package services

import (
	"fmt"
	"log"
	"time"

	"fitai/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AchievementService evaluates unlock rules over a user's activity history,
// persists unlocks idempotently and manages the single equipped badge.
type AchievementService struct {
	activity ActivityStore
	catalog  CatalogStore
}

func NewAchievementService(activity ActivityStore, catalog CatalogStore) *AchievementService {
	return &AchievementService{activity: activity, catalog: catalog}
}

var achievementService *AchievementService

// InitAchievementService wires the gorm-backed stores. Call once at startup.
func InitAchievementService(db *gorm.DB) {
	achievementService = NewAchievementService(NewGormActivityStore(db), NewGormCatalogStore(db))
}

// GetAchievementService returns the process-wide instance
func GetAchievementService() *AchievementService {
	if achievementService == nil {
		log.Fatal("Achievement service not initialized. Call InitAchievementService() first.")
	}
	return achievementService
}

// AchievementView is a catalog entry annotated with the user's state.
type AchievementView struct {
	models.Achievement
	Unlocked bool    `json:"unlocked"`
	Equipped bool    `json:"equipped"`
	Progress float64 `json:"progress"`
	Target   float64 `json:"target"`
}

// EquippedBadge is the display shape of the currently equipped achievement.
type EquippedBadge struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// SeedAchievementsIfNeeded upserts the built-in catalog. A failing entry is
// logged and skipped so one bad definition never blocks the rest.
func (s *AchievementService) SeedAchievementsIfNeeded() {
	for _, def := range BuiltInAchievements {
		if err := s.catalog.UpsertAchievementByKey(def); err != nil {
			log.Printf("❌ Failed to seed achievement '%s': %v", def.Key, err)
		}
	}
}

// loadSnapshot issues the independent activity reads concurrently and joins
// them. Ordering between the reads is irrelevant; any failure aborts the pass.
func (s *AchievementService) loadSnapshot(userID uint) (*ActivitySnapshot, error) {
	snap := &ActivitySnapshot{Now: time.Now()}

	var g errgroup.Group
	g.Go(func() error {
		var err error
		snap.Sessions, err = s.activity.ListWorkoutSessions(userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.FoodLogs, err = s.activity.ListFoodLogs(userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Progress, err = s.activity.ListProgressEntries(userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.FriendCount, err = s.activity.CountAcceptedFriendships(userID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.AccountCreatedAt, err = s.activity.GetAccountCreatedAt(userID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// CheckAndUnlockAchievements evaluates every rule against a fresh snapshot
// and unlocks the ones that newly hold. Rules only ever add achievements;
// nothing is revoked. All reads complete before the first write, so a failed
// read leaves the unlocked set untouched.
func (s *AchievementService) CheckAndUnlockAchievements(userID uint) error {
	snap, err := s.loadSnapshot(userID)
	if err != nil {
		return err
	}

	owned, err := s.catalog.ListUnlockedAchievementIDs(userID)
	if err != nil {
		return err
	}

	catalog, err := s.catalog.ListAllAchievements()
	if err != nil {
		return err
	}
	byKey := make(map[string]models.Achievement, len(catalog))
	for _, ach := range catalog {
		byKey[ach.Key] = ach
	}

	for key, rule := range progressRules {
		progress, target := rule(snap)
		if progress < target {
			continue
		}
		ach, ok := byKey[key]
		if !ok {
			// Catalog not seeded for this key; skip rather than fail.
			continue
		}
		if owned[ach.ID] {
			continue
		}
		if err := s.UnlockAchievement(userID, ach.ID); err != nil {
			return err
		}
	}
	return nil
}

// UnlockAchievement creates the unlock row for the pair. Calling it twice is
// a no-op: the storage layer's unique constraint is the only concurrency
// guard, and an already-existing row counts as success.
func (s *AchievementService) UnlockAchievement(userID, achievementID uint) error {
	created, err := s.catalog.CreateUnlockRow(userID, achievementID)
	if err != nil {
		return err
	}
	if created {
		log.Printf("🏆 Achievement %d unlocked for user %d", achievementID, userID)
	}
	return nil
}

// UnlockAchievementByKey is the manual/admin unlock path.
func (s *AchievementService) UnlockAchievementByKey(userID uint, key string) (*models.Achievement, error) {
	ach, err := s.catalog.FindAchievementByKey(key)
	if err != nil {
		return nil, err
	}
	if ach == nil {
		return nil, fmt.Errorf("achievement %q: %w", key, ErrNotFound)
	}
	if err := s.UnlockAchievement(userID, ach.ID); err != nil {
		return nil, err
	}
	return ach, nil
}

// GetAchievementsWithProgress returns every catalog achievement annotated
// with the user's unlock state and clamped progress.
func (s *AchievementService) GetAchievementsWithProgress(userID uint) ([]AchievementView, error) {
	snap, err := s.loadSnapshot(userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.ListAllAchievements()
	if err != nil {
		return nil, err
	}

	unlocks, err := s.catalog.ListUserUnlocks(userID)
	if err != nil {
		return nil, err
	}
	unlockedByID := make(map[uint]models.UserAchievement, len(unlocks))
	for _, ua := range unlocks {
		unlockedByID[ua.AchievementID] = ua
	}

	views := make([]AchievementView, 0, len(catalog))
	for _, ach := range catalog {
		progress, target := 0.0, 1.0
		if rule, ok := progressRules[ach.Key]; ok {
			progress, target = rule(snap)
		}

		ua, unlocked := unlockedByID[ach.ID]
		views = append(views, AchievementView{
			Achievement: ach,
			Unlocked:    unlocked,
			Equipped:    unlocked && ua.Equipped,
			// Progress never exceeds target, whatever the raw count is.
			Progress: min(progress, target),
			Target:   target,
		})
	}
	return views, nil
}

// GetUserAchievements lists the user's unlock rows, newest first.
func (s *AchievementService) GetUserAchievements(userID uint) ([]models.UserAchievement, error) {
	return s.catalog.ListUserUnlocks(userID)
}

// ListAchievements returns the whole catalog in stable order.
func (s *AchievementService) ListAchievements() ([]models.Achievement, error) {
	return s.catalog.ListAllAchievements()
}

// SetEquipped equips the given achievement (clearing any other equipped badge
// first) or, with equipped=false, just clears everything. Equipping requires
// an existing unlock row.
func (s *AchievementService) SetEquipped(userID, achievementID uint, equipped bool) error {
	if !equipped {
		return s.catalog.ClearAllEquipped(userID)
	}

	owned, err := s.catalog.ListUnlockedAchievementIDs(userID)
	if err != nil {
		return err
	}
	if !owned[achievementID] {
		return fmt.Errorf("achievement %d not unlocked by user %d: %w", achievementID, userID, ErrNotFound)
	}

	if err := s.catalog.ClearAllEquipped(userID); err != nil {
		return err
	}
	return s.catalog.SetEquippedRow(userID, achievementID)
}

// GetEquipped returns the equipped badge, or nil when none is equipped.
func (s *AchievementService) GetEquipped(userID uint) (*EquippedBadge, error) {
	ach, err := s.catalog.FindEquippedAchievement(userID)
	if err != nil {
		return nil, err
	}
	if ach == nil {
		return nil, nil
	}
	return &EquippedBadge{ID: ach.ID, Name: ach.Name, Icon: ach.Icon}, nil
}
