package services

import (
	"errors"
	"testing"
	"time"

	"fitai/models"

	"github.com/stretchr/testify/require"
)

// ================== IN-MEMORY FAKES ==================

type fakeActivityStore struct {
	sessions  []models.WorkoutSession
	foodLogs  []models.FoodLog
	progress  []models.ProgressEntry
	friends   int64
	createdAt *time.Time

	failSessions error
}

func (f *fakeActivityStore) ListWorkoutSessions(userID uint) ([]models.WorkoutSession, error) {
	if f.failSessions != nil {
		return nil, f.failSessions
	}
	return f.sessions, nil
}

func (f *fakeActivityStore) ListFoodLogs(userID uint) ([]models.FoodLog, error) {
	return f.foodLogs, nil
}

func (f *fakeActivityStore) ListProgressEntries(userID uint) ([]models.ProgressEntry, error) {
	return f.progress, nil
}

func (f *fakeActivityStore) CountAcceptedFriendships(userID uint) (int64, error) {
	return f.friends, nil
}

func (f *fakeActivityStore) GetAccountCreatedAt(userID uint) (*time.Time, error) {
	return f.createdAt, nil
}

type fakeCatalogStore struct {
	achievements []models.Achievement
	unlocks      []models.UserAchievement
	nextID       uint

	upsertErrFor map[string]error
	upsertCalls  int
	mutations    int
}

func newFakeCatalog() *fakeCatalogStore {
	return &fakeCatalogStore{nextID: 1}
}

func (f *fakeCatalogStore) UpsertAchievementByKey(def models.Achievement) error {
	f.upsertCalls++
	if err := f.upsertErrFor[def.Key]; err != nil {
		return err
	}
	for _, a := range f.achievements {
		if a.Key == def.Key {
			return nil
		}
	}
	def.ID = f.nextID
	f.nextID++
	f.achievements = append(f.achievements, def)
	return nil
}

func (f *fakeCatalogStore) FindAchievementByKey(key string) (*models.Achievement, error) {
	for i := range f.achievements {
		if f.achievements[i].Key == key {
			a := f.achievements[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogStore) ListAllAchievements() ([]models.Achievement, error) {
	return f.achievements, nil
}

func (f *fakeCatalogStore) ListUnlockedAchievementIDs(userID uint) (map[uint]bool, error) {
	owned := make(map[uint]bool)
	for _, ua := range f.unlocks {
		if ua.UserID == userID {
			owned[ua.AchievementID] = true
		}
	}
	return owned, nil
}

func (f *fakeCatalogStore) ListUserUnlocks(userID uint) ([]models.UserAchievement, error) {
	var out []models.UserAchievement
	for _, ua := range f.unlocks {
		if ua.UserID == userID {
			out = append(out, ua)
		}
	}
	return out, nil
}

func (f *fakeCatalogStore) CreateUnlockRow(userID, achievementID uint) (bool, error) {
	for _, ua := range f.unlocks {
		if ua.UserID == userID && ua.AchievementID == achievementID {
			return false, nil
		}
	}
	f.mutations++
	f.unlocks = append(f.unlocks, models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	})
	return true, nil
}

func (f *fakeCatalogStore) ClearAllEquipped(userID uint) error {
	f.mutations++
	for i := range f.unlocks {
		if f.unlocks[i].UserID == userID {
			f.unlocks[i].Equipped = false
		}
	}
	return nil
}

func (f *fakeCatalogStore) SetEquippedRow(userID, achievementID uint) error {
	f.mutations++
	for i := range f.unlocks {
		if f.unlocks[i].UserID == userID && f.unlocks[i].AchievementID == achievementID {
			f.unlocks[i].Equipped = true
		}
	}
	return nil
}

func (f *fakeCatalogStore) FindEquippedAchievement(userID uint) (*models.Achievement, error) {
	for _, ua := range f.unlocks {
		if ua.UserID == userID && ua.Equipped {
			for i := range f.achievements {
				if f.achievements[i].ID == ua.AchievementID {
					a := f.achievements[i]
					return &a, nil
				}
			}
		}
	}
	return nil, nil
}

// ================== HELPERS ==================

func seededService(t *testing.T, activity *fakeActivityStore) (*AchievementService, *fakeCatalogStore) {
	t.Helper()
	catalog := newFakeCatalog()
	svc := NewAchievementService(activity, catalog)
	svc.SeedAchievementsIfNeeded()
	require.Len(t, catalog.achievements, len(BuiltInAchievements))
	return svc, catalog
}

func sessionsOnDays(days int, sessionsPerDay int) []models.WorkoutSession {
	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	var out []models.WorkoutSession
	for d := 0; d < days; d++ {
		for s := 0; s < sessionsPerDay; s++ {
			out = append(out, models.WorkoutSession{
				Date: base.AddDate(0, 0, d).Add(time.Duration(s) * time.Hour),
			})
		}
	}
	return out
}

func f64(v float64) *float64 { return &v }

// ================== SEEDING ==================

func TestSeedAchievementsIsIdempotent(t *testing.T) {
	catalog := newFakeCatalog()
	svc := NewAchievementService(&fakeActivityStore{}, catalog)

	svc.SeedAchievementsIfNeeded()

	// A reseed must not rewrite existing rows, even when they were edited.
	catalog.achievements[0].Name = "Renamed"
	svc.SeedAchievementsIfNeeded()

	require.Len(t, catalog.achievements, len(BuiltInAchievements))
	require.Equal(t, "Renamed", catalog.achievements[0].Name)
}

func TestSeedSkipsFailingEntryAndContinues(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.upsertErrFor = map[string]error{"heart_of_steel": errors.New("db down")}
	svc := NewAchievementService(&fakeActivityStore{}, catalog)

	svc.SeedAchievementsIfNeeded()

	require.Len(t, catalog.achievements, len(BuiltInAchievements)-1)
	require.Equal(t, len(BuiltInAchievements), catalog.upsertCalls)
}

// ================== UNLOCK EVALUATION ==================

func TestCheckUnlocksWhenTargetReached(t *testing.T) {
	activity := &fakeActivityStore{sessions: sessionsOnDays(30, 1)}
	svc, catalog := seededService(t, activity)

	require.NoError(t, svc.CheckAndUnlockAchievements(1))

	unlocks, err := svc.GetUserAchievements(1)
	require.NoError(t, err)
	require.Len(t, unlocks, 1)

	ach, err := catalog.FindAchievementByKey("trainer_constant")
	require.NoError(t, err)
	require.Equal(t, ach.ID, unlocks[0].AchievementID)
}

func TestCheckIsIdempotent(t *testing.T) {
	activity := &fakeActivityStore{sessions: sessionsOnDays(30, 1)}
	svc, _ := seededService(t, activity)

	require.NoError(t, svc.CheckAndUnlockAchievements(1))
	require.NoError(t, svc.CheckAndUnlockAchievements(1))

	unlocks, err := svc.GetUserAchievements(1)
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
}

func TestCheckCountsDistinctDaysNotSessions(t *testing.T) {
	// 40 session rows spread over only 5 calendar days must not unlock the
	// 30-day achievement.
	activity := &fakeActivityStore{sessions: sessionsOnDays(5, 8)}
	svc, _ := seededService(t, activity)

	require.NoError(t, svc.CheckAndUnlockAchievements(1))

	unlocks, err := svc.GetUserAchievements(1)
	require.NoError(t, err)
	require.Empty(t, unlocks)
}

func TestCheckSkipsRuleWithoutCatalogRow(t *testing.T) {
	// active_community has a rule but is never seeded; a friend must not
	// produce an unlock row or an error.
	activity := &fakeActivityStore{friends: 3}
	svc, _ := seededService(t, activity)

	require.NoError(t, svc.CheckAndUnlockAchievements(1))

	unlocks, err := svc.GetUserAchievements(1)
	require.NoError(t, err)
	require.Empty(t, unlocks)
}

func TestCheckFailedReadLeavesUnlocksUntouched(t *testing.T) {
	activity := &fakeActivityStore{
		sessions:     sessionsOnDays(30, 1),
		failSessions: errors.New("connection reset"),
	}
	svc, catalog := seededService(t, activity)

	require.Error(t, svc.CheckAndUnlockAchievements(1))
	require.Zero(t, catalog.mutations)
}

func TestWeightLossUnlockScenario(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	activity := &fakeActivityStore{progress: []models.ProgressEntry{
		{Date: base, Weight: f64(80)},
		{Date: base.AddDate(0, 0, 10), Weight: f64(79)},
		{Date: base.AddDate(0, 0, 20), Weight: f64(77)},
	}}
	svc, catalog := seededService(t, activity)

	require.NoError(t, svc.CheckAndUnlockAchievements(1))

	ach, err := catalog.FindAchievementByKey("healthy_transformation")
	require.NoError(t, err)
	owned, err := catalog.ListUnlockedAchievementIDs(1)
	require.NoError(t, err)
	require.True(t, owned[ach.ID])
}

func TestUnlockByKeyUnknownKey(t *testing.T) {
	svc, _ := seededService(t, &fakeActivityStore{})

	_, err := svc.UnlockAchievementByKey(1, "no_such_key")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUnlockByKeyManualPath(t *testing.T) {
	svc, _ := seededService(t, &fakeActivityStore{})

	ach, err := svc.UnlockAchievementByKey(1, "gym_legend")
	require.NoError(t, err)
	require.Equal(t, "gym_legend", ach.Key)

	// Second manual unlock of the same key stays a no-op.
	_, err = svc.UnlockAchievementByKey(1, "gym_legend")
	require.NoError(t, err)

	unlocks, err := svc.GetUserAchievements(1)
	require.NoError(t, err)
	require.Len(t, unlocks, 1)
}

// ================== PROGRESS PROJECTION ==================

func TestProgressIsClampedToTarget(t *testing.T) {
	// 45 workout days: raw progress exceeds the 30-day target.
	activity := &fakeActivityStore{sessions: sessionsOnDays(45, 1)}
	svc, _ := seededService(t, activity)

	views, err := svc.GetAchievementsWithProgress(1)
	require.NoError(t, err)

	var found bool
	for _, v := range views {
		if v.Key == "trainer_constant" {
			found = true
			require.Equal(t, 30.0, v.Progress)
			require.Equal(t, 30.0, v.Target)
		}
	}
	require.True(t, found)
}

func TestProgressAndUnlockStayConsistent(t *testing.T) {
	// Whenever projected progress reaches the target, the evaluator must have
	// unlocked that achievement on the same data.
	activity := &fakeActivityStore{
		sessions: sessionsOnDays(30, 1),
		foodLogs: func() []models.FoodLog {
			base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
			var logs []models.FoodLog
			for d := 0; d < 7; d++ {
				logs = append(logs, models.FoodLog{Date: base.AddDate(0, 0, d), IsHealthy: d%2 == 0})
			}
			return logs
		}(),
	}
	svc, _ := seededService(t, activity)

	require.NoError(t, svc.CheckAndUnlockAchievements(1))

	views, err := svc.GetAchievementsWithProgress(1)
	require.NoError(t, err)
	for _, v := range views {
		if v.Progress >= v.Target && v.Target > 1 {
			require.True(t, v.Unlocked, "progress at target but %s not unlocked", v.Key)
		}
	}
}

func TestBinaryAchievementsDefaultToZeroOfOne(t *testing.T) {
	svc, _ := seededService(t, &fakeActivityStore{})

	views, err := svc.GetAchievementsWithProgress(1)
	require.NoError(t, err)

	for _, v := range views {
		if v.Key == "gym_legend" || v.Key == "mind_and_muscle" || v.Key == "strength_titanium" {
			require.Equal(t, 0.0, v.Progress)
			require.Equal(t, 1.0, v.Target)
		}
	}
}

// ================== EQUIP ==================

func TestEquipReplacesPreviousBadge(t *testing.T) {
	svc, _ := seededService(t, &fakeActivityStore{})

	a1, err := svc.UnlockAchievementByKey(1, "chef_of_change")
	require.NoError(t, err)
	a2, err := svc.UnlockAchievementByKey(1, "gym_legend")
	require.NoError(t, err)

	require.NoError(t, svc.SetEquipped(1, a1.ID, true))
	require.NoError(t, svc.SetEquipped(1, a2.ID, true))

	badge, err := svc.GetEquipped(1)
	require.NoError(t, err)
	require.NotNil(t, badge)
	require.Equal(t, a2.ID, badge.ID)

	unlocks, err := svc.GetUserAchievements(1)
	require.NoError(t, err)
	equipped := 0
	for _, ua := range unlocks {
		if ua.Equipped {
			equipped++
		}
	}
	require.Equal(t, 1, equipped)
}

func TestEquipWithoutUnlockMutatesNothing(t *testing.T) {
	svc, catalog := seededService(t, &fakeActivityStore{})

	a1, err := svc.UnlockAchievementByKey(1, "chef_of_change")
	require.NoError(t, err)
	require.NoError(t, svc.SetEquipped(1, a1.ID, true))
	before := catalog.mutations

	err = svc.SetEquipped(1, 9999, true)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, before, catalog.mutations)

	badge, err := svc.GetEquipped(1)
	require.NoError(t, err)
	require.NotNil(t, badge)
	require.Equal(t, a1.ID, badge.ID)
}

func TestUnequipClearsBadge(t *testing.T) {
	svc, _ := seededService(t, &fakeActivityStore{})

	a1, err := svc.UnlockAchievementByKey(1, "chef_of_change")
	require.NoError(t, err)
	require.NoError(t, svc.SetEquipped(1, a1.ID, true))

	require.NoError(t, svc.SetEquipped(1, a1.ID, false))

	badge, err := svc.GetEquipped(1)
	require.NoError(t, err)
	require.Nil(t, badge)
}

func TestGetEquippedWhenNone(t *testing.T) {
	svc, _ := seededService(t, &fakeActivityStore{})

	badge, err := svc.GetEquipped(1)
	require.NoError(t, err)
	require.Nil(t, badge)
}
