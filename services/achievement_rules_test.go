package services

import (
	"testing"
	"time"

	"fitai/models"

	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in    string
		value int
		ok    bool
	}{
		{"45 min", 45, true},
		{"  30", 30, true},
		{"-5 incline", -5, true},
		{"+12", 12, true},
		{"3x10 60kg", 3, true},
		{"unclear", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		value, ok := leadingInt(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.value, value, "input %q", tc.in)
	}
}

func TestCardioMinutesMatchesSubstringCaseInsensitive(t *testing.T) {
	sessions := []models.WorkoutSession{
		{Date: day(0), Exercises: []models.ExerciseLog{
			{ExerciseName: "Cardio HIIT", RepsAndWeight: "45 min"},
			{ExerciseName: "morning cardio", RepsAndWeight: "30"},
			{ExerciseName: "Bench Press", RepsAndWeight: "3x10 80kg"},
			{ExerciseName: "cardio bike", RepsAndWeight: "unclear"},
		}},
	}
	require.Equal(t, 75, cardioMinutes(sessions))
}

func TestHeartOfSteelRule(t *testing.T) {
	// 10h30m of cardio: progress 10.5 against a target of 10.
	snap := &ActivitySnapshot{Sessions: []models.WorkoutSession{
		{Date: day(0), Exercises: []models.ExerciseLog{
			{ExerciseName: "cardio", RepsAndWeight: "600 min"},
			{ExerciseName: "cardio", RepsAndWeight: "30 min"},
		}},
	}}
	progress, target := progressRules["heart_of_steel"](snap)
	require.Equal(t, 10.5, progress)
	require.Equal(t, 10.0, target)
}

func TestDistinctWorkoutDays(t *testing.T) {
	sessions := []models.WorkoutSession{
		{Date: day(0).Add(8 * time.Hour)},
		{Date: day(0).Add(18 * time.Hour)},
		{Date: day(1)},
	}
	require.Equal(t, 2, distinctWorkoutDays(sessions))
}

func TestDistinctFoodDaysHealthyFilter(t *testing.T) {
	logs := []models.FoodLog{
		{Date: day(0), IsHealthy: true},
		{Date: day(0), IsHealthy: false},
		{Date: day(1), IsHealthy: false},
		{Date: day(2), IsHealthy: true},
	}
	require.Equal(t, 2, distinctFoodDays(logs, true))
	require.Equal(t, 3, distinctFoodDays(logs, false))
}

func TestWeightLostFirstVersusLast(t *testing.T) {
	// Non-monotonic history: only the endpoints matter.
	entries := []models.ProgressEntry{
		{Date: day(0), Weight: f64(80)},
		{Date: day(5), Weight: f64(70)},
		{Date: day(10), Weight: f64(78)},
	}
	require.Equal(t, 2.0, weightLost(entries))
}

func TestWeightLostNeverNegative(t *testing.T) {
	entries := []models.ProgressEntry{
		{Date: day(0), Weight: f64(70)},
		{Date: day(10), Weight: f64(75)},
	}
	require.Equal(t, 0.0, weightLost(entries))
}

func TestWeightLostRequiresTwoWeighedEntries(t *testing.T) {
	require.Equal(t, 0.0, weightLost(nil))
	require.Equal(t, 0.0, weightLost([]models.ProgressEntry{{Date: day(0), Weight: f64(80)}}))
	require.Equal(t, 0.0, weightLost([]models.ProgressEntry{
		{Date: day(0), Weight: nil},
		{Date: day(1), Weight: f64(78)},
	}))
}

func TestHeroPathRule(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	created := now.AddDate(-1, 0, -3)
	snap := &ActivitySnapshot{AccountCreatedAt: &created, Now: now}
	progress, target := progressRules["hero_path"](snap)
	require.Equal(t, 368.0, progress)
	require.Equal(t, 365.0, target)

	// No profile yet: rule reports zero rather than failing.
	progress, target = progressRules["hero_path"](&ActivitySnapshot{Now: now})
	require.Equal(t, 0.0, progress)
	require.Equal(t, 365.0, target)
}

func TestActiveCommunityRule(t *testing.T) {
	progress, target := progressRules["active_community"](&ActivitySnapshot{FriendCount: 2})
	require.Equal(t, 2.0, progress)
	require.Equal(t, 1.0, target)
}

func TestEveryRuleKeyExceptCommunityIsSeeded(t *testing.T) {
	seeded := make(map[string]bool, len(BuiltInAchievements))
	for _, a := range BuiltInAchievements {
		seeded[a.Key] = true
	}
	for key := range progressRules {
		if key == "active_community" {
			continue
		}
		require.True(t, seeded[key], "rule %q has no catalog definition", key)
	}
}
