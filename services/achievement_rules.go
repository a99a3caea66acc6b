// services/achievement_rules.go - Progress rules shared by the evaluator and
// the projector. Both read the same registry, so crossing a progress threshold
// and the unlock condition firing can never disagree.
package services

import (
	"math"
	"strings"
	"time"

	"fitai/models"
)

// ActivitySnapshot is everything a rule may look at. It is assembled once per
// evaluation from independent store reads; rules never touch storage.
type ActivitySnapshot struct {
	Sessions         []models.WorkoutSession
	FoodLogs         []models.FoodLog
	Progress         []models.ProgressEntry // date ascending
	FriendCount      int64
	AccountCreatedAt *time.Time
	Now              time.Time
}

// ProgressRule computes a raw progress value and its target for one
// achievement key. Raw progress may exceed the target; the projector clamps.
type ProgressRule func(s *ActivitySnapshot) (progress, target float64)

// progressRules maps achievement keys to their rule. Keys absent here are
// binary achievements (progress 0, target 1). active_community has no catalog
// row seeded, so the evaluator's missing-key skip keeps it progress-only.
var progressRules = map[string]ProgressRule{
	"trainer_constant": func(s *ActivitySnapshot) (float64, float64) {
		// Distinct calendar days, not session rows: 40 sessions on 5 days count 5.
		return float64(distinctWorkoutDays(s.Sessions)), 30
	},
	"healthy_transformation": func(s *ActivitySnapshot) (float64, float64) {
		return weightLost(s.Progress), 2
	},
	"active_community": func(s *ActivitySnapshot) (float64, float64) {
		return float64(s.FriendCount), 1
	},
	"nutrition_expert": func(s *ActivitySnapshot) (float64, float64) {
		return float64(distinctFoodDays(s.FoodLogs, true)), 30
	},
	"heart_of_steel": func(s *ActivitySnapshot) (float64, float64) {
		return float64(cardioMinutes(s.Sessions)) / 60, 10
	},
	"chef_of_change": func(s *ActivitySnapshot) (float64, float64) {
		return float64(distinctFoodDays(s.FoodLogs, false)), 7
	},
	"hero_path": func(s *ActivitySnapshot) (float64, float64) {
		if s.AccountCreatedAt == nil {
			return 0, 365
		}
		days := s.Now.Sub(*s.AccountCreatedAt).Hours() / 24
		return math.Floor(days), 365
	},
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func distinctWorkoutDays(sessions []models.WorkoutSession) int {
	days := make(map[string]struct{})
	for _, s := range sessions {
		days[dayKey(s.Date)] = struct{}{}
	}
	return len(days)
}

func distinctFoodDays(logs []models.FoodLog, healthyOnly bool) int {
	days := make(map[string]struct{})
	for _, f := range logs {
		if healthyOnly && !f.IsHealthy {
			continue
		}
		days[dayKey(f.Date)] = struct{}{}
	}
	return len(days)
}

// weightLost is first-vs-last by date, not min-vs-max: a non-monotonic
// history can yield zero. Entries without a recorded weight don't qualify.
func weightLost(entries []models.ProgressEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	first := entries[0].Weight
	last := entries[len(entries)-1].Weight
	if first == nil || last == nil {
		return 0
	}
	return math.Max(0, *first-*last)
}

// cardioMinutes sums the leading integer of RepsAndWeight over exercise
// entries whose name contains "cardio". Unparseable values contribute 0.
func cardioMinutes(sessions []models.WorkoutSession) int {
	total := 0
	for _, s := range sessions {
		for _, ex := range s.Exercises {
			if !strings.Contains(strings.ToLower(ex.ExerciseName), "cardio") {
				continue
			}
			if minutes, ok := leadingInt(ex.RepsAndWeight); ok {
				total += minutes
			}
		}
	}
	return total
}

// leadingInt parses the leading integer token of a free-text field: optional
// whitespace, optional sign, then digits ("45 min" -> 45). Anything else
// reports ok=false.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}
	start := i
	value := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}
