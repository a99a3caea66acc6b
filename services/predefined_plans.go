// services/predefined_plans.go - Built-in routines and nutrition plans
package services

import "fitai/models"

// Predefined plans use negative ids so they never collide with user-created
// rows; the plan handlers merge them into listings and the activate endpoints
// accept their ids directly.

type PredefinedPlan struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Content      string `json:"content"`
	IsPredefined bool   `json:"is_predefined"`
}

var PredefinedRoutines = []PredefinedPlan{
	{
		ID:   -1,
		Name: "Full Body - 3 Days (Beginner)",
		Description: "An ideal starting routine, working the whole body to build a solid base " +
			"and gain general strength.",
		Content: "**Day 1:**\n- Squats: 3x10\n- Bench Press: 3x10\n- Barbell Row: 3x10\n- Overhead Press: 3x12\n- Plank: 3x30 seconds\n\n" +
			"**Day 2 (rest or light cardio)**\n\n" +
			"**Day 3:**\n- Romanian Deadlift: 3x12\n- Push-ups: 3xTo failure\n- Lat Pulldown: 3x10\n- Lateral Raises: 3x15\n- Crunches: 3x15\n\n" +
			"**Day 4 (rest or light cardio)**\n\n" +
			"**Day 5:**\n- Lunges: 3x12 (per leg)\n- Incline Dumbbell Press: 3x12\n- Seated Cable Row: 3x12\n- Biceps Curl: 3x12\n- Triceps Extensions: 3x12",
		IsPredefined: true,
	},
	{
		ID:   -2,
		Name: "Push/Pull/Legs (PPL) - 6 Days",
		Description: "The classic high-frequency hypertrophy split across push, pull and leg days. " +
			"For intermediate and advanced lifters.",
		Content: "**Day 1: Push (Chest, Shoulders, Triceps)**\n- Bench Press: 4x8\n- Incline Dumbbell Press: 3x10\n- Overhead Press: 3x10\n- Lateral Raises: 4x12\n- Cable Triceps Extensions: 3x12\n\n" +
			"**Day 2: Pull (Back, Biceps)**\n- Pull-ups: 3xTo failure\n- Barbell Row: 4x8\n- Lat Pulldown: 3x10\n- Face Pulls: 3x15\n- Barbell Biceps Curl: 3x10\n\n" +
			"**Day 3: Legs**\n- Squats: 4x8\n- Leg Press: 3x12\n- Leg Extensions: 3x15\n- Leg Curl: 3x12\n- Calf Raises: 4x15",
		IsPredefined: true,
	},
	{
		ID:   -3,
		Name: "Upper/Lower - 4 Days",
		Description: "A perfect balance between frequency and volume, ideal for strength and " +
			"hypertrophy gains at intermediate level.",
		Content: "**Day 1: Upper (Strength)**\n- Bench Press: 5x5\n- Barbell Row: 5x5\n- Overhead Press: 3x8\n- Weighted Pull-ups: 3x6-8\n\n" +
			"**Day 2: Lower (Strength)**\n- Squats: 5x5\n- Deadlift: 1x5 (heavy)\n- Dumbbell Lunges: 3x10\n- Calf Raises: 3x12\n\n" +
			"**Day 3: Upper (Hypertrophy)**\n- Incline Press: 4x12\n- Lat Pulldown: 4x12\n- Lateral Raises: 4x15\n- Biceps Curl: 3x12\n- Triceps Extensions: 3x12\n\n" +
			"**Day 4: Lower (Hypertrophy)**\n- Leg Press: 4x15\n- Leg Curl: 4x12\n- Leg Extensions: 4x15\n- Hip Abduction Machine: 3x20",
		IsPredefined: true,
	},
}

var PredefinedNutritionPlans = []PredefinedPlan{
	{
		ID:   -1,
		Name: "Balanced Plan - 2000 kcal",
		Description: "A balanced daily nutrition plan for maintenance or slight weight loss, " +
			"at 2000 calories.",
		Content: "**Breakfast:**\n- Oats (50g) with milk (200ml), berries (100g) and a handful of walnuts.\n\n" +
			"**Mid-morning:**\n- Greek yogurt (150g) with fruit.\n\n" +
			"**Lunch:**\n- Big salad with grilled chicken (150g), mixed vegetables, avocado (50g) and a light dressing.\n\n" +
			"**Snack:**\n- Handful of almonds (30g).\n\n" +
			"**Dinner:**\n- Baked salmon (150g) with roasted sweet potato (150g) and steamed broccoli (200g).",
		IsPredefined: true,
	},
	{
		ID:   -2,
		Name: "High-Protein Plan - Muscle Gain",
		Description: "Designed to support muscle growth with a high protein intake and " +
			"controlled calories.",
		Content: "**Breakfast:**\n- Omelette of 4 whites and 1 yolk with spinach and low-fat cheese.\n- Whole-grain toast with turkey (50g).\n\n" +
			"**Mid-morning:**\n- Cottage cheese (150g) with honey.\n\n" +
			"**Lunch:**\n- Brown rice (100g cooked) with lean beef (200g) and asparagus.\n\n" +
			"**Snack:**\n- Protein shake with milk and a banana.\n\n" +
			"**Dinner:**\n- Chicken breast (200g) with quinoa (80g cooked) and mixed salad.",
		IsPredefined: true,
	},
	{
		ID:   -3,
		Name: "Vegetarian Plan - Weight Loss",
		Description: "A low-calorie vegetarian plan, rich in fiber and nutrients, for " +
			"weight loss.",
		Content: "**Breakfast:**\n- Green smoothie (spinach, banana, almond milk, plant protein).\n\n" +
			"**Mid-morning:**\n- Apple with peanut butter (15g).\n\n" +
			"**Lunch:**\n- Stewed lentils (200g) with vegetables (carrot, zucchini).\n\n" +
			"**Snack:**\n- Edamame (100g).\n\n" +
			"**Dinner:**\n- Grilled tofu (150g) with stir-fried vegetables (peppers, onion, mushrooms).",
		IsPredefined: true,
	},
}

// PredefinedRoutineByID looks up a built-in routine by its negative id.
func PredefinedRoutineByID(id int) *PredefinedPlan {
	for i := range PredefinedRoutines {
		if PredefinedRoutines[i].ID == id {
			return &PredefinedRoutines[i]
		}
	}
	return nil
}

// PredefinedNutritionByID looks up a built-in nutrition plan by its negative id.
func PredefinedNutritionByID(id int) *PredefinedPlan {
	for i := range PredefinedNutritionPlans {
		if PredefinedNutritionPlans[i].ID == id {
			return &PredefinedNutritionPlans[i]
		}
	}
	return nil
}

// MergePlans appends the built-in plans after the user's own.
func MergePlans(predefined []PredefinedPlan, own []PredefinedPlan) []PredefinedPlan {
	merged := make([]PredefinedPlan, 0, len(predefined)+len(own))
	merged = append(merged, own...)
	merged = append(merged, predefined...)
	return merged
}

// RoutineToPlan maps a stored routine to the common plan shape.
func RoutineToPlan(r models.Routine) PredefinedPlan {
	return PredefinedPlan{ID: int(r.ID), Name: r.Name, Description: r.Description, Content: r.Content}
}

// NutritionToPlan maps a stored nutrition plan to the common plan shape.
func NutritionToPlan(n models.NutritionPlan) PredefinedPlan {
	return PredefinedPlan{ID: int(n.ID), Name: n.Name, Description: n.Description, Content: n.Content}
}
