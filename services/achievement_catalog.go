// services/achievement_catalog.go - Built-in achievement definitions
package services

import "fitai/models"

// BuiltInAchievements is the compiled-in catalog. Rules bind to Key, never to
// the numeric id. Seeding inserts missing keys and never rewrites existing
// rows, so editing this list only affects fresh databases.
var BuiltInAchievements = []models.Achievement{
	{
		Key:         "strength_titanium",
		Name:        "Titanium Strength",
		Description: "Lift a personal record on one of the big three (bench press, squat or deadlift).",
		Category:    "physical",
		Icon:        "/images/achievements/titanium-strength.png",
		Rarity:      "epic",
	},
	{
		Key:         "trainer_constant",
		Name:        "Constant Trainer",
		Description: "Train on 30 different days without giving up.",
		Category:    "physical",
		Icon:        "/images/achievements/constant-trainer.png",
		Rarity:      "rare",
	},
	{
		Key:         "heart_of_steel",
		Name:        "Heart of Steel",
		Description: "Accumulate more than 10 hours of cardio.",
		Category:    "physical",
		Icon:        "/images/achievements/heart-of-steel.png",
		Rarity:      "rare",
	},
	{
		Key:         "mind_and_muscle",
		Name:        "Mind and Muscle",
		Description: "Complete a challenge that combines training with mental focus, like post-workout yoga or meditation.",
		Category:    "physical",
		Icon:        "/images/achievements/mind-and-muscle.png",
		Rarity:      "epic",
	},
	{
		Key:         "nutrition_expert",
		Name:        "Nutrition Expert",
		Description: "Log healthy meals on 30 different days.",
		Category:    "nutrition",
		Icon:        "/images/achievements/nutrition-expert.png",
		Rarity:      "rare",
	},
	{
		Key:         "healthy_transformation",
		Name:        "Healthy Transformation",
		Description: "Improve your body composition by losing at least 2 kg.",
		Category:    "nutrition",
		Icon:        "/images/achievements/healthy-transformation.png",
		Rarity:      "epic",
	},
	{
		Key:         "chef_of_change",
		Name:        "Chef of Change",
		Description: "Log your own meals every day for a whole week.",
		Category:    "nutrition",
		Icon:        "/images/achievements/chef-of-change.png",
		Rarity:      "common",
	},
	{
		Key:         "gym_legend",
		Name:        "Gym Legend",
		Description: "Conquer multiple physical challenges through constancy and dedication.",
		Category:    "physical",
		Icon:        "/images/achievements/gym-legend.png",
		Rarity:      "legendary",
	},
	{
		Key:         "hero_path",
		Name:        "Hero's Path",
		Description: "Complete your first full year on the platform while keeping your progress going.",
		Category:    "social",
		Icon:        "/images/achievements/heros-path.png",
		Rarity:      "legendary",
	},
}
