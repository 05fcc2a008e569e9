package prompt

import "github.com/omarshaarawi/bracketpool/internal/models"

// DefaultPlayoffField returns the 2025 Stanley Cup playoff field.
func DefaultPlayoffField() []models.Team {
	return []models.Team{
		{Name: "Toronto Maple Leafs", Seed: 1, Conference: "East"},
		{Name: "Tampa Bay Lightning", Seed: 2, Conference: "East"},
		{Name: "Washington Capitals", Seed: 3, Conference: "East"},
		{Name: "Carolina Hurricanes", Seed: 4, Conference: "East"},
		{Name: "New Jersey Devils", Seed: 5, Conference: "East"},
		{Name: "Montreal Canadiens", Seed: 6, Conference: "East"},
		{Name: "Florida Panthers", Seed: 7, Conference: "East"},
		{Name: "Ottawa Senators", Seed: 8, Conference: "East"},
		{Name: "Winnipeg Jets", Seed: 1, Conference: "West"},
		{Name: "Dallas Stars", Seed: 2, Conference: "West"},
		{Name: "Vegas Golden Knights", Seed: 3, Conference: "West"},
		{Name: "Los Angeles Kings", Seed: 4, Conference: "West"},
		{Name: "Edmonton Oilers", Seed: 5, Conference: "West"},
		{Name: "Minnesota Wild", Seed: 6, Conference: "West"},
		{Name: "Colorado Avalanche", Seed: 7, Conference: "West"},
		{Name: "St Louis Blues", Seed: 8, Conference: "West"},
	}
}
