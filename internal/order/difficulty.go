package order

import "github.com/osse101/Apiary_Go/internal/domain"

// Difficulty is the order tuning for one experience level
type Difficulty struct {
	MinQty           int
	MaxQty           int
	AllowGroups      bool
	AllowNectar      bool
	RewardMultiplier float64
}

var difficultyTable = map[int]Difficulty{
	1:  {MinQty: 1, MaxQty: 2, RewardMultiplier: 1.0},
	2:  {MinQty: 1, MaxQty: 3, RewardMultiplier: 1.1},
	3:  {MinQty: 2, MaxQty: 4, AllowGroups: true, RewardMultiplier: 1.2},
	4:  {MinQty: 2, MaxQty: 5, AllowGroups: true, RewardMultiplier: 1.3},
	5:  {MinQty: 3, MaxQty: 6, AllowGroups: true, AllowNectar: true, RewardMultiplier: 1.4},
	6:  {MinQty: 3, MaxQty: 7, AllowGroups: true, AllowNectar: true, RewardMultiplier: 1.5},
	7:  {MinQty: 4, MaxQty: 8, AllowGroups: true, AllowNectar: true, RewardMultiplier: 1.6},
	8:  {MinQty: 4, MaxQty: 10, AllowGroups: true, AllowNectar: true, RewardMultiplier: 1.7},
	9:  {MinQty: 5, MaxQty: 12, AllowGroups: true, AllowNectar: true, RewardMultiplier: 1.8},
	10: {MinQty: 5, MaxQty: 15, AllowGroups: true, AllowNectar: true, RewardMultiplier: 2.0},
}

// DifficultyFor clamps level into 1..10 and returns its tuning
func DifficultyFor(level int) Difficulty {
	level = max(domain.MinExperienceLevel, min(domain.MaxExperienceLevel, level))
	return difficultyTable[level]
}
