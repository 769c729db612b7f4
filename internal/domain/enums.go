package domain

import "slices"

// Difficulty selects the vocabulary register requested from the generator.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMiddle Difficulty = "MIDDLE"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMiddle, DifficultyHard:
		return true
	}
	return false
}

// Difficulties returns all difficulties in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMiddle, DifficultyHard}
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleModel
}

var categories = []string{
	"旅行", "食事", "買い物", "仕事", "恋愛", "学校", "アニメ", "ネットスラング", "病院",
}

// Categories returns the fixed vocabulary topic labels in display order.
func Categories() []string {
	return slices.Clone(categories)
}

// IsValidCategory reports whether c is one of the fixed topic labels.
func IsValidCategory(c string) bool {
	return slices.Contains(categories, c)
}
