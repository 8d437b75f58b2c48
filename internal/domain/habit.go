package domain

import "time"

// Category groups habit definitions into the fixed set users pick from
// during onboarding.
type Category string

const (
	CategoryHealth        Category = "health"
	CategoryProductivity  Category = "productivity"
	CategoryMindfulness   Category = "mindfulness"
	CategoryRelationships Category = "relationships"
	CategoryLearning      Category = "learning"
	CategoryCreativity    Category = "creativity"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryHealth,
		CategoryProductivity,
		CategoryMindfulness,
		CategoryRelationships,
		CategoryLearning,
		CategoryCreativity,
	}
}

// Difficulty rates how demanding a habit is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Habit is one immutable catalog definition of a daily micro-habit.
type Habit struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimatedTime"`
	Tips          []string   `json:"tips"`
	Benefits      []string   `json:"benefits"`
	Icon          string     `json:"icon"`
	Color         string     `json:"color"`
}

// DailyAssignment binds one user to one habit on one calendar date.
// The JSON tags are the storage schema shared with existing client data,
// so renaming a field is a breaking change.
type DailyAssignment struct {
	ID          string     `json:"id"`
	HabitID     string     `json:"habitId"`
	Date        string     `json:"date"` // YYYY-MM-DD
	UserID      string     `json:"userId"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Skipped     bool       `json:"skipped,omitempty"`
	SkippedAt   *time.Time `json:"skippedAt,omitempty"`
}

// HabitProgress is a pure projection over a user's assignment history.
// It is recomputed on every request and never stored.
type HabitProgress struct {
	TotalHabits     int
	CompletedHabits int
	CurrentStreak   int
	LongestStreak   int
	CompletionRate  float64 // 0-100
}

// UserProfile is the minimal profile record consulted to decide whether a
// user is cloud-backed. A profile with a linked email means signed in.
type UserProfile struct {
	UserID    string
	Email     string
	CreatedAt time.Time
}

// SignedIn reports whether the profile carries a linked identity.
func (p *UserProfile) SignedIn() bool {
	return p != nil && p.Email != ""
}

// DateFormat is the calendar-date layout used everywhere an assignment
// date is stored or compared.
const DateFormat = "2006-01-02"
