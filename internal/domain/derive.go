package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CalculateProgress returns the completed-task ratio as a rounded percentage.
// An empty task list yields 0.
func CalculateProgress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Status == TaskCompleted {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}

// RecalcBudget rebuilds a Budget from its category list. Total, spent and
// remaining always come from the categories; the currency is carried through.
func RecalcBudget(categories []BudgetCategory, currency string) Budget {
	if currency == "" {
		currency = "USD"
	}
	var total, spent float64
	for _, c := range categories {
		total += c.Planned
		spent += c.Actual
	}
	return Budget{
		Total:      total,
		Spent:      spent,
		Remaining:  total - spent,
		Currency:   currency,
		Categories: categories,
	}
}

// EmptyBudget is the zeroed budget a document starts with, and the fallback
// when a package carries no budget member.
func EmptyBudget() Budget {
	return Budget{Currency: "USD", Categories: []BudgetCategory{}}
}

// Stamp formats a time the way document timestamps are stored.
func Stamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}

// New returns an empty untitled project stamped at now.
func New(now time.Time) Project {
	ts := Stamp(now)
	return Project{
		ID:          uuid.New().String(),
		Name:        "Untitled Project",
		Description: "",
		StartDate:   ts,
		EndDate:     now.UTC().Add(30 * 24 * time.Hour).Format(time.RFC3339),
		Status:      ProjectPlanning,
		Progress:    0,
		Tasks:       []Task{},
		Resources:   []Resource{},
		Milestones:  []Milestone{},
		Teams:       []Team{},
		Budget:      EmptyBudget(),
		Costs:       []CostItem{},
		Risks:       []Risk{},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}
