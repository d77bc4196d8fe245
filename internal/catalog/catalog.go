// Package catalog holds the static menu. The list is read-only and
// loaded once at startup; there is no lifecycle and no external data
// source behind it.
package catalog

import (
	"time"

	"github.com/savaneats/savan/internal/domain"
)

// Items returns the full menu in display order.
func Items() []domain.MenuItem {
	return menuItems
}

// ByID looks an item up by its id.
func ByID(id string) (domain.MenuItem, bool) {
	for _, item := range menuItems {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

// BySlug looks an item up by its URL slug.
func BySlug(slug string) (domain.MenuItem, bool) {
	for _, item := range menuItems {
		if item.Slug == slug {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

// ByCategory filters the menu to one category, preserving order.
func ByCategory(category string) []domain.MenuItem {
	var items []domain.MenuItem
	for _, item := range menuItems {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// Categories lists the distinct categories in first-seen order.
func Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, item := range menuItems {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories
}

// MealPeriod describes the current meal window derived from the local
// hour: breakfast 06-11, lunch 11-17, dinner otherwise.
type MealPeriod struct {
	Type        string `json:"type"`
	Greeting    string `json:"greeting"`
	Description string `json:"description"`
}

func CurrentMealPeriod(now time.Time) MealPeriod {
	hour := now.Hour()

	if hour >= 6 && hour < 11 {
		return MealPeriod{
			Type:        "breakfast",
			Greeting:    "Good Morning",
			Description: "Start your day with the vibrant energy of the Savannah.",
		}
	}

	if hour >= 11 && hour < 17 {
		return MealPeriod{
			Type:        "lunch",
			Greeting:    "Midday Energy",
			Description: "Fuel your afternoon with bold, artisanal African mains.",
		}
	}

	return MealPeriod{
		Type:        "dinner",
		Greeting:    "Cozy Evening",
		Description: "Wind down with our most prized slow-cooked platters.",
	}
}
