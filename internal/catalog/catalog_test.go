package catalog

import (
	"testing"
	"time"
)

func TestItemsAreWellFormed(t *testing.T) {
	items := Items()
	if len(items) == 0 {
		t.Fatal("menu is empty")
	}

	seenIDs := make(map[string]bool)
	seenSlugs := make(map[string]bool)
	for _, item := range items {
		if item.ID == "" || item.Slug == "" || item.Name == "" {
			t.Errorf("item missing identity fields: %+v", item)
		}
		if item.Price <= 0 {
			t.Errorf("item %s has non-positive price %d", item.ID, item.Price)
		}
		if seenIDs[item.ID] {
			t.Errorf("duplicate item id %s", item.ID)
		}
		if seenSlugs[item.Slug] {
			t.Errorf("duplicate slug %s", item.Slug)
		}
		seenIDs[item.ID] = true
		seenSlugs[item.Slug] = true
	}
}

func TestLookups(t *testing.T) {
	item, ok := ByID("b1")
	if !ok {
		t.Fatal("expected item b1")
	}

	bySlug, ok := BySlug(item.Slug)
	if !ok || bySlug.ID != item.ID {
		t.Errorf("BySlug(%s) did not return the same item", item.Slug)
	}

	if _, ok := ByID("nope"); ok {
		t.Error("unknown id should not be found")
	}
	if _, ok := BySlug("nope"); ok {
		t.Error("unknown slug should not be found")
	}
}

func TestByCategoryMatchesCategories(t *testing.T) {
	total := 0
	for _, category := range Categories() {
		items := ByCategory(category)
		if len(items) == 0 {
			t.Errorf("category %s has no items", category)
		}
		for _, item := range items {
			if item.Category != category {
				t.Errorf("item %s leaked into category %s", item.ID, category)
			}
		}
		total += len(items)
	}
	if total != len(Items()) {
		t.Errorf("categories cover %d items, menu has %d", total, len(Items()))
	}
}

func TestCurrentMealPeriod(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, "dinner"},
		{6, "breakfast"},
		{10, "breakfast"},
		{11, "lunch"},
		{16, "lunch"},
		{17, "dinner"},
		{23, "dinner"},
		{0, "dinner"},
	}

	for _, tt := range tests {
		now := time.Date(2025, 6, 1, tt.hour, 0, 0, 0, time.UTC)
		if got := CurrentMealPeriod(now).Type; got != tt.want {
			t.Errorf("hour %d: got %s, want %s", tt.hour, got, tt.want)
		}
	}
}
