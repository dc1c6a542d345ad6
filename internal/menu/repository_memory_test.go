package menu

import (
	"context"
	"strings"
	"testing"
)

func TestDefaultItemsHaveDisplayCosts(t *testing.T) {
	items := DefaultItems()
	if len(items) == 0 {
		t.Fatal("default menu should not be empty")
	}
	for _, item := range items {
		if item.Name == "" {
			t.Error("menu item missing a name")
		}
		if !strings.HasPrefix(item.CostStr, "$") {
			t.Errorf("item %q cost %q missing leading $", item.Name, item.CostStr)
		}
	}
}

func TestInMemoryRepositoryReturnsACopy(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	first, err := repo.ListItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first[0].Name = "mutated"

	second, _ := repo.ListItems(context.Background())
	if second[0].Name == "mutated" {
		t.Fatal("callers should not share the backing slice")
	}
}
