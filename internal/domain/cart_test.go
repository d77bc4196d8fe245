package domain

import (
	"testing"
)

func line(menuItemID string, price int64, qty int, recipient string, opts LineOptions) CartLine {
	return CartLine{
		MenuItemID: menuItemID,
		Name:       "Item " + menuItemID,
		Price:      price,
		Quantity:   qty,
		Recipient:  recipient,
		Options:    opts,
	}
}

func TestCartAddMergesMatchingLines(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}

	first, err := cart.Add(line("b1", 450, 2, "", LineOptions{Side: "Ugali", AddOns: []string{"Kachumbari", "Extra Sauce"}}))
	if err != nil {
		t.Fatal(err)
	}

	// Same item, add-ons in reversed order: must merge, not append.
	second, err := cart.Add(line("b1", 450, 1, "", LineOptions{Side: "Ugali", AddOns: []string{"Extra Sauce", "Kachumbari"}}))
	if err != nil {
		t.Fatal(err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line after merge, got %d", len(cart.Lines))
	}
	if second.ID != first.ID {
		t.Errorf("merged line should keep the original id: %s != %s", second.ID, first.ID)
	}
	if cart.Lines[0].Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", cart.Lines[0].Quantity)
	}
}

func TestCartAddKeepsDistinctLinesApart(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}

	tests := []struct {
		name string
		a, b CartLine
	}{
		{"different items", line("b1", 450, 1, "", LineOptions{}), line("m1", 250, 1, "", LineOptions{})},
		{"different side", line("b1", 450, 1, "", LineOptions{Side: "Ugali"}), line("b1", 450, 1, "", LineOptions{Side: "Rice"})},
		{"different spice", line("b1", 450, 1, "", LineOptions{Spice: "Mild"}), line("b1", 450, 1, "", LineOptions{Spice: "Hot"})},
		{"different recipient", line("b1", 450, 1, "Alice", LineOptions{}), line("b1", 450, 1, "Bob", LineOptions{})},
		{"different add-ons", line("b1", 450, 1, "", LineOptions{AddOns: []string{"Kachumbari"}}), line("b1", 450, 1, "", LineOptions{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart.Clear()
			if _, err := cart.Add(tt.a); err != nil {
				t.Fatal(err)
			}
			if _, err := cart.Add(tt.b); err != nil {
				t.Fatal(err)
			}
			if len(cart.Lines) != 2 {
				t.Errorf("expected 2 lines, got %d", len(cart.Lines))
			}
		})
	}
}

func TestCartAddRejectsZeroQuantity(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}
	if _, err := cart.Add(line("b1", 450, 0, "", LineOptions{})); err != ErrInvalidQuantity {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestCartSetQuantity(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}
	added, _ := cart.Add(line("b1", 450, 2, "", LineOptions{}))

	cart.SetQuantity(added.ID, 5)
	if cart.Lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart.Lines[0].Quantity)
	}

	// Zero or negative removes the line, same as an explicit remove.
	cart.SetQuantity(added.ID, 0)
	if !cart.IsEmpty() {
		t.Error("setting quantity to 0 should remove the line")
	}

	cart.SetQuantity("unknown", 3)
	if !cart.IsEmpty() {
		t.Error("unknown line id should be a no-op")
	}
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}
	added, _ := cart.Add(line("b1", 450, 1, "", LineOptions{}))

	cart.Remove(added.ID)
	cart.Remove(added.ID)

	if !cart.IsEmpty() {
		t.Error("cart should be empty after remove")
	}
}

func TestCartSubtotal(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}
	cart.Add(line("b1", 450, 2, "", LineOptions{}))
	cart.Add(line("m1", 250, 1, "", LineOptions{}))

	if got := cart.Subtotal(); got != 1150 {
		t.Errorf("Subtotal() = %d, want 1150", got)
	}

	cart.Clear()
	if got := cart.Subtotal(); got != 0 {
		t.Errorf("Subtotal() after clear = %d, want 0", got)
	}
}

func TestCloneLinesIsDeep(t *testing.T) {
	cart := &Cart{CustomerID: "c1"}
	cart.Add(line("b1", 450, 1, "", LineOptions{AddOns: []string{"Kachumbari"}}))

	snapshot := cart.CloneLines()
	cart.Lines[0].Quantity = 99
	cart.Lines[0].Options.AddOns[0] = "changed"

	if snapshot[0].Quantity != 1 {
		t.Errorf("snapshot quantity mutated: %d", snapshot[0].Quantity)
	}
	if snapshot[0].Options.AddOns[0] != "Kachumbari" {
		t.Errorf("snapshot add-ons mutated: %v", snapshot[0].Options.AddOns)
	}
}
