package domain

import (
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// LineOptions are the choices made for a single cart line.
// Side and spice are mutually exclusive picks from the item's option
// groups; add-ons may carry any number of entries.
type LineOptions struct {
	Side   string   `json:"side,omitempty"`
	Spice  string   `json:"spice,omitempty"`
	AddOns []string `json:"add_ons,omitempty"`
}

// key is order-independent: add-ons are sorted before joining, so two
// option sets that differ only in add-on ordering compare equal.
func (o LineOptions) key() string {
	addOns := append([]string(nil), o.AddOns...)
	sort.Strings(addOns)
	return o.Side + "\x1f" + o.Spice + "\x1f" + strings.Join(addOns, ",")
}

// CartLine is one distinct item+options+recipient combination in a
// cart. Name, price and image are snapshotted at add time and are not
// kept in sync with later catalog changes.
type CartLine struct {
	ID         string      `json:"id"`
	MenuItemID string      `json:"menu_item_id"`
	Name       string      `json:"name"`
	Price      int64       `json:"price"`
	Image      string      `json:"image,omitempty"`
	Quantity   int         `json:"quantity"`
	Recipient  string      `json:"recipient,omitempty"`
	Options    LineOptions `json:"options"`
}

func (l CartLine) mergeKey() string {
	return l.MenuItemID + "\x1f" + l.Recipient + "\x1f" + l.Options.key()
}

// Cart holds a customer's in-progress order.
type Cart struct {
	CustomerID string     `json:"customer_id"`
	Lines      []CartLine `json:"lines"`
}

// Add merges the candidate into an existing line when menu item,
// options and recipient all match structurally; otherwise it assigns a
// fresh id and appends. Returns the line that absorbed the addition.
func (c *Cart) Add(candidate CartLine) (CartLine, error) {
	if candidate.Quantity < 1 {
		return CartLine{}, ErrInvalidQuantity
	}

	key := candidate.mergeKey()
	for i := range c.Lines {
		if c.Lines[i].mergeKey() == key {
			c.Lines[i].Quantity += candidate.Quantity
			return c.Lines[i], nil
		}
	}

	candidate.ID = uuid.NewString()
	c.Lines = append(c.Lines, candidate)
	return candidate, nil
}

// Remove deletes the line with the given id. Unknown ids are a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity; zero or negative removes the
// line. Unknown ids are a no-op.
func (c *Cart) SetQuantity(id string, qty int) {
	if qty <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines[i].Quantity = qty
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Subtotal is the sum of price times quantity over all lines. It is
// computed fresh on every call; nothing is cached.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Price * int64(l.Quantity)
	}
	return total
}

// CloneLines deep-copies the cart's lines so a snapshot taken at
// checkout cannot be affected by later cart mutations.
func (c *Cart) CloneLines() []CartLine {
	return CloneLines(c.Lines)
}

func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		out[i].Options.AddOns = append([]string(nil), lines[i].Options.AddOns...)
	}
	return out
}
