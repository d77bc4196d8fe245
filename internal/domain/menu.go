package domain

// ItemOptions are the option groups a menu item offers. Each group is
// a list of mutually exclusive choices.
type ItemOptions struct {
	Sides       []string `json:"sides,omitempty"`
	SpiceLevels []string `json:"spice_levels,omitempty"`
}

// MenuItem is a purchasable catalog entry. The catalog is static and
// read-only; items are identified both by id and by slug.
type MenuItem struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       int64       `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Rating      float64     `json:"rating"`
	Reviews     int         `json:"reviews"`
	PrepTime    string      `json:"prep_time"`
	Tags        []string    `json:"tags"`
	Options     ItemOptions `json:"options"`
}
