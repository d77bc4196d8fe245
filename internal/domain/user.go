package domain

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNoActiveProfile = errors.New("no active profile")

// Address is a saved delivery location. More than one address may be
// flagged default; nothing enforces uniqueness of the flag.
type Address struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Location  string `json:"address"`
	Details   string `json:"details,omitempty"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// Profile is the single active customer profile.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Addresses []Address `json:"addresses"`
}

// ProfileUpdate carries a partial profile; empty fields are left as-is
// on merge.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Apply shallow-merges the update into the profile.
func (p *Profile) Apply(u ProfileUpdate) {
	if u.Name != "" {
		p.Name = u.Name
	}
	if u.Email != "" {
		p.Email = u.Email
	}
	if u.Phone != "" {
		p.Phone = u.Phone
	}
}

// AddAddress appends the address with a freshly generated id and
// returns it.
func (p *Profile) AddAddress(a Address) Address {
	a.ID = uuid.NewString()
	p.Addresses = append(p.Addresses, a)
	return a
}

// StubProfile is the fixed profile seeded on login. There is no real
// authentication exchange; the phone number is the only caller input.
func StubProfile(phone string) *Profile {
	return &Profile{
		ID:    uuid.NewString(),
		Name:  "Oliver",
		Email: "oliver@savaneats.com",
		Phone: phone,
		Addresses: []Address{
			{ID: uuid.NewString(), Title: "Office", Location: "Westlands, Delta Towers", IsDefault: true},
			{ID: uuid.NewString(), Title: "Home", Location: "Kilimani, Rose Ave"},
		},
	}
}
