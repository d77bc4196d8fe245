package domain

import "testing"

func TestProfileApplyMergesNonEmptyFields(t *testing.T) {
	p := StubProfile("0712345678")

	p.Apply(ProfileUpdate{Name: "Wanjiku"})

	if p.Name != "Wanjiku" {
		t.Errorf("Name = %s, want Wanjiku", p.Name)
	}
	if p.Email != "oliver@savaneats.com" {
		t.Errorf("empty update field should not clear email, got %s", p.Email)
	}
	if p.Phone != "0712345678" {
		t.Errorf("Phone = %s", p.Phone)
	}
}

func TestStubProfileSeedsDefaultAddresses(t *testing.T) {
	p := StubProfile("0712345678")

	if len(p.Addresses) != 2 {
		t.Fatalf("expected 2 seeded addresses, got %d", len(p.Addresses))
	}
	if p.Addresses[0].Title != "Office" || !p.Addresses[0].IsDefault {
		t.Errorf("first address should be the default Office, got %+v", p.Addresses[0])
	}
	if p.Addresses[1].Title != "Home" || p.Addresses[1].IsDefault {
		t.Errorf("second address should be non-default Home, got %+v", p.Addresses[1])
	}
}

func TestAddAddressAssignsID(t *testing.T) {
	p := StubProfile("0712345678")

	added := p.AddAddress(Address{Title: "Work", Location: "Upper Hill"})

	if added.ID == "" {
		t.Error("added address should get an id")
	}
	if len(p.Addresses) != 3 {
		t.Errorf("expected 3 addresses, got %d", len(p.Addresses))
	}
}
