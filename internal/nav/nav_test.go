package nav

import (
	"testing"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

func TestMenuForKnownRoles(t *testing.T) {
	for _, role := range []string{session.RoleArtisan, session.RoleMentor, session.RoleInvestor} {
		menu, err := MenuFor(role)
		if err != nil {
			t.Fatalf("MenuFor(%q) failed: %v", role, err)
		}
		if len(menu) == 0 {
			t.Fatalf("MenuFor(%q) returned empty menu", role)
		}
	}
}

func TestMenuForUnknownRole(t *testing.T) {
	for _, role := range []string{"", "admin", "ARTISAN"} {
		if _, err := MenuFor(role); err == nil {
			t.Fatalf("MenuFor(%q) should signal a configuration error", role)
		}
	}
}

func TestMenuOrderStable(t *testing.T) {
	first, _ := MenuFor(session.RoleArtisan)
	second, _ := MenuFor(session.RoleArtisan)
	if len(first) != len(second) {
		t.Fatal("menu length changed between calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("menu order changed at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRoleScopedDestinations(t *testing.T) {
	contains := func(menu []Item, path string) bool {
		for _, it := range menu {
			if it.Path == path {
				return true
			}
		}
		return false
	}

	artisan, _ := MenuFor(session.RoleArtisan)
	mentor, _ := MenuFor(session.RoleMentor)
	investor, _ := MenuFor(session.RoleInvestor)

	if !contains(artisan, "/my-business") {
		t.Fatal("artisan menu missing /my-business")
	}
	if contains(mentor, "/my-business") || contains(mentor, "/portfolio") {
		t.Fatal("mentor menu must not contain artisan/investor destinations")
	}
	if !contains(investor, "/portfolio") {
		t.Fatal("investor menu missing /portfolio")
	}
	if contains(artisan, "/my-artisans") {
		t.Fatal("artisan menu must not contain mentor destinations")
	}
}
