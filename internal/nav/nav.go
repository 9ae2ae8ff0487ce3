// Package nav maps a user role to its sidebar destinations. The tables are
// static configuration: order is part of the contract and must not change
// between renders.
package nav

import (
	"fmt"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

// Item is one reachable destination for a role. Icon is a glyph token
// resolved by the layout.
type Item struct {
	Path  string
	Icon  string
	Label string
}

var menus = map[string][]Item{
	session.RoleArtisan: {
		{Path: "/dashboard", Icon: "home", Label: "Dashboard"},
		{Path: "/profile", Icon: "user", Label: "Profile"},
		{Path: "/my-business", Icon: "building", Label: "My Business"},
		{Path: "/marketplace", Icon: "briefcase", Label: "Marketplace"},
		{Path: "/discover-mentors", Icon: "user-check", Label: "Discover Mentors"},
		{Path: "/my-mentors", Icon: "heart", Label: "My Mentors"},
		{Path: "/forum", Icon: "message", Label: "Forum"},
		{Path: "/communities", Icon: "users", Label: "Communities"},
		{Path: "/chat", Icon: "message", Label: "Chat"},
	},
	session.RoleMentor: {
		{Path: "/dashboard", Icon: "home", Label: "Dashboard"},
		{Path: "/profile", Icon: "user", Label: "Profile"},
		{Path: "/discover-artisans", Icon: "users", Label: "Discover Artisans"},
		{Path: "/my-artisans", Icon: "user-check", Label: "My Artisans"},
		{Path: "/forum", Icon: "message", Label: "Forum"},
		{Path: "/communities", Icon: "users", Label: "Communities"},
		{Path: "/chat", Icon: "message", Label: "Chat"},
	},
	session.RoleInvestor: {
		{Path: "/dashboard", Icon: "home", Label: "Dashboard"},
		{Path: "/profile", Icon: "user", Label: "Profile"},
		{Path: "/discover-artisans", Icon: "users", Label: "Discover Artisans"},
		{Path: "/marketplace", Icon: "briefcase", Label: "Marketplace"},
		{Path: "/portfolio", Icon: "trending-up", Label: "Portfolio"},
		{Path: "/forum", Icon: "message", Label: "Forum"},
		{Path: "/communities", Icon: "users", Label: "Communities"},
		{Path: "/chat", Icon: "message", Label: "Chat"},
	},
}

// MenuFor returns the ordered menu for a role. An unknown role is a
// configuration error, distinct from an empty menu.
func MenuFor(role string) ([]Item, error) {
	menu, ok := menus[role]
	if !ok {
		return nil, fmt.Errorf("no navigation configured for role %q", role)
	}
	return menu, nil
}
