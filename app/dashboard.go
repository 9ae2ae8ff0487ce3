package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

type DashboardView struct {
	viewBase

	businesses []Business
	requests   []MentorshipRequest
	portfolio  []Investment
	mentors    []User
	artisans   []User
	loaded     bool
}

func (v *DashboardView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	v.load(ctx)
}

func (v *DashboardView) load(ctx app.Context) {
	uid, role := v.user.UID, v.user.Role
	ctx.Async(func() {
		var businesses []Business
		var requests []MentorshipRequest
		var portfolio []Investment
		var mentors, artisans []User

		switch role {
		case session.RoleArtisan:
			if err := apiGet("/api/artisan/"+uid+"/business", &businesses); err != nil {
				app.Log("error loading businesses:", err)
			}
			if err := apiGet("/api/artisan/"+uid+"/mentors", &mentors); err != nil {
				app.Log("error loading mentors:", err)
			}
		case session.RoleMentor:
			if err := apiGet("/api/mentor/"+uid+"/requests", &requests); err != nil {
				app.Log("error loading requests:", err)
			}
			if err := apiGet("/api/mentor/"+uid+"/artisans", &artisans); err != nil {
				app.Log("error loading artisans:", err)
			}
		case session.RoleInvestor:
			if err := apiGet("/api/investor/"+uid+"/portfolio", &portfolio); err != nil {
				app.Log("error loading portfolio:", err)
			}
		}

		ctx.Dispatch(func(ctx app.Context) {
			v.businesses = businesses
			v.requests = requests
			v.portfolio = portfolio
			v.mentors = mentors
			v.artisans = artisans
			v.loaded = true
		})
	})
}

func (v *DashboardView) statCard(title, value, href, hint string) app.UI {
	return app.Div().Class("card").Body(
		app.H3().Text(title),
		app.P().Style("font-size", "1.8rem").Style("margin", "4px 0").Text(value),
		app.A().Href(href).Text(hint),
	)
}

func (v *DashboardView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/dashboard")
	}

	var cards []app.UI
	switch v.user.Role {
	case session.RoleArtisan:
		cards = []app.UI{
			v.statCard("My businesses", fmt.Sprintf("%d", len(v.businesses)), "/my-business", "Manage businesses"),
			v.statCard("My mentors", fmt.Sprintf("%d", len(v.mentors)), "/my-mentors", "See mentors"),
			v.statCard("Find guidance", "→", "/discover-mentors", "Discover mentors"),
			v.statCard("Raise funds", "→", "/marketplace", "Open marketplace"),
		}
	case session.RoleMentor:
		cards = []app.UI{
			v.statCard("Pending requests", fmt.Sprintf("%d", len(v.requests)), "/my-artisans", "Review requests"),
			v.statCard("My artisans", fmt.Sprintf("%d", len(v.artisans)), "/my-artisans", "See artisans"),
			v.statCard("Find artisans", "→", "/discover-artisans", "Discover artisans"),
		}
	case session.RoleInvestor:
		var total float64
		for _, inv := range v.portfolio {
			total += inv.Amount
		}
		cards = []app.UI{
			v.statCard("Investments", fmt.Sprintf("%d", len(v.portfolio)), "/portfolio", "Open portfolio"),
			v.statCard("Invested", money(total), "/portfolio", "Open portfolio"),
			v.statCard("Live pitches", "→", "/marketplace", "Browse marketplace"),
		}
	}

	return v.shell("/dashboard",
		app.H2().Text("Welcome back, "+v.user.Name),
		app.If(!v.loaded, func() app.UI {
			return app.Div().Class("loading").Text("Loading...")
		}).Else(func() app.UI {
			return app.Div().Class("card-grid").Body(cards...)
		}),
	)
}
