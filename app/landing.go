package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

type LandingView struct {
	app.Compo

	signedIn bool
}

func (v *LandingView) OnMount(ctx app.Context) {
	_, v.signedIn = session.NewStore(ctx.LocalStorage()).Get()
}

func (v *LandingView) Render() app.UI {
	return app.Div().Class("landing").Body(
		app.H1().Text("KalaSetu"),
		app.P().Text("A bridge between India's artisans, the mentors who grow their craft into businesses, and the investors who fund them."),
		app.If(v.signedIn, func() app.UI {
			return app.A().Class("btn").Href("/dashboard").Text("Go to dashboard")
		}).Else(func() app.UI {
			return app.A().Class("btn").Href("/auth").Text("Get started")
		}),
	)
}
