package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type PortfolioView struct {
	viewBase

	investments []Investment
	loaded      bool
}

func (v *PortfolioView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	uid := v.user.UID
	ctx.Async(func() {
		var investments []Investment
		err := apiGet("/api/investor/"+uid+"/portfolio", &investments)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.investments = investments
			v.loaded = true
		})
	})
}

func (v *PortfolioView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/portfolio")
	}

	content := []app.UI{app.H2().Text("Portfolio")}

	if !v.loaded {
		return v.shell("/portfolio", append(content, app.Div().Class("loading").Text("Loading..."))...)
	}
	if len(v.investments) == 0 {
		return v.shell("/portfolio", append(content,
			app.Div().Class("empty").Text("No investments yet. Browse the marketplace to back a pitch."))...)
	}

	var total float64
	for _, inv := range v.investments {
		total += inv.Amount
	}

	content = append(content,
		app.Div().Class("card").Body(
			app.H3().Text("Total invested"),
			app.P().Style("font-size", "1.8rem").Style("margin", "4px 0").Text(money(total)),
		),
		app.Range(v.investments).Slice(func(i int) app.UI {
			inv := v.investments[i]
			return app.Div().Class("card").Body(
				app.H3().Text(inv.PitchTitle),
				app.P().Text(money(inv.Amount)),
				app.P().Class("muted").Text(relTime(inv.CreatedAt)),
			)
		}),
	)

	return v.shell("/portfolio", content...)
}
