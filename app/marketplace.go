package main

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/intent"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

type MarketplaceView struct {
	viewBase

	pitches []Pitch
	loaded  bool
	open    *Pitch

	// Pitch form, opened by a pending CreatePitch intent from My Business.
	pitchFor *intent.CreatePitch
}

func (v *MarketplaceView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	if in, ok := intent.TakeCreatePitch(ctx.LocalStorage()); ok {
		v.pitchFor = &in
	}
	v.load(ctx)
}

func (v *MarketplaceView) load(ctx app.Context) {
	ctx.Async(func() {
		var pitches []Pitch
		err := apiGet("/api/marketplace/pitches", &pitches)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.pitches = pitches
			v.loaded = true
		})
	})
}

func (v *MarketplaceView) openPitch(ctx app.Context, id string) {
	ctx.Async(func() {
		var p Pitch
		err := apiGet("/api/marketplace/pitch/"+id, &p)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.open = &p
		})
	})
}

func (v *MarketplaceView) createPitch(ctx app.Context) {
	title := inputValue("pitch-title")
	if title == "" {
		v.toast(ctx, "A pitch title is required", true)
		return
	}
	goal, _ := strconv.ParseFloat(inputValue("pitch-goal"), 64)
	equity, _ := strconv.ParseFloat(inputValue("pitch-equity"), 64)

	body := map[string]any{
		"uid":            v.user.UID,
		"business_id":    v.pitchFor.BusinessID,
		"pitch_title":    title,
		"summary":        inputValue("pitch-summary"),
		"pitch_details":  inputValue("pitch-details"),
		"funding_goal":   goal,
		"equity_offered": equity,
	}
	ctx.Async(func() {
		err := apiPost("/api/marketplace/pitch", body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.pitchFor = nil
			v.toast(ctx, "Pitch published", false)
			v.load(ctx)
		})
	})
}

func (v *MarketplaceView) expressInterest(ctx app.Context, pitchID string) {
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPost("/api/marketplace/pitch/"+pitchID+"/interest", map[string]string{"uid": uid}, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Interest recorded", false)
			v.openPitch(ctx, pitchID)
		})
	})
}

func (v *MarketplaceView) fund(ctx app.Context, pitchID string) {
	amount, _ := strconv.ParseFloat(inputValue("fund-amount"), 64)
	if amount <= 0 {
		v.toast(ctx, "Enter a positive amount", true)
		return
	}
	uid := v.user.UID
	ctx.Async(func() {
		var p Pitch
		err := apiPost("/api/marketplace/pitch/"+pitchID+"/fund",
			map[string]any{"uid": uid, "amount": amount}, &p)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.open = &p
			v.toast(ctx, "Invested "+money(amount), false)
			v.load(ctx)
		})
	})
}

func (v *MarketplaceView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/marketplace")
	}
	if v.pitchFor != nil {
		return v.shell("/marketplace", v.renderPitchForm()...)
	}
	if v.open != nil {
		return v.shell("/marketplace", v.renderDetail()...)
	}
	return v.shell("/marketplace", v.renderList()...)
}

func (v *MarketplaceView) renderPitchForm() []app.UI {
	return []app.UI{
		app.H2().Text("Pitch " + v.pitchFor.BusinessName),
		app.Div().Class("card").Body(
			app.Label().Text("Pitch title"),
			app.Input().ID("pitch-title").Type("text"),
			app.Label().Text("One-line summary"),
			app.Input().ID("pitch-summary").Type("text"),
			app.Label().Text("Details"),
			app.Textarea().ID("pitch-details").Rows(5),
			app.Div().Class("form-row").Body(
				app.Div().Body(
					app.Label().Text("Funding goal (₹)"),
					app.Input().ID("pitch-goal").Type("number"),
				),
				app.Div().Body(
					app.Label().Text("Equity offered (%)"),
					app.Input().ID("pitch-equity").Type("number"),
				),
			),
			app.Button().Text("Publish pitch").OnClick(func(ctx app.Context, e app.Event) {
				v.createPitch(ctx)
			}),
			app.Button().Class("secondary").Style("margin-left", "8px").Text("Cancel").
				OnClick(func(ctx app.Context, e app.Event) {
					v.pitchFor = nil
				}),
		),
	}
}

func (v *MarketplaceView) renderList() []app.UI {
	content := []app.UI{app.H2().Text("Marketplace")}

	if !v.loaded {
		return append(content, app.Div().Class("loading").Text("Loading..."))
	}
	if len(v.pitches) == 0 {
		return append(content, app.Div().Class("empty").Text("No open pitches right now."))
	}

	return append(content, app.Div().Class("card-grid").Body(
		app.Range(v.pitches).Slice(func(i int) app.UI {
			p := v.pitches[i]
			return app.Div().Class("card").Body(
				app.H3().Text(p.PitchTitle),
				app.P().Class("muted").Text(p.BusinessName),
				app.P().Text(p.Summary),
				fundingProgress(p),
				app.P().Class("muted").Textf("%d investors interested", p.Interested),
				app.Button().Text("View pitch").OnClick(func(ctx app.Context, e app.Event) {
					v.openPitch(ctx, p.ID)
				}),
			)
		}),
	))
}

func (v *MarketplaceView) renderDetail() []app.UI {
	p := v.open
	content := []app.UI{
		app.Div().Style("display", "flex").Style("justify-content", "space-between").Body(
			app.H2().Text(p.PitchTitle),
			app.Button().Class("secondary").Text("All pitches").OnClick(func(ctx app.Context, e app.Event) {
				v.open = nil
			}),
		),
		app.Div().Class("card").Body(
			app.P().Class("muted").Text(p.BusinessName+" · "+relTime(p.CreatedAt)),
			app.P().Text(p.Summary),
			app.Div().Body(app.Raw(renderMarkdown(p.PitchDetails))),
			fundingProgress(*p),
			app.P().Textf("Equity offered: %.1f%%", p.EquityOffered),
			app.P().Class("muted").Textf("%d investors interested", p.Interested),
		),
	}

	if v.user.Role == session.RoleInvestor {
		content = append(content, app.Div().Class("card").Body(
			app.H3().Text("Back this pitch"),
			app.Button().Class("secondary").Text("I'm interested").OnClick(func(ctx app.Context, e app.Event) {
				v.expressInterest(ctx, p.ID)
			}),
			app.Div().Style("margin-top", "12px").Body(
				app.Label().Text("Amount (₹)"),
				app.Input().ID("fund-amount").Type("number"),
				app.Button().Text("Invest").OnClick(func(ctx app.Context, e app.Event) {
					v.fund(ctx, p.ID)
				}),
			),
		))
	}

	return content
}

func fundingProgress(p Pitch) app.UI {
	pct := 0.0
	if p.FundingGoal > 0 {
		pct = p.CurrentFunding / p.FundingGoal * 100
		if pct > 100 {
			pct = 100
		}
	}
	return app.Div().Body(
		app.Div().Class("progress").Body(
			app.Div().Class("fill").Style("width", strconv.FormatFloat(pct, 'f', 1, 64)+"%"),
		),
		app.P().Class("muted").Text(money(p.CurrentFunding)+" raised of "+money(p.FundingGoal)),
	)
}
