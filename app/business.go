package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/intent"
)

type MyBusinessView struct {
	viewBase

	businesses []Business
	loaded     bool
	creating   bool
}

func (v *MyBusinessView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	v.load(ctx)
}

func (v *MyBusinessView) load(ctx app.Context) {
	uid := v.user.UID
	ctx.Async(func() {
		var businesses []Business
		err := apiGet("/api/artisan/"+uid+"/business", &businesses)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.businesses = businesses
			v.loaded = true
		})
	})
}

func (v *MyBusinessView) create(ctx app.Context) {
	name := inputValue("business-name")
	if name == "" {
		v.toast(ctx, "A business name is required", true)
		return
	}
	body := map[string]string{
		"business_name": name,
		"description":   inputValue("business-description"),
		"category":      inputValue("business-category"),
	}
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPost("/api/artisan/"+uid+"/business", body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.creating = false
			v.toast(ctx, "Business created. A mentor can now verify it.", false)
			v.load(ctx)
		})
	})
}

func (v *MyBusinessView) deactivate(ctx app.Context, id string) {
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPut("/api/business/"+id+"/deactivate", map[string]string{"uid": uid}, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Business deactivated", false)
			v.load(ctx)
		})
	})
}

// startPitch leaves a CreatePitch record for the marketplace view; it is
// consumed there on mount, exactly once.
func (v *MyBusinessView) startPitch(ctx app.Context, b Business) {
	if err := intent.LeaveCreatePitch(ctx.LocalStorage(), intent.CreatePitch{
		BusinessID:   b.ID,
		BusinessName: b.BusinessName,
	}); err != nil {
		app.Log("error leaving pitch intent:", err)
	}
	ctx.Navigate("/marketplace")
}

func (v *MyBusinessView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/my-business")
	}

	content := []app.UI{
		app.Div().Style("display", "flex").Style("justify-content", "space-between").Body(
			app.H2().Text("My businesses"),
			app.Button().Text("New business").OnClick(func(ctx app.Context, e app.Event) {
				v.creating = !v.creating
			}),
		),
	}

	if v.creating {
		content = append(content, app.Div().Class("card").Body(
			app.Label().Text("Business name"),
			app.Input().ID("business-name").Type("text"),
			app.Label().Text("Category"),
			app.Input().ID("business-category").Type("text").Placeholder("pottery, weaving, woodwork..."),
			app.Label().Text("Description"),
			app.Textarea().ID("business-description").Rows(3),
			app.Button().Text("Create").OnClick(func(ctx app.Context, e app.Event) {
				v.create(ctx)
			}),
		))
	}

	if !v.loaded {
		return v.shell("/my-business", append(content, app.Div().Class("loading").Text("Loading..."))...)
	}
	if len(v.businesses) == 0 {
		return v.shell("/my-business", append(content,
			app.Div().Class("empty").Text("No businesses yet. Register your craft to get started."))...)
	}

	content = append(content, app.Div().Class("card-grid").Body(
		app.Range(v.businesses).Slice(func(i int) app.UI {
			b := v.businesses[i]
			badge := app.Span().Class("badge").Text("awaiting verification")
			if b.Verified {
				badge = app.Span().Class("badge ok").Text("verified")
			}
			return app.Div().Class("card").Body(
				app.H3().Text(b.BusinessName),
				badge,
				app.P().Class("muted").Text(b.Category),
				app.P().Text(b.Description),
				app.If(b.Active, func() app.UI {
					return app.Div().Body(
						app.If(b.Verified, func() app.UI {
							return app.Button().Text("Create pitch").OnClick(func(ctx app.Context, e app.Event) {
								v.startPitch(ctx, b)
							})
						}),
						app.Button().Class("danger").Style("margin-left", "8px").Text("Deactivate").
							OnClick(func(ctx app.Context, e app.Event) {
								v.deactivate(ctx, b.ID)
							}),
					)
				}).Else(func() app.UI {
					return app.P().Class("muted").Text("Deactivated")
				}),
			)
		}),
	))

	return v.shell("/my-business", content...)
}
