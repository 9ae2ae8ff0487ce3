package main

import (
	"net/url"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

type DiscoverArtisansView struct {
	viewBase

	artisans []User
	loaded   bool
}

func (v *DiscoverArtisansView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	v.search(ctx, "")
}

func (v *DiscoverArtisansView) search(ctx app.Context, skill string) {
	ctx.Async(func() {
		var artisans []User
		err := apiGet("/api/artisans/search?skill="+url.QueryEscape(skill), &artisans)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.artisans = artisans
			v.loaded = true
		})
	})
}

func (v *DiscoverArtisansView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/discover-artisans")
	}

	content := []app.UI{
		app.H2().Text("Discover artisans"),
		app.Div().Class("card").Body(
			app.Label().Text("Search by skill"),
			app.Input().ID("artisan-search").Type("text").Placeholder("block printing, brass, ikat...").
				OnKeyDown(func(ctx app.Context, e app.Event) {
					if e.Get("key").String() == "Enter" {
						v.search(ctx, inputValue("artisan-search"))
					}
				}),
			app.Button().Text("Search").OnClick(func(ctx app.Context, e app.Event) {
				v.search(ctx, inputValue("artisan-search"))
			}),
		),
	}

	if !v.loaded {
		return v.shell("/discover-artisans", append(content, app.Div().Class("loading").Text("Loading..."))...)
	}
	if len(v.artisans) == 0 {
		return v.shell("/discover-artisans", append(content, app.Div().Class("empty").Text("No artisans found."))...)
	}

	content = append(content, app.Div().Class("card-grid").Body(
		app.Range(v.artisans).Slice(func(i int) app.UI {
			a := v.artisans[i]
			return app.Div().Class("card").Body(
				app.H3().Text(a.Name),
				app.P().Class("muted").Text(a.Skills),
				app.If(a.Location != "", func() app.UI {
					return app.P().Class("muted").Text(a.Location)
				}),
				app.P().Text(a.Bio),
				app.Button().Text("Message").OnClick(func(ctx app.Context, e app.Event) {
					startChatWith(ctx, a.UID)
				}),
			)
		}),
	))

	return v.shell("/discover-artisans", content...)
}

// MyArtisansView is the mentor's workbench: pending mentorship requests, the
// accepted artisans, and the business verification queue.
type MyArtisansView struct {
	viewBase

	requests []MentorshipRequest
	artisans []User
	review   []Business
	loaded   bool
}

func (v *MyArtisansView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	if v.user.Role != session.RoleMentor {
		ctx.Navigate("/dashboard")
		return
	}
	v.load(ctx)
}

func (v *MyArtisansView) load(ctx app.Context) {
	uid := v.user.UID
	ctx.Async(func() {
		var requests []MentorshipRequest
		var artisans []User
		var review []Business
		if err := apiGet("/api/mentor/"+uid+"/requests", &requests); err != nil {
			app.Log("error loading requests:", err)
		}
		if err := apiGet("/api/mentor/"+uid+"/artisans", &artisans); err != nil {
			app.Log("error loading artisans:", err)
		}
		if err := apiGet("/api/mentor/review", &review); err != nil {
			app.Log("error loading review queue:", err)
		}
		ctx.Dispatch(func(ctx app.Context) {
			v.requests = requests
			v.artisans = artisans
			v.review = review
			v.loaded = true
		})
	})
}

func (v *MyArtisansView) resolve(ctx app.Context, requestID, status string) {
	body := map[string]string{"mentor_uid": v.user.UID, "status": status}
	ctx.Async(func() {
		err := apiPut("/api/mentor/request/"+requestID, body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Request "+status, false)
			v.load(ctx)
		})
	})
}

func (v *MyArtisansView) verify(ctx app.Context, businessID string) {
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPost("/api/mentor/"+uid+"/verify/"+businessID, nil, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Business verified", false)
			v.load(ctx)
		})
	})
}

func (v *MyArtisansView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/my-artisans")
	}
	if !v.loaded {
		return v.shell("/my-artisans", app.Div().Class("loading").Text("Loading..."))
	}

	content := []app.UI{app.H2().Text("My artisans")}

	content = append(content, app.H3().Text("Pending requests"))
	if len(v.requests) == 0 {
		content = append(content, app.P().Class("muted").Text("No pending mentorship requests."))
	} else {
		content = append(content, app.Range(v.requests).Slice(func(i int) app.UI {
			r := v.requests[i]
			return app.Div().Class("card").Body(
				app.H3().Text(r.ArtisanName),
				app.P().Text(r.Message),
				app.P().Class("muted").Text(relTime(r.CreatedAt)),
				app.Button().Text("Accept").OnClick(func(ctx app.Context, e app.Event) {
					v.resolve(ctx, r.ID, "accepted")
				}),
				app.Button().Class("secondary").Style("margin-left", "8px").Text("Decline").
					OnClick(func(ctx app.Context, e app.Event) {
						v.resolve(ctx, r.ID, "declined")
					}),
			)
		}))
	}

	content = append(content, app.H3().Text("Mentees"))
	if len(v.artisans) == 0 {
		content = append(content, app.P().Class("muted").Text("No accepted artisans yet."))
	} else {
		content = append(content, app.Div().Class("card-grid").Body(
			app.Range(v.artisans).Slice(func(i int) app.UI {
				a := v.artisans[i]
				return app.Div().Class("card").Body(
					app.H3().Text(a.Name),
					app.P().Class("muted").Text(a.Skills),
					app.Button().Text("Message").OnClick(func(ctx app.Context, e app.Event) {
						startChatWith(ctx, a.UID)
					}),
				)
			}),
		))
	}

	content = append(content, app.H3().Text("Businesses awaiting verification"))
	if len(v.review) == 0 {
		content = append(content, app.P().Class("muted").Text("The review queue is empty."))
	} else {
		content = append(content, app.Range(v.review).Slice(func(i int) app.UI {
			b := v.review[i]
			return app.Div().Class("card").Body(
				app.H3().Text(b.BusinessName),
				app.P().Class("muted").Text("by "+b.OwnerName+" · "+b.Category),
				app.P().Text(b.Description),
				app.Button().Text("Verify").OnClick(func(ctx app.Context, e app.Event) {
					v.verify(ctx, b.ID)
				}),
			)
		}))
	}

	return v.shell("/my-artisans", content...)
}
