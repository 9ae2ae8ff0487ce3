package main

import (
	"net/url"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/intent"
)

// startChatWith leaves a StartChat record and moves to the chat view, which
// consumes it on mount.
func startChatWith(ctx app.Context, recipientUID string) {
	if err := intent.LeaveStartChat(ctx.LocalStorage(), intent.StartChat{
		RecipientUID: recipientUID,
	}); err != nil {
		app.Log("error leaving chat intent:", err)
	}
	ctx.Navigate("/chat")
}

type DiscoverMentorsView struct {
	viewBase

	mentors   []User
	loaded    bool
	requested map[string]bool
}

func (v *DiscoverMentorsView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	v.requested = map[string]bool{}
	v.search(ctx, "")
}

func (v *DiscoverMentorsView) search(ctx app.Context, expertise string) {
	ctx.Async(func() {
		var mentors []User
		err := apiGet("/api/mentors/search?expertise="+url.QueryEscape(expertise), &mentors)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.mentors = mentors
			v.loaded = true
		})
	})
}

func (v *DiscoverMentorsView) request(ctx app.Context, mentorUID string) {
	body := map[string]string{
		"artisan_uid": v.user.UID,
		"mentor_uid":  mentorUID,
		"message":     inputValue("request-message-" + mentorUID),
	}
	ctx.Async(func() {
		err := apiPost("/api/mentor/request", body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.requested[mentorUID] = true
			v.toast(ctx, "Mentorship requested", false)
		})
	})
}

func (v *DiscoverMentorsView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/discover-mentors")
	}

	content := []app.UI{
		app.H2().Text("Discover mentors"),
		app.Div().Class("card").Body(
			app.Label().Text("Search by expertise"),
			app.Input().ID("mentor-search").Type("text").Placeholder("export, branding, finance...").
				OnKeyDown(func(ctx app.Context, e app.Event) {
					if e.Get("key").String() == "Enter" {
						v.search(ctx, inputValue("mentor-search"))
					}
				}),
			app.Button().Text("Search").OnClick(func(ctx app.Context, e app.Event) {
				v.search(ctx, inputValue("mentor-search"))
			}),
		),
	}

	if !v.loaded {
		return v.shell("/discover-mentors", append(content, app.Div().Class("loading").Text("Loading..."))...)
	}
	if len(v.mentors) == 0 {
		return v.shell("/discover-mentors", append(content, app.Div().Class("empty").Text("No mentors found."))...)
	}

	content = append(content, app.Div().Class("card-grid").Body(
		app.Range(v.mentors).Slice(func(i int) app.UI {
			m := v.mentors[i]
			return app.Div().Class("card").Body(
				app.H3().Text(m.Name),
				app.P().Class("muted").Text(m.Expertise),
				app.P().Text(m.Bio),
				app.If(v.requested[m.UID], func() app.UI {
					return app.Span().Class("badge ok").Text("request sent")
				}).Else(func() app.UI {
					return app.Div().Body(
						app.Input().ID("request-message-"+m.UID).Type("text").
							Placeholder("Why do you want this mentor?"),
						app.Button().Text("Request mentorship").OnClick(func(ctx app.Context, e app.Event) {
							v.request(ctx, m.UID)
						}),
					)
				}),
				app.Button().Class("secondary").Style("margin-top", "8px").Text("Message").
					OnClick(func(ctx app.Context, e app.Event) {
						startChatWith(ctx, m.UID)
					}),
			)
		}),
	))

	return v.shell("/discover-mentors", content...)
}

type MyMentorsView struct {
	viewBase

	mentors []User
	loaded  bool
}

func (v *MyMentorsView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	uid := v.user.UID
	ctx.Async(func() {
		var mentors []User
		err := apiGet("/api/artisan/"+uid+"/mentors", &mentors)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.mentors = mentors
			v.loaded = true
		})
	})
}

func (v *MyMentorsView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/my-mentors")
	}

	content := []app.UI{app.H2().Text("My mentors")}

	if !v.loaded {
		return v.shell("/my-mentors", append(content, app.Div().Class("loading").Text("Loading..."))...)
	}
	if len(v.mentors) == 0 {
		return v.shell("/my-mentors", append(content,
			app.Div().Class("empty").Text("No mentors yet. Send a request under Discover Mentors."))...)
	}

	content = append(content, app.Div().Class("card-grid").Body(
		app.Range(v.mentors).Slice(func(i int) app.UI {
			m := v.mentors[i]
			return app.Div().Class("card").Body(
				app.H3().Text(m.Name),
				app.P().Class("muted").Text(m.Expertise),
				app.Button().Text("Message").OnClick(func(ctx app.Context, e app.Event) {
					startChatWith(ctx, m.UID)
				}),
			)
		}),
	))

	return v.shell("/my-mentors", content...)
}
