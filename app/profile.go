package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

type ProfileView struct {
	viewBase

	profile User
	schemes []Scheme
	loaded  bool
	saving  bool
}

func (v *ProfileView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	v.load(ctx)
}

func (v *ProfileView) load(ctx app.Context) {
	uid, role := v.user.UID, v.user.Role
	ctx.Async(func() {
		var profile User
		err := apiGet("/api/profile/"+role+"/"+uid, &profile)

		var schemes []Scheme
		if role == session.RoleArtisan {
			if serr := apiGet("/api/artisan/"+uid+"/schemes", &schemes); serr != nil {
				app.Log("error loading schemes:", serr)
			}
		}

		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.profile = profile
			v.schemes = schemes
			v.loaded = true
		})
	})
}

func (v *ProfileView) save(ctx app.Context) {
	body := map[string]string{
		"name":      inputValue("profile-name"),
		"bio":       inputValue("profile-bio"),
		"location":  inputValue("profile-location"),
		"skills":    inputValue("profile-skills"),
		"expertise": inputValue("profile-expertise"),
	}
	v.saving = true

	uid, role := v.user.UID, v.user.Role
	ctx.Async(func() {
		var updated User
		err := apiPut("/api/profile/"+role+"/"+uid, body, &updated)
		ctx.Dispatch(func(ctx app.Context) {
			v.saving = false
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.profile = updated
			// Keep the cached identity's display name in step.
			store := session.NewStore(ctx.LocalStorage())
			if rec, ok := store.Get(); ok && rec.Name != updated.Name {
				rec.Name = updated.Name
				store.Set(rec)
				v.user = rec
			}
			v.toast(ctx, "Profile saved", false)
		})
	})
}

func (v *ProfileView) Render() app.UI {
	if !v.signedIn || !v.loaded {
		return v.shell("/profile", app.Div().Class("loading").Text("Loading..."))
	}

	label := "Save"
	if v.saving {
		label = "Saving..."
	}

	form := app.Div().Class("card").Body(
		app.H3().Text("My profile"),
		app.Label().Text("Name"),
		app.Input().ID("profile-name").Type("text").Value(v.profile.Name),
		app.Label().Text("Bio"),
		app.Textarea().ID("profile-bio").Rows(3).Text(v.profile.Bio),
		app.Label().Text("Location"),
		app.Input().ID("profile-location").Type("text").Value(v.profile.Location),
		app.If(v.user.Role == session.RoleArtisan, func() app.UI {
			return app.Div().Body(
				app.Label().Text("Skills (comma separated)"),
				app.Input().ID("profile-skills").Type("text").Value(v.profile.Skills),
			)
		}).Else(func() app.UI {
			return app.Input().ID("profile-skills").Type("hidden").Value(v.profile.Skills)
		}),
		app.If(v.user.Role == session.RoleMentor, func() app.UI {
			return app.Div().Body(
				app.Label().Text("Expertise"),
				app.Input().ID("profile-expertise").Type("text").Value(v.profile.Expertise),
			)
		}).Else(func() app.UI {
			return app.Input().ID("profile-expertise").Type("hidden").Value(v.profile.Expertise)
		}),
		app.Button().Text(label).Disabled(v.saving).OnClick(func(ctx app.Context, e app.Event) {
			v.save(ctx)
		}),
	)

	content := []app.UI{app.H2().Text("Profile"), form}

	if v.user.Role == session.RoleArtisan && len(v.schemes) > 0 {
		content = append(content,
			app.H3().Text("Government schemes for artisans"),
			app.Div().Class("card-grid").Body(
				app.Range(v.schemes).Slice(func(i int) app.UI {
					s := v.schemes[i]
					return app.Div().Class("card").Body(
						app.H3().Text(s.Name),
						app.P().Text(s.Description),
						app.P().Class("muted").Text("Eligibility: "+s.Eligibility),
						app.A().Href(s.Link).Target("_blank").Text("Learn more"),
					)
				}),
			),
		)
	}

	return v.shell("/profile", content...)
}
