package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

type AuthView struct {
	app.Compo

	signup  bool
	role    string
	working bool
	errMsg  string
}

func (v *AuthView) OnInit() {
	v.role = session.RoleArtisan
}

func (v *AuthView) submit(ctx app.Context) {
	email := inputValue("auth-email")
	password := inputValue("auth-password")
	name := inputValue("auth-name")

	if email == "" || password == "" || (v.signup && name == "") {
		v.errMsg = "All fields are required"
		return
	}

	v.working = true
	v.errMsg = ""

	path := "/api/signin"
	body := map[string]string{"email": email, "password": password}
	if v.signup {
		path = "/api/signup/" + v.role
		body["name"] = name
	}

	ctx.Async(func() {
		var rec session.Record
		err := apiPost(path, body, &rec)
		ctx.Dispatch(func(ctx app.Context) {
			v.working = false
			if err != nil {
				v.errMsg = err.Error()
				return
			}
			// Sign-in replaces the whole session record.
			if err := session.NewStore(ctx.LocalStorage()).Set(rec); err != nil {
				app.Log("error persisting session:", err)
				v.errMsg = "Could not save your session"
				return
			}
			ctx.Navigate("/dashboard")
		})
	})
}

func (v *AuthView) Render() app.UI {
	title := "Sign in"
	action := "Sign in"
	toggle := "New here? Create an account"
	if v.signup {
		title = "Create your account"
		action = "Sign up"
		toggle = "Already have an account? Sign in"
	}
	if v.working {
		action = "Working..."
	}

	roleButton := func(role, label string) app.UI {
		cls := ""
		if v.role != role {
			cls = "inactive"
		}
		return app.Button().Class(cls).Text(label).OnClick(func(ctx app.Context, e app.Event) {
			v.role = role
		})
	}

	return app.Div().Class("auth-box").Body(
		app.Div().Class("card").Body(
			app.H3().Text(title),
			app.If(v.signup, func() app.UI {
				return app.Div().Body(
					app.Label().Text("I am an"),
					app.Div().Class("role-picker").Body(
						roleButton(session.RoleArtisan, "Artisan"),
						roleButton(session.RoleMentor, "Mentor"),
						roleButton(session.RoleInvestor, "Investor"),
					),
					app.Label().Text("Name"),
					app.Input().ID("auth-name").Type("text").Placeholder("Your name"),
				)
			}),
			app.Label().Text("Email"),
			app.Input().ID("auth-email").Type("email").Placeholder("you@example.com"),
			app.Label().Text("Password"),
			app.Input().ID("auth-password").Type("password"),
			app.If(v.errMsg != "", func() app.UI {
				return app.P().Style("color", "var(--danger)").Text(v.errMsg)
			}),
			app.Button().Text(action).Disabled(v.working).OnClick(func(ctx app.Context, e app.Event) {
				v.submit(ctx)
			}),
			app.P().Body(
				app.A().Href("#").Text(toggle).OnClick(func(ctx app.Context, e app.Event) {
					e.PreventDefault()
					v.signup = !v.signup
					v.errMsg = ""
				}),
			),
		),
	)
}
