package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/nav"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/session"
)

// viewBase is embedded by every protected view: it resolves the session on
// mount, redirects to /auth when absent, and renders the shared chrome.
type viewBase struct {
	app.Compo

	user     session.Record
	signedIn bool
	toastMsg string
	toastErr bool
}

// gate resolves the persisted session. A missing or malformed record sends
// the user to /auth; the view renders only a loading placeholder until then.
func (b *viewBase) gate(ctx app.Context) bool {
	store := session.NewStore(ctx.LocalStorage())
	u, ok := store.Get()
	if !ok {
		ctx.Navigate("/auth")
		return false
	}
	b.user = u
	b.signedIn = true
	return true
}

func (b *viewBase) toast(ctx app.Context, msg string, isErr bool) {
	b.toastMsg = msg
	b.toastErr = isErr
	ctx.Async(func() {
		time.Sleep(4 * time.Second)
		ctx.Dispatch(func(ctx app.Context) {
			if b.toastMsg == msg {
				b.toastMsg = ""
			}
		})
	})
}

func (b *viewBase) signOut(ctx app.Context) {
	session.NewStore(ctx.LocalStorage()).Clear()
	b.signedIn = false
	b.toast(ctx, "Signed out", false)
	ctx.Async(func() {
		time.Sleep(800 * time.Millisecond)
		ctx.Dispatch(func(ctx app.Context) {
			ctx.Navigate("/")
		})
	})
}

// shell wraps a view's content in the sidebar + topbar chrome. The menu is
// fixed per role; an unrecognized role renders an explicit error instead of
// an empty sidebar.
func (b *viewBase) shell(active string, content ...app.UI) app.UI {
	if !b.signedIn {
		return app.Div().Class("loading").Text("Loading...")
	}

	items, err := nav.MenuFor(b.user.Role)
	if err != nil {
		return app.Div().Class("content").Body(
			app.Div().Class("card").Body(
				app.H3().Text("Unknown role"),
				app.P().Class("muted").Text("Your account role is not recognized. Sign out and sign in again."),
				app.Button().Text("Sign out").OnClick(func(ctx app.Context, e app.Event) {
					b.signOut(ctx)
				}),
			),
		)
	}

	return app.Div().Class("shell").Body(
		app.Div().Class("sidebar").Body(
			app.Div().Class("brand").Text("KalaSetu"),
			app.Range(items).Slice(func(i int) app.UI {
				it := items[i]
				cls := "nav-item"
				if it.Path == active {
					cls += " active"
				}
				return app.A().Class(cls).Href(it.Path).Body(
					app.Span().Class("icon").Text(it.Icon),
					app.Span().Text(it.Label),
				)
			}),
		),
		app.Div().Class("content").Body(
			append([]app.UI{
				app.Div().Class("topbar").Body(
					app.Div().Class("who").Text(b.user.Name+" · "+b.user.Role),
					app.Button().Class("secondary").Text("Sign out").OnClick(func(ctx app.Context, e app.Event) {
						b.signOut(ctx)
					}),
				),
			}, content...)...,
		),
		b.renderToast(),
	)
}

func (b *viewBase) renderToast() app.UI {
	return app.If(b.toastMsg != "", func() app.UI {
		cls := "toast"
		if b.toastErr {
			cls += " error"
		}
		return app.Div().Class(cls).Text(b.toastMsg)
	})
}

// inputValue reads a form field by element id, the go-app way.
func inputValue(id string) string {
	el := app.Window().GetElementByID(id)
	if !el.Truthy() {
		return ""
	}
	return el.Get("value").String()
}

func setInputValue(id, v string) {
	el := app.Window().GetElementByID(id)
	if el.Truthy() {
		el.Set("value", v)
	}
}
