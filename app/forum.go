package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type ForumView struct {
	viewBase

	posts    []ForumPost
	sortBy   string
	loaded   bool
	composer bool
}

func (v *ForumView) OnInit() {
	v.sortBy = "new"
}

func (v *ForumView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}
	v.load(ctx)
}

func (v *ForumView) load(ctx app.Context) {
	sortBy := v.sortBy
	ctx.Async(func() {
		var posts []ForumPost
		err := apiGet("/api/forum/posts?sort_by="+sortBy, &posts)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.posts = posts
			v.loaded = true
		})
	})
}

func (v *ForumView) setSort(ctx app.Context, sortBy string) {
	if v.sortBy == sortBy {
		return
	}
	v.sortBy = sortBy
	v.load(ctx)
}

func (v *ForumView) create(ctx app.Context) {
	title := inputValue("forum-title")
	if title == "" {
		v.toast(ctx, "A title is required", true)
		return
	}
	body := map[string]string{
		"uid":     v.user.UID,
		"title":   title,
		"content": inputValue("forum-content"),
	}
	ctx.Async(func() {
		err := apiPost("/api/forum/post", body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.composer = false
			v.load(ctx)
		})
	})
}

func (v *ForumView) vote(ctx app.Context, postID, dir string) {
	body := map[string]string{"uid": v.user.UID, "vote_type": dir}
	ctx.Async(func() {
		err := apiPost("/api/forum/post/"+postID+"/vote", body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.load(ctx)
		})
	})
}

func (v *ForumView) remove(ctx app.Context, postID string) {
	uid := v.user.UID
	ctx.Async(func() {
		err := apiDelete("/api/forum/post/"+postID, map[string]string{"uid": uid})
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Post deleted", false)
			v.load(ctx)
		})
	})
}

func (v *ForumView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/forum")
	}

	sortButton := func(key, label string) app.UI {
		cls := "inactive"
		if v.sortBy == key {
			cls = ""
		}
		return app.Button().Class(cls).Text(label).OnClick(func(ctx app.Context, e app.Event) {
			v.setSort(ctx, key)
		})
	}

	content := []app.UI{
		app.Div().Style("display", "flex").Style("justify-content", "space-between").Body(
			app.H2().Text("Forum"),
			app.Button().Text("New post").OnClick(func(ctx app.Context, e app.Event) {
				v.composer = !v.composer
			}),
		),
		app.Div().Class("role-picker").Style("max-width", "220px").Body(
			sortButton("new", "Newest"),
			sortButton("top", "Top"),
		),
	}

	if v.composer {
		content = append(content, app.Div().Class("card").Body(
			app.Label().Text("Title"),
			app.Input().ID("forum-title").Type("text"),
			app.Label().Text("Content (markdown supported)"),
			app.Textarea().ID("forum-content").Rows(5),
			app.Button().Text("Publish").OnClick(func(ctx app.Context, e app.Event) {
				v.create(ctx)
			}),
		))
	}

	if !v.loaded {
		return v.shell("/forum", append(content, app.Div().Class("loading").Text("Loading..."))...)
	}
	if len(v.posts) == 0 {
		return v.shell("/forum", append(content, app.Div().Class("empty").Text("No posts yet."))...)
	}

	content = append(content, app.Range(v.posts).Slice(func(i int) app.UI {
		p := v.posts[i]
		return app.Div().Class("card forum-post").Body(
			app.H3().Text(p.Title),
			app.P().Class("muted").Text("by "+p.AuthorName+" · "+relTime(p.CreatedAt)),
			app.Div().Class("post-body").Body(app.Raw(renderMarkdown(p.Content))),
			app.Div().Class("vote-bar").Body(
				app.Button().Text("▲").OnClick(func(ctx app.Context, e app.Event) {
					v.vote(ctx, p.ID, "up")
				}),
				app.Span().Class("count").Textf("%d", p.Votes),
				app.Button().Text("▼").OnClick(func(ctx app.Context, e app.Event) {
					v.vote(ctx, p.ID, "down")
				}),
				app.If(p.AuthorUID == v.user.UID, func() app.UI {
					return app.Button().Class("danger").Text("Delete").OnClick(func(ctx app.Context, e app.Event) {
						v.remove(ctx, p.ID)
					})
				}),
			),
		)
	}))

	return v.shell("/forum", content...)
}
