package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/feed"
)

type CommunitiesView struct {
	viewBase

	all    []Community
	mine   []Community
	loaded bool

	// Open community, or nil for the directory.
	open      *Community
	channelID string
	state     feed.State
	poller    *feed.Poller
	creating  bool
}

func (v *CommunitiesView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}

	v.poller = feed.NewPoller(v.fetchPosts, pollInterval, func(res feed.PollResult) {
		ctx.Dispatch(func(ctx app.Context) {
			var notify bool
			v.state, notify = feed.Reduce(v.state, res)
			if notify {
				v.toast(ctx, "Could not load channel posts", true)
			}
		})
	})

	v.load(ctx)
}

func (v *CommunitiesView) OnDismount() {
	if v.poller != nil {
		v.poller.Stop()
	}
}

// A channel stream is addressed as communityID/channelID, matching the posts
// endpoint path.
func (v *CommunitiesView) fetchPosts(ctx context.Context, streamID string) ([]feed.Message, error) {
	var msgs []feed.Message
	if err := apiGetCtx(ctx, "/api/community/"+streamID+"/posts", &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (v *CommunitiesView) load(ctx app.Context) {
	uid := v.user.UID
	ctx.Async(func() {
		var all, mine []Community
		errAll := apiGet("/api/communities", &all)
		if err := apiGet("/api/user/"+uid+"/communities", &mine); err != nil {
			app.Log("error loading joined communities:", err)
		}
		ctx.Dispatch(func(ctx app.Context) {
			if errAll != nil {
				v.toast(ctx, errAll.Error(), true)
				return
			}
			v.all = all
			v.mine = mine
			v.loaded = true
		})
	})
}

func (v *CommunitiesView) isMember(id string) bool {
	for _, c := range v.mine {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (v *CommunitiesView) openCommunity(ctx app.Context, id string) {
	ctx.Async(func() {
		var c Community
		err := apiGet("/api/community/"+id, &c)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.open = &c
			if len(c.Channels) > 0 {
				v.selectChannel(ctx, c.Channels[0].ID)
			}
		})
	})
}

func (v *CommunitiesView) closeCommunity() {
	v.open = nil
	v.channelID = ""
	v.state, _ = feed.Reduce(v.state, feed.StreamSelected{StreamID: ""})
	v.poller.Select("")
}

func (v *CommunitiesView) selectChannel(ctx app.Context, channelID string) {
	v.channelID = channelID
	streamID := v.open.ID + "/" + channelID
	v.state, _ = feed.Reduce(v.state, feed.StreamSelected{StreamID: streamID})
	v.poller.Select(streamID)
}

func (v *CommunitiesView) join(ctx app.Context, id string) {
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPost("/api/community/"+id+"/join", map[string]string{"uid": uid}, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Joined", false)
			v.load(ctx)
		})
	})
}

func (v *CommunitiesView) leave(ctx app.Context, id string) {
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPost("/api/community/"+id+"/leave", map[string]string{"uid": uid}, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.toast(ctx, "Left community", false)
			v.load(ctx)
		})
	})
}

func (v *CommunitiesView) create(ctx app.Context) {
	name := inputValue("community-name")
	if name == "" {
		v.toast(ctx, "Community name is required", true)
		return
	}
	body := map[string]string{
		"uid":         v.user.UID,
		"name":        name,
		"description": inputValue("community-description"),
	}
	ctx.Async(func() {
		err := apiPost("/api/communities", body, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.creating = false
			v.toast(ctx, "Community created", false)
			v.load(ctx)
		})
	})
}

func (v *CommunitiesView) post(ctx app.Context) {
	content := inputValue("channel-input")
	if content == "" || v.open == nil || v.channelID == "" {
		return
	}
	setInputValue("channel-input", "")

	v.state, _ = feed.Reduce(v.state, feed.SendIssued{Message: feed.Message{
		ID:         "local-" + uuid.NewString(),
		SenderUID:  v.user.UID,
		SenderName: v.user.Name,
		Content:    content,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}})

	path := "/api/community/" + v.open.ID + "/" + v.channelID + "/posts"
	uid := v.user.UID
	ctx.Async(func() {
		err := apiPost(path, map[string]string{"uid": uid, "content": content}, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
			}
		})
	})
}

func (v *CommunitiesView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/communities")
	}
	if v.open != nil {
		return v.shell("/communities", v.renderOpen()...)
	}
	return v.shell("/communities", v.renderDirectory()...)
}

func (v *CommunitiesView) renderDirectory() []app.UI {
	content := []app.UI{
		app.Div().Style("display", "flex").Style("justify-content", "space-between").Body(
			app.H2().Text("Communities"),
			app.Button().Text("New community").OnClick(func(ctx app.Context, e app.Event) {
				v.creating = !v.creating
			}),
		),
	}

	if v.creating {
		content = append(content, app.Div().Class("card").Body(
			app.Label().Text("Name"),
			app.Input().ID("community-name").Type("text"),
			app.Label().Text("Description"),
			app.Textarea().ID("community-description").Rows(2),
			app.Button().Text("Create").OnClick(func(ctx app.Context, e app.Event) {
				v.create(ctx)
			}),
		))
	}

	if !v.loaded {
		return append(content, app.Div().Class("loading").Text("Loading..."))
	}
	if len(v.all) == 0 {
		return append(content, app.Div().Class("empty").Text("No communities yet. Start the first one."))
	}

	return append(content, app.Div().Class("card-grid").Body(
		app.Range(v.all).Slice(func(i int) app.UI {
			c := v.all[i]
			member := v.isMember(c.ID)
			return app.Div().Class("card").Body(
				app.H3().Text(c.Name),
				app.P().Class("muted").Text(c.Description),
				app.P().Class("muted").Textf("%d members", c.Members),
				app.If(member, func() app.UI {
					return app.Div().Body(
						app.Button().Text("Open").OnClick(func(ctx app.Context, e app.Event) {
							v.openCommunity(ctx, c.ID)
						}),
						app.Button().Class("secondary").Style("margin-left", "8px").Text("Leave").
							OnClick(func(ctx app.Context, e app.Event) {
								v.leave(ctx, c.ID)
							}),
					)
				}).Else(func() app.UI {
					return app.Button().Text("Join").OnClick(func(ctx app.Context, e app.Event) {
						v.join(ctx, c.ID)
					})
				}),
			)
		}),
	))
}

func (v *CommunitiesView) renderOpen() []app.UI {
	c := v.open

	channels := app.Div().Class("role-picker").Body(
		app.Range(c.Channels).Slice(func(i int) app.UI {
			ch := c.Channels[i]
			cls := "inactive"
			if ch.ID == v.channelID {
				cls = ""
			}
			return app.Button().Class(cls).Text("#"+ch.Name).OnClick(func(ctx app.Context, e app.Event) {
				v.selectChannel(ctx, ch.ID)
			})
		}),
	)

	var body app.UI
	switch v.state.Phase {
	case feed.PhaseLoading:
		body = app.Div().Class("loading").Text("Loading posts...")
	case feed.PhaseError:
		body = app.Div().Class("empty").Text("Could not load this channel.")
	default:
		if len(v.state.Messages) == 0 {
			body = app.Div().Class("empty").Text("Quiet in here. Post something!")
		} else {
			msgs := v.state.Messages
			body = app.Div().Body(
				app.Range(msgs).Slice(func(i int) app.UI {
					m := msgs[i]
					cls := "msg"
					if m.SenderUID == v.user.UID {
						cls += " mine"
					}
					return app.Div().Class(cls).Body(
						app.Div().Class("muted").Text(m.SenderName),
						app.Div().Text(m.Content),
						app.Div().Class("meta").Text(relTime(m.Timestamp)),
					)
				}),
			)
		}
	}

	return []app.UI{
		app.Div().Style("display", "flex").Style("justify-content", "space-between").Body(
			app.H2().Text(c.Name),
			app.Button().Class("secondary").Text("All communities").OnClick(func(ctx app.Context, e app.Event) {
				v.closeCommunity()
			}),
		),
		app.P().Class("muted").Text(c.Description),
		channels,
		app.Div().Class("chat-pane").Style("height", "55vh").Body(
			app.Div().Class("chat-messages").Body(body),
			app.Div().Class("chat-compose").Body(
				app.Input().ID("channel-input").Type("text").Placeholder("Post to the channel...").
					OnKeyDown(func(ctx app.Context, e app.Event) {
						if e.Get("key").String() == "Enter" {
							v.post(ctx)
						}
					}),
				app.Button().Text("Post").OnClick(func(ctx app.Context, e app.Event) {
					v.post(ctx)
				}),
			),
		),
	}
}
