package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/feed"
	"github.com/sidGoswami725/SE-PROJECT-KALASETU/internal/intent"
)

const pollInterval = 5 * time.Second

type ChatView struct {
	viewBase

	conversations []Conversation
	state         feed.State
	poller        *feed.Poller

	// The peer of the selected stream, or of a conversation not yet created.
	recipientUID  string
	recipientName string
	sending       bool
}

func (v *ChatView) OnMount(ctx app.Context) {
	if !v.gate(ctx) {
		return
	}

	v.poller = feed.NewPoller(v.fetchMessages, pollInterval, func(res feed.PollResult) {
		ctx.Dispatch(func(ctx app.Context) {
			var notify bool
			v.state, notify = feed.Reduce(v.state, res)
			if notify {
				v.toast(ctx, "Could not load messages", true)
			}
		})
	})

	v.loadConversations(ctx)
	v.consumeIntent(ctx)
}

// Unmounting must stop the loop unconditionally; in-flight responses are
// dropped, never applied.
func (v *ChatView) OnDismount() {
	if v.poller != nil {
		v.poller.Stop()
	}
}

func (v *ChatView) fetchMessages(ctx context.Context, streamID string) ([]feed.Message, error) {
	var msgs []feed.Message
	if err := apiGetCtx(ctx, "/api/chat/"+v.user.UID+"/get/"+streamID, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (v *ChatView) loadConversations(ctx app.Context) {
	uid := v.user.UID
	ctx.Async(func() {
		var convos []Conversation
		err := apiGet("/api/chat/"+uid+"/conversations", &convos)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.conversations = convos
		})
	})
}

// consumeIntent picks up a pending StartChat left by a discover view. The
// record is deleted on read; a reload lands on the plain chat view.
func (v *ChatView) consumeIntent(ctx app.Context) {
	in, ok := intent.TakeStartChat(ctx.LocalStorage())
	if !ok {
		return
	}
	v.recipientUID = in.RecipientUID

	if in.Message == "" {
		// No opening message: wait for the user to compose one. The stream
		// does not exist server-side until the first send.
		v.state, _ = feed.Reduce(v.state, feed.StreamSelected{StreamID: ""})
		return
	}

	uid := v.user.UID
	ctx.Async(func() {
		var res struct {
			ChatID string `json:"chat_id"`
		}
		err := apiPost("/api/chat/"+uid+"/send",
			map[string]string{"recipient_uid": in.RecipientUID, "content": in.Message}, &res)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			v.selectStream(ctx, res.ChatID, in.RecipientUID, "")
			v.loadConversations(ctx)
		})
	})
}

// selectStream switches the view to a conversation: previous polling is torn
// down first, the list clears, and an immediate fetch is issued.
func (v *ChatView) selectStream(ctx app.Context, chatID, recipientUID, recipientName string) {
	v.recipientUID = recipientUID
	if recipientName != "" {
		v.recipientName = recipientName
	}
	v.state, _ = feed.Reduce(v.state, feed.StreamSelected{StreamID: chatID})
	v.poller.Select(chatID)
}

func (v *ChatView) send(ctx app.Context) {
	content := inputValue("chat-input")
	if content == "" || v.recipientUID == "" || v.sending {
		return
	}
	setInputValue("chat-input", "")

	// Optimistic append: the entry shows immediately and the next successful
	// poll replaces the whole list with the server's version.
	if v.state.StreamID != "" {
		v.state, _ = feed.Reduce(v.state, feed.SendIssued{Message: feed.Message{
			ID:         "local-" + uuid.NewString(),
			SenderUID:  v.user.UID,
			SenderName: v.user.Name,
			Content:    content,
			Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		}})
	}

	v.sending = true
	uid, recipient := v.user.UID, v.recipientUID
	ctx.Async(func() {
		var res struct {
			ChatID string `json:"chat_id"`
		}
		err := apiPost("/api/chat/"+uid+"/send",
			map[string]string{"recipient_uid": recipient, "content": content}, &res)
		ctx.Dispatch(func(ctx app.Context) {
			v.sending = false
			if err != nil {
				v.toast(ctx, err.Error(), true)
				return
			}
			if v.state.StreamID != res.ChatID {
				// First message of a brand-new conversation.
				v.selectStream(ctx, res.ChatID, recipient, "")
				v.loadConversations(ctx)
			}
		})
	})
}

func (v *ChatView) Render() app.UI {
	if !v.signedIn {
		return v.shell("/chat")
	}

	return v.shell("/chat",
		app.H2().Text("Chat"),
		app.Div().Class("chat-layout").Body(
			v.renderConversationList(),
			v.renderPane(),
		),
	)
}

func (v *ChatView) renderConversationList() app.UI {
	return app.Div().Class("chat-list").Body(
		app.If(len(v.conversations) == 0, func() app.UI {
			return app.Div().Class("empty").Text("No conversations yet. Find someone under Discover.")
		}),
		app.Range(v.conversations).Slice(func(i int) app.UI {
			c := v.conversations[i]
			cls := "chat-list-item"
			if c.ChatID == v.state.StreamID {
				cls += " active"
			}
			return app.Div().Class(cls).Body(
				app.Div().Text(c.OtherUser.Name),
				app.Div().Class("preview").Text(c.LastMessageContent),
				app.Div().Class("muted").Text(relTime(c.LastMessageAt)),
			).OnClick(func(ctx app.Context, e app.Event) {
				v.selectStream(ctx, c.ChatID, c.OtherUser.UID, c.OtherUser.Name)
			})
		}),
	)
}

func (v *ChatView) renderPane() app.UI {
	if v.state.StreamID == "" && v.recipientUID == "" {
		return app.Div().Class("chat-pane").Body(
			app.Div().Class("empty").Text("Select a conversation"),
		)
	}

	var body app.UI
	switch v.state.Phase {
	case feed.PhaseLoading:
		body = app.Div().Class("loading").Text("Loading messages...")
	case feed.PhaseError:
		body = app.Div().Class("empty").Text("Could not load this conversation.")
	default:
		if len(v.state.Messages) == 0 {
			body = app.Div().Class("empty").Text("No messages yet. Say namaste!")
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
						app.Div().Text(m.Content),
						app.Div().Class("meta").Text(relTime(m.Timestamp)),
					)
				}),
			)
		}
	}

	return app.Div().Class("chat-pane").Body(
		app.Div().Class("chat-messages").Body(body),
		app.Div().Class("chat-compose").Body(
			app.Input().ID("chat-input").Type("text").Placeholder("Write a message...").
				OnKeyDown(func(ctx app.Context, e app.Event) {
					if e.Get("key").String() == "Enter" {
						v.send(ctx)
					}
				}),
			app.Button().Text("Send").OnClick(func(ctx app.Context, e app.Event) {
				v.send(ctx)
			}),
		),
	)
}
