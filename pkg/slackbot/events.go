package slackbot

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack/slackevents"
)

// EventHandler processes Slack Events API callbacks: the one-time URL
// verification handshake, and membership events.
type EventHandler struct {
	greeter *Greeter
}

func NewEventHandler(g *Greeter) *EventHandler {
	return &EventHandler{greeter: g}
}

// ackBody is the generic acknowledgment for event callbacks.
var ackBody = []byte(`{"status":"ok"}`)

// Handle processes one Events API request body and returns the
// response body, its content type, and the HTTP status code.
//
// Event deliveries are always acknowledged with [http.StatusOK], even
// when downstream message sends fail: re-reporting a failure would
// only trigger platform-side retries that cannot fix it.
func (h *EventHandler) Handle(ctx context.Context, body []byte) ([]byte, string, int) {
	l := zerolog.Ctx(ctx)

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		l.Warn().Err(err).Msg("bad request: unparsable event payload")
		return nil, "", http.StatusBadRequest
	}

	switch event.Type {
	// https://docs.slack.dev/reference/events/url_verification
	case slackevents.URLVerification:
		cr := &slackevents.ChallengeResponse{}
		if err := json.Unmarshal(body, cr); err != nil {
			l.Warn().Err(err).Msg("bad request: unparsable URL verification challenge")
			return nil, "", http.StatusBadRequest
		}
		l.Debug().Str("event_type", slackevents.URLVerification).
			Msg("replied to Slack URL verification event")
		return []byte(cr.Challenge), "text/plain", http.StatusOK

	case slackevents.CallbackEvent:
		h.handleCallback(ctx, l, event.InnerEvent)
		return ackBody, "application/json", http.StatusOK

	default:
		l.Debug().Str("event_type", event.Type).Msg("ignoring unrecognized event type")
		return ackBody, "application/json", http.StatusOK
	}
}

func (h *EventHandler) handleCallback(ctx context.Context, l *zerolog.Logger, inner slackevents.EventsAPIInnerEvent) {
	switch ev := inner.Data.(type) {
	case *slackevents.TeamJoinEvent:
		if ev.User == nil || ev.User.ID == "" {
			l.Warn().Msg("team_join event without a user ID")
			return
		}

		// Send the welcome DM without blocking the webhook ack.
		// The request context is about to be canceled, so detach it.
		userID := ev.User.ID
		go func(ctx context.Context) {
			if err := h.greeter.Greet(ctx, userID); err != nil {
				l.Warn().Err(err).Str("user_id", userID).Msg("failed to send welcome message")
				return
			}
			l.Info().Str("user_id", userID).Msg("welcome message sent")
		}(context.WithoutCancel(ctx))

	case *slackevents.MemberJoinedChannelEvent:
		l.Info().Str("user_id", ev.User).Str("channel_id", ev.Channel).
			Msg("user joined channel")

	default:
		l.Debug().Str("inner_event_type", inner.Type).Msg("ignoring unhandled callback event")
	}
}
