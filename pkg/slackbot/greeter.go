package slackbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/manzil-infinity180/RepoRover/pkg/projects"
)

// Messenger sends messages to Slack. It is satisfied by
// [slack.Client], and faked in tests.
type Messenger interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Greeter welcomes new workspace members with a one-shot direct
// message. Delivery is at-least-once: replayed join events are not
// deduplicated.
type Greeter struct {
	messenger Messenger
	registry  *projects.Registry
}

func NewGreeter(m Messenger, reg *projects.Registry) *Greeter {
	return &Greeter{messenger: m, registry: reg}
}

// Greet sends the welcome DM to the given user.
func (g *Greeter) Greet(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("cannot greet: empty user ID")
	}

	org := g.registry.Org()
	text := fmt.Sprintf("🎉 Hey there, welcome to %s! Use `/help` to see all commands.", org.Name)

	_, _, err := g.messenger.PostMessageContext(ctx, userID,
		slack.MsgOptionText(Truncate(text, maxTextLen), false),
		slack.MsgOptionBlocks(welcomeBlocks(userID, g.registry)...))
	if err != nil {
		return fmt.Errorf("failed to send welcome message to %q: %w", userID, err)
	}

	return nil
}
