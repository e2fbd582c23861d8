package alert

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// Slack posts alerts to an incoming webhook.
type Slack struct {
	WebhookURL string
	Username   string
}

var _ Sink = Slack{}

func (s Slack) Notify(ctx context.Context, msg string) error {
	err := slack.PostWebhookContext(ctx, s.WebhookURL, &slack.WebhookMessage{
		Username: s.Username,
		Attachments: []slack.Attachment{{
			Color: "danger",
			Title: "heating",
			Text:  msg,
		}},
	})
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	return nil
}
