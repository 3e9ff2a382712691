package notifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/slack-go/slack"

	"github.com/ip812/helloadp/content"
	"github.com/ip812/helloadp/logger"
)

const maxQuotedRunes = 280

type Slack struct {
	api     *slack.Client
	log     logger.Logger
	enabled bool
}

// NewSlack returns a notifier that only logs when token is empty.
func NewSlack(token string, log logger.Logger, opts ...slack.Option) *Slack {
	return &Slack{
		api:     slack.New(token, opts...),
		log:     log,
		enabled: token != "",
	}
}

func (s *Slack) SendMsg(
	channelID string,
	text string,
) error {
	if !s.enabled || channelID == "" {
		s.log.Debug("slack disabled, dropping message for channel %q", channelID)
		return nil
	}

	_, _, err := s.api.PostMessage(
		channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		s.log.Error("failed to send message %v to Slack channel: %s", err, channelID)
		return err
	}
	s.log.Info("Message sent successfully to Slack channel: %s", channelID)

	return nil
}

func (s *Slack) NotifyComment(channelID, pageURL, username, text string) error {
	return s.SendMsg(channelID, CommentMessage(pageURL, username, text))
}

func (s *Slack) NotifyPublished(channelID, baseURL string, pages []content.Page) error {
	if len(pages) == 0 {
		return nil
	}
	return s.SendMsg(channelID, PublishedMessage(baseURL, pages))
}

func CommentMessage(pageURL, username, text string) string {
	if utf8.RuneCountInString(text) > maxQuotedRunes {
		text = string([]rune(text)[:maxQuotedRunes]) + "…"
	}
	quoted := "> " + strings.ReplaceAll(text, "\n", "\n> ")
	return fmt.Sprintf("New comment by *%s* on %s\n%s", username, pageURL, quoted)
}

func PublishedMessage(baseURL string, pages []content.Page) string {
	var b strings.Builder
	if len(pages) == 1 {
		b.WriteString("New doc published:")
	} else {
		fmt.Fprintf(&b, "%d new docs published:", len(pages))
	}
	for _, p := range pages {
		fmt.Fprintf(&b, "\n• <%s%s|%s> (%s)", baseURL, p.URL, p.Title, p.Lang)
	}
	return b.String()
}
