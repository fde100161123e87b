package telegram

import (
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLen stays just under Telegram's 4096 character limit.
const maxMessageLen = 4090

// Notifier defines the interface for a Telegram notifier.
type Notifier interface {
	SendMessage(text string) error
}

// client is an implementation of Notifier.
type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a new Telegram notifier client.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &client{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// SendMessage sends a Markdown message to the configured chat, split into
// several messages when it is too long.
func (c *client) SendMessage(text string) error {
	for _, part := range SplitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(c.chatID, part)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := c.bot.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

// NewNopNotifier returns a Notifier that discards messages, used when no bot token is configured.
func NewNopNotifier() Notifier {
	return nopNotifier{}
}

type nopNotifier struct{}

func (nopNotifier) SendMessage(string) error { return nil }

// SplitMessage cuts text on line boundaries into chunks of at most limit bytes.
// A single line longer than limit is cut at the last rune boundary that fits.
func SplitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			cut := runeCut(line, limit)
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > limit {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// runeCut returns the largest cut point <= limit that does not split a rune.
func runeCut(s string, limit int) int {
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		return limit
	}
	return cut
}
