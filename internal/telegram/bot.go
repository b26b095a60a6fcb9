// Package telegram pushes run summaries to a configured chat. Entirely
// optional: without credentials no bot is created and nothing is sent.
package telegram

import (
	"fmt"
	"strings"

	"jobtrend/internal/analyzer"
	"jobtrend/internal/scraper"
	"jobtrend/internal/store"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, chatID: chatID}, nil
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// SendRunSummary reports one acquisition cycle: unit outcomes, store totals
// and the current top skills.
func (b *Bot) SendRunSummary(summary scraper.RunSummary, stats store.Stats, skills []analyzer.SkillStat) error {
	var msg strings.Builder
	msg.WriteString("📊 *JobTrend scraping cycle finished*\n")
	fmt.Fprintf(&msg, "📦 Collected: %s\n", b.escapeMarkdown(fmt.Sprintf("%d", summary.Collected)))
	fmt.Fprintf(&msg, "💾 New jobs stored: %s\n", b.escapeMarkdown(fmt.Sprintf("%d", summary.Appended)))
	fmt.Fprintf(&msg, "📈 Total tracked: %s\n", b.escapeMarkdown(fmt.Sprintf("%d", stats.TotalJobs)))

	if failures := summary.Failures(); failures > 0 {
		fmt.Fprintf(&msg, "⚠️ Failed units: %s\n", b.escapeMarkdown(fmt.Sprintf("%d/%d", failures, len(summary.Units))))
	}

	if len(skills) > 0 {
		msg.WriteString("\n🎯 *Top skills:*\n")
		for i, s := range skills {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&msg, "%s\\. %s \\(%s\\)\n",
				b.escapeMarkdown(fmt.Sprintf("%d", i+1)),
				b.escapeMarkdown(s.Name),
				b.escapeMarkdown(fmt.Sprintf("%d", s.Count)))
		}
	}

	m := tgbotapi.NewMessage(b.chatID, msg.String())
	m.ParseMode = "MarkdownV2"
	_, err := b.api.Send(m)
	return err
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}
