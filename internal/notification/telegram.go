package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "Mon 02 Jan 2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, member *domain.Member, class *domain.ClassSession) {
	n.send(ctx, member, classMessage("You're booked!", class, ""))
}

func (n *TelegramNotifier) NotifyBookingWaitlisted(ctx context.Context, member *domain.Member, class *domain.ClassSession) {
	n.send(ctx, member, classMessage("You're on the waitlist", class,
		"We'll let the studio know you're waiting. A spot may open up before class."))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, member *domain.Member, class *domain.ClassSession) {
	n.send(ctx, member, classMessage("Booking cancelled", class, ""))
}

func classMessage(headline string, class *domain.ClassSession, footer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", headline)
	fmt.Fprintf(&b, "Class: %s\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, class.Title))
	if class.InstructorName != "" {
		fmt.Fprintf(&b, "Instructor: %s\n", tgbotapi.EscapeText(tgbotapi.ModeMarkdown, class.InstructorName))
	}
	if !class.StartsAt.IsZero() {
		fmt.Fprintf(&b, "Starts (UTC): %s\n", class.StartsAt.UTC().Format(dateLayout))
	}
	if footer != "" {
		fmt.Fprintf(&b, "\n%s", footer)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (n *TelegramNotifier) send(ctx context.Context, member *domain.Member, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if member == nil || member.TelegramChatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}
	chatID := *member.TelegramChatID

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("member_id", member.ID),
			logger.String("error", err.Error()),
		)
	}
}
