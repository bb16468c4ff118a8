package notification

import (
	"context"
	"fmt"

	"github.com/Franklin-Osede/bookly/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes reservation events to the staff chat of the
// business owner. With an empty token it degrades to a no-op.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	staffChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, staffChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, staffChatID: staffChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, staffChatID: staffChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, b *domain.Business) {
	text := fmt.Sprintf(
		"*New reservation*\n\n"+"Business: %s\n"+"Guests: %d\n"+"From: %s\nTo: %s\n"+"Total: %s",
		b.Name, r.Guests,
		r.Range.Start().Format("02.01.2006 15:04"),
		r.Range.End().Format("02.01.2006 15:04"),
		r.Total.String(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, r *domain.Reservation, b *domain.Business) {
	text := fmt.Sprintf(
		"*Reservation confirmed*\n\n"+"Business: %s\n"+"Reservation: %s\n"+"From: %s",
		b.Name, r.ID,
		r.Range.Start().Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation, b *domain.Business) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\n"+"Business: %s\n"+"Reservation: %s\n"+"From: %s",
		b.Name, r.ID,
		r.Range.Start().Format("02.01.2006 15:04"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.staffChatID == 0 {
		n.logger.Debug("notification skipped (no staff chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.staffChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.staffChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.staffChatID),
			logger.String("error", err.Error()),
		)
	}
}
