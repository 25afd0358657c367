package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the staff chat so the front
// desk sees reservations without watching the dashboard.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	staffChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, staffChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || staffChatID == 0 {
		logger.Warn("telegram bot token or staff chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, staffChatID: staffChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New reservation #%d*\n\n"+"Guest: %s\n"+"Room: %s\n"+"Stay: %s → %s (%d nights)\n"+"Total: %s\n"+"Awaiting confirmation.",
		b.ID, b.GuestName, b.RoomType,
		b.CheckIn.Format("02.01.2006"), b.CheckOut.Format("02.01.2006"),
		b.TotalDays, b.TotalPrice.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingUpdated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Reservation #%d updated*\n\n"+"Guest: %s\n"+"Room: %s\n"+"Stay: %s → %s (%d nights)\n"+"Total: %s\n"+"Status: %s / %s",
		b.ID, b.GuestName, b.RoomType,
		b.CheckIn.Format("02.01.2006"), b.CheckOut.Format("02.01.2006"),
		b.TotalDays, b.TotalPrice.StringFixed(2), b.Status, b.PaymentStatus,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingDeleted(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Reservation #%d deleted*\n\n"+"Guest: %s\n"+"Room: %s\n"+"Stay was: %s → %s",
		b.ID, b.GuestName, b.RoomType,
		b.CheckIn.Format("02.01.2006"), b.CheckOut.Format("02.01.2006"),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
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
