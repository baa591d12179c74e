package bootstrap

import (
	"strings"

	"github.com/Anshgoswami194/mind-embrace-connect/internal/booking"
	appconfig "github.com/Anshgoswami194/mind-embrace-connect/internal/config"
	"github.com/Anshgoswami194/mind-embrace-connect/internal/notify"
	"github.com/Anshgoswami194/mind-embrace-connect/pkg/logging"
)

// BuildEmailSender returns SendGrid when an API key is configured, otherwise
// a sender that only logs.
func BuildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg != nil && strings.TrimSpace(cfg.SendGridAPIKey) != "" {
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			logger.Info("sendgrid email enabled", "from", cfg.SendGridFromEmail)
			return sender
		}
	}
	return notify.NewStubEmailSender(logger)
}

// BuildBookingNotifier returns nil unless a staff inbox is configured.
func BuildBookingNotifier(cfg *appconfig.Config, sender notify.EmailSender, logger *logging.Logger) booking.Notifier {
	if cfg == nil {
		return nil
	}
	n := booking.NewStaffNotifier(sender, cfg.BookingNotifyEmail, cfg.ClinicName, logger)
	if n == nil {
		return nil
	}
	return n
}
