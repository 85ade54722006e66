package notify

import (
	"context"

	"go.uber.org/zap"
	"feedback_dashboard/internal/model"
)

// Mailer stands in for an email provider and only logs the confirmation.
type Mailer struct {
	log *zap.Logger
}

func NewMailer(logger *zap.Logger) *Mailer {
	return &Mailer{log: logger}
}

func (m *Mailer) Send(_ context.Context, confirmation model.Confirmation) error {
	m.log.Info("simulated email: sending confirmation",
		zap.String("to", confirmation.Email),
		zap.String("feedback", confirmation.Message),
	)
	return nil
}
