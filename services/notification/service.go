package notification

import (
	"context"
	"fmt"

	"movebot/models"
	"movebot/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService routes emails either through the asynq mail
// queue (when Redis is configured) or straight to the mailer.
type DefaultNotificationService struct {
	Mailer            Mailer
	Queue             *asynq.Client // nil means deliver synchronously
	ManagerEmail      string
	CompanyPhone      string
	SendCustomerEmail bool
}

func (s *DefaultNotificationService) deliver(ctx context.Context, to, subject, body string) error {
	if s.Queue != nil {
		task, err := NewEmailTask(models.EmailPayload{To: to, Subject: subject, Body: body})
		if err != nil {
			return err
		}
		if _, err := s.Queue.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
			utils.GetLogger().Warn("Mail queue unavailable, sending directly", zap.Error(err))
			return s.Mailer.Send(ctx, to, subject, body)
		}
		return nil
	}
	return s.Mailer.Send(ctx, to, subject, body)
}

func (s *DefaultNotificationService) SendBookingToManager(ctx context.Context, data models.BookingData) error {
	if s.ManagerEmail == "" {
		return fmt.Errorf("MANAGER_EMAIL not configured")
	}
	return s.deliver(ctx, s.ManagerEmail, bookingManagerSubject(data), bookingManagerBody(data))
}

func (s *DefaultNotificationService) SendCustomerConfirmation(ctx context.Context, data models.BookingData) error {
	if !s.SendCustomerEmail {
		utils.GetLogger().Info("Skipping customer confirmation email (disabled)")
		return nil
	}
	if data.Email == "" {
		return fmt.Errorf("customer email missing")
	}
	return s.deliver(ctx, data.Email, "Booking Confirmation - USF Moving Company", customerConfirmationBody(data, s.CompanyPhone))
}

func (s *DefaultNotificationService) SendCallRequest(ctx context.Context, name, phone, timing, notes string) error {
	if s.ManagerEmail == "" {
		return fmt.Errorf("MANAGER_EMAIL not configured")
	}
	if name == "" {
		name = "Unknown"
	}
	subject := "Call Request - " + name
	return s.deliver(ctx, s.ManagerEmail, subject, callRequestBody(name, phone, timing, notes))
}
