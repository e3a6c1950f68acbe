package notification

import (
	"context"

	"movebot/models"
)

// Service sends the management and customer emails this business runs on.
type Service interface {
	// SendBookingToManager notifies management of a new booking or
	// long-distance lead.
	SendBookingToManager(ctx context.Context, data models.BookingData) error
	// SendCustomerConfirmation emails the customer, only when explicitly
	// enabled in configuration.
	SendCustomerConfirmation(ctx context.Context, data models.BookingData) error
	// SendCallRequest notifies management that a customer wants a phone call.
	SendCallRequest(ctx context.Context, name, phone, timing, notes string) error
}

// Mailer delivers a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
