package booking

import (
	"context"

	"movebot/models"
)

// Repository persists bookings to the company spreadsheet. The sheet is the
// system of record; there is no database behind it.
type Repository interface {
	// AppendBooking writes a row to the Bookings worksheet and returns the
	// generated booking ID.
	AppendBooking(ctx context.Context, data models.BookingData) (string, error)
	// AppendCustomer writes a row to the Customers worksheet and returns the
	// generated customer ID. A missing Customers worksheet is not an error.
	AppendCustomer(ctx context.Context, data models.BookingData) (string, error)
	// CountJobsOnDate returns the number of bookings whose move date equals
	// the given YYYY-MM-DD date.
	CountJobsOnDate(ctx context.Context, date string) (int, error)
	// WeeklyJobsCount returns the number of bookings created during the
	// current ISO week (Monday start).
	WeeklyJobsCount(ctx context.Context) (int, error)
}
