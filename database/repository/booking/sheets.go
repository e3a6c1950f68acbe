package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movebot/config"
	"movebot/models"
	"movebot/utils"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

const (
	bookingsRange  = "Bookings!A:AB"
	customersRange = "Customers!A:H"
)

// SheetsBookingRepo implements Repository on top of the Google Sheets API.
type SheetsBookingRepo struct {
	svc     *sheets.Service
	sheetID string
}

// NewSheetsBookingRepo builds a repository from the configured service-account
// credentials and spreadsheet ID.
func NewSheetsBookingRepo(ctx context.Context) (*SheetsBookingRepo, error) {
	creds := config.AppConfig.GoogleSheetsCreds
	if creds == "" {
		return nil, fmt.Errorf("GOOGLE_SHEETS_CREDS not configured")
	}
	sheetID := config.AppConfig.BookingSheetID
	if sheetID == "" {
		return nil, fmt.Errorf("BOOKING_SHEET_ID not configured")
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(creds)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsBookingRepo{svc: svc, sheetID: sheetID}, nil
}

func (r *SheetsBookingRepo) append(ctx context.Context, readRange string, row []interface{}) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err := r.svc.Spreadsheets.Values.Append(r.sheetID, readRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil && isMissingSheet(err) && strings.HasPrefix(readRange, "Bookings!") {
		// Legacy spreadsheets keep everything on the first worksheet.
		utils.GetLogger().Warn("Bookings worksheet not found, appending to first sheet")
		_, err = r.svc.Spreadsheets.Values.Append(r.sheetID, "A1", vr).
			ValueInputOption("USER_ENTERED").
			InsertDataOption("INSERT_ROWS").
			Context(ctx).
			Do()
	}
	return err
}

// isMissingSheet matches the API error for a range on a worksheet that does
// not exist.
func isMissingSheet(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Unable to parse range")
}

func (r *SheetsBookingRepo) AppendBooking(ctx context.Context, data models.BookingData) (string, error) {
	now := time.Now()
	bookingID := "BOOK-" + now.Format("20060102150405")
	if err := r.append(ctx, "Bookings!A1", buildBookingRow(data, bookingID, now)); err != nil {
		return "", fmt.Errorf("failed to append booking row: %w", err)
	}
	utils.GetLogger().Info("Booking saved to sheet", zap.String("bookingID", bookingID))
	return bookingID, nil
}

func (r *SheetsBookingRepo) AppendCustomer(ctx context.Context, data models.BookingData) (string, error) {
	now := time.Now()
	customerID := "CUST-" + now.Format("20060102150405")
	err := r.append(ctx, "Customers!A1", buildCustomerRow(data, customerID, now))
	if err != nil {
		if isMissingSheet(err) {
			utils.GetLogger().Warn("Customers worksheet not found, skipping customer row")
			return "", nil
		}
		return "", fmt.Errorf("failed to append customer row: %w", err)
	}
	utils.GetLogger().Info("Customer saved to sheet", zap.String("customerID", customerID))
	return customerID, nil
}

func (r *SheetsBookingRepo) readBookings(ctx context.Context) ([][]interface{}, error) {
	resp, err := r.svc.Spreadsheets.Values.Get(r.sheetID, bookingsRange).Context(ctx).Do()
	if err != nil {
		if isMissingSheet(err) {
			resp, err = r.svc.Spreadsheets.Values.Get(r.sheetID, "A:AB").Context(ctx).Do()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read bookings: %w", err)
		}
	}
	return resp.Values, nil
}

func (r *SheetsBookingRepo) CountJobsOnDate(ctx context.Context, date string) (int, error) {
	rows, err := r.readBookings(ctx)
	if err != nil {
		return 0, err
	}
	return countOnDate(rows, date), nil
}

func (r *SheetsBookingRepo) WeeklyJobsCount(ctx context.Context) (int, error) {
	rows, err := r.readBookings(ctx)
	if err != nil {
		return 0, err
	}
	return countInWeek(rows, time.Now()), nil
}
