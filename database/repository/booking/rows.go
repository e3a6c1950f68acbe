package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"movebot/models"
)

const timestampLayout = "2006-01-02 15:04:05"

// Column indexes in the Bookings worksheet.
const (
	colBookingID = 0
	colCreatedAt = 1
	colMoveDate  = 14
)

var roomsRe = regexp.MustCompile(`(\d+)`)

// parseRooms pulls the bedroom count out of a free-form home size like
// "3 bedroom apartment".
func parseRooms(homeSize string) string {
	for _, word := range strings.Fields(homeSize) {
		if m := roomsRe.FindString(word); m == word {
			return word
		}
	}
	return ""
}

// parseEstimateAmount strips currency formatting from an estimate string so
// the sheet keeps a bare number. Hourly-rate descriptions pass through as-is
// minus the dollar sign.
func parseEstimateAmount(estimate string) string {
	if !strings.Contains(estimate, "$") {
		return ""
	}
	s := strings.ReplaceAll(estimate, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

func hasStairs(stairsElevator string) string {
	if strings.Contains(strings.ToLower(stairsElevator), "stair") {
		return "Yes"
	}
	return "No"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// buildBookingRow lays out a Bookings worksheet row. The column order is fixed
// by the existing spreadsheet: Booking ID, Date Created, Customer Name, Phone,
// Email, Move Type, Pickup Address, Pickup Type, Pickup Rooms, Pickup Stairs,
// Dropoff Address, Dropoff Type, Dropoff Rooms, Dropoff Stairs, Move Date,
// Time Preference, Packing Service, Special Items, Special Instructions,
// Hourly Rate, Mileage Charge, Total Price, Crew Size, Total Miles, Status,
// Booking Status, Confirmed, Call Recording.
func buildBookingRow(data models.BookingData, bookingID string, now time.Time) []interface{} {
	rooms := parseRooms(data.HomeSize)
	distance := ""
	if data.DistanceMiles > 0 {
		distance = fmt.Sprintf("%.1f", data.DistanceMiles)
	}
	return []interface{}{
		bookingID,
		now.Format(timestampLayout),
		data.Name,
		data.Phone,
		data.Email,
		orDefault(data.MoveType, "Local"),
		data.PickupAddress,
		"house",
		rooms,
		hasStairs(data.StairsElevator),
		data.DropAddress,
		"house",
		rooms,
		"No",
		data.MoveDate,
		orDefault(data.TimePreference, "10 AM"),
		"No",
		orDefault(data.SpecialItems, "no."),
		orDefault(data.Notes, "no."),
		"", // hourly rate
		"", // mileage charge
		parseEstimateAmount(data.EstimatedCost),
		data.CrewSize,
		distance,
		"Confirmed",
		"CHAT-BOOKING",
		"Yes",
		"No",
	}
}

// buildCustomerRow lays out a Customers worksheet row: ID, Name, Phone, Email,
// First Contact Date, Last Contact Date, Total Bookings, Notes.
func buildCustomerRow(data models.BookingData, customerID string, now time.Time) []interface{} {
	return []interface{}{
		customerID,
		data.Name,
		data.Phone,
		data.Email,
		now.Format(timestampLayout),
		now.Format("2006-01-02"),
		"1",
		"",
	}
}

// weekBounds returns the ISO-week window (Monday 00:00:00 through Sunday
// 23:59:59) containing t.
func weekBounds(t time.Time) (time.Time, time.Time) {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := day.AddDate(0, 0, -(weekday - 1))
	end := start.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end
}

// isHeaderRow detects a header so existing sheets with or without one both
// count correctly.
func isHeaderRow(row []interface{}) bool {
	if len(row) == 0 {
		return false
	}
	first, ok := row[0].(string)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(first)) {
	case "booking id", "timestamp", "time", "date":
		return true
	}
	return false
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return strings.TrimSpace(s)
}

// countOnDate counts rows whose Move Date column equals date.
func countOnDate(rows [][]interface{}, date string) int {
	count := 0
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		if cellString(row, colMoveDate) == date {
			count++
		}
	}
	return count
}

// countInWeek counts rows whose Date Created column falls inside the ISO week
// containing now. Unparsable rows are skipped.
func countInWeek(rows [][]interface{}, now time.Time) int {
	start, end := weekBounds(now)
	count := 0
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		ts, err := time.ParseInLocation(timestampLayout, cellString(row, colCreatedAt), now.Location())
		if err != nil {
			continue
		}
		if !ts.Before(start) && !ts.After(end) {
			count++
		}
	}
	return count
}
