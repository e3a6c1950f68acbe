package booking

import (
	"testing"
	"time"

	"movebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRooms(t *testing.T) {
	assert.Equal(t, "3", parseRooms("3 bedroom apartment"))
	assert.Equal(t, "2", parseRooms("house with 2 rooms"))
	assert.Equal(t, "", parseRooms("studio"))
	assert.Equal(t, "", parseRooms(""))
}

func TestParseEstimateAmount(t *testing.T) {
	assert.Equal(t, "1525", parseEstimateAmount("$1,525"))
	assert.Equal(t, "150/hr (+30 min travel, 3-hr minimum)", parseEstimateAmount("$150/hr (+30 min travel, 3-hr minimum)"))
	assert.Equal(t, "", parseEstimateAmount("call for pricing"))
}

func TestBuildBookingRow(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	data := models.BookingData{
		Name:           "Jane Doe",
		Phone:          "2815550000",
		Email:          "jane@example.com",
		PickupAddress:  "100 Main St",
		DropAddress:    "200 Oak Ave",
		HomeSize:       "3 bedroom",
		StairsElevator: "stairs at pickup",
		MoveDate:       "2026-09-15",
		TimePreference: "2 PM",
		EstimatedCost:  "$150/hr (+30 min travel, 3-hr minimum)",
		CrewSize:       "3 movers + truck",
		DistanceMiles:  12.34,
	}

	row := buildBookingRow(data, "BOOK-20260901143000", now)
	require.Len(t, row, 28)
	assert.Equal(t, "BOOK-20260901143000", row[colBookingID])
	assert.Equal(t, "2026-09-01 14:30:00", row[colCreatedAt])
	assert.Equal(t, "Jane Doe", row[2])
	assert.Equal(t, "Local", row[5])
	assert.Equal(t, "3", row[8])
	assert.Equal(t, "Yes", row[9])
	assert.Equal(t, "2026-09-15", row[colMoveDate])
	assert.Equal(t, "2 PM", row[15])
	assert.Equal(t, "150/hr (+30 min travel, 3-hr minimum)", row[21])
	assert.Equal(t, "12.3", row[23])
	assert.Equal(t, "CHAT-BOOKING", row[25])
}

func TestBuildBookingRowDefaults(t *testing.T) {
	row := buildBookingRow(models.BookingData{}, "BOOK-1", time.Now())
	require.Len(t, row, 28)
	assert.Equal(t, "Local", row[5])
	assert.Equal(t, "No", row[9])
	assert.Equal(t, "10 AM", row[15])
	assert.Equal(t, "no.", row[17])
	assert.Equal(t, "", row[23])
}

func TestBuildCustomerRow(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	row := buildCustomerRow(models.BookingData{Name: "Jane", Phone: "281", Email: "j@e.com"}, "CUST-1", now)
	require.Len(t, row, 8)
	assert.Equal(t, "CUST-1", row[0])
	assert.Equal(t, "2026-09-01 14:30:00", row[4])
	assert.Equal(t, "2026-09-01", row[5])
	assert.Equal(t, "1", row[6])
}

func TestWeekBounds(t *testing.T) {
	// Wednesday Sep 2 2026.
	wed := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	start, end := weekBounds(wed)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 6, 23, 59, 59, 0, time.UTC), end)

	// Sunday belongs to the week starting the previous Monday.
	sun := time.Date(2026, 9, 6, 8, 0, 0, 0, time.UTC)
	start, _ = weekBounds(sun)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), start)
}

func TestCountOnDate(t *testing.T) {
	rows := [][]interface{}{
		{"Booking ID", "Timestamp"},
		makeRowWithMoveDate("2026-09-15"),
		makeRowWithMoveDate("2026-09-15"),
		makeRowWithMoveDate("2026-09-16"),
	}
	assert.Equal(t, 2, countOnDate(rows, "2026-09-15"))
	assert.Equal(t, 1, countOnDate(rows, "2026-09-16"))
	assert.Equal(t, 0, countOnDate(rows, "2026-09-17"))
}

func TestCountInWeek(t *testing.T) {
	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	rows := [][]interface{}{
		{"Booking ID", "Timestamp"},
		makeRowWithCreatedAt("2026-09-01 09:00:00"), // in week
		makeRowWithCreatedAt("2026-08-30 09:00:00"), // previous week
		makeRowWithCreatedAt("2026-09-06 23:00:00"), // Sunday, still in week
		makeRowWithCreatedAt("not a timestamp"),
	}
	assert.Equal(t, 2, countInWeek(rows, now))
}

func makeRowWithMoveDate(date string) []interface{} {
	row := make([]interface{}, 28)
	for i := range row {
		row[i] = ""
	}
	row[colBookingID] = "BOOK-X"
	row[colMoveDate] = date
	return row
}

func makeRowWithCreatedAt(ts string) []interface{} {
	row := make([]interface{}, 28)
	for i := range row {
		row[i] = ""
	}
	row[colBookingID] = "BOOK-X"
	row[colCreatedAt] = ts
	return row
}
