package booking

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	bookingRepo "movebot/database/repository/booking"
	"movebot/models"
	"movebot/services/estimate"
	"movebot/utils"

	"go.uber.org/zap"
)

// SubmitResult reports what happened to a booking submission.
type SubmitResult struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	BookingID      string   `json:"booking_id,omitempty"`
	SuggestedDates []string `json:"suggested_dates,omitempty"`
}

// Service handles booking validation, enrichment, availability and submission.
type Service interface {
	Submit(ctx context.Context, data *models.BookingData) (*SubmitResult, error)
	// DateAvailable reports whether the date still has capacity, and how many
	// jobs are already booked on it.
	DateAvailable(ctx context.Context, date string) (bool, int)
	// SuggestAlternateDates scans forward from the requested date for days
	// with remaining capacity.
	SuggestAlternateDates(ctx context.Context, requestedDate string, max int) []string
	// Enrich fills computed pricing/crew/distance fields where possible.
	Enrich(ctx context.Context, data *models.BookingData)
}

// DefaultBookingService is backed by the booking sheet and the estimate
// calculator.
type DefaultBookingService struct {
	Repo          bookingRepo.Repository
	Estimator     estimate.Service
	DailyCapacity int
}

var requiredSubmitFields = []string{"name", "email", "phone", "pickup_address", "drop_address"}

func missingField(data *models.BookingData) string {
	values := map[string]string{
		"name":           data.Name,
		"email":          data.Email,
		"phone":          data.Phone,
		"pickup_address": data.PickupAddress,
		"drop_address":   data.DropAddress,
	}
	for _, f := range requiredSubmitFields {
		if values[f] == "" {
			return f
		}
	}
	return ""
}

var (
	roomsBeforeRe = regexp.MustCompile(`(\d+)\s*bed(room)?s?`)
	roomsAfterRe  = regexp.MustCompile(`bed(room)?s?\s*[:\-]?\s*(\d+)`)
)

// RoomsFromHomeSize parses both "3 bedroom" and "bedrooms: 3" styles.
func RoomsFromHomeSize(homeSize string) int {
	lower := strings.ToLower(homeSize)
	if m := roomsBeforeRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := roomsAfterRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[2])
		return n
	}
	// Bare digit fallback ("2 br flat", "size 2").
	for _, token := range strings.Fields(lower) {
		if n, err := strconv.Atoi(token); err == nil {
			return n
		}
	}
	return 0
}

// StairsFlag interprets free-text stairs/elevator descriptions. "no stairs"
// wins over the mere presence of the word.
func StairsFlag(stairsElevator string) bool {
	lower := strings.ToLower(stairsElevator)
	for _, neg := range []string{"no stair", "without stair"} {
		if strings.Contains(lower, neg) {
			return false
		}
	}
	return strings.Contains(lower, "stair") || strings.Contains(lower, "elevator")
}

func (s *DefaultBookingService) Enrich(ctx context.Context, data *models.BookingData) {
	rooms := RoomsFromHomeSize(data.HomeSize)
	if rooms == 0 || data.PickupAddress == "" || data.DropAddress == "" {
		utils.GetLogger().Info("Insufficient data to compute estimate (rooms/pickup/drop missing)")
		return
	}

	est, err := s.Estimator.Generate(ctx, models.EstimateInput{
		Rooms:          rooms,
		PickupAddress:  data.PickupAddress,
		DropAddress:    data.DropAddress,
		StairsElevator: StairsFlag(data.StairsElevator),
		MoveDate:       data.MoveDate,
	})
	if err != nil {
		utils.GetLogger().Warn("Booking enrichment failed", zap.Error(err))
		return
	}

	data.CrewSize = est.CrewSize
	data.DistanceMiles = est.PickupDropMiles
	data.MoveType = est.MoveCategory
	if data.EstimatedCost == "" {
		// Hourly-rate description rather than a final total.
		data.EstimatedCost = fmt.Sprintf("$%d/hr (+%d min travel, %d-hr minimum)",
			est.HourlyRate, est.TravelTimeMinutes, est.MinimumHours)
	}
}

func (s *DefaultBookingService) DateAvailable(ctx context.Context, date string) (bool, int) {
	if s.Repo == nil || date == "" {
		return true, 0
	}
	count, err := s.Repo.CountJobsOnDate(ctx, date)
	if err != nil {
		utils.GetLogger().Warn("Availability check failed, assuming open", zap.String("date", date), zap.Error(err))
		return true, 0
	}
	return count < s.DailyCapacity, count
}

func (s *DefaultBookingService) SuggestAlternateDates(ctx context.Context, requestedDate string, max int) []string {
	requested, err := time.Parse("2006-01-02", requestedDate)
	if err != nil {
		return nil
	}
	var suggested []string
	// Look forward up to 14 days for availability.
	for i := 1; i <= 14 && len(suggested) < max; i++ {
		day := requested.AddDate(0, 0, i).Format("2006-01-02")
		if ok, _ := s.DateAvailable(ctx, day); ok {
			suggested = append(suggested, day)
		}
	}
	return suggested
}

func (s *DefaultBookingService) Submit(ctx context.Context, data *models.BookingData) (*SubmitResult, error) {
	if f := missingField(data); f != "" {
		return nil, fmt.Errorf("missing required field: %s", f)
	}

	if data.EstimatedCost == "" && data.HomeSize != "" {
		s.Enrich(ctx, data)
	}

	if data.MoveDate != "" {
		if ok, count := s.DateAvailable(ctx, data.MoveDate); !ok {
			utils.GetLogger().Info("Requested date fully booked",
				zap.String("date", data.MoveDate), zap.Int("existing", count))
			return &SubmitResult{
				Success:        false,
				Message:        "Requested date is fully booked",
				SuggestedDates: s.SuggestAlternateDates(ctx, data.MoveDate, 3),
			}, nil
		}
	}

	result := &SubmitResult{Success: true, Message: "Booking submitted successfully"}
	if s.Repo == nil {
		utils.GetLogger().Warn("Booking sheet not configured, booking not persisted")
		return result, nil
	}

	bookingID, err := s.Repo.AppendBooking(ctx, *data)
	if err != nil {
		// The lead is still worth a manager email; report persistence failure.
		utils.GetLogger().Error("Failed to save booking to sheet", zap.Error(err))
		return result, nil
	}
	result.BookingID = bookingID

	if _, err := s.Repo.AppendCustomer(ctx, *data); err != nil {
		utils.GetLogger().Warn("Failed to save customer row", zap.Error(err))
	}
	return result, nil
}
