package estimate

import (
	"context"
	"fmt"

	bookingRepo "movebot/database/repository/booking"
	"movebot/models"
	"movebot/utils"

	"go.uber.org/zap"
)

// Service computes crew recommendations and pricing context for a move.
type Service interface {
	Generate(ctx context.Context, input models.EstimateInput) (*models.Estimate, error)
}

// DefaultEstimateService combines Maps distances, the weekly job load from the
// booking sheet, and the calendar rules into a quote.
type DefaultEstimateService struct {
	Distance      *DistanceClient
	Bookings      bookingRepo.Repository // nil when the sheet is not configured
	OfficeAddress string
	PeakDates     map[string]bool
}

func (s *DefaultEstimateService) Generate(ctx context.Context, input models.EstimateInput) (*models.Estimate, error) {
	if input.Rooms <= 0 || input.PickupAddress == "" || input.DropAddress == "" {
		return nil, fmt.Errorf("rooms, pickup_address, and drop_address are required")
	}

	totalRouteMiles, err := s.Distance.TotalRouteMiles(ctx, s.OfficeAddress, input.PickupAddress, input.DropAddress)
	if err != nil {
		return nil, fmt.Errorf("could not calculate route distance: %w", err)
	}
	pickupDropMiles, err := s.Distance.Miles(ctx, input.PickupAddress, input.DropAddress)
	if err != nil {
		return nil, fmt.Errorf("could not calculate pickup/drop distance: %w", err)
	}

	category := "local"
	if pickupDropMiles >= LocalMoveMaxMiles {
		category = "long-distance"
	}

	weeklyJobs := 0
	if s.Bookings != nil {
		if weeklyJobs, err = s.Bookings.WeeklyJobsCount(ctx); err != nil {
			// A sheet outage should not block quoting; fall to the lowest tier.
			utils.GetLogger().Warn("Weekly jobs count failed, assuming quiet week", zap.Error(err))
			weeklyJobs = 0
		}
	}
	tier := tierForWeeklyJobs(weeklyJobs)
	basePrice, crew := crewForMove(input.Rooms, input.StairsElevator, tier)

	surcharge := 0
	if input.MoveDate != "" && s.PeakDates[input.MoveDate] {
		surcharge = PeakSurcharge
	}

	notes := []string{}
	if category == "long-distance" {
		notes = append(notes, "Packing materials are free for long-distance moves.")
	}

	return &models.Estimate{
		Rooms:             input.Rooms,
		StairsElevator:    input.StairsElevator,
		CrewSize:          crew,
		BasePrice:         basePrice,
		HourlyRate:        CrewHourlyRate(crew),
		Tier:              tier,
		TotalRouteMiles:   totalRouteMiles,
		PickupDropMiles:   pickupDropMiles,
		PeakSurcharge:     surcharge,
		MoveCategory:      category,
		Notes:             notes,
		TravelTimeMinutes: TravelTimeMinutes,
		MinimumHours:      MinimumHours,
	}, nil
}
