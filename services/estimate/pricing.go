package estimate

// LocalMoveMaxMiles is the pickup-to-drop distance that separates a local
// move from a long-distance one.
const LocalMoveMaxMiles = 50.0

const (
	// TravelTimeMinutes and MinimumHours are messaging terms quoted with
	// every hourly rate; no flat total is ever computed from them.
	TravelTimeMinutes = 30
	MinimumHours      = 3

	// PeakSurcharge applies on configured peak dates.
	PeakSurcharge = 25
)

// Crew labels as published on the pricing page.
const (
	CrewTwoMovers   = "2 movers + truck"
	CrewThreeMovers = "3 movers + truck"
	CrewFourMovers  = "4 movers + truck"
)

// tierForWeeklyJobs buckets the current week's job count into a pricing tier.
// Busier weeks anchor at a higher base.
func tierForWeeklyJobs(weeklyJobs int) string {
	switch {
	case weeklyJobs <= 2:
		return "0-2"
	case weeklyJobs <= 4:
		return "2-4"
	default:
		return "5-7"
	}
}

// Base-price anchors per crew size, keyed by tier.
var basePrices = map[string]map[string]int{
	CrewTwoMovers:   {"0-2": 100, "2-4": 125, "5-7": 150},
	CrewThreeMovers: {"0-2": 125, "2-4": 150, "5-7": 175},
	CrewFourMovers:  {"0-2": 180, "2-4": 200, "5-7": 250},
}

// crewForMove picks the crew and tier-adjusted base price for a move.
// 1-2 rooms without stairs fits two movers; 2-3 rooms with stairs/elevator
// (or a 3-room move regardless) needs three; anything bigger gets four.
func crewForMove(rooms int, stairsElevator bool, tier string) (basePrice int, crew string) {
	switch {
	case rooms <= 2 && !stairsElevator:
		crew = CrewTwoMovers
	case (rooms == 2 || rooms == 3) && stairsElevator, rooms == 3 && !stairsElevator:
		crew = CrewThreeMovers
	default:
		crew = CrewFourMovers
	}
	return basePrices[crew][tier], crew
}

// CrewHourlyRate maps a crew label to the published hourly rate (truck
// included). Travel time and the 3-hour minimum are communicated in messaging
// rather than folded into a total.
func CrewHourlyRate(crew string) int {
	switch crew {
	case CrewTwoMovers:
		return 125
	case CrewThreeMovers:
		return 150
	case CrewFourMovers:
		return 200
	}
	return 0
}
