package models

// EstimateInput is the payload for the estimate endpoint.
type EstimateInput struct {
	Rooms          int    `json:"rooms"`
	PickupAddress  string `json:"pickup_address"`
	DropAddress    string `json:"drop_address"`
	StairsElevator bool   `json:"stairs_elevator"`
	MoveDate       string `json:"move_date,omitempty"` // YYYY-MM-DD, optional
}

// Estimate is a price-quote recommendation. No final total is computed: the
// published hourly rate plus travel-time and minimum-hours messaging is what
// the customer gets.
type Estimate struct {
	Rooms             int      `json:"rooms"`
	StairsElevator    bool     `json:"stairs_elevator"`
	CrewSize          string   `json:"crew_size"`
	BasePrice         int      `json:"base_price"`
	HourlyRate        int      `json:"hourly_rate"`
	Tier              string   `json:"tier"`
	TotalRouteMiles   float64  `json:"total_route_miles"`
	PickupDropMiles   float64  `json:"pickup_drop_miles"`
	PeakSurcharge     int      `json:"peak_surcharge"`
	MoveCategory      string   `json:"move_category"` // "local" or "long-distance"
	Notes             []string `json:"notes"`
	TravelTimeMinutes int      `json:"travel_time_minutes"`
	MinimumHours      int      `json:"minimum_hours"`
}
