package models

// BookingData is a customer move request, either submitted directly to the
// booking endpoint or harvested from a chat transcript. String fields keep the
// customer's own wording; computed fields are filled in by enrichment.
type BookingData struct {
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	PickupAddress  string `json:"pickup_address,omitempty"`
	DropAddress    string `json:"drop_address,omitempty"`
	HomeSize       string `json:"home_size,omitempty"`
	StairsElevator string `json:"stairs_elevator,omitempty"`
	MoveDate       string `json:"move_date,omitempty"` // YYYY-MM-DD
	TimePreference string `json:"time_preference,omitempty"`
	SpecialItems   string `json:"special_items,omitempty"`
	PackingNeeds   string `json:"packing_needs,omitempty"`
	Notes          string `json:"notes,omitempty"`

	// Computed by enrichment.
	EstimatedCost string  `json:"estimated_cost,omitempty"`
	CrewSize      string  `json:"crew_size,omitempty"`
	DistanceMiles float64 `json:"distance_miles,omitempty"`
	MoveType      string  `json:"move_type,omitempty"` // "local" or "long-distance"
	Status        string  `json:"status,omitempty"`

	// Extraction flags.
	ReadyToSubmit        bool `json:"ready_to_submit"`
	ReadyForLongDistance bool `json:"ready_for_long_distance,omitempty"`
}

// RequiredBookingFields must all be present before a chat booking is
// auto-submitted.
var RequiredBookingFields = []string{
	"name", "phone", "email", "pickup_address", "drop_address", "move_date", "time_preference",
}

// CallRequest is the payload for the manager call-request endpoint.
type CallRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Timing string `json:"timing"` // "immediate" or a parsed phrase like "2 PM today"
}
