package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

// QuickMoveDetails is a best-effort parse of a single message like
// "moving from 123 Main St to 456 Oak Ave, 2 bedrooms, no stairs".
type QuickMoveDetails struct {
	Pickup string
	Drop   string
	Rooms  int
	Stairs bool
}

var (
	fromToRe = regexp.MustCompile(`from\s+([^\n]+?)\s+to\s+([^\n]+)`)
	roomsRe  = regexp.MustCompile(`(\d+)\s*bed(room)?s?`)
)

// ParseQuickMoveDetails extracts pickup, drop, rooms and stairs from free
// text. Returns nil unless all of pickup, drop and rooms are present; it backs
// the degraded flow when the language model is unavailable.
func ParseQuickMoveDetails(text string) *QuickMoveDetails {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return nil
	}

	var pickup, drop string
	if m := fromToRe.FindStringSubmatch(t); m != nil {
		pickup = strings.TrimSpace(m[1])
		drop = strings.TrimSpace(m[2])
	}

	rooms := 0
	if m := roomsRe.FindStringSubmatch(t); m != nil {
		rooms, _ = strconv.Atoi(m[1])
	}

	stairs := false
	switch {
	case strings.Contains(t, "no stair") || strings.Contains(t, "stairs no") || strings.Contains(t, "stair no"):
		stairs = false
	case strings.Contains(t, "stair") || strings.Contains(t, "elevator"):
		stairs = true
	}

	if pickup == "" || drop == "" || rooms == 0 {
		return nil
	}
	return &QuickMoveDetails{Pickup: pickup, Drop: drop, Rooms: rooms, Stairs: stairs}
}
