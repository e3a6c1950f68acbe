package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"movebot/models"
	"movebot/services/estimate"
	"movebot/utils"

	"go.uber.org/zap"
)

// extractor is the structured-output side of a chat backend.
type extractor interface {
	extract(ctx context.Context, prompt string) (string, error)
}

const extractionTemplate = `Analyze this conversation and extract booking information. Return ONLY a valid JSON object with these fields (use null for missing fields):

{
  "name": "customer's full name or null",
  "phone": "phone number (digits only) or null",
  "email": "email address or null",
  "pickup_address": "full pickup address or null",
  "drop_address": "full dropoff address or null",
  "home_size": "number of bedrooms (e.g., '3 bedroom') or null",
  "stairs_elevator": "presence of stairs/elevator (e.g., 'No stairs', 'Stairs present') or null",
  "move_date": "date in YYYY-MM-DD format or null",
  "time_preference": "preferred time (e.g., '2 PM', 'Morning') or null",
  "estimated_cost": "cost if mentioned (e.g., '$525') or null",
  "special_items": "special items mentioned or 'None'",
  "crew_size": "crew size if mentioned or null",
  "distance_miles": "distance if mentioned or null"
}

IMPORTANT RULES:
1. Extract phone numbers without spaces, dashes, or special characters
2. For dates, convert month names to YYYY-MM-DD format (assume year 2025)
3. Return ONLY the JSON object, no other text
4. If a field is not mentioned, use null
5. For pickup_address and drop_address, include full address details from the conversation

CONVERSATION:
%s

JSON OUTPUT:`

// ExtractBooking pulls booking fields out of the transcript with the language
// model, falling back to regex extraction on failure. The result always has
// the readiness flags set.
func (s *DefaultAssistantService) ExtractBooking(ctx context.Context, messages []models.Message) *models.BookingData {
	ext, ok := s.Model.(extractor)
	if !ok {
		utils.GetLogger().Warn("Chat backend has no extraction support, falling back to regex")
		return extractBookingRegex(messages)
	}

	var transcript strings.Builder
	for _, msg := range messages {
		if msg.Role == models.RoleUser || msg.Role == models.RoleAssistant {
			fmt.Fprintf(&transcript, "%s: %s\n", msg.Role, msg.Content)
		}
	}

	raw, err := ext.extract(ctx, fmt.Sprintf(extractionTemplate, transcript.String()))
	if err != nil {
		utils.GetLogger().Warn("Booking extraction failed, falling back to regex", zap.Error(err))
		return extractBookingRegex(messages)
	}

	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		utils.GetLogger().Error("Failed to parse extraction JSON", zap.Error(err), zap.String("raw", raw))
		return &models.BookingData{}
	}

	data := &models.BookingData{
		Name:           fieldString(fields, "name"),
		Phone:          fieldString(fields, "phone"),
		Email:          fieldString(fields, "email"),
		PickupAddress:  fieldString(fields, "pickup_address"),
		DropAddress:    fieldString(fields, "drop_address"),
		HomeSize:       fieldString(fields, "home_size"),
		StairsElevator: fieldString(fields, "stairs_elevator"),
		MoveDate:       fieldString(fields, "move_date"),
		TimePreference: fieldString(fields, "time_preference"),
		EstimatedCost:  fieldString(fields, "estimated_cost"),
		SpecialItems:   fieldString(fields, "special_items"),
		CrewSize:       fieldString(fields, "crew_size"),
		DistanceMiles:  fieldFloat(fields, "distance_miles"),
		MoveType:       "local",
		Status:         "Pending",
	}
	if data.SpecialItems == "" {
		data.SpecialItems = "None"
	}
	if data.PackingNeeds == "" {
		data.PackingNeeds = "None specified"
	}
	if data.CrewSize == "" {
		data.CrewSize = "TBD"
	}

	s.flagLongDistance(ctx, data)
	flagReadyToSubmit(data)

	if !data.ReadyToSubmit {
		utils.GetLogger().Info("Booking not ready", zap.Strings("missing", missingRequiredFields(data)))
	} else {
		utils.GetLogger().Info("Booking ready to submit")
	}
	return data
}

// flagLongDistance marks a manager handoff lead when pickup and drop are more
// than 50 miles apart and contact details are present.
func (s *DefaultAssistantService) flagLongDistance(ctx context.Context, data *models.BookingData) {
	if s.Distance == nil || data.PickupAddress == "" || data.DropAddress == "" {
		return
	}
	miles, err := s.Distance.Miles(ctx, data.PickupAddress, data.DropAddress)
	if err != nil {
		utils.GetLogger().Warn("Distance check for long-distance flag failed", zap.Error(err))
		return
	}
	if miles >= estimate.LocalMoveMaxMiles {
		data.MoveType = "long-distance"
		data.DistanceMiles = miles
		contactReady := data.Name != "" && data.Phone != "" && data.Email != ""
		data.ReadyForLongDistance = contactReady
	}
}

func flagReadyToSubmit(data *models.BookingData) {
	required := []string{data.Name, data.Phone, data.Email, data.PickupAddress,
		data.DropAddress, data.MoveDate, data.TimePreference}
	for _, v := range required {
		if v == "" || v == "TBD" {
			data.ReadyToSubmit = false
			return
		}
	}
	data.ReadyToSubmit = true
}

func missingRequiredFields(data *models.BookingData) []string {
	values := map[string]string{
		"name":            data.Name,
		"phone":           data.Phone,
		"email":           data.Email,
		"pickup_address":  data.PickupAddress,
		"drop_address":    data.DropAddress,
		"move_date":       data.MoveDate,
		"time_preference": data.TimePreference,
	}
	var missing []string
	for _, f := range models.RequiredBookingFields {
		if values[f] == "" || values[f] == "TBD" {
			missing = append(missing, f)
		}
	}
	return missing
}

func fieldString(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		if t == "null" {
			return ""
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func fieldFloat(fields map[string]any, key string) float64 {
	switch t := fields[key].(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(t, "miles")), 64)
		if err == nil {
			return f
		}
	}
	return 0
}

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`name[:\s]+([a-z]+(?:\s+[a-z]+)?)`),
		regexp.MustCompile(`(?:i'm|i am|my name is|call me)\s+([a-z]+(?:\s+[a-z]+)?)`),
		regexp.MustCompile(`(?m)(?:^)([a-z]+)\s+\d{10,15}`),
	}
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`phone[:\s]+(\d{10,15})`),
		regexp.MustCompile(`\b(\d{10,15})\b`),
		regexp.MustCompile(`(\d{3}[-.\s]?\d{3}[-.\s]?\d{4,})`),
	}
	emailPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:email|mail)[:\s]+([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
		regexp.MustCompile(`\b([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})\b`),
	}
	nonDigitRe = regexp.MustCompile(`[^\d]`)
)

// extractBookingRegex is the fallback when the model is unavailable. It only
// recovers contact details and never marks a booking ready.
func extractBookingRegex(messages []models.Message) *models.BookingData {
	var full strings.Builder
	for _, msg := range messages {
		if msg.Role == models.RoleUser || msg.Role == models.RoleAssistant {
			full.WriteString(msg.Content + "\n")
		}
	}
	text := full.String()
	lower := strings.ToLower(text)

	data := &models.BookingData{}
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			data.Name = titleCase(strings.TrimSpace(m[1]))
			break
		}
	}
	for _, re := range phonePatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			data.Phone = nonDigitRe.ReplaceAllString(m[1], "")
			break
		}
	}
	for _, re := range emailPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			data.Email = m[1]
			break
		}
	}
	return data
}

// titleCase capitalizes each word of a name matched from lowercased text.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
