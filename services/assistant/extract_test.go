package assistant

import (
	"testing"

	"movebot/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractBookingRegexContactDetails(t *testing.T) {
	messages := []models.Message{
		{Role: models.RoleSystem, Content: SystemPrompt},
		{Role: models.RoleAssistant, Content: "May I have your name and phone number?"},
		{Role: models.RoleUser, Content: "name: john smith, phone: 2815551234, email: john@example.com"},
	}
	data := extractBookingRegex(messages)
	assert.Equal(t, "John Smith", data.Name)
	assert.Equal(t, "2815551234", data.Phone)
	assert.Equal(t, "john@example.com", data.Email)
	// Regex extraction never marks a booking ready on its own.
	assert.False(t, data.ReadyToSubmit)
}

func TestExtractBookingRegexPhoneFormats(t *testing.T) {
	messages := []models.Message{
		{Role: models.RoleUser, Content: "reach me on 281-555-1234"},
	}
	data := extractBookingRegex(messages)
	assert.Equal(t, "2815551234", data.Phone)
}

func TestExtractBookingRegexEmpty(t *testing.T) {
	data := extractBookingRegex([]models.Message{
		{Role: models.RoleUser, Content: "how much for a move?"},
	})
	assert.Empty(t, data.Name)
	assert.Empty(t, data.Phone)
	assert.Empty(t, data.Email)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "John Smith", titleCase("john smith"))
	assert.Equal(t, "Jo", titleCase("  jo  "))
	assert.Equal(t, "", titleCase(""))
}

func TestFlagReadyToSubmit(t *testing.T) {
	data := &models.BookingData{
		Name: "Jane", Phone: "2815550000", Email: "jane@example.com",
		PickupAddress: "100 Main St", DropAddress: "200 Oak Ave",
		MoveDate: "2026-09-15", TimePreference: "10 AM",
	}
	flagReadyToSubmit(data)
	assert.True(t, data.ReadyToSubmit)

	data.TimePreference = ""
	flagReadyToSubmit(data)
	assert.False(t, data.ReadyToSubmit)

	data.TimePreference = "TBD"
	flagReadyToSubmit(data)
	assert.False(t, data.ReadyToSubmit)
}

func TestMissingRequiredFields(t *testing.T) {
	data := &models.BookingData{Name: "Jane", Phone: "2815550000"}
	missing := missingRequiredFields(data)
	assert.ElementsMatch(t, []string{"email", "pickup_address", "drop_address", "move_date", "time_preference"}, missing)
}
