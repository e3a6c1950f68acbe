package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const voiceGreeting = "Thank you for calling U S F Moving Company. " +
	"A representative will be with you shortly."

// TwiML renders the voice response for inbound calls: greet the caller, then
// dial the office line.
func TwiML(companyPhone string) string {
	var phone strings.Builder
	xml.EscapeText(&phone, []byte(companyPhone))
	return fmt.Sprintf(
		`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+
			`<Response><Say voice="Polly.Joanna">%s</Say><Dial>%s</Dial></Response>`,
		voiceGreeting, phone.String())
}

// TwilioVoice answers the Twilio voice webhook.
func TwilioVoice(companyPhone string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/xml", []byte(TwiML(companyPhone)))
	}
}
