package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTwiML(t *testing.T) {
	xml := TwiML("(281) 743-4503")
	assert.Contains(t, xml, `<Say voice="Polly.Joanna">`)
	assert.Contains(t, xml, "Thank you for calling U S F Moving Company.")
	assert.Contains(t, xml, "<Dial>(281) 743-4503</Dial>")
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
}

func TestTwiMLEscapesPhone(t *testing.T) {
	xml := TwiML("<script>")
	assert.NotContains(t, xml, "<Dial><script>")
	assert.Contains(t, xml, "&lt;script&gt;")
}

func TestTwilioVoiceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/twilio/voice", TwilioVoice("(281) 743-4503"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/twilio/voice", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/xml")
	assert.Contains(t, w.Body.String(), "<Response>")
}
