package assistant

import (
	"regexp"
	"strings"
)

var callTriggers = []string{
	"call me", "call back", "call at", "phone me",
	"speak to", "talk to", "speak with", "talk with",
	"contact me", "contact manager", "contact with manager", "manager contact",
	"call manager", "manager call", "talk with manager", "speak with manager",
}

// DetectCallIntent reports whether the user asked to speak with a manager by
// phone.
func DetectCallIntent(text string) bool {
	if text == "" {
		return false
	}
	t := strings.ToLower(text)
	for _, trigger := range callTriggers {
		if strings.Contains(t, trigger) {
			return true
		}
	}
	return false
}

var clockTimeRe = regexp.MustCompile(`\b\d{1,2}(?::\d{2})?\s*(am|pm)\b`)

// ParseCallTiming condenses a timing phrase ("2 PM today", "now", "later
// today") into a short label for the manager notification.
func ParseCallTiming(text string) string {
	t := strings.ToLower(text)
	if strings.Contains(t, "now") {
		return "immediate"
	}
	if strings.Contains(t, "later today") || strings.Contains(t, "later") {
		return "later today"
	}
	if strings.Contains(t, "tomorrow") {
		if m := clockTimeRe.FindString(t); m != "" {
			return m + " tomorrow"
		}
		return "tomorrow"
	}
	if m := clockTimeRe.FindString(t); m != "" {
		if strings.Contains(t, "today") {
			return strings.ToUpper(m) + " today"
		}
		return strings.ToUpper(m)
	}
	return "immediate"
}
