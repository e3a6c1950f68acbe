package models

// Message roles mirror the chat-completion wire format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionMeta holds per-session ephemeral flags that live alongside the
// transcript (call requests, long-distance lead dedup).
type SessionMeta struct {
	CallRequested        bool   `json:"callRequested"`
	CallNotified         bool   `json:"callNotified"`
	CallTime             string `json:"callTime,omitempty"`
	LongDistanceNotified bool   `json:"longDistanceNotified"`
}

// ChatRequest is the payload for the chat endpoint.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is what the chat endpoint returns to the widget.
type ChatResponse struct {
	Response          string `json:"response"`
	SessionID         string `json:"session_id"`
	Cooldown          bool   `json:"cooldown,omitempty"`
	Degraded          bool   `json:"degraded,omitempty"`
	AvailabilityCheck string `json:"availability_check,omitempty"`
	ManagerNotified   bool   `json:"manager_notified,omitempty"`
}
