package assistant

import (
	"context"
	"fmt"
	"strings"

	"movebot/models"
	"movebot/services/booking"
	"movebot/services/estimate"
	"movebot/services/notification"
	"movebot/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the conversational front of the business: it drives the language
// model, harvests bookings from the transcript and triggers notifications.
type Service interface {
	// Chat handles one user turn. A blank sessionID starts a new session.
	Chat(ctx context.Context, sessionID, message string) (*models.ChatResponse, error)
	// Reset discards the session transcript.
	Reset(ctx context.Context, sessionID string) error
	// Welcome returns the greeting shown to new visitors.
	Welcome() string
}

// DistanceLookup resolves driving distance between two addresses.
type DistanceLookup interface {
	Miles(ctx context.Context, origin, destination string) (float64, error)
}

// DefaultAssistantService wires the chat model to sessions, estimates,
// bookings and notifications.
type DefaultAssistantService struct {
	Model     ChatModel
	Store     ConversationStore
	Distance  DistanceLookup
	Estimator estimate.Service
	Bookings  booking.Service
	Notifier  notification.Service

	cooldown cooldownState
}

func NewAssistantService(model ChatModel, store ConversationStore, distance DistanceLookup,
	estimator estimate.Service, bookings booking.Service, notifier notification.Service) *DefaultAssistantService {
	return &DefaultAssistantService{
		Model:     model,
		Store:     store,
		Distance:  distance,
		Estimator: estimator,
		Bookings:  bookings,
		Notifier:  notifier,
	}
}

func (s *DefaultAssistantService) Welcome() string {
	return WelcomeMessage
}

func (s *DefaultAssistantService) Reset(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultAssistantService) loadOrInit(ctx context.Context, sessionID string) (*sessionState, error) {
	state, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = newSessionState()
		// The greeting lands in the transcript before the first user turn.
		state.append(models.RoleAssistant, WelcomeMessage)
		utils.GetLogger().Info("New conversation initialized", zap.String("session", sessionID))
	}
	return state, nil
}

func (s *DefaultAssistantService) Chat(ctx context.Context, sessionID, message string) (*models.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("no message provided")
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	state, err := s.loadOrInit(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Backoff window from an earlier quota/rate-limit failure: answer
	// deterministically without touching the model.
	if remaining := s.cooldown.Remaining(); remaining > 0 {
		reply := s.cooldownReply(ctx, remaining, message)
		state.append(models.RoleUser, message)
		state.append(models.RoleAssistant, reply)
		state.trim()
		s.save(ctx, sessionID, state)
		return &models.ChatResponse{Response: reply, SessionID: sessionID, Cooldown: true}, nil
	}

	state.append(models.RoleUser, message)
	state.trim()
	utils.GetLogger().Info("Chat turn",
		zap.String("session", sessionID),
		zap.Int("message_len", len(message)),
		zap.Int("depth", len(state.Messages)))

	reply, err := s.Model.Complete(ctx, state.Messages)
	if err != nil || reply == "" {
		utils.GetLogger().Error("Chat completion failed", zap.String("session", sessionID), zap.Error(err))
		s.cooldown.Trip(err)
		return s.degradedReply(ctx, sessionID, state, message)
	}
	state.append(models.RoleAssistant, reply)

	resp := &models.ChatResponse{Response: reply, SessionID: sessionID}

	// A pending call request overrides the model reply until the manager has
	// been notified.
	if override := s.handleCallRequest(ctx, state, message); override != "" {
		state.append(models.RoleAssistant, override)
		resp.Response = override
	}

	s.autoSubmit(ctx, sessionID, state, resp)

	s.save(ctx, sessionID, state)
	return resp, nil
}

func (s *DefaultAssistantService) save(ctx context.Context, sessionID string, state *sessionState) {
	if err := s.Store.Save(ctx, sessionID, state); err != nil {
		utils.GetLogger().Error("Failed to persist session", zap.String("session", sessionID), zap.Error(err))
	}
}

// cooldownReply answers from the deterministic parser while the model backoff
// window is open.
func (s *DefaultAssistantService) cooldownReply(ctx context.Context, remaining int, message string) string {
	if quick := ParseQuickMoveDetails(message); quick != nil {
		est, err := s.Estimator.Generate(ctx, models.EstimateInput{
			Rooms:          quick.Rooms,
			PickupAddress:  quick.Pickup,
			DropAddress:    quick.Drop,
			StairsElevator: quick.Stairs,
		})
		if err == nil {
			return fmt.Sprintf(
				"(AI cooldown active %ds) Distance: %.1f miles. Crew: %s. Hourly rate: $%d/hr (+30 min travel). "+
					"Would you like to proceed with booking? I can collect your contact details.",
				remaining, est.PickupDropMiles, est.CrewSize, est.HourlyRate)
		}
		utils.GetLogger().Error("Cooldown estimate error", zap.Error(err))
	}
	return fmt.Sprintf(
		"(AI cooldown active %ds) Please send full move details: pickup and drop addresses, bedrooms, stairs/elevator, special items. "+
			"Then date + preferred time.", remaining)
}

// degradedReply keeps the conversation moving when the model is down: quick
// parse for an instant quote, otherwise prompt for the next missing detail.
func (s *DefaultAssistantService) degradedReply(ctx context.Context, sessionID string, state *sessionState, message string) (*models.ChatResponse, error) {
	resp := &models.ChatResponse{SessionID: sessionID, Degraded: true}

	if quick := ParseQuickMoveDetails(message); quick != nil {
		est, err := s.Estimator.Generate(ctx, models.EstimateInput{
			Rooms:          quick.Rooms,
			PickupAddress:  quick.Pickup,
			DropAddress:    quick.Drop,
			StairsElevator: quick.Stairs,
		})
		if err == nil {
			var msg string
			if est.MoveCategory == "long-distance" {
				msg = fmt.Sprintf(
					"The distance between your addresses is about %.1f miles, which is a long-distance move (>50 miles). "+
						"For accurate pricing, our manager will contact you. Please share your name, phone, and email.",
					est.PickupDropMiles)
			} else {
				msg = fmt.Sprintf(
					"Distance is about %.1f miles. For a %d-bedroom move, we'd assign %s. Hourly rate: $%d/hr (+30 min travel). "+
						"Would you like to proceed with booking? Please share your preferred move date and time, then your name, phone, and email.",
					est.PickupDropMiles, quick.Rooms, est.CrewSize, est.HourlyRate)
			}
			state.append(models.RoleAssistant, msg)
			resp.Response = msg
			// Details may already be complete from earlier turns.
			s.autoSubmit(ctx, sessionID, state, resp)
			s.save(ctx, sessionID, state)
			return resp, nil
		}
		utils.GetLogger().Error("Fallback estimate failed", zap.Error(err))
	}

	// Use whatever the transcript already holds to decide what to ask next.
	partial := s.ExtractBooking(ctx, state.Messages)

	var next string
	switch {
	case partial.PickupAddress == "" || partial.DropAddress == "":
		next = "Please share your pickup full address and drop-off full address (including city and ZIP)."
	case partial.HomeSize == "":
		next = "How many bedrooms are you moving?"
	case partial.StairsElevator == "" || partial.StairsElevator == "None specified":
		next = "Any stairs or elevator at either location?"
	case partial.MoveDate == "" || partial.TimePreference == "":
		next = "What date and preferred time would you like to move?"
	case partial.Name == "" || partial.Phone == "" || partial.Email == "":
		next = "To finalize your booking, please share your name, phone number, and email."
	default:
		next = "I'm here to help you book your move."
	}

	var estMsg string
	if rooms := booking.RoomsFromHomeSize(partial.HomeSize); rooms > 0 && partial.PickupAddress != "" && partial.DropAddress != "" {
		est, err := s.Estimator.Generate(ctx, models.EstimateInput{
			Rooms:          rooms,
			PickupAddress:  partial.PickupAddress,
			DropAddress:    partial.DropAddress,
			StairsElevator: booking.StairsFlag(partial.StairsElevator),
			MoveDate:       partial.MoveDate,
		})
		if err == nil {
			estMsg = fmt.Sprintf("Distance is about %.1f miles. Crew: %s. Hourly rate: $%d/hr (+30 min travel). ",
				est.PickupDropMiles, est.CrewSize, est.HourlyRate)
		} else {
			utils.GetLogger().Warn("Deterministic estimate in fallback failed", zap.Error(err))
		}
	}

	reply := estMsg + next
	state.append(models.RoleAssistant, reply)
	resp.Response = reply
	s.save(ctx, sessionID, state)
	return resp, nil
}

// handleCallRequest tracks "call me" intents across turns. Returns a reply
// that replaces the model's when the call flow needs to speak.
func (s *DefaultAssistantService) handleCallRequest(ctx context.Context, state *sessionState, latest string) string {
	meta := &state.Meta

	if DetectCallIntent(latest) {
		meta.CallRequested = true
		meta.CallTime = ParseCallTiming(latest)
		utils.GetLogger().Info("Call intent detected", zap.String("timing", meta.CallTime))
		if !meta.CallNotified {
			return "Sure, I can arrange a manager call. Please provide your name and phone number (and email if you prefer)."
		}
		return ""
	}

	if !meta.CallRequested || meta.CallNotified {
		return ""
	}

	// Harvest contact details provided after the initial request.
	extracted := s.ExtractBooking(ctx, state.Messages)
	if extracted.Phone == "" {
		if rex := extractBookingRegex(state.Messages); rex.Phone != "" {
			extracted.Phone = rex.Phone
			if extracted.Name == "" {
				extracted.Name = rex.Name
			}
			if extracted.Email == "" {
				extracted.Email = rex.Email
			}
		}
	}

	if meta.CallTime == "" || meta.CallTime == "immediate" {
		if t := ParseCallTiming(latest); t != "immediate" {
			meta.CallTime = t
		}
	}
	timing := meta.CallTime
	if timing == "" {
		timing = "immediate"
	}

	if extracted.Phone == "" {
		return "To arrange the call I still need your phone number (and name if not given)."
	}

	err := s.Notifier.SendCallRequest(ctx, extracted.Name, extracted.Phone, timing, "Requested via chat")
	meta.CallNotified = true
	if err != nil {
		utils.GetLogger().Error("Call request notification failed", zap.Error(err))
		return "I tried to notify our manager but ran into an issue. Please call (281) 743-4503 or resend your details."
	}
	if timing != "immediate" {
		return fmt.Sprintf("Got it. Our manager will call you at %s.", timing)
	}
	return "Got it. Our manager will call you shortly."
}

// autoSubmit inspects the transcript after each turn: submits a complete
// booking, or forwards a long-distance lead to the manager.
func (s *DefaultAssistantService) autoSubmit(ctx context.Context, sessionID string, state *sessionState, resp *models.ChatResponse) {
	info := s.ExtractBooking(ctx, state.Messages)

	if info.ReadyToSubmit {
		if info.MoveDate != "" && info.MoveDate != "TBD" {
			if ok, count := s.Bookings.DateAvailable(ctx, info.MoveDate); !ok {
				alternates := s.Bookings.SuggestAlternateDates(ctx, info.MoveDate, 3)
				altStr := "please contact us"
				if len(alternates) > 0 {
					altStr = strings.Join(alternates, ", ")
				}
				msg := fmt.Sprintf(
					"Unfortunately, %s is fully booked (we're at capacity with %d moves that day). "+
						"Available dates nearby: %s. Which date works better for you?",
					info.MoveDate, count, altStr)
				state.append(models.RoleAssistant, msg)
				resp.Response = msg
				resp.AvailabilityCheck = "full"
				utils.GetLogger().Info("Date unavailable, suggested alternates", zap.String("session", sessionID))
				return
			}
		}

		s.Bookings.Enrich(ctx, info)
		result, err := s.Bookings.Submit(ctx, info)
		if err != nil {
			utils.GetLogger().Error("Auto-submit failed", zap.String("session", sessionID), zap.Error(err))
			return
		}
		if result.Success {
			if err := s.Notifier.SendBookingToManager(ctx, *info); err != nil {
				utils.GetLogger().Error("Manager notification failed", zap.Error(err))
			}
			if err := s.Notifier.SendCustomerConfirmation(ctx, *info); err != nil {
				utils.GetLogger().Warn("Customer confirmation skipped or failed", zap.Error(err))
			}
			utils.GetLogger().Info("Booking auto-submitted",
				zap.String("session", sessionID), zap.String("booking_id", result.BookingID))
		}
		return
	}

	// Not a full booking yet. A long-distance lead with contact details still
	// goes straight to the manager, once per session.
	if info.ReadyForLongDistance && !state.Meta.LongDistanceNotified {
		utils.GetLogger().Info("Long-distance lead detected",
			zap.String("session", sessionID), zap.Float64("miles", info.DistanceMiles))
		s.Bookings.Enrich(ctx, info)
		if err := s.Notifier.SendBookingToManager(ctx, *info); err != nil {
			utils.GetLogger().Error("Long-distance lead notification failed", zap.Error(err))
			return
		}
		state.Meta.LongDistanceNotified = true
		msg := "Thank you! This is a long-distance move (over 50 miles). " +
			"Our manager will contact you shortly to provide a detailed quote."
		state.append(models.RoleAssistant, msg)
		resp.Response = msg
		resp.ManagerNotified = true
	}
}
