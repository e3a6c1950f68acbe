package assistant

import (
	"context"
	"fmt"
	"testing"

	"movebot/models"
	"movebot/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubModel struct {
	reply string
	err   error
}

func (s *stubModel) Complete(ctx context.Context, messages []models.Message) (string, error) {
	return s.reply, s.err
}

type stubEstimator struct {
	est *models.Estimate
	err error
}

func (s *stubEstimator) Generate(ctx context.Context, input models.EstimateInput) (*models.Estimate, error) {
	return s.est, s.err
}

type stubDistance struct{ miles float64 }

func (s *stubDistance) Miles(ctx context.Context, origin, destination string) (float64, error) {
	return s.miles, nil
}

type stubBookings struct{}

func (s *stubBookings) Submit(ctx context.Context, data *models.BookingData) (*booking.SubmitResult, error) {
	return &booking.SubmitResult{Success: true, BookingID: "BOOK-TEST"}, nil
}
func (s *stubBookings) DateAvailable(ctx context.Context, date string) (bool, int) { return true, 0 }
func (s *stubBookings) SuggestAlternateDates(ctx context.Context, requestedDate string, max int) []string {
	return nil
}
func (s *stubBookings) Enrich(ctx context.Context, data *models.BookingData) {}

type recordingNotifier struct {
	callRequests []string
	bookings     int
}

func (r *recordingNotifier) SendBookingToManager(ctx context.Context, data models.BookingData) error {
	r.bookings++
	return nil
}
func (r *recordingNotifier) SendCustomerConfirmation(ctx context.Context, data models.BookingData) error {
	return nil
}
func (r *recordingNotifier) SendCallRequest(ctx context.Context, name, phone, timing, notes string) error {
	r.callRequests = append(r.callRequests, phone+"|"+timing)
	return nil
}

func newTestService(model ChatModel) (*DefaultAssistantService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	svc := NewAssistantService(
		model,
		NewMemoryStore(),
		&stubDistance{miles: 12},
		&stubEstimator{est: &models.Estimate{
			CrewSize:        "2 movers + truck",
			HourlyRate:      125,
			PickupDropMiles: 12,
			MoveCategory:    "local",
		}},
		&stubBookings{},
		notifier,
	)
	return svc, notifier
}

func TestChatSeedsNewSession(t *testing.T) {
	svc, _ := newTestService(&stubModel{reply: "Happy to help!"})
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "", "how much for a move?")
	require.NoError(t, err)
	assert.Equal(t, "Happy to help!", resp.Response)
	assert.NotEmpty(t, resp.SessionID)

	state, err := svc.Store.Load(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, state)
	// System prompt, welcome, user turn, assistant turn.
	require.Len(t, state.Messages, 4)
	assert.Equal(t, models.RoleSystem, state.Messages[0].Role)
	assert.Equal(t, WelcomeMessage, state.Messages[1].Content)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	svc, _ := newTestService(&stubModel{reply: "ok"})
	_, err := svc.Chat(context.Background(), "s1", "   ")
	assert.Error(t, err)
}

func TestChatDegradedQuickParse(t *testing.T) {
	svc, _ := newTestService(&stubModel{err: fmt.Errorf("rate limit exceeded")})
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "s1", "from 100 main st to 200 oak ave, 2 bedrooms, no stairs")
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Contains(t, resp.Response, "12.0 miles")
	assert.Contains(t, resp.Response, "$125/hr")

	// The rate-limit failure opened a cooldown window; the next turn stays
	// deterministic.
	resp, err = svc.Chat(ctx, "s1", "from 100 main st to 200 oak ave, 2 bedrooms")
	require.NoError(t, err)
	assert.True(t, resp.Cooldown)
	assert.Contains(t, resp.Response, "AI cooldown active")
}

func TestChatCallRequestFlow(t *testing.T) {
	svc, notifier := newTestService(&stubModel{reply: "Sure."})
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "s1", "please call me later today")
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "arrange a manager call")
	assert.Empty(t, notifier.callRequests)

	resp, err = svc.Chat(ctx, "s1", "phone: 2815551234")
	require.NoError(t, err)
	require.Len(t, notifier.callRequests, 1)
	assert.Equal(t, "2815551234|later today", notifier.callRequests[0])
	assert.Contains(t, resp.Response, "manager will call you")

	// Once notified, further turns do not re-send.
	_, err = svc.Chat(ctx, "s1", "thanks!")
	require.NoError(t, err)
	assert.Len(t, notifier.callRequests, 1)
}

func TestWelcome(t *testing.T) {
	svc, _ := newTestService(&stubModel{reply: "ok"})
	assert.Equal(t, WelcomeMessage, svc.Welcome())
}

func TestReset(t *testing.T) {
	svc, _ := newTestService(&stubModel{reply: "ok"})
	ctx := context.Background()

	resp, err := svc.Chat(ctx, "s1", "hello")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, resp.SessionID))

	state, err := svc.Store.Load(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Nil(t, state)
}
