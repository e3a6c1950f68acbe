package booking

import (
	"context"
	"fmt"
	"testing"

	"movebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	countsByDate map[string]int
	countErr     error
	appended     []models.BookingData
	customers    []models.BookingData
	appendErr    error
}

func (f *fakeRepo) AppendBooking(ctx context.Context, data models.BookingData) (string, error) {
	if f.appendErr != nil {
		return "", f.appendErr
	}
	f.appended = append(f.appended, data)
	return "BOOK-TEST", nil
}

func (f *fakeRepo) AppendCustomer(ctx context.Context, data models.BookingData) (string, error) {
	f.customers = append(f.customers, data)
	return "CUST-TEST", nil
}

func (f *fakeRepo) CountJobsOnDate(ctx context.Context, date string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.countsByDate[date], nil
}

func (f *fakeRepo) WeeklyJobsCount(ctx context.Context) (int, error) {
	return 0, nil
}

type fakeEstimator struct {
	est *models.Estimate
	err error
}

func (f *fakeEstimator) Generate(ctx context.Context, input models.EstimateInput) (*models.Estimate, error) {
	return f.est, f.err
}

func localEstimate() *models.Estimate {
	return &models.Estimate{
		CrewSize:          "3 movers + truck",
		HourlyRate:        150,
		PickupDropMiles:   18.5,
		MoveCategory:      "local",
		TravelTimeMinutes: 30,
		MinimumHours:      3,
	}
}

func validBooking() *models.BookingData {
	return &models.BookingData{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "2815550000",
		PickupAddress: "100 Main St",
		DropAddress:   "200 Oak Ave",
		HomeSize:      "3 bedroom",
		MoveDate:      "2026-09-15",
	}
}

func TestRoomsFromHomeSize(t *testing.T) {
	assert.Equal(t, 3, RoomsFromHomeSize("3 bedroom house"))
	assert.Equal(t, 2, RoomsFromHomeSize("2 bedrooms"))
	assert.Equal(t, 4, RoomsFromHomeSize("bedrooms: 4"))
	assert.Equal(t, 2, RoomsFromHomeSize("2 br flat"))
	assert.Equal(t, 0, RoomsFromHomeSize("studio"))
}

func TestStairsFlag(t *testing.T) {
	assert.True(t, StairsFlag("stairs at pickup"))
	assert.True(t, StairsFlag("Elevator access"))
	assert.False(t, StairsFlag("no stairs"))
	assert.False(t, StairsFlag("without stairs"))
	assert.False(t, StairsFlag("ground floor"))
}

func TestSubmitMissingField(t *testing.T) {
	svc := &DefaultBookingService{DailyCapacity: 3}
	data := validBooking()
	data.Email = ""
	_, err := svc.Submit(context.Background(), data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field: email")
}

func TestSubmitDateFull(t *testing.T) {
	repo := &fakeRepo{countsByDate: map[string]int{
		"2026-09-15": 3,
		"2026-09-16": 3,
		"2026-09-17": 1,
	}}
	svc := &DefaultBookingService{
		Repo:          repo,
		Estimator:     &fakeEstimator{est: localEstimate()},
		DailyCapacity: 3,
	}

	result, err := svc.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, repo.appended)
	// First suggested alternate skips the also-full 16th.
	require.NotEmpty(t, result.SuggestedDates)
	assert.Equal(t, "2026-09-17", result.SuggestedDates[0])
	assert.LessOrEqual(t, len(result.SuggestedDates), 3)
}

func TestSubmitSuccessEnriches(t *testing.T) {
	repo := &fakeRepo{countsByDate: map[string]int{}}
	svc := &DefaultBookingService{
		Repo:          repo,
		Estimator:     &fakeEstimator{est: localEstimate()},
		DailyCapacity: 3,
	}

	data := validBooking()
	result, err := svc.Submit(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "BOOK-TEST", result.BookingID)
	require.Len(t, repo.appended, 1)
	require.Len(t, repo.customers, 1)

	assert.Equal(t, "3 movers + truck", data.CrewSize)
	assert.Equal(t, 18.5, data.DistanceMiles)
	assert.Equal(t, "local", data.MoveType)
	assert.Equal(t, "$150/hr (+30 min travel, 3-hr minimum)", data.EstimatedCost)
}

func TestSubmitSaveFailureStillSucceeds(t *testing.T) {
	repo := &fakeRepo{countsByDate: map[string]int{}, appendErr: fmt.Errorf("sheet down")}
	svc := &DefaultBookingService{
		Repo:          repo,
		Estimator:     &fakeEstimator{est: localEstimate()},
		DailyCapacity: 3,
	}

	result, err := svc.Submit(context.Background(), validBooking())
	require.NoError(t, err)
	// The lead is still reported so the manager email goes out.
	assert.True(t, result.Success)
	assert.Empty(t, result.BookingID)
}

func TestDateAvailableRepoError(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:          &fakeRepo{countErr: fmt.Errorf("sheet down")},
		DailyCapacity: 3,
	}
	ok, count := svc.DateAvailable(context.Background(), "2026-09-15")
	assert.True(t, ok)
	assert.Zero(t, count)
}

func TestSuggestAlternateDatesBadInput(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeRepo{countsByDate: map[string]int{}}, DailyCapacity: 3}
	assert.Nil(t, svc.SuggestAlternateDates(context.Background(), "next tuesday", 3))
}
