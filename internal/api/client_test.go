package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/saadjs/fittrack/internal/api"
	"github.com/saadjs/fittrack/internal/apitest"
	"github.com/saadjs/fittrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(srv *apitest.Server) *api.Client {
	return &api.Client{
		BaseURL:    srv.URL(),
		Token:      apitest.Token,
		HTTPClient: srv.HTTPClient(),
		RetryDelay: time.Millisecond,
	}
}

func TestListWorkoutsReconcilesLegacyKeys(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SeedWorkouts(
		map[string]any{"_id": "w1", "type": "Running", "duration": 30, "calories": 300, "date": "2026-10-15"},
		map[string]any{"_id": "w2", "type": "Yoga", "minutes": "20", "caloriesBurned": 90, "date": "2026-10-14"},
		map[string]any{"_id": "w3", "type": "HIIT", "duration": 10, "calories": "abc", "date": "2026-10-13"},
	)

	items, err := newClient(srv).ListWorkouts(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 300.0, items[0].Calories)
	assert.Equal(t, 20.0, items[1].DurationMin)
	assert.Equal(t, 90.0, items[1].Calories)
	assert.Empty(t, items[1].Issues)
	assert.Zero(t, items[2].Calories)
	assert.Equal(t, []string{"calories"}, items[2].Issues)
}

func TestRequestsCarryBearerTokenAndRequestID(t *testing.T) {
	srv := apitest.NewServer(t)

	_, err := newClient(srv).ListFoods(context.Background())
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Bearer "+apitest.Token, reqs[0].Header.Get("Authorization"))
	assert.NotEmpty(t, reqs[0].Header.Get("X-Request-ID"))
	assert.Equal(t, "application/json", reqs[0].Header.Get("Content-Type"))
}

func TestUnauthorizedResponsesBecomeStatusErrors(t *testing.T) {
	srv := apitest.NewServer(t)
	client := newClient(srv)
	client.Token = "stale"

	_, err := client.ListGoals(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))

	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "not authorized", statusErr.Message)
	assert.Equal(t, "/goals", statusErr.Path)
}

func TestGetRetriesServerErrors(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailN(http.MethodGet, "/workouts", http.StatusServiceUnavailable, 2)
	client := newClient(srv)
	client.Retries = 2

	items, err := client.ListWorkouts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Len(t, srv.Requests(), 3)
}

func TestWritesAreNotRetried(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.FailN(http.MethodPost, "/foods", http.StatusInternalServerError, 1)
	client := newClient(srv)
	client.Retries = 3

	_, err := client.CreateFood(context.Background(), api.NewFood{Name: "Oats", Calories: 150, Date: "2026-10-15"})
	require.Error(t, err)
	assert.Len(t, srv.Requests(), 1)
	assert.Empty(t, srv.Foods())
}

func TestSetGoalCompletionSendsTriState(t *testing.T) {
	srv := apitest.NewServer(t)
	srv.SeedGoals(map[string]any{"_id": "g1", "type": "Daily", "category": "Weight Loss", "targetCalories": 500})
	client := newClient(srv)
	ctx := context.Background()

	yes, no := true, false
	tests := []struct {
		name      string
		completed *bool
		body      string
	}{
		{name: "complete", completed: &yes, body: `{"manualCompleted":true}`},
		{name: "reopen", completed: &no, body: `{"manualCompleted":false}`},
		{name: "auto", completed: nil, body: `{"manualCompleted":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal, err := client.SetGoalCompletion(ctx, "g1", tt.completed)
			require.NoError(t, err)
			assert.Equal(t, tt.completed, goal.ManualCompleted)

			reqs := srv.Requests()
			last := reqs[len(reqs)-1]
			assert.Equal(t, http.MethodPatch, last.Method)
			assert.Equal(t, "/goals/g1", last.Path)
			assert.JSONEq(t, tt.body, string(last.Body))
		})
	}
}

func TestDeleteRequiresID(t *testing.T) {
	srv := apitest.NewServer(t)
	err := newClient(srv).DeleteWorkout(context.Background(), "  ")
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}

func TestDeleteMissingRecordIsNotFound(t *testing.T) {
	srv := apitest.NewServer(t)
	err := newClient(srv).DeleteGoal(context.Background(), "missing")
	assert.True(t, api.IsNotFound(err))
}

func TestCreateWorkoutRoundTrip(t *testing.T) {
	srv := apitest.NewServer(t)
	distance := 5.0

	got, err := newClient(srv).CreateWorkout(context.Background(), api.NewWorkout{
		Type:      "Running",
		Duration:  30,
		Intensity: string(model.IntensityHigh),
		Distance:  &distance,
		Calories:  345,
		Date:      "2026-10-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 345.0, got.Calories)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), got.Date)
	require.Len(t, srv.Workouts(), 1)
}

func TestLoginAndRegister(t *testing.T) {
	srv := apitest.NewServer(t)
	client := &api.Client{BaseURL: srv.URL(), HTTPClient: srv.HTTPClient()}
	ctx := context.Background()

	res, err := client.Login(ctx, apitest.Email, apitest.Password)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, apitest.Name, res.User.Name)
	assert.NotEmpty(t, res.User.ID)

	_, err = client.Login(ctx, apitest.Email, "wrong")
	assert.True(t, api.IsUnauthorized(err))

	res, err = client.Register(ctx, "Grace", "grace@example.com", "pw")
	require.NoError(t, err)
	client.Token = res.Token

	me, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", me.Email)
}

func TestUpdateProfileMergesResponse(t *testing.T) {
	srv := apitest.NewServer(t)
	client := newClient(srv)
	ctx := context.Background()

	updated, err := client.UpdateProfile(ctx, api.Profile{Age: 36, WeightKg: 61.5})
	require.NoError(t, err)
	assert.Equal(t, apitest.Name, updated.Name)
	assert.Equal(t, 36, updated.Age)
	assert.InDelta(t, 61.5, updated.WeightKg, 1e-9)

	fetched, err := client.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, fetched)
}
