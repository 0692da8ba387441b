package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderai/wanderai-backend/types"
)

type fakeChatClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeChatClient) ChatCompletion(_ context.Context, prompt string, _ int) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func TestTravelInsightsNilClient(t *testing.T) {
	provider := NewChatNarrativeProvider(nil)

	got := provider.TravelInsights(context.Background(), types.TripRequest{City: "Mathura"}, 50000)
	assert.Empty(t, got)
}

func TestTravelInsightsFailureIsSilent(t *testing.T) {
	client := &fakeChatClient{err: fmt.Errorf("upstream 503")}
	provider := NewChatNarrativeProvider(client)

	got := provider.TravelInsights(context.Background(), types.TripRequest{
		City: "Mathura", Budget: 1000, Days: 3, Difficulty: types.PaceMedium,
	}, 83250)
	assert.Empty(t, got)
}

func TestTravelInsightsSuccess(t *testing.T) {
	client := &fakeChatClient{response: "Day 1: Visit Krishna Janmabhoomi Temple..."}
	provider := NewChatNarrativeProvider(client)

	got := provider.TravelInsights(context.Background(), types.TripRequest{
		City: "Mathura", Budget: 1000, Days: 3, Difficulty: types.PaceHard,
	}, 83250)
	assert.Equal(t, client.response, got)

	// The prompt must anchor the model on the actual trip parameters.
	assert.Contains(t, client.prompt, "3-day travel itinerary for Mathura")
	assert.Contains(t, client.prompt, "INR 83250")
	assert.Contains(t, client.prompt, "packed with maximum experiences")
	assert.True(t, strings.Contains(client.prompt, "FAMOUS LANDMARKS & ATTRACTIONS"))
}
