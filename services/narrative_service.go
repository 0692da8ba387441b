package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/pkg/openrouter"
	"github.com/wanderai/wanderai-backend/types"
)

const narrativeMaxTokens = 4000

// NarrativeProvider produces the optional prose travel-insights block for an
// itinerary. An empty string means the enrichment is unavailable; the
// itinerary is complete without it.
type NarrativeProvider interface {
	TravelInsights(ctx context.Context, req types.TripRequest, budgetCanonical int64) string
}

// ChatNarrativeProvider backs the enrichment with a chat-completion model.
// All failures are logged and collapse to the empty string.
type ChatNarrativeProvider struct {
	client openrouter.ClientInterface
}

// NewChatNarrativeProvider creates the provider. client may be nil, in which
// case every request yields an empty narrative.
func NewChatNarrativeProvider(client openrouter.ClientInterface) *ChatNarrativeProvider {
	return &ChatNarrativeProvider{client: client}
}

// TravelInsights returns model-written cultural insights for the trip, or ""
// when the model is unavailable or fails.
func (n *ChatNarrativeProvider) TravelInsights(ctx context.Context, req types.TripRequest, budgetCanonical int64) string {
	if n.client == nil {
		return ""
	}
	log := logger.GetLogger()

	content, err := n.client.ChatCompletion(ctx, buildTravelPrompt(req, budgetCanonical), narrativeMaxTokens)
	if err != nil {
		log.Warnw("Travel insights unavailable", "city", req.City, "error", err)
		return ""
	}
	if content != "" {
		log.Infow("Travel insights generated", "city", req.City, "length", len(content))
	}
	return content
}

// buildTravelPrompt asks for a structured itinerary narrative anchored on
// real landmark names so the model does not invent generic ones.
func buildTravelPrompt(req types.TripRequest, budgetCanonical int64) string {
	styles := map[types.Pace]string{
		types.PaceEasy:   "relaxed with fewer activities",
		types.PaceMedium: "moderate pace",
		types.PaceHard:   "packed with maximum experiences",
	}
	style, ok := styles[req.Difficulty]
	if !ok {
		style = styles[types.PaceMedium]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Please provide a detailed %d-day travel itinerary for %s with these specific requirements:\n\n", req.Days, req.City)
	fmt.Fprintf(&b, "TRIP DETAILS:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.City)
	fmt.Fprintf(&b, "- Duration: %d days\n", req.Days)
	fmt.Fprintf(&b, "- Total Budget: INR %d (Indian Rupees)\n", budgetCanonical)
	fmt.Fprintf(&b, "- Travel Style: %s (%s)\n\n", req.Difficulty, style)
	fmt.Fprintf(&b, "IMPORTANT: Please include REAL, SPECIFIC landmark names for %s. Do not use generic names.\n\n", req.City)
	fmt.Fprintf(&b, "REQUIRED FORMAT:\n\n")
	fmt.Fprintf(&b, "**FAMOUS LANDMARKS & ATTRACTIONS:**\n")
	fmt.Fprintf(&b, "List 8-10 real, specific attractions in %s with:\n", req.City)
	fmt.Fprintf(&b, "- Exact name of landmark/temple/fort/palace/museum\n")
	fmt.Fprintf(&b, "- Type (temple, palace, fort, museum, garden, market, etc.)\n")
	fmt.Fprintf(&b, "- Brief description\n")
	fmt.Fprintf(&b, "- Estimated entry cost in INR\n\n")
	fmt.Fprintf(&b, "**DINING RECOMMENDATIONS:**\n")
	fmt.Fprintf(&b, "List 5-6 real restaurants or food places in %s:\n", req.City)
	fmt.Fprintf(&b, "- Restaurant name or area famous for food\n")
	fmt.Fprintf(&b, "- Cuisine type\n")
	fmt.Fprintf(&b, "- Price range\n\n")
	fmt.Fprintf(&b, "**DAILY SCHEDULE:**\n")
	fmt.Fprintf(&b, "Day 1: Morning: [specific landmark], Afternoon: [specific place], Evening: [specific activity]\n")
	fmt.Fprintf(&b, "Day 2: [continue pattern]\n")
	fmt.Fprintf(&b, "[Include %d days total]\n\n", req.Days)
	fmt.Fprintf(&b, "**PRACTICAL INFO:**\n")
	fmt.Fprintf(&b, "- Best time to visit %s\n", req.City)
	fmt.Fprintf(&b, "- Local transportation\n")
	fmt.Fprintf(&b, "- Cultural tips\n")
	fmt.Fprintf(&b, "- Budget breakdown\n\n")
	fmt.Fprintf(&b, "Please use actual landmark names that exist in %s. For example, if this is Mathura, mention Krishna Janmabhoomi Temple, Dwarkadhish Temple, Vishram Ghat, etc. Be specific and authentic.", req.City)
	return b.String()
}
