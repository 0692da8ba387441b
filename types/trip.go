package types

// Pace controls how densely a day is packed with activities and how much of
// the daily budget is spent on them.
type Pace string

const (
	PaceEasy   Pace = "easy"
	PaceMedium Pace = "medium"
	PaceHard   Pace = "hard"
)

func (p Pace) IsValid() bool {
	switch p {
	case PaceEasy, PaceMedium, PaceHard:
		return true
	}
	return false
}

// Trip request bounds. Requests outside these are rejected before any
// provider is called.
const (
	MinTripDays   = 1
	MaxTripDays   = 14
	MinTripBudget = 100
)

// TripRequest is the validated input to itinerary generation. Budget is
// expressed in the traveler's currency (USD by default) and converted to the
// canonical ledger currency before any allocation happens.
type TripRequest struct {
	City       string  `json:"city" binding:"required"`
	Budget     float64 `json:"budget" binding:"required,gte=100"`
	Days       int     `json:"days" binding:"required,gte=1,lte=14"`
	Difficulty Pace    `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Currency   string  `json:"currency,omitempty"`
}
