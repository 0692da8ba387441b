package types

// Money amounts on itinerary entities are whole units of the canonical
// ledger currency (INR in the reference deployment). Optional *USD fields
// carry the traveler-facing equivalent at the exchange rate recorded on the
// itinerary.

type HotelTier string

const (
	HotelTierBudget   HotelTier = "budget"
	HotelTierMidrange HotelTier = "midrange"
	HotelTierLuxury   HotelTier = "luxury"
)

type HotelContact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// Hotel is the single lodging selection for a trip. It spans every night
// except the last day (checkout on the final day).
type Hotel struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Tier             HotelTier    `json:"type"`
	PricePerNight    int64        `json:"pricePerNight"`
	PricePerNightUSD float64      `json:"pricePerNightUSD,omitempty"`
	Rating           float64      `json:"rating"`
	Amenities        []string     `json:"amenities"`
	Description      string       `json:"description"`
	Address          string       `json:"address"`
	CheckIn          string       `json:"checkIn"`
	CheckOut         string       `json:"checkOut"`
	TotalNights      int          `json:"totalNights"`
	TotalCost        int64        `json:"totalCost"`
	Contact          HotelContact `json:"contact"`
}

// Activity is a scheduled slot entry derived from a Place plus cost
// estimation. Recomputed on every request, never persisted.
type Activity struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    PlaceCategory `json:"type"`
	Time        string        `json:"time"`
	Duration    string        `json:"duration"`
	Cost        int64         `json:"cost"`
	CostUSD     float64       `json:"costUSD,omitempty"`
	Rating      float64       `json:"rating"`
	Description string        `json:"description"`
	Address     string        `json:"address"`
	Tips        string        `json:"tips,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
}

// DaySlots holds the ordered activities for each part of a day.
type DaySlots struct {
	Morning   []Activity `json:"morning"`
	Afternoon []Activity `json:"afternoon"`
	Evening   []Activity `json:"evening"`
}

// Day is one day of the plan. Day numbers run 1..totalDays with no gaps.
type Day struct {
	Day        int      `json:"day"`
	Date       string   `json:"date"`
	TotalCost  int64    `json:"totalCost"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	Activities DaySlots `json:"activities"`
	Hotel      *Hotel   `json:"hotel,omitempty"`
}

type EmergencyContacts struct {
	Police  string `json:"police"`
	Medical string `json:"medical"`
	Embassy string `json:"embassy,omitempty"`
}

// Itinerary is the root aggregate returned to the caller. It is owned
// exclusively by the request that produced it; nothing is shared across
// concurrent generations.
type Itinerary struct {
	Destination        string            `json:"destination"`
	DestinationCountry string            `json:"destinationCountry"`
	TotalDays          int               `json:"totalDays"`
	TotalBudget        int64             `json:"totalBudget"`
	TotalBudgetUSD     float64           `json:"totalBudgetUSD,omitempty"`
	Difficulty         Pace              `json:"difficulty"`
	Currency           string            `json:"currency"`
	ExchangeRate       float64           `json:"exchangeRate,omitempty"`
	Days               []Day             `json:"days"`
	Hotels             []Hotel           `json:"hotels"`
	TotalHotelCost     int64             `json:"totalHotelCost"`
	TotalActivityCost  int64             `json:"totalActivityCost"`
	Tips               []string          `json:"tips"`
	AIInsights         string            `json:"aiInsights,omitempty"`
	BestTimeToVisit    string            `json:"bestTimeToVisit"`
	WeatherInfo        string            `json:"weatherInfo"`
	LocalCurrency      string            `json:"localCurrency"`
	EmergencyContacts  EmergencyContacts `json:"emergencyContacts"`
	PlaceSource        PlaceSource       `json:"placeSource,omitempty"`
}
