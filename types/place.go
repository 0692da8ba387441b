package types

// PlaceCategory classifies a candidate place for slotting into an itinerary.
type PlaceCategory string

const (
	PlaceAttraction PlaceCategory = "attraction"
	PlaceDining     PlaceCategory = "dining"
	PlaceActivity   PlaceCategory = "activity"
	PlaceLodging    PlaceCategory = "lodging"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a candidate attraction, restaurant or hotel for a destination.
// Immutable once fetched; it lives for a single generation request.
type Place struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Category    PlaceCategory `json:"category"`
	Rating      float64       `json:"rating"`
	PriceLevel  int           `json:"priceLevel"`
	Address     string        `json:"address"`
	Description string        `json:"description"`
	Coordinates *Coordinates  `json:"coordinates,omitempty"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Website     string        `json:"website,omitempty"`
	Phone       string        `json:"phone,omitempty"`
}

// PlaceSource records which provider tier supplied the place data for a
// generation request.
type PlaceSource string

const (
	PlaceSourceLive    PlaceSource = "live"
	PlaceSourceCurated PlaceSource = "curated"
	PlaceSourceGeneric PlaceSource = "generic"
)
