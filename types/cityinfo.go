package types

type CostRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type AverageCosts struct {
	Budget   CostRange `json:"budget"`
	MidRange CostRange `json:"midRange"`
	Luxury   CostRange `json:"luxury"`
}

// CityInfo is the static destination summary served by the city endpoint.
// It is informational only and not part of the generation pipeline.
type CityInfo struct {
	Name               string       `json:"name"`
	Country            string       `json:"country"`
	Currency           string       `json:"currency"`
	TimeZone           string       `json:"timeZone"`
	PopularAttractions []string     `json:"popularAttractions"`
	AverageCosts       AverageCosts `json:"averageCosts"`
	BestTimeToVisit    string       `json:"bestTimeToVisit"`
	SafetyRating       float64      `json:"safetyRating"`
}
