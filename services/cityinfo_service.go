package services

import (
	"github.com/wanderai/wanderai-backend/types"
)

// CityInfoService serves the static destination summary endpoint. Curated
// destinations get their real attraction names; everything else gets a
// generic profile.
type CityInfoService struct {
	curated *CuratedDataset
}

func NewCityInfoService(curated *CuratedDataset) *CityInfoService {
	return &CityInfoService{curated: curated}
}

// Get returns the destination summary. Never fails; unknown destinations get
// a generic profile.
func (s *CityInfoService) Get(city string) *types.CityInfo {
	info := &types.CityInfo{
		Name:     titleCase(city),
		Country:  "Unknown",
		Currency: "USD",
		TimeZone: "UTC",
		PopularAttractions: []string{
			"Historic City Center",
			"Main Cathedral",
			"Art Museum",
			"Local Market",
		},
		AverageCosts: types.AverageCosts{
			Budget:   types.CostRange{Min: 50, Max: 100},
			MidRange: types.CostRange{Min: 100, Max: 200},
			Luxury:   types.CostRange{Min: 200, Max: 500},
		},
		BestTimeToVisit: "Year-round",
		SafetyRating:    4.2,
	}

	if country := s.curated.CountryFor(city); country != "" {
		info.Country = country
		if country == "India" {
			info.Currency = "INR"
			info.TimeZone = "Asia/Kolkata"
			info.BestTimeToVisit = "October to March"
		}
	}
	if places := s.curated.Lookup(city); len(places) > 0 {
		names := make([]string, 0, len(places))
		for _, p := range places {
			if p.Category == types.PlaceAttraction {
				names = append(names, p.Name)
			}
		}
		if len(names) > 0 {
			info.PopularAttractions = names
		}
	}
	return info
}
