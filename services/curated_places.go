package services

import (
	"strings"

	"github.com/wanderai/wanderai-backend/types"
)

// CuratedDataset is a hand-authored landmark table keyed by lower-cased
// destination name. It is a data asset, injectable so deployments can ship
// their own coverage.
type CuratedDataset struct {
	places    map[string][]types.Place
	countries map[string]string
}

// NewCuratedDataset wraps a landmark table and a city-to-country map.
func NewCuratedDataset(places map[string][]types.Place, countries map[string]string) *CuratedDataset {
	return &CuratedDataset{places: places, countries: countries}
}

// Lookup returns the curated places for a destination, or nil when the
// destination is not a known key.
func (d *CuratedDataset) Lookup(city string) []types.Place {
	return d.places[strings.ToLower(strings.TrimSpace(city))]
}

// CountryFor resolves the country for a destination name, or "" when unknown.
func (d *CuratedDataset) CountryFor(city string) string {
	return d.countries[strings.ToLower(strings.TrimSpace(city))]
}

// DefaultCuratedDataset returns the shipped landmark coverage.
func DefaultCuratedDataset() *CuratedDataset {
	return NewCuratedDataset(curatedLandmarks, cityCountries)
}

var cityCountries = map[string]string{
	"paris":     "France",
	"london":    "United Kingdom",
	"tokyo":     "Japan",
	"mumbai":    "India",
	"delhi":     "India",
	"bangalore": "India",
	"mathura":   "India",
	"agra":      "India",
	"jaipur":    "India",
	"new york":  "United States",
	"bangkok":   "Thailand",
	"singapore": "Singapore",
	"dubai":     "United Arab Emirates",
}

var curatedLandmarks = map[string][]types.Place{
	"mathura": {
		{
			ID:          "mathura_1",
			Name:        "Krishna Janmabhoomi Temple",
			Category:    types.PlaceAttraction,
			Rating:      4.8,
			PriceLevel:  1,
			Address:     "Krishna Janmasthan, Mathura, Uttar Pradesh",
			Description: "The sacred birthplace of Lord Krishna, one of Hinduism's most revered pilgrimage sites",
			Coordinates: &types.Coordinates{Lat: 27.5036, Lng: 77.6739},
		},
		{
			ID:          "mathura_2",
			Name:        "Dwarkadhish Temple",
			Category:    types.PlaceAttraction,
			Rating:      4.7,
			PriceLevel:  1,
			Address:     "Dwarkadhish Mandir Road, Mathura",
			Description: "Beautiful temple dedicated to Lord Krishna with intricate Rajasthani architecture",
			Coordinates: &types.Coordinates{Lat: 27.5044, Lng: 77.6731},
		},
		{
			ID:          "mathura_3",
			Name:        "Vishram Ghat",
			Category:    types.PlaceAttraction,
			Rating:      4.6,
			PriceLevel:  1,
			Address:     "Yamuna River, Mathura",
			Description: "Sacred bathing ghat where Lord Krishna rested after killing Kansa",
			Coordinates: &types.Coordinates{Lat: 27.5084, Lng: 77.6792},
		},
		{
			ID:          "mathura_4",
			Name:        "Govind Dev Temple",
			Category:    types.PlaceAttraction,
			Rating:      4.5,
			PriceLevel:  1,
			Address:     "Vrindavan, Mathura",
			Description: "Ancient temple with stunning architecture dedicated to Krishna",
			Coordinates: &types.Coordinates{Lat: 27.5804, Lng: 77.7006},
		},
		{
			ID:          "mathura_5",
			Name:        "Kusum Sarovar",
			Category:    types.PlaceAttraction,
			Rating:      4.4,
			PriceLevel:  1,
			Address:     "Govardhan, Mathura",
			Description: "Historic sandstone bathing tank associated with Radha-Krishna legends",
			Coordinates: &types.Coordinates{Lat: 27.4668, Lng: 77.7463},
		},
		{
			ID:          "mathura_6",
			Name:        "Brijwasi Mithai Wala",
			Category:    types.PlaceDining,
			Rating:      4.5,
			PriceLevel:  2,
			Address:     "Holi Gate, Mathura",
			Description: "Famous for authentic Mathura pedas and traditional sweets",
			Coordinates: &types.Coordinates{Lat: 27.4996, Lng: 77.6703},
		},
		{
			ID:          "mathura_7",
			Name:        "Radha Raman Temple",
			Category:    types.PlaceAttraction,
			Rating:      4.6,
			PriceLevel:  1,
			Address:     "Vrindavan, Mathura",
			Description: "Ancient temple known for its beautiful deity and spiritual atmosphere",
			Coordinates: &types.Coordinates{Lat: 27.5781, Lng: 77.7027},
		},
	},
	"delhi": {
		{
			ID:          "delhi_1",
			Name:        "Red Fort (Lal Qila)",
			Category:    types.PlaceAttraction,
			Rating:      4.6,
			PriceLevel:  2,
			Address:     "Netaji Subhash Marg, Chandni Chowk, New Delhi",
			Description: "Historic Mughal fortress and UNESCO World Heritage Site",
			Coordinates: &types.Coordinates{Lat: 28.6562, Lng: 77.2410},
		},
		{
			ID:          "delhi_2",
			Name:        "India Gate",
			Category:    types.PlaceAttraction,
			Rating:      4.5,
			PriceLevel:  1,
			Address:     "Rajpath, India Gate, New Delhi",
			Description: "Iconic war memorial and symbol of Delhi",
			Coordinates: &types.Coordinates{Lat: 28.6129, Lng: 77.2295},
		},
		{
			ID:          "delhi_3",
			Name:        "Qutub Minar",
			Category:    types.PlaceAttraction,
			Rating:      4.7,
			PriceLevel:  2,
			Address:     "Mehrauli, New Delhi",
			Description: "Tallest brick minaret in the world, UNESCO World Heritage Site",
			Coordinates: &types.Coordinates{Lat: 28.5245, Lng: 77.1855},
		},
		{
			ID:          "delhi_4",
			Name:        "Lotus Temple",
			Category:    types.PlaceAttraction,
			Rating:      4.6,
			PriceLevel:  1,
			Address:     "Lotus Temple Road, Bahapur, New Delhi",
			Description: "Stunning Bahai temple shaped like a lotus flower",
			Coordinates: &types.Coordinates{Lat: 28.5535, Lng: 77.2588},
		},
		{
			ID:          "delhi_5",
			Name:        "Humayun's Tomb",
			Category:    types.PlaceAttraction,
			Rating:      4.5,
			PriceLevel:  2,
			Address:     "Nizamuddin, New Delhi",
			Description: "Beautiful Mughal architecture and UNESCO World Heritage Site",
			Coordinates: &types.Coordinates{Lat: 28.5933, Lng: 77.2507},
		},
	},
	"agra": {
		{
			ID:          "agra_1",
			Name:        "Taj Mahal",
			Category:    types.PlaceAttraction,
			Rating:      4.9,
			PriceLevel:  3,
			Address:     "Dharmapuri, Forest Colony, Tajganj, Agra",
			Description: "World-famous white marble mausoleum and UNESCO World Heritage Site",
			Coordinates: &types.Coordinates{Lat: 27.1751, Lng: 78.0421},
		},
		{
			ID:          "agra_2",
			Name:        "Agra Fort",
			Category:    types.PlaceAttraction,
			Rating:      4.6,
			PriceLevel:  2,
			Address:     "Agra Fort, Rakabganj, Agra",
			Description: "Historic Mughal fortress with stunning architecture",
			Coordinates: &types.Coordinates{Lat: 27.1795, Lng: 78.0211},
		},
		{
			ID:          "agra_3",
			Name:        "Fatehpur Sikri",
			Category:    types.PlaceAttraction,
			Rating:      4.5,
			PriceLevel:  2,
			Address:     "Fatehpur Sikri, Agra",
			Description: "Abandoned Mughal city with incredible architectural heritage",
			Coordinates: &types.Coordinates{Lat: 27.0945, Lng: 77.6619},
		},
	},
	"jaipur": {
		{
			ID:          "jaipur_1",
			Name:        "Hawa Mahal",
			Category:    types.PlaceAttraction,
			Rating:      4.5,
			PriceLevel:  2,
			Address:     "Hawa Mahal Rd, Badi Choupad, Jaipur",
			Description: "Iconic palace with intricate latticed windows",
			Coordinates: &types.Coordinates{Lat: 26.9239, Lng: 75.8267},
		},
		{
			ID:          "jaipur_2",
			Name:        "Amber Palace",
			Category:    types.PlaceAttraction,
			Rating:      4.7,
			PriceLevel:  3,
			Address:     "Devisinghpura, Amer, Jaipur",
			Description: "Majestic hilltop palace with stunning architecture",
			Coordinates: &types.Coordinates{Lat: 26.9855, Lng: 75.8513},
		},
		{
			ID:          "jaipur_3",
			Name:        "City Palace",
			Category:    types.PlaceAttraction,
			Rating:      4.6,
			PriceLevel:  3,
			Address:     "Tulsi Marg, Gangori Bazaar, Jaipur",
			Description: "Royal palace complex showcasing Rajasthani culture",
			Coordinates: &types.Coordinates{Lat: 26.9255, Lng: 75.8235},
		},
	},
}
