package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/pkg/googlemaps"
	"github.com/wanderai/wanderai-backend/types"
)

// Live-tier search parameters.
const (
	attractionRadiusMeters = 10000
	diningRadiusMeters     = 5000
	minLiveRating          = 4.0
	maxLiveAttractions     = 8
	maxLiveRestaurants     = 4
)

// PlaceProvider resolves a destination to a set of candidate places. The
// returned slice is always non-empty.
type PlaceProvider interface {
	GetPlaces(ctx context.Context, city string) (*PlaceResolution, error)
}

// PlaceResolution is the outcome of a tiered place lookup.
type PlaceResolution struct {
	Places  []types.Place
	Source  types.PlaceSource
	Country string
}

// TieredPlaceProvider resolves places through three tiers, first non-empty
// wins: the live maps API, the curated landmark table, and a generic
// synthesizer that always succeeds. A missing maps client or a live failure
// degrades silently to the next tier.
type TieredPlaceProvider struct {
	maps    googlemaps.ClientInterface
	curated *CuratedDataset
	cache   *PlaceCache
}

// NewTieredPlaceProvider creates the provider. maps may be nil (live tier
// disabled) and cache may be nil (no caching).
func NewTieredPlaceProvider(maps googlemaps.ClientInterface, curated *CuratedDataset, cache *PlaceCache) *TieredPlaceProvider {
	return &TieredPlaceProvider{maps: maps, curated: curated, cache: cache}
}

// GetPlaces runs the tier chain. It never returns an empty place set.
func (p *TieredPlaceProvider) GetPlaces(ctx context.Context, city string) (*PlaceResolution, error) {
	log := logger.GetLogger()

	if places, country, ok := p.cache.Get(ctx, city); ok {
		if country == "" {
			country = p.countryFor(city)
		}
		return &PlaceResolution{Places: places, Source: types.PlaceSourceLive, Country: country}, nil
	}

	if p.maps != nil {
		places, country, err := p.fetchLive(ctx, city)
		if err != nil {
			log.Warnw("Live place lookup failed, falling back to curated data", "city", city, "error", err)
		} else if len(places) > 0 {
			p.cache.Set(ctx, city, places, country)
			if country == "" {
				country = p.countryFor(city)
			}
			return &PlaceResolution{Places: places, Source: types.PlaceSourceLive, Country: country}, nil
		}
	}

	if curated := p.curated.Lookup(city); len(curated) > 0 {
		log.Infow("Using curated place data", "city", city, "count", len(curated))
		return &PlaceResolution{Places: curated, Source: types.PlaceSourceCurated, Country: p.countryFor(city)}, nil
	}

	log.Infow("Using generic place data", "city", city)
	return &PlaceResolution{Places: genericPlaces(city), Source: types.PlaceSourceGeneric, Country: p.countryFor(city)}, nil
}

func (p *TieredPlaceProvider) countryFor(city string) string {
	return p.curated.CountryFor(city)
}

// fetchLive geocodes the destination and runs nearby searches for attractions
// and restaurants, filtered by rating and capped.
func (p *TieredPlaceProvider) fetchLive(ctx context.Context, city string) ([]types.Place, string, error) {
	geo, err := p.maps.Geocode(ctx, city)
	if err != nil {
		return nil, "", fmt.Errorf("geocode failed: %w", err)
	}

	attractions, err := p.maps.NearbySearch(ctx, geo.Lat, geo.Lng, attractionRadiusMeters, "tourist_attraction")
	if err != nil {
		return nil, "", fmt.Errorf("attraction search failed: %w", err)
	}
	restaurants, err := p.maps.NearbySearch(ctx, geo.Lat, geo.Lng, diningRadiusMeters, "restaurant")
	if err != nil {
		return nil, "", fmt.Errorf("restaurant search failed: %w", err)
	}

	places := make([]types.Place, 0, maxLiveAttractions+maxLiveRestaurants)
	places = append(places, convertResults(attractions, types.PlaceAttraction, maxLiveAttractions)...)
	places = append(places, convertResults(restaurants, types.PlaceDining, maxLiveRestaurants)...)

	return places, geo.Country, nil
}

// convertResults filters raw maps results by rating and converts up to limit
// of them into domain places.
func convertResults(results []googlemaps.PlaceResult, category types.PlaceCategory, limit int) []types.Place {
	places := make([]types.Place, 0, limit)
	for _, r := range results {
		if r.Rating < minLiveRating {
			continue
		}
		address := r.FormattedAddress
		if address == "" {
			address = r.Vicinity
		}
		places = append(places, types.Place{
			ID:         r.PlaceID,
			Name:       r.Name,
			Category:   category,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Address:    address,
			Coordinates: &types.Coordinates{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
			Website: r.Website,
			Phone:   r.Phone,
		})
		if len(places) == limit {
			break
		}
	}
	return places
}

// genericPlaces synthesizes a minimal usable place set for a destination with
// no live or curated coverage. Always at least one attraction and one
// dining option.
func genericPlaces(city string) []types.Place {
	city = strings.TrimSpace(city)
	title := titleCase(city)
	slug := strings.ReplaceAll(strings.ToLower(city), " ", "_")

	return []types.Place{
		{
			ID:          slug + "_generic_1",
			Name:        title + " Heritage Museum",
			Category:    types.PlaceAttraction,
			Rating:      4.2,
			PriceLevel:  2,
			Address:     "City Center, " + title,
			Description: "Explore the rich history and culture of " + title,
		},
		{
			ID:          slug + "_generic_2",
			Name:        title + " Central Market",
			Category:    types.PlaceAttraction,
			Rating:      4.0,
			PriceLevel:  1,
			Address:     "Market District, " + title,
			Description: "Bustling local market with traditional goods and street food",
		},
		{
			ID:          slug + "_generic_3",
			Name:        "Local Restaurant " + title,
			Category:    types.PlaceDining,
			Rating:      4.1,
			PriceLevel:  2,
			Address:     "Main Street, " + title,
			Description: "Popular restaurant serving authentic local cuisine",
		},
	}
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
