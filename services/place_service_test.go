package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderai/wanderai-backend/pkg/googlemaps"
	"github.com/wanderai/wanderai-backend/types"
)

type fakeMapsClient struct {
	geocodeErr  error
	searchErr   error
	attractions []googlemaps.PlaceResult
	restaurants []googlemaps.PlaceResult
	calls       int
}

func (f *fakeMapsClient) Geocode(_ context.Context, _ string) (*googlemaps.GeoResult, error) {
	f.calls++
	if f.geocodeErr != nil {
		return nil, f.geocodeErr
	}
	return &googlemaps.GeoResult{Lat: 27.5, Lng: 77.67, Country: "India"}, nil
}

func (f *fakeMapsClient) NearbySearch(_ context.Context, _, _ float64, _ int, placeType string) ([]googlemaps.PlaceResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if placeType == "restaurant" {
		return f.restaurants, nil
	}
	return f.attractions, nil
}

func mapsResult(name string, rating float64) googlemaps.PlaceResult {
	return googlemaps.PlaceResult{PlaceID: name, Name: name, Rating: rating, PriceLevel: 2}
}

func TestGetPlacesLiveTier(t *testing.T) {
	maps := &fakeMapsClient{
		attractions: []googlemaps.PlaceResult{
			mapsResult("Great Fort", 4.6),
			mapsResult("Low Rated Ruin", 3.2),
			mapsResult("Old Temple", 4.1),
		},
		restaurants: []googlemaps.PlaceResult{
			mapsResult("Spice House", 4.4),
		},
	}
	provider := NewTieredPlaceProvider(maps, DefaultCuratedDataset(), nil)

	res, err := provider.GetPlaces(context.Background(), "Testville")
	require.NoError(t, err)

	assert.Equal(t, types.PlaceSourceLive, res.Source)
	assert.Equal(t, "India", res.Country)

	names := make([]string, 0, len(res.Places))
	for _, p := range res.Places {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Great Fort")
	assert.Contains(t, names, "Spice House")
	assert.NotContains(t, names, "Low Rated Ruin", "results below the rating floor must be dropped")
}

func TestGetPlacesLiveTierCaps(t *testing.T) {
	maps := &fakeMapsClient{}
	for i := 0; i < 20; i++ {
		maps.attractions = append(maps.attractions, mapsResult(fmt.Sprintf("Attraction %d", i), 4.5))
		maps.restaurants = append(maps.restaurants, mapsResult(fmt.Sprintf("Restaurant %d", i), 4.5))
	}
	provider := NewTieredPlaceProvider(maps, DefaultCuratedDataset(), nil)

	res, err := provider.GetPlaces(context.Background(), "Big City")
	require.NoError(t, err)

	var attractions, dining int
	for _, p := range res.Places {
		switch p.Category {
		case types.PlaceDining:
			dining++
		default:
			attractions++
		}
	}
	assert.Equal(t, maxLiveAttractions, attractions)
	assert.Equal(t, maxLiveRestaurants, dining)
}

func TestGetPlacesFallsBackToCurated(t *testing.T) {
	maps := &fakeMapsClient{geocodeErr: fmt.Errorf("quota exceeded")}
	provider := NewTieredPlaceProvider(maps, DefaultCuratedDataset(), nil)

	res, err := provider.GetPlaces(context.Background(), "Mathura")
	require.NoError(t, err)

	assert.Equal(t, types.PlaceSourceCurated, res.Source)
	assert.Equal(t, "India", res.Country)
	require.NotEmpty(t, res.Places)
	assert.Equal(t, "Krishna Janmabhoomi Temple", res.Places[0].Name)
}

func TestGetPlacesCuratedWithoutMapsClient(t *testing.T) {
	provider := NewTieredPlaceProvider(nil, DefaultCuratedDataset(), nil)

	res, err := provider.GetPlaces(context.Background(), "delhi")
	require.NoError(t, err)

	assert.Equal(t, types.PlaceSourceCurated, res.Source)
	assert.Len(t, res.Places, 5)
}

func TestGetPlacesGenericNeverEmpty(t *testing.T) {
	provider := NewTieredPlaceProvider(nil, DefaultCuratedDataset(), nil)

	res, err := provider.GetPlaces(context.Background(), "nowhere springs")
	require.NoError(t, err)

	assert.Equal(t, types.PlaceSourceGeneric, res.Source)
	require.NotEmpty(t, res.Places)

	var hasAttraction, hasDining bool
	for _, p := range res.Places {
		switch p.Category {
		case types.PlaceAttraction:
			hasAttraction = true
		case types.PlaceDining:
			hasDining = true
		}
	}
	assert.True(t, hasAttraction, "generic tier must synthesize at least one attraction")
	assert.True(t, hasDining, "generic tier must synthesize at least one dining option")
	assert.Equal(t, "Nowhere Springs Heritage Museum", res.Places[0].Name)
}

func TestGetPlacesLiveEmptyFallsThrough(t *testing.T) {
	// A live tier that succeeds with zero usable results is treated the same
	// as a failure.
	maps := &fakeMapsClient{
		attractions: []googlemaps.PlaceResult{mapsResult("Meh Plaza", 2.0)},
	}
	provider := NewTieredPlaceProvider(maps, DefaultCuratedDataset(), nil)

	res, err := provider.GetPlaces(context.Background(), "agra")
	require.NoError(t, err)
	assert.Equal(t, types.PlaceSourceCurated, res.Source)
}
