// Package googlemaps is a thin client for the Google Maps geocoding and
// nearby-search endpoints used by the live place data tier.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wanderai/wanderai-backend/logger"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// ClientInterface defines the maps operations the place provider depends on.
type ClientInterface interface {
	Geocode(ctx context.Context, address string) (*GeoResult, error)
	NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, placeType string) ([]PlaceResult, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// GeoResult is the resolved location for a destination name.
type GeoResult struct {
	Lat     float64
	Lng     float64
	Country string
}

// PlaceResult mirrors the subset of the Places API response the pipeline uses.
type PlaceResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	PriceLevel       int      `json:"price_level"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Website string `json:"website"`
	Phone   string `json:"formatted_phone_number"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

type nearbySearchResponse struct {
	Status  string        `json:"status"`
	Results []PlaceResult `json:"results"`
}

// NewClient creates a maps client. baseURL may be empty to use the public API.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode resolves a destination name to coordinates and a country name.
func (c *Client) Geocode(ctx context.Context, address string) (*GeoResult, error) {
	log := logger.GetLogger()

	params := url.Values{}
	params.Add("address", address)
	params.Add("key", c.apiKey)

	var resp geocodeResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/geocode/json?%s", c.baseURL, params.Encode()), &resp); err != nil {
		return nil, err
	}

	if err := checkStatus(resp.Status); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("no geocode results for %q", address)
	}

	result := resp.Results[0]
	geo := &GeoResult{
		Lat: result.Geometry.Location.Lat,
		Lng: result.Geometry.Location.Lng,
	}
	for _, component := range result.AddressComponents {
		for _, t := range component.Types {
			if t == "country" {
				geo.Country = component.LongName
			}
		}
	}

	log.Debugw("Geocoded destination", "address", address, "lat", geo.Lat, "lng", geo.Lng, "country", geo.Country)
	return geo, nil
}

// NearbySearch returns places of the given type around a location.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, placeType string) ([]PlaceResult, error) {
	params := url.Values{}
	params.Add("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Add("radius", fmt.Sprintf("%d", radiusMeters))
	params.Add("type", placeType)
	params.Add("key", c.apiKey)

	var resp nearbySearchResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/place/nearbysearch/json?%s", c.baseURL, params.Encode()), &resp); err != nil {
		return nil, err
	}

	if err := checkStatus(resp.Status); err != nil {
		return nil, err
	}

	return resp.Results, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// checkStatus maps the Google status field to an error. ZERO_RESULTS is not
// an error; it just yields an empty result set.
func checkStatus(status string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "REQUEST_DENIED":
		return fmt.Errorf("maps API access denied, check key permissions and enabled APIs")
	case "OVER_QUERY_LIMIT":
		return fmt.Errorf("maps API quota exceeded")
	default:
		return fmt.Errorf("maps API error: %s", status)
	}
}
