package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCityInfoCuratedDestination(t *testing.T) {
	svc := NewCityInfoService(DefaultCuratedDataset())

	info := svc.Get("mathura")
	assert.Equal(t, "Mathura", info.Name)
	assert.Equal(t, "India", info.Country)
	assert.Equal(t, "INR", info.Currency)
	assert.Equal(t, "Asia/Kolkata", info.TimeZone)
	assert.Contains(t, info.PopularAttractions, "Krishna Janmabhoomi Temple")
	assert.NotContains(t, info.PopularAttractions, "Brijwasi Mithai Wala", "dining entries are not attractions")
}

func TestCityInfoKnownCountryWithoutLandmarks(t *testing.T) {
	svc := NewCityInfoService(DefaultCuratedDataset())

	info := svc.Get("Paris")
	assert.Equal(t, "France", info.Country)
	// No curated landmarks for Paris; the generic list stands in.
	assert.Contains(t, info.PopularAttractions, "Historic City Center")
}

func TestCityInfoUnknownDestination(t *testing.T) {
	svc := NewCityInfoService(DefaultCuratedDataset())

	info := svc.Get("atlantis")
	assert.Equal(t, "Atlantis", info.Name)
	assert.Equal(t, "Unknown", info.Country)
	assert.Equal(t, "Year-round", info.BestTimeToVisit)
	assert.NotEmpty(t, info.PopularAttractions)
}
