package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderai/wanderai-backend/types"
)

func TestAllocateSplitsBudgetAcrossDays(t *testing.T) {
	allocator := NewBudgetAllocator(DefaultCostTables())

	alloc := allocator.Allocate(83250, 3, types.PaceMedium)
	assert.Equal(t, int64(27750), alloc.PerDay)
	assert.InDelta(t, 0.85, alloc.ActivityFraction, 0.001)
}

func TestAllocatePaceFractions(t *testing.T) {
	allocator := NewBudgetAllocator(DefaultCostTables())

	testCases := []struct {
		pace     types.Pace
		expected float64
	}{
		{pace: types.PaceEasy, expected: 0.70},
		{pace: types.PaceMedium, expected: 0.85},
		{pace: types.PaceHard, expected: 1.00},
		{pace: types.Pace("bogus"), expected: 0.85},
	}
	for _, tc := range testCases {
		alloc := allocator.Allocate(10000, 2, tc.pace)
		assert.InDelta(t, tc.expected, alloc.ActivityFraction, 0.001, "pace %s", tc.pace)
	}
}

func TestDailyActivityEnvelopeClampsAtZero(t *testing.T) {
	allocator := NewBudgetAllocator(DefaultCostTables())

	// Hotel nightly rate exceeds the daily budget; the envelope must not go
	// negative.
	alloc := allocator.Allocate(8325, 14, types.PaceEasy)
	envelope := allocator.DailyActivityEnvelope(alloc, 2500)
	assert.Equal(t, int64(0), envelope)
}

func TestDailyActivityEnvelope(t *testing.T) {
	allocator := NewBudgetAllocator(DefaultCostTables())

	alloc := allocator.Allocate(30000, 3, types.PaceHard)
	// perDay 10000, minus nightly 2500, full fraction.
	assert.Equal(t, int64(7500), allocator.DailyActivityEnvelope(alloc, 2500))
}

func TestEstimateCostClampsPriceLevel(t *testing.T) {
	allocator := NewBudgetAllocator(DefaultCostTables())

	assert.Equal(t, int64(0), allocator.EstimateCost(types.PlaceAttraction, -3))
	assert.Equal(t, int64(1000), allocator.EstimateCost(types.PlaceAttraction, 9))
	assert.Equal(t, int64(200), allocator.EstimateCost(types.PlaceAttraction, 2))
	assert.Equal(t, int64(800), allocator.EstimateCost(types.PlaceDining, 2))
	assert.Equal(t, int64(3000), allocator.EstimateCost(types.PlaceDining, 9))
	assert.Equal(t, int64(100), allocator.EstimateCost(types.PlaceActivity, 1))
}
