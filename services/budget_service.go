package services

import (
	"github.com/wanderai/wanderai-backend/types"
)

// Activity-spend fraction of the non-lodging daily budget per pace. A harder
// pace packs more activity spend into each day.
var paceActivityFraction = map[types.Pace]float64{
	types.PaceEasy:   0.70,
	types.PaceMedium: 0.85,
	types.PaceHard:   1.00,
}

// CostTable holds per-price-level cost estimates (canonical units) indexed by
// price level 0-4. The values are deliberately configurable parameters, not
// derived constants.
type CostTable [5]int64

// CostTables groups the per-category activity cost estimates.
type CostTables struct {
	Attraction CostTable
	Dining     CostTable
	Activity   CostTable
}

// DefaultCostTables returns the shipped cost estimates.
func DefaultCostTables() CostTables {
	return CostTables{
		Attraction: CostTable{0, 50, 200, 500, 1000},
		Dining:     CostTable{0, 300, 800, 1500, 3000},
		Activity:   CostTable{0, 100, 400, 800, 1500},
	}
}

// HotelTemplate describes one lodging tier available to the assembler.
type HotelTemplate struct {
	Tier             types.HotelTier
	Name             string
	PricePerNight    int64
	PricePerNightUSD float64
	Rating           float64
	Amenities        []string
}

// DefaultHotelTemplates returns the shipped lodging tiers, cheapest first.
func DefaultHotelTemplates() []HotelTemplate {
	return []HotelTemplate{
		{
			Tier:             types.HotelTierBudget,
			Name:             "Traveler's Lodge",
			PricePerNight:    2500,
			PricePerNightUSD: 30,
			Rating:           3.8,
			Amenities:        []string{"Free WiFi", "24/7 Reception", "Basic Breakfast"},
		},
		{
			Tier:             types.HotelTierMidrange,
			Name:             "Grand Central Hotel",
			PricePerNight:    6500,
			PricePerNightUSD: 80,
			Rating:           4.3,
			Amenities:        []string{"Free WiFi", "Restaurant", "Room Service", "Gym", "Pool"},
		},
		{
			Tier:             types.HotelTierLuxury,
			Name:             "Royal Palace Suites",
			PricePerNight:    15000,
			PricePerNightUSD: 200,
			Rating:           4.8,
			Amenities:        []string{"Free WiFi", "Multiple Restaurants", "Spa", "Concierge", "Valet", "Pool", "Gym"},
		},
	}
}

// Allocation is the per-day spend envelope for a trip.
type Allocation struct {
	// PerDay is the total daily budget in canonical units.
	PerDay int64
	// ActivityFraction is applied to the non-lodging share of PerDay.
	ActivityFraction float64
}

// BudgetAllocator splits a trip budget across days and categories. Lodging is
// budgeted first; activities get a pace-dependent fraction of what remains.
type BudgetAllocator struct {
	costs CostTables
}

func NewBudgetAllocator(costs CostTables) *BudgetAllocator {
	return &BudgetAllocator{costs: costs}
}

// Allocate computes the daily spend envelope. It never fails: a budget too
// small to cover lodging just drives the activity envelope toward zero.
func (a *BudgetAllocator) Allocate(totalBudget int64, totalDays int, pace types.Pace) Allocation {
	fraction, ok := paceActivityFraction[pace]
	if !ok {
		fraction = paceActivityFraction[types.PaceMedium]
	}
	return Allocation{
		PerDay:           totalBudget / int64(totalDays),
		ActivityFraction: fraction,
	}
}

// DailyActivityEnvelope is the amount available for activities and dining on
// one day after the hotel nightly rate is set aside. Clamped at zero.
func (a *BudgetAllocator) DailyActivityEnvelope(alloc Allocation, hotelNightly int64) int64 {
	remaining := alloc.PerDay - hotelNightly
	if remaining < 0 {
		remaining = 0
	}
	return int64(float64(remaining) * alloc.ActivityFraction)
}

// EstimateCost looks up the cost estimate for a place category at a price
// level. Price levels outside 0-4 are clamped. Lodging never goes through
// this table; hotel cost always comes from the Hotel entity.
func (a *BudgetAllocator) EstimateCost(category types.PlaceCategory, priceLevel int) int64 {
	var table CostTable
	switch category {
	case types.PlaceDining:
		table = a.costs.Dining
	case types.PlaceActivity:
		table = a.costs.Activity
	default:
		table = a.costs.Attraction
	}

	if priceLevel < 0 {
		priceLevel = 0
	}
	if priceLevel > len(table)-1 {
		priceLevel = len(table) - 1
	}
	return table[priceLevel]
}
