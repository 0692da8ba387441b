package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/logger"
	"github.com/wanderai/wanderai-backend/types"
)

const dateLayout = "January 2, 2006"

// Hotel tier thresholds in USD per day.
const (
	budgetTierMaxUSD   = 100
	midrangeTierMaxUSD = 250
)

// ItineraryService assembles complete trip plans. Each call owns its
// itinerary exclusively; nothing is shared across concurrent generations.
type ItineraryService struct {
	places    PlaceProvider
	narrative NarrativeProvider
	allocator *BudgetAllocator
	converter *CurrencyConverter
	hotels    []HotelTemplate
	now       func() time.Time
}

// NewItineraryService wires the generation pipeline. now is injectable for
// deterministic dates in tests; nil means time.Now.
func NewItineraryService(
	places PlaceProvider,
	narrative NarrativeProvider,
	allocator *BudgetAllocator,
	converter *CurrencyConverter,
	hotels []HotelTemplate,
	now func() time.Time,
) *ItineraryService {
	if now == nil {
		now = time.Now
	}
	return &ItineraryService{
		places:    places,
		narrative: narrative,
		allocator: allocator,
		converter: converter,
		hotels:    hotels,
		now:       now,
	}
}

// Generate runs the synthesis pipeline: validate, normalize currency, select
// a hotel tier, fetch place and narrative data concurrently, then assemble
// day-by-day. Provider failures degrade the result; they never fail the trip.
func (s *ItineraryService) Generate(ctx context.Context, req types.TripRequest) (*types.Itinerary, error) {
	log := logger.GetLogger()

	if err := validateTripRequest(&req); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}
	if !s.converter.Supports(currency) {
		return nil, errors.ValidationFailed("Unsupported currency", fmt.Sprintf("currency %q has no exchange rate", currency))
	}

	budget, err := s.converter.ToCanonical(req.Budget, currency)
	if err != nil {
		return nil, errors.ValidationFailed("Currency conversion failed", err.Error())
	}
	budgetUSD, err := s.converter.FromCanonical(budget, "USD")
	if err != nil {
		return nil, errors.InternalServerError("Currency conversion failed")
	}
	rate, _ := s.converter.Rate(currency)

	hotel := s.selectHotel(req.City, budgetUSD, req.Days)

	// Place and narrative lookups are independent; run them concurrently.
	type placeOutcome struct {
		res *PlaceResolution
		err error
	}
	placeCh := make(chan placeOutcome, 1)
	narrativeCh := make(chan string, 1)

	go func() {
		res, err := s.places.GetPlaces(ctx, req.City)
		placeCh <- placeOutcome{res: res, err: err}
	}()
	go func() {
		narrativeCh <- s.narrative.TravelInsights(ctx, req, budget)
	}()

	placeRes := <-placeCh
	insights := <-narrativeCh
	if placeRes.err != nil {
		return nil, errors.InternalServerError("Failed to resolve destination places")
	}

	alloc := s.allocator.Allocate(budget, req.Days, req.Difficulty)
	days := s.buildDays(req, placeRes.res.Places, hotel, alloc)

	var totalActivityCost int64
	for _, d := range days {
		totalActivityCost += d.TotalCost
	}

	itin := &types.Itinerary{
		Destination:        req.City,
		DestinationCountry: placeRes.res.Country,
		TotalDays:          req.Days,
		TotalBudget:        budget,
		TotalBudgetUSD:     budgetUSD,
		Difficulty:         req.Difficulty,
		Currency:           CanonicalCurrency,
		ExchangeRate:       rate,
		Days:               days,
		Hotels:             []types.Hotel{*hotel},
		TotalHotelCost:     hotel.TotalCost,
		TotalActivityCost:  totalActivityCost,
		Tips:               travelTips(req.City, req.Difficulty),
		AIInsights:         insights,
		PlaceSource:        placeRes.res.Source,
	}
	applyDestinationInfo(itin, placeRes.res.Country)

	log.Infow("Itinerary generated",
		"city", req.City,
		"days", req.Days,
		"budget", budget,
		"placeSource", placeRes.res.Source,
		"hotelTier", hotel.Tier,
		"aiInsights", insights != "",
	)
	return itin, nil
}

// validateTripRequest re-checks the request bounds so the service is safe to
// call from paths that bypass binding validation.
func validateTripRequest(req *types.TripRequest) error {
	if strings.TrimSpace(req.City) == "" {
		return errors.ValidationFailed("Invalid trip request", "city is required")
	}
	if req.Days < types.MinTripDays || req.Days > types.MaxTripDays {
		return errors.ValidationFailed("Invalid trip request",
			fmt.Sprintf("days must be between %d and %d", types.MinTripDays, types.MaxTripDays))
	}
	if req.Budget < types.MinTripBudget {
		return errors.ValidationFailed("Invalid trip request",
			fmt.Sprintf("budget must be at least %d", types.MinTripBudget))
	}
	if !req.Difficulty.IsValid() {
		return errors.ValidationFailed("Invalid trip request", "difficulty must be easy, medium or hard")
	}
	return nil
}

// selectHotel picks a lodging tier from the USD-per-day spend and builds the
// single hotel for the whole trip. Checkout is on the final day, so a trip of
// n days books n-1 nights.
func (s *ItineraryService) selectHotel(city string, budgetUSD float64, days int) *types.Hotel {
	perDayUSD := budgetUSD / float64(days)
	tier := types.HotelTierLuxury
	switch {
	case perDayUSD < budgetTierMaxUSD:
		tier = types.HotelTierBudget
	case perDayUSD < midrangeTierMaxUSD:
		tier = types.HotelTierMidrange
	}

	tpl := s.hotels[0]
	for _, h := range s.hotels {
		if h.Tier == tier {
			tpl = h
			break
		}
	}

	nights := days - 1
	start := s.now()
	name := fmt.Sprintf("%s %s", titleCase(city), tpl.Name)
	domain := strings.ReplaceAll(strings.ToLower(tpl.Name), " ", "")

	return &types.Hotel{
		ID:               "hotel_1",
		Name:             name,
		Tier:             tpl.Tier,
		PricePerNight:    tpl.PricePerNight,
		PricePerNightUSD: tpl.PricePerNightUSD,
		Rating:           tpl.Rating,
		Amenities:        tpl.Amenities,
		Description:      fmt.Sprintf("A comfortable %s hotel in the heart of %s, perfect for your stay.", tpl.Tier, city),
		Address:          fmt.Sprintf("%s City Center", titleCase(city)),
		CheckIn:          start.Format(dateLayout),
		CheckOut:         start.AddDate(0, 0, nights).Format(dateLayout),
		TotalNights:      nights,
		TotalCost:        tpl.PricePerNight * int64(nights),
		Contact: types.HotelContact{
			Phone:   "+91-XXX-XXX-XXXX",
			Email:   fmt.Sprintf("reservations@%s.com", domain),
			Website: fmt.Sprintf("www.%s.com", domain),
		},
	}
}

// buildDays assembles every day of the trip. Attractions rotate two per day
// with wraparound; dining rotates one per day. Slot costs are capped at what
// remains of the day's activity envelope, so a minimal budget degrades to
// near-free days instead of overspending.
func (s *ItineraryService) buildDays(req types.TripRequest, places []types.Place, hotel *types.Hotel, alloc Allocation) []types.Day {
	var attractions, dining []types.Place
	for _, p := range places {
		switch p.Category {
		case types.PlaceDining:
			dining = append(dining, p)
		default:
			attractions = append(attractions, p)
		}
	}
	if len(attractions) == 0 {
		attractions = places
	}
	if len(dining) == 0 {
		dining = places
	}

	start := s.now()
	days := make([]types.Day, 0, req.Days)
	for dayNum := 1; dayNum <= req.Days; dayNum++ {
		envelope := s.allocator.DailyActivityEnvelope(alloc, hotel.PricePerNight)
		remaining := envelope

		morning := attractions[(dayNum-1)*2%len(attractions)]
		afternoon := attractions[((dayNum-1)*2+1)%len(attractions)]
		meal := dining[(dayNum-1)%len(dining)]

		morningAct := s.slotActivity(fmt.Sprintf("landmark_m%d", dayNum), morning, "9:00 AM",
			pickDuration(req.Difficulty, "2 hours", "2.5 hours"), &remaining)
		if req.Difficulty == types.PaceHard {
			morningAct.Tips = "Visit early morning to avoid crowds and get the best photos"
		}
		afternoonAct := s.slotActivity(fmt.Sprintf("landmark_a1%d", dayNum), afternoon, "2:00 PM",
			pickDuration(req.Difficulty, "1.5 hours", "2 hours"), &remaining)
		diningAct := s.slotActivity(fmt.Sprintf("dining_a2%d", dayNum), meal, "6:00 PM", "1 hour", &remaining)

		eveningAct := types.Activity{
			ID:          fmt.Sprintf("evening_%d", dayNum),
			Name:        fmt.Sprintf("%s Evening Walk", titleCase(req.City)),
			Category:    types.PlaceActivity,
			Time:        "8:00 PM",
			Duration:    "1 hour",
			Cost:        0,
			Rating:      4.0,
			Description: fmt.Sprintf("Peaceful evening walk through %s's historic streets", req.City),
			Address:     fmt.Sprintf("%s Old City", titleCase(req.City)),
			Tips:        "Perfect time to witness local evening traditions and capture beautiful sunset photos",
		}

		day := types.Day{
			Day:        dayNum,
			Date:       start.AddDate(0, 0, dayNum-1).Format(dateLayout),
			TotalCost:  morningAct.Cost + afternoonAct.Cost + diningAct.Cost,
			Summary:    fmt.Sprintf("Day %d: Explore %s's authentic landmarks and culture", dayNum, req.City),
			Highlights: dayHighlights(dayNum),
			Activities: types.DaySlots{
				Morning:   []types.Activity{morningAct},
				Afternoon: []types.Activity{afternoonAct, diningAct},
				Evening:   []types.Activity{eveningAct},
			},
		}
		if dayNum < req.Days {
			day.Hotel = hotel
		}
		days = append(days, day)
	}
	return days
}

// slotActivity converts a place into a scheduled activity, charging the
// lesser of its estimated cost and what remains of the day's envelope.
func (s *ItineraryService) slotActivity(id string, place types.Place, at, duration string, remaining *int64) types.Activity {
	cost := s.allocator.EstimateCost(place.Category, place.PriceLevel)
	if cost > *remaining {
		cost = *remaining
	}
	*remaining -= cost

	costUSD, _ := s.converter.FromCanonical(cost, "USD")
	return types.Activity{
		ID:          id,
		Name:        place.Name,
		Category:    place.Category,
		Time:        at,
		Duration:    duration,
		Cost:        cost,
		CostUSD:     costUSD,
		Rating:      place.Rating,
		Description: place.Description,
		Address:     place.Address,
		ImageURL:    place.ImageURL,
	}
}

func pickDuration(pace types.Pace, easy, other string) string {
	if pace == types.PaceEasy {
		return easy
	}
	return other
}

func dayHighlights(dayNum int) []string {
	switch dayNum {
	case 1:
		return []string{"Historic landmarks", "Local culture"}
	case 2:
		return []string{"Heritage sites", "Traditional cuisine"}
	default:
		return []string{"Hidden gems", "Spiritual experiences"}
	}
}

// travelTips returns the practical advice list. Easy and medium trips get a
// trimmed list; a hard pace keeps everything.
func travelTips(city string, pace types.Pace) []string {
	tips := []string{
		fmt.Sprintf("Learn basic local phrases - %s locals appreciate the effort", city),
		"Keep copies of important documents separate from originals",
		"Download offline maps in case of poor internet connection",
		fmt.Sprintf("Research %s's tipping customs and local etiquette", city),
		"Book popular attractions in advance to avoid disappointment",
		fmt.Sprintf("Try to use public transportation - it's often the most authentic way to experience %s", city),
		"All prices are shown in Indian Rupees (INR)",
		"Currency exchange rates are updated daily",
	}
	if pace != types.PaceHard {
		return tips[:6]
	}
	return tips
}

// applyDestinationInfo fills the country-dependent metadata block.
func applyDestinationInfo(itin *types.Itinerary, country string) {
	if country == "India" {
		itin.BestTimeToVisit = "October to March (pleasant weather)"
		itin.WeatherInfo = "Check current weather conditions before traveling"
		itin.LocalCurrency = "INR (Indian Rupees)"
		itin.EmergencyContacts = types.EmergencyContacts{Police: "100", Medical: "108"}
		return
	}
	itin.BestTimeToVisit = "Year-round (varies by destination)"
	itin.WeatherInfo = "Check local weather forecast before traveling"
	itin.LocalCurrency = "Local currency varies"
	itin.EmergencyContacts = types.EmergencyContacts{
		Police:  "Local emergency number",
		Medical: "Local emergency number",
		Embassy: "Contact Indian Embassy",
	}
}
