package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderai/wanderai-backend/errors"
	"github.com/wanderai/wanderai-backend/middleware"
	"github.com/wanderai/wanderai-backend/services"
	"github.com/wanderai/wanderai-backend/types"
)

// ItineraryHandler exposes the generation pipeline and the destination
// summary endpoint.
type ItineraryHandler struct {
	itineraries *services.ItineraryService
	cityInfo    *services.CityInfoService
}

func NewItineraryHandler(itineraries *services.ItineraryService, cityInfo *services.CityInfoService) *ItineraryHandler {
	return &ItineraryHandler{itineraries: itineraries, cityInfo: cityInfo}
}

// Generate handles POST /v1/itinerary/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req types.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid trip request", err.Error()))
		return
	}

	itinerary, err := h.itineraries.Generate(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.CountItinerary(string(itinerary.PlaceSource))
	c.JSON(http.StatusOK, types.SuccessResponse(itinerary))
}

// CityInfo handles GET /v1/city/:city.
func (h *ItineraryHandler) CityInfo(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		_ = c.Error(errors.ValidationFailed("Invalid city", "city path parameter is required"))
		return
	}

	c.JSON(http.StatusOK, types.SuccessResponse(h.cityInfo.Get(city)))
}
