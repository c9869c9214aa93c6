package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tiew/internal/services"
	"tiew/pkg/utils"
)

type PlaceController struct {
	places services.PlaceServiceInterface
	log    *zap.Logger
}

func NewPlaceController(places services.PlaceServiceInterface, log *zap.Logger) *PlaceController {
	return &PlaceController{places: places, log: log}
}

// GetPlaceById godoc
// @Summary Place details
// @Description Looks up a place that one of the feeds has already returned
// @Tags Places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} utils.APIResponse{data=response_models.PlaceDetail}
// @Failure 404 {object} utils.APIResponse
// @Router /api/places/{id} [get]
func (p *PlaceController) GetPlaceById(c *gin.Context) {
	placeId := c.Param("id")
	if placeId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.places.GetPlace(c.Request.Context(), placeId)
	if err != nil {
		utils.HandleServiceError(c, p.log, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}
