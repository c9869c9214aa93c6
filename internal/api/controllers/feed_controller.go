package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tiew/internal/models/response_models"
	"tiew/internal/services"
	"tiew/pkg/utils"
)

// FeedController exposes the category feeds as JSON. A GET re-runs the fetch
// and answers with the resulting state.
type FeedController struct {
	destinations   services.DestinationServiceInterface
	events         services.EventServiceInterface
	blogs          services.BlogServiceInterface
	advertisements services.AdvertisementServiceInterface
	log            *zap.Logger
}

func NewFeedController(
	destinations services.DestinationServiceInterface,
	events services.EventServiceInterface,
	blogs services.BlogServiceInterface,
	advertisements services.AdvertisementServiceInterface,
	log *zap.Logger,
) *FeedController {
	return &FeedController{
		destinations:   destinations,
		events:         events,
		blogs:          blogs,
		advertisements: advertisements,
		log:            log,
	}
}

func respondFeed[T any](c *gin.Context, log *zap.Logger, feed services.FeedService[T], message string) {
	_, err := feed.Fetch(c.Request.Context())
	state := feed.State()
	if err != nil {
		code, _ := utils.StatusForError(err)
		log.Warn("feed request failed", zap.String("trace_id", c.GetString("trace_id")), zap.Error(err))
		utils.RespondErrorWithData(c, code, state.ErrorMessage(), state)
		return
	}
	utils.RespondSuccess(c, state, message)
}

// GetDestinations godoc
// @Summary Recommended destinations
// @Description Runs the destination searches for the configured province and returns the feed state
// @Tags Feeds
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.FeedState[response_models.Destination]}
// @Failure 502 {object} utils.APIResponse
// @Router /api/destinations [get]
func (f *FeedController) GetDestinations(c *gin.Context) {
	respondFeed[response_models.Destination](c, f.log, f.destinations, "Fetched destinations successfully")
}

// GetEvents godoc
// @Summary Upcoming events
// @Tags Feeds
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.FeedState[response_models.Event]}
// @Failure 502 {object} utils.APIResponse
// @Router /api/events [get]
func (f *FeedController) GetEvents(c *gin.Context) {
	respondFeed[response_models.Event](c, f.log, f.events, "Fetched events successfully")
}

// GetBlogs godoc
// @Summary Travel stories
// @Tags Feeds
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.FeedState[response_models.Blog]}
// @Failure 502 {object} utils.APIResponse
// @Router /api/blogs [get]
func (f *FeedController) GetBlogs(c *gin.Context) {
	respondFeed[response_models.Blog](c, f.log, f.blogs, "Fetched blogs successfully")
}

// GetAdvertisements godoc
// @Summary Special offers
// @Tags Feeds
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.FeedState[response_models.Advertisement]}
// @Failure 502 {object} utils.APIResponse
// @Router /api/advertisements [get]
func (f *FeedController) GetAdvertisements(c *gin.Context) {
	respondFeed[response_models.Advertisement](c, f.log, f.advertisements, "Fetched advertisements successfully")
}
