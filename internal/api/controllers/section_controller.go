package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tiew/internal/models/request_models"
	"tiew/internal/services"
)

// SectionController backs the retry button of a section's error panel.
type SectionController struct {
	feeds map[string]services.Refresher
	pages *PageController
	log   *zap.Logger
}

func NewSectionController(refreshers []services.Refresher, pages *PageController, log *zap.Logger) *SectionController {
	feeds := make(map[string]services.Refresher, len(refreshers))
	for _, r := range refreshers {
		feeds[r.Category()] = r
	}
	return &SectionController{feeds: feeds, pages: pages, log: log}
}

// Retry clears the section's error, runs its fetch again and sends the
// browser back to the page that showed the panel.
func (s *SectionController) Retry(c *gin.Context) {
	feed, ok := s.feeds[c.Param("category")]
	if !ok {
		s.pages.NotFound(c)
		return
	}

	feed.ClearError()
	if err := feed.Refresh(c.Request.Context()); err != nil {
		s.log.Info("retry failed", zap.String("category", feed.Category()), zap.Error(err))
	}

	var form request_models.RedirectForm
	_ = c.ShouldBind(&form)
	c.Redirect(http.StatusSeeOther, localRedirect(form.Redirect))
}
