package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"tiew/internal/config"
	"tiew/internal/models/response_models"
	"tiew/internal/services"
	"tiew/internal/web"
	"tiew/pkg/middleware"
	"tiew/pkg/utils"
)

// PageController renders the HTML pages. Every page load triggers a fetch of
// the feeds it shows; each section renders whatever state its feed ends in.
type PageController struct {
	destinations   services.DestinationServiceInterface
	events         services.EventServiceInterface
	blogs          services.BlogServiceInterface
	advertisements services.AdvertisementServiceInterface
	weather        services.WeatherServiceInterface
	content        services.ContentServiceInterface
	places         services.PlaceServiceInterface
	province       config.Province
	log            *zap.Logger
}

func NewPageController(
	destinations services.DestinationServiceInterface,
	events services.EventServiceInterface,
	blogs services.BlogServiceInterface,
	advertisements services.AdvertisementServiceInterface,
	weather services.WeatherServiceInterface,
	content services.ContentServiceInterface,
	places services.PlaceServiceInterface,
	cfg *config.Config,
	log *zap.Logger,
) *PageController {
	return &PageController{
		destinations:   destinations,
		events:         events,
		blogs:          blogs,
		advertisements: advertisements,
		weather:        weather,
		content:        content,
		places:         places,
		province:       cfg.Province,
		log:            log,
	}
}

func (p *PageController) page(c *gin.Context, titleKey string, data any) web.Page {
	return web.Page{
		TitleKey: titleKey,
		Path:     c.Request.URL.Path,
		Locale:   middleware.Locale(c),
		Data:     data,
	}
}

func (p *PageController) Home(c *gin.Context) {
	ctx := c.Request.Context()

	var current *response_models.CurrentWeather
	var weatherErr string

	// sections are independent: a failing feed never stops the others
	var g errgroup.Group
	g.Go(func() error { _, _ = p.destinations.Fetch(ctx); return nil })
	g.Go(func() error { _, _ = p.events.Fetch(ctx); return nil })
	g.Go(func() error { _, _ = p.blogs.Fetch(ctx); return nil })
	g.Go(func() error { _, _ = p.advertisements.Fetch(ctx); return nil })
	g.Go(func() error {
		w, err := p.weather.Current(ctx, p.province.Lat, p.province.Lng)
		if err != nil {
			_, weatherErr = utils.StatusForError(err)
			return nil
		}
		current = &w
		return nil
	})
	_ = g.Wait()

	page := p.page(c, "nav.home", nil)
	page.Data = web.HomeData{
		Destinations:   web.NewSection(page, services.CategoryDestinations, "section.destinations", p.destinations.State()),
		Events:         web.NewSection(page, services.CategoryEvents, "section.events", p.events.State()),
		Blogs:          web.NewSection(page, services.CategoryBlogs, "section.blogs", p.blogs.State()),
		Advertisements: web.NewSection(page, services.CategoryAdvertisements, "section.ads", p.advertisements.State()),
		Weather:        web.WeatherWidget{Page: page, Current: current, Error: weatherErr},
	}
	c.HTML(http.StatusOK, "home.html", page)
}

func (p *PageController) Destinations(c *gin.Context) {
	_, _ = p.destinations.Fetch(c.Request.Context())

	page := p.page(c, "nav.destinations", nil)
	page.Data = web.NewSection(page, services.CategoryDestinations, "section.destinations", p.destinations.State())
	c.HTML(http.StatusOK, "destinations.html", page)
}

func (p *PageController) Events(c *gin.Context) {
	ctx := c.Request.Context()
	_, _ = p.events.Fetch(ctx)

	page := p.page(c, "nav.events", nil)
	page.Data = web.EventsData{
		Events:    web.NewSection(page, services.CategoryEvents, "section.events", p.events.State()),
		Community: p.content.Events(ctx),
	}
	c.HTML(http.StatusOK, "events.html", page)
}

func (p *PageController) Blogs(c *gin.Context) {
	ctx := c.Request.Context()
	_, _ = p.blogs.Fetch(ctx)

	page := p.page(c, "nav.blogs", nil)
	page.Data = web.BlogsData{
		Blogs:     web.NewSection(page, services.CategoryBlogs, "section.blogs", p.blogs.State()),
		Community: p.content.BlogPosts(ctx),
	}
	c.HTML(http.StatusOK, "blogs.html", page)
}

func (p *PageController) Weather(c *gin.Context) {
	ctx := c.Request.Context()
	page := p.page(c, "nav.weather", nil)
	data := web.WeatherData{Province: p.province.Name}

	var g errgroup.Group
	g.Go(func() error {
		forecast, err := p.weather.Forecast(ctx, p.province.Lat, p.province.Lng)
		if err != nil {
			_, data.Current.Error = utils.StatusForError(err)
			return nil
		}
		current := services.CurrentFromForecast(forecast[0])
		data.Current.Current = &current
		data.Forecast = forecast
		return nil
	})
	g.Go(func() error {
		air, err := p.weather.AirQuality(ctx, p.province.Name)
		if err != nil {
			_, data.AirError = utils.StatusForError(err)
			return nil
		}
		data.Air = &air
		return nil
	})
	_ = g.Wait()

	data.Current.Page = page
	page.Data = data
	c.HTML(http.StatusOK, "weather.html", page)
}

func (p *PageController) Place(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	place, err := p.places.GetPlace(c.Request.Context(), id)
	if err != nil {
		code, message := utils.StatusForError(err)
		if code == http.StatusNotFound {
			p.NotFound(c)
			return
		}
		c.HTML(code, "error.html", p.page(c, "common.error", message))
		return
	}

	c.HTML(http.StatusOK, "place.html", p.page(c, "place.title", place))
}

// NotFound handles every path without a route, including declared nav links
// that have no page yet.
func (p *PageController) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", p.page(c, "notFound.title", nil))
}
