package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	_ "tiew/docs"
	"tiew/internal/api/controllers"
	"tiew/internal/config"
	"tiew/internal/web"
	"tiew/pkg/middleware"
	"tiew/pkg/utils"
)

type Controllers struct {
	Pages    *controllers.PageController
	Feeds    *controllers.FeedController
	Weather  *controllers.WeatherController
	Places   *controllers.PlaceController
	Language *controllers.LanguageController
	Sections *controllers.SectionController
}

func NewRouter(cfg *config.Config, log *zap.Logger, locale middleware.LocaleFactory, ctrl Controllers) (*gin.Engine, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.VisitorMiddleware(locale))

	RegisterRoutes(r, ctrl)

	return r, nil
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.Pages.Home)
	r.GET("/destinations", ctrl.Pages.Destinations)
	r.GET("/events", ctrl.Pages.Events)
	r.GET("/blogs", ctrl.Pages.Blogs)
	r.GET("/weather", ctrl.Pages.Weather)
	r.GET("/places/:id", ctrl.Pages.Place)
	r.POST("/sections/:category/retry", ctrl.Sections.Retry)
	r.POST("/language", ctrl.Language.SwitchLanguage)

	apiGroup := r.Group("/api")
	apiGroup.GET("/destinations", ctrl.Feeds.GetDestinations)
	apiGroup.GET("/events", ctrl.Feeds.GetEvents)
	apiGroup.GET("/blogs", ctrl.Feeds.GetBlogs)
	apiGroup.GET("/advertisements", ctrl.Feeds.GetAdvertisements)

	weatherGroup := apiGroup.Group("/weather")
	weatherGroup.GET("/forecast", ctrl.Weather.GetForecast)
	weatherGroup.GET("/current", ctrl.Weather.GetCurrent)
	weatherGroup.GET("/air", ctrl.Weather.GetAirQuality)

	apiGroup.GET("/places/:id", ctrl.Places.GetPlaceById)
	apiGroup.GET("/i18n", ctrl.Language.GetTranslations)
	apiGroup.PUT("/language", ctrl.Language.ChangeLanguage)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			utils.RespondError(c, http.StatusNotFound, "Route not found")
			return
		}
		ctrl.Pages.NotFound(c)
	})
}
