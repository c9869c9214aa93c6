package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"tiew/internal/api/controllers"
	"tiew/internal/clients"
	"tiew/internal/config"
	"tiew/internal/models/api_models"
	"tiew/internal/models/db_models"
	"tiew/internal/services"
	mem "tiew/pkg/memcache"
	"tiew/pkg/middleware"
	"tiew/pkg/utils"
)

type stubPlaces struct {
	mu   sync.Mutex
	fail error
}

func (s *stubPlaces) answer(prefix string) ([]api_models.PlaceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	rating := 4.6
	return []api_models.PlaceResult{{PlaceID: prefix + "-1", Name: strings.ToUpper(prefix[:1]) + prefix[1:] + " One", Rating: &rating}}, nil
}

func (s *stubPlaces) TextSearch(_ context.Context, p clients.TextSearchParams) ([]api_models.PlaceResult, error) {
	return s.answer(strings.Fields(p.Query)[0])
}

func (s *stubPlaces) NearbySearch(_ context.Context, p clients.NearbySearchParams) ([]api_models.PlaceResult, error) {
	return s.answer(strings.Fields(p.Keyword)[0])
}

type stubWeather struct{}

func (stubWeather) Forecast(context.Context, float64, float64, string) (*api_models.ForecastResponse, error) {
	return &api_models.ForecastResponse{List: []api_models.ForecastEntry{{
		Dt:      1760605200,
		Main:    api_models.ForecastMain{Temp: 300, Humidity: 60, Pressure: 1008},
		Weather: []api_models.WeatherSummary{{Main: "Clear", Description: "clear sky"}},
	}}}, nil
}

func (stubWeather) AirPollution(context.Context, string, string, string, string) (*api_models.AirPollutionResponse, error) {
	return &api_models.AirPollutionResponse{List: []api_models.AirPollutionEntry{{Main: api_models.AirPollutionMain{AQI: 2}}}}, nil
}

type prefRepo struct {
	mu   sync.Mutex
	rows map[string]string
}

func (r *prefRepo) GetValue(_ context.Context, scope, key string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[scope+"/"+key]
	return v, ok, nil
}

func (r *prefRepo) SetValue(_ context.Context, scope, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[scope+"/"+key] = value
	return nil
}

type contentRepo struct{}

func (contentRepo) GetCollection(context.Context, string) ([]byte, error) { return nil, nil }

type placeRepo struct{}

func (placeRepo) UpsertPlaces(context.Context, []db_models.CachedPlace) error { return nil }
func (placeRepo) GetByPlaceID(context.Context, string) (*db_models.CachedPlace, error) {
	return nil, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubPlaces) {
	t.Helper()
	log := zap.NewNop()
	cfg := &config.Config{Province: config.Province{Name: "Chiang Mai", LocalName: "เชียงใหม่", Lat: 18.7883, Lng: 98.9853}}
	now := func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }

	places := &stubPlaces{}
	placeSvc := services.NewPlaceService(mem.NewPlaces(), placeRepo{}, log)
	destinations := services.NewDestinationService(places, cfg, placeSvc, log)
	events := services.NewEventService(places, cfg, placeSvc, services.NewRandomizer(1), now, log)
	blogs := services.NewBlogService(places, cfg, placeSvc, services.NewRandomizer(2), now, log)
	ads := services.NewAdvertisementService(places, cfg, placeSvc, services.NewRandomizer(3), now, log)
	weather := services.NewWeatherService(stubWeather{}, log)
	content := services.NewContentService(contentRepo{}, log)

	pages := controllers.NewPageController(destinations, events, blogs, ads, weather, content, placeSvc, cfg, log)
	ctrl := Controllers{
		Pages:    pages,
		Feeds:    controllers.NewFeedController(destinations, events, blogs, ads, log),
		Weather:  controllers.NewWeatherController(weather, log),
		Places:   controllers.NewPlaceController(placeSvc, log),
		Language: controllers.NewLanguageController(log),
		Sections: controllers.NewSectionController([]services.Refresher{destinations, events, blogs, ads}, pages, log),
	}

	locale := services.NewLocaleFactory(cfg, &prefRepo{rows: map[string]string{}}, log)
	r, err := NewRouter(cfg, log, locale, ctrl)
	require.NoError(t, err)
	return r, places
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func visitorCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.VisitorCookie {
			return c
		}
	}
	t.Fatal("visitor cookie not set")
	return nil
}

func TestHomePageRenders(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "สัมผัสเสน่ห์เชียงใหม่")
	assert.Contains(t, body, "Tourist One")
	assert.Contains(t, body, "Stay at Hotels One")
	assert.Contains(t, body, "26.9°C")
}

func TestUnknownAndDeclaredOnlyRoutesAre404(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/about", "/contact", "/no-such-page"} {
		w := do(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), "ไม่พบหน้าที่คุณต้องการ", path)
	}

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestLanguageSwitchPersistsForVisitor(t *testing.T) {
	r, _ := newTestRouter(t)

	first := do(r, httptest.NewRequest(http.MethodGet, "/destinations", nil))
	cookie := visitorCookie(t, first)
	assert.Contains(t, first.Body.String(), "สถานที่ท่องเที่ยว")

	form := url.Values{"language": {"en"}, "redirect": {"/destinations"}}
	req := httptest.NewRequest(http.MethodPost, "/language", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	w := do(r, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/destinations", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/destinations", nil)
	req.AddCookie(cookie)
	w = do(r, req)
	assert.Contains(t, w.Body.String(), `lang="en"`)
	assert.Contains(t, w.Body.String(), "Recommended destinations")

	// another visitor still sees Thai
	w = do(r, httptest.NewRequest(http.MethodGet, "/destinations", nil))
	assert.Contains(t, w.Body.String(), `lang="th"`)
}

func TestLanguageAPI(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/language", strings.NewReader(`{"language":"fr"}`))
	req.Header.Set("Content-Type", "application/json")
	w := do(r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/language", strings.NewReader(`{"language":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	w = do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	cookie := visitorCookie(t, w)

	req = httptest.NewRequest(http.MethodGet, "/api/i18n", nil)
	req.AddCookie(cookie)
	w = do(r, req)
	var resp struct {
		Data struct {
			Language     string            `json:"language"`
			Translations map[string]string `json:"translations"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp.Data.Language)
	assert.Equal(t, "Home", resp.Data.Translations["nav.home"])
}

func TestFeedAPIReportsErrorWithState(t *testing.T) {
	r, places := newTestRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/advertisements", nil))
	require.Equal(t, http.StatusOK, w.Code)

	places.fail = &utils.RequestError{StatusCode: 429, StatusText: "Too Many Requests"}
	w = do(r, httptest.NewRequest(http.MethodGet, "/api/advertisements", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp struct {
		Message string `json:"message"`
		Data    struct {
			Status string `json:"status"`
			Data   []struct {
				Badge string `json:"badge"`
			} `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Data.Status)
	assert.Len(t, resp.Data.Data, 3)
	assert.Contains(t, resp.Message, "429")
}

func TestRetryClearsErrorAndRedirects(t *testing.T) {
	r, places := newTestRouter(t)

	places.fail = errors.New("upstream down")
	w := do(r, httptest.NewRequest(http.MethodGet, "/events", nil))
	assert.Contains(t, w.Body.String(), `action="/sections/events/retry"`)

	places.fail = nil
	form := url.Values{"redirect": {"/events"}}
	req := httptest.NewRequest(http.MethodPost, "/sections/events/retry", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = do(r, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/events", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodPost, "/sections/unknown/retry", nil)
	w = do(r, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	form = url.Values{"redirect": {"//evil.example"}}
	req = httptest.NewRequest(http.MethodPost, "/sections/blogs/retry", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = do(r, req)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestPlaceDetailAfterFeed(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/places/tourist-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	do(r, httptest.NewRequest(http.MethodGet, "/api/destinations", nil))

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/places/tourist-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/places/tourist-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tourist One")
}

func TestWeatherAPIValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/weather/current", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/weather/current?lat=18.79&lng=98.98", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"description":"clear sky"`)

	w = do(r, httptest.NewRequest(http.MethodGet, "/weather", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSwaggerDocumentCoversAPIRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, "/api/") {
			continue
		}
		path := strings.ReplaceAll(route.Path, ":id", "{id}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "undocumented route %s", route.Path) {
			continue
		}
		_, ok = ops[strings.ToLower(route.Method)]
		assert.True(t, ok, "undocumented method %s %s", route.Method, route.Path)
	}
}
