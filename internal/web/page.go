package web

import (
	"tiew/internal/i18n"
	"tiew/internal/models/response_models"
)

type NavLink struct {
	Path string
	Key  string
}

// NavLinks is the navbar. About and contact have no route yet and land on the not-found page.
var NavLinks = []NavLink{
	{Path: "/", Key: "nav.home"},
	{Path: "/destinations", Key: "nav.destinations"},
	{Path: "/events", Key: "nav.events"},
	{Path: "/blogs", Key: "nav.blogs"},
	{Path: "/weather", Key: "nav.weather"},
	{Path: "/about", Key: "nav.about"},
	{Path: "/contact", Key: "nav.contact"},
}

// Page is the root value handed to every template.
type Page struct {
	TitleKey string
	Path     string
	Locale   *i18n.Store
	Data     any
}

func (p Page) T(key string) string {
	if p.Locale == nil {
		return key
	}
	return p.Locale.T(key)
}

func (p Page) Lang() string {
	if p.Locale == nil {
		return string(i18n.DefaultLanguage())
	}
	return string(p.Locale.Language())
}

func (p Page) Languages() []i18n.Language { return i18n.Languages }

func (p Page) Nav() []NavLink { return NavLinks }

func (p Page) Active(path string) bool { return p.Path == path }

// Section is one feed rendered inside a page: items, loading placeholder or error panel.
type Section struct {
	Page     Page
	Category string
	TitleKey string
	Items    any
	Count    int
	Loading  bool
	Error    string
}

func (s Section) HasError() bool { return s.Error != "" }

func (s Section) Empty() bool { return s.Count == 0 && !s.Loading && !s.HasError() }

func NewSection[T any](page Page, category, titleKey string, state response_models.FeedState[T]) Section {
	return Section{
		Page:     page,
		Category: category,
		TitleKey: titleKey,
		Items:    state.Data,
		Count:    len(state.Data),
		Loading:  state.Loading,
		Error:    state.ErrorMessage(),
	}
}

type WeatherWidget struct {
	Page    Page
	Current *response_models.CurrentWeather
	Error   string
}

type HomeData struct {
	Destinations   Section
	Events         Section
	Blogs          Section
	Advertisements Section
	Weather        WeatherWidget
}

type EventsData struct {
	Events    Section
	Community []response_models.StoredEvent
}

type BlogsData struct {
	Blogs     Section
	Community []response_models.StoredBlogPost
}

type WeatherData struct {
	Province string
	Current  WeatherWidget
	Forecast []response_models.Forecast
	Air      *response_models.AirQuality
	AirError string
}
