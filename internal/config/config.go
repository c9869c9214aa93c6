package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Province is the region every feed searches in. Name is used in search
// queries and English copy; LocalName is shown on Thai pages.
type Province struct {
	Name      string
	LocalName string
	Lat       float64
	Lng       float64
}

type RapidAPIConfig struct {
	Key         string
	PlacesHost  string
	WeatherHost string
	Timeout     time.Duration
}

type Config struct {
	Port        string
	PostgresURL string
	Debug       bool
	GinMode     string
	RapidAPI    RapidAPIConfig
	Province    Province
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		Debug:       getBoolEnv("DEBUG", false),
		GinMode:     getEnvWithDefault("GIN_MODE", "release"),
		RapidAPI: RapidAPIConfig{
			Key:         os.Getenv("RAPIDAPI_KEY"),
			PlacesHost:  getEnvWithDefault("PLACES_API_HOST", "google-map-places.p.rapidapi.com"),
			WeatherHost: getEnvWithDefault("WEATHER_API_HOST", "open-weather13.p.rapidapi.com"),
			Timeout:     getDurationEnv("HTTP_TIMEOUT", 15*time.Second),
		},
		Province: Province{
			Name:      getEnvWithDefault("PROVINCE_NAME", "Chiang Mai"),
			LocalName: getEnvWithDefault("PROVINCE_NAME_TH", "เชียงใหม่"),
			Lat:       getFloatEnv("PROVINCE_LAT", 18.7883),
			Lng:       getFloatEnv("PROVINCE_LNG", 98.9853),
		},
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getFloatEnv(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Invalid number for %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
