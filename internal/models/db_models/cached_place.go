package db_models

import "github.com/lib/pq"

type CachedPlace struct {
	BaseModel
	PlaceID     string         `gorm:"size:255;not null;uniqueIndex"`
	Name        string         `gorm:"not null"`
	Types       pq.StringArray `gorm:"type:text[]"`
	Latitude    float64
	Longitude   float64
	Rating      *float64
	RatingCount *int
	Address     *string
	OpenNow     *bool
	Category    string
}
