package db_models

import "gorm.io/datatypes"

// ContentCollection holds an authored list (blog posts, events) as a JSON array.
// Rows are written by the authoring tool; this service only reads them.
type ContentCollection struct {
	BaseModel
	Key   string         `gorm:"size:128;not null;uniqueIndex"`
	Items datatypes.JSON `gorm:"not null"`
}
