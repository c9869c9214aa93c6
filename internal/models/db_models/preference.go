package db_models

// Preference is one key/value entry of a visitor's persisted state.
// Scope is the visitor id; the empty scope holds site-wide entries.
type Preference struct {
	BaseModel
	Scope string `gorm:"size:64;not null;uniqueIndex:idx_preference_scope_key"`
	Key   string `gorm:"size:128;not null;uniqueIndex:idx_preference_scope_key"`
	Value string `gorm:"type:text;not null"`
}
