package lookup

// LookupValue is one entry of the hierarchical taxonomy (regions, provinces,
// training types, ...). Parent/child links are plain id references; child
// sets are computed by query, never materialized.
type LookupValue struct {
	LookupID   int     `gorm:"primaryKey;autoIncrement" json:"lookup_id"`
	LookupType string  `gorm:"size:50;not null;index" json:"lookup_type"`
	Value      string  `gorm:"size:100;not null" json:"value"`
	Code       *string `gorm:"size:20" json:"code,omitempty"`
	ParentID   *int    `gorm:"index" json:"parent_id,omitempty"`
	SortOrder  *int    `json:"sort_order,omitempty"`
	IsActive   bool    `gorm:"not null;default:true" json:"is_active"`
}
