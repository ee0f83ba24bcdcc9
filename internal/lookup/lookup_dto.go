package lookup

type CreateLookupValueRequest struct {
	LookupType string  `json:"lookup_type" binding:"required,max=50"`
	Value      string  `json:"value" binding:"required,max=100"`
	Code       *string `json:"code" binding:"omitempty,max=20"`
	ParentID   *int    `json:"parent_id"`
	SortOrder  *int    `json:"sort_order"`
	IsActive   *bool   `json:"is_active"`
}

type UpdateLookupValueRequest struct {
	LookupType string  `json:"lookup_type" binding:"required,max=50"`
	Value      string  `json:"value" binding:"required,max=100"`
	Code       *string `json:"code" binding:"omitempty,max=20"`
	ParentID   *int    `json:"parent_id"`
	SortOrder  *int    `json:"sort_order"`
	IsActive   *bool   `json:"is_active"`
}
