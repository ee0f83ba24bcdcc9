package auditlog

import "time"

// AuditLog is one row per audited HTTP request.
type AuditLog struct {
	AuditLogID       int       `gorm:"primaryKey;autoIncrement" json:"audit_log_id"`
	UserID           string    `gorm:"size:50;not null" json:"user_id"`
	UserName         string    `gorm:"size:100;not null" json:"user_name"`
	HTTPMethod       string    `gorm:"size:10;not null" json:"http_method"`
	RequestPath      string    `gorm:"size:500;not null;index" json:"request_path"`
	QueryString      *string   `gorm:"size:2000" json:"query_string,omitempty"`
	Controller       string    `gorm:"size:100;not null;index" json:"controller"`
	Action           string    `gorm:"size:100;not null" json:"action"`
	RequestBody      *string   `json:"request_body,omitempty"`
	ResponseBody     *string   `json:"response_body,omitempty"`
	StatusCode       int       `gorm:"not null" json:"status_code"`
	Timestamp        time.Time `gorm:"not null;index" json:"timestamp"`
	DurationMs       int64     `gorm:"not null" json:"duration_ms"`
	IPAddress        *string   `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent        *string   `gorm:"size:500" json:"user_agent,omitempty"`
	ExceptionDetails *string   `gorm:"size:2000" json:"exception_details,omitempty"`
	AdditionalInfo   *string   `gorm:"size:500" json:"additional_info,omitempty"`
}
