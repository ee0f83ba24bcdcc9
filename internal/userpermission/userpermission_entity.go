package userpermission

import "time"

// UserPermission is one granted permission code for one account. The
// pair is unique so a grant is idempotent at the database level.
type UserPermission struct {
	PermissionID   int       `gorm:"primaryKey;autoIncrement" json:"permission_id"`
	Username       string    `gorm:"size:20;not null;uniqueIndex:idx_user_permission" json:"username"`
	PermissionCode string    `gorm:"size:100;not null;uniqueIndex:idx_user_permission" json:"permission_code"`
	CreatedDate    time.Time `gorm:"autoCreateTime" json:"created_date"`
}

// Permission codes granted to every account on first login.
const (
	CodeEditAdminDepCost = "EDIT_ADMIN_DEP_COST"
	CodeEditTrainersCost = "EDIT_TRAINERS_COST"
	CodeExportReport     = "EXPORT_REPORT"
)

// DefaultCodes lists the grants a brand-new account starts with.
func DefaultCodes() []string {
	return []string{CodeEditAdminDepCost, CodeEditTrainersCost, CodeExportReport}
}
