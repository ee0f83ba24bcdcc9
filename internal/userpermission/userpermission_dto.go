package userpermission

type CreateUserPermissionRequest struct {
	Username       string `json:"username" binding:"required,max=20"`
	PermissionCode string `json:"permission_code" binding:"required,max=100"`
}

type UpdateUserPermissionRequest struct {
	Username       string `json:"username" binding:"required,max=20"`
	PermissionCode string `json:"permission_code" binding:"required,max=100"`
}
