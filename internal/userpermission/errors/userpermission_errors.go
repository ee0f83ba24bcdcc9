package userpermissionerrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrPermissionNotFound = apperror.New(
		apperror.CodeNotFound,
		"User permission not found",
		http.StatusNotFound,
	)
	ErrPermissionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User already holds this permission",
		http.StatusConflict,
	)
)
