package psmastererrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"No active personnel record found",
		http.StatusNotFound,
	)
	ErrMartUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"HR master data source is unavailable",
		http.StatusServiceUnavailable,
	)
)
