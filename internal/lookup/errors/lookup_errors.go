package lookuperrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrLookupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Lookup value not found",
		http.StatusNotFound,
	)
	ErrParentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Parent lookup value does not exist",
		http.StatusBadRequest,
	)
	ErrSelfParent = apperror.New(
		apperror.CodeInvalidInput,
		"A lookup value cannot be its own parent",
		http.StatusBadRequest,
	)
	// Distinct from not-found: the row exists but is still referenced.
	ErrHasChildren = apperror.New(
		apperror.CodeConflict,
		"Lookup value cannot be deleted while child values reference it",
		http.StatusConflict,
	)
)
