package employeeerrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this personnel number already exists",
		http.StatusConflict,
	)
	ErrMissingPersonnelNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Personnel number is required",
		http.StatusBadRequest,
	)
)
