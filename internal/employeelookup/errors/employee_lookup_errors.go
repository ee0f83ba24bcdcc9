package employeelookuperrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrEmployeeLookupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee lookup record not found",
		http.StatusNotFound,
	)
	ErrEmployeeLookupAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee lookup record with this personnel number already exists",
		http.StatusConflict,
	)
)
