package auditlogerrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrAuditLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Audit log not found",
		http.StatusNotFound,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date cannot be greater than end date",
		http.StatusBadRequest,
	)
)
