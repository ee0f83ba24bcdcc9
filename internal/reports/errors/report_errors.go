package reportserrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var ErrInvalidDateRange = apperror.New(
	apperror.CodeInvalidInput,
	"End date must be on or after start date",
	http.StatusBadRequest,
)
