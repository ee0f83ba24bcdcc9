package trainingrecorderrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrTrainingRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training record event not found",
		http.StatusNotFound,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must be on or after start date",
		http.StatusBadRequest,
	)
	ErrTrainingEventNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Referenced training event does not exist",
		http.StatusBadRequest,
	)
)
