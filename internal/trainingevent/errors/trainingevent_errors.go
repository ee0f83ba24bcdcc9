package trainingeventerrors

import (
	"net/http"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
)

var (
	ErrTrainingEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"Training event not found",
		http.StatusNotFound,
	)
	ErrInvalidParticipant = apperror.New(
		apperror.CodeInvalidInput,
		"Either PersonnelNumber or IDNumber must be provided, but not both",
		http.StatusBadRequest,
	)
	ErrLookupReferenceNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"One or more referenced lookup values do not exist",
		http.StatusBadRequest,
	)
)
