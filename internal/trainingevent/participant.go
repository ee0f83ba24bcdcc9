package trainingevent

import (
	trainingeventerrors "github.com/JohanKruger/traindev-api/internal/trainingevent/errors"
)

// Participant identifies who attends an event. Exactly one of the two
// identifiers is set; construction through NewParticipant keeps that
// invariant out of the persistence layer.
type Participant struct {
	personnelNumber *string
	idNumber        *string
}

func NewParticipant(personnelNumber, idNumber *string) (Participant, error) {
	hasPersonnel := personnelNumber != nil && *personnelNumber != ""
	hasID := idNumber != nil && *idNumber != ""

	if hasPersonnel == hasID {
		return Participant{}, trainingeventerrors.ErrInvalidParticipant
	}

	if hasPersonnel {
		return Participant{personnelNumber: personnelNumber}, nil
	}
	return Participant{idNumber: idNumber}, nil
}

func (p Participant) PersonnelNumber() *string { return p.personnelNumber }

func (p Participant) IDNumber() *string { return p.idNumber }

// IsEmployee reports whether the participant is an internal employee.
func (p Participant) IsEmployee() bool { return p.personnelNumber != nil }
