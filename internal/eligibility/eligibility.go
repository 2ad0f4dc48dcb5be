// Package eligibility decides whether a class can be booked, waitlisted or
// not at all, and which price applies. Every surface that shows a booking
// action must go through Decide.
package eligibility

import (
	"fmt"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

// Decide evaluates a booking attempt for member (nil for a guest) on class.
// An empty attendance means in-person.
func Decide(class *domain.ClassSession, member *domain.Member, attendance domain.AttendanceType) (domain.Decision, error) {
	if err := validate(class, member); err != nil {
		return domain.Decision{}, err
	}

	if attendance == "" {
		attendance = domain.AttendanceInPerson
	}
	if attendance != domain.AttendanceInPerson && attendance != domain.AttendanceZoom {
		return domain.Decision{}, fmt.Errorf("%w: unknown attendance type %q", domain.ErrInvalidInput, attendance)
	}

	decision := domain.Decision{Attendance: attendance}

	if class.Status != domain.ClassStatusActive {
		decision.Action = domain.ActionBlocked
		decision.Reason = domain.BlockClassInactive
		return decision, nil
	}

	switch attendance {
	case domain.AttendanceZoom:
		// virtual attendance has no ceiling
		if !class.ZoomEnabled {
			decision.Action = domain.ActionBlocked
			decision.Reason = domain.BlockVirtualUnavailable
			return decision, nil
		}
		decision.Action = domain.ActionBook
	default:
		if inPersonFull(class) {
			decision.Action = domain.ActionWaitlist
		} else {
			decision.Action = domain.ActionBook
		}
	}

	decision.Price = ResolvePrice(class, member)
	return decision, nil
}

// IntentFor derives the intent flag submitted with a booking.
func IntentFor(d domain.Decision) (domain.IntentKind, error) {
	switch d.Action {
	case domain.ActionBook:
		return domain.IntentBook, nil
	case domain.ActionWaitlist:
		return domain.IntentWaitlist, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrClassNotBookable, d.Reason)
	}
}

func inPersonFull(class *domain.ClassSession) bool {
	return class.Capacity != nil && class.ConfirmedInPersonCount >= *class.Capacity
}
