package eligibility

import (
	"fmt"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

func validate(class *domain.ClassSession, member *domain.Member) error {
	if class == nil {
		return fmt.Errorf("%w: class is required", domain.ErrInvalidInput)
	}
	if class.ID == "" {
		return fmt.Errorf("%w: class id is required", domain.ErrInvalidInput)
	}
	if !class.Status.Valid() {
		return fmt.Errorf("%w: unknown class status %q", domain.ErrInvalidInput, class.Status)
	}
	if class.Capacity != nil && *class.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}
	if class.ConfirmedInPersonCount < 0 || class.ConfirmedVirtualCount < 0 {
		return fmt.Errorf("%w: confirmed counts must not be negative", domain.ErrInvalidInput)
	}
	if class.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if class.MemberPrice != nil && class.MemberPrice.IsNegative() {
		return fmt.Errorf("%w: member price must not be negative", domain.ErrInvalidInput)
	}

	if member == nil {
		return nil
	}
	if member.ID == "" {
		return fmt.Errorf("%w: member id is required", domain.ErrInvalidInput)
	}
	for _, p := range member.PurchasedPacks {
		if p.RemainingCredits < 0 {
			return fmt.Errorf("%w: pack credits must not be negative", domain.ErrInvalidInput)
		}
	}

	return nil
}
