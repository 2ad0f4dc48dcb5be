package eligibility

import (
	"github.com/shopspring/decimal"
	"github.com/stpnv0/ClassBooker/internal/domain"
)

// ResolvePrice applies the pricing policy in order: included plan, credit,
// member price, public price. The first match wins. Attendance type does
// not affect the result.
func ResolvePrice(class *domain.ClassSession, member *domain.Member) domain.Price {
	if member != nil {
		if hasIncludedPlan(class, member) {
			return domain.Price{Amount: decimal.Zero, Method: domain.PriceFreePlan}
		}
		if class.AllowCredits && member.HasCredits() {
			return domain.Price{Amount: decimal.Zero, Credits: 1, Method: domain.PriceCredit}
		}
		if class.MemberPrice != nil {
			return domain.Price{Amount: *class.MemberPrice, Method: domain.PriceMemberPrice}
		}
	}

	return domain.Price{Amount: class.Price, Method: domain.PricePublicPrice}
}

func hasIncludedPlan(class *domain.ClassSession, member *domain.Member) bool {
	for _, m := range member.Memberships {
		if m.Status == domain.MembershipStatusActive && class.IncludesPlan(m.PlanID) {
			return true
		}
	}
	return false
}
