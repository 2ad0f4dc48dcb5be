package domain

type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusPaused    MembershipStatus = "paused"
	MembershipStatusExpired   MembershipStatus = "expired"
	MembershipStatusCancelled MembershipStatus = "cancelled"
)

type Membership struct {
	PlanID string           `json:"plan_id"`
	Status MembershipStatus `json:"status"`
}

type Pack struct {
	ID               string `json:"id,omitempty"`
	RemainingCredits int    `json:"remaining_credits"`
}

// Member is the acting party of a booking: the account holder or one of
// their family members.
type Member struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	TelegramChatID *int64       `json:"telegram_chat_id,omitempty"`
	Memberships    []Membership `json:"memberships,omitempty"`
	PurchasedPacks []Pack       `json:"purchased_packs,omitempty"`
}

func (m *Member) HasCredits() bool {
	for _, p := range m.PurchasedPacks {
		if p.RemainingCredits > 0 {
			return true
		}
	}
	return false
}
