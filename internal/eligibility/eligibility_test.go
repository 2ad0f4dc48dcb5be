package eligibility

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func activeClass() *domain.ClassSession {
	return &domain.ClassSession{
		ID:     "c1",
		Title:  "Vinyasa",
		Price:  decimal.NewFromInt(20),
		Status: domain.ClassStatusActive,
	}
}

func TestDecide_FullClassWaitlistsInPerson(t *testing.T) {
	class := activeClass()
	class.Capacity = intPtr(10)
	class.ConfirmedInPersonCount = 10

	d, err := Decide(class, nil, domain.AttendanceInPerson)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionWaitlist, d.Action)
	assert.Equal(t, domain.AttendanceInPerson, d.Attendance)
}

func TestDecide_FullClassBooksZoom(t *testing.T) {
	class := activeClass()
	class.Capacity = intPtr(10)
	class.ConfirmedInPersonCount = 10
	class.ZoomEnabled = true

	d, err := Decide(class, nil, domain.AttendanceZoom)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionBook, d.Action)
	assert.Equal(t, domain.AttendanceZoom, d.Attendance)
}

func TestDecide_ZoomBlockedWhenDisabled(t *testing.T) {
	class := activeClass()

	d, err := Decide(class, nil, domain.AttendanceZoom)

	require.NoError(t, err)
	assert.Equal(t, domain.ActionBlocked, d.Action)
	assert.Equal(t, domain.BlockVirtualUnavailable, d.Reason)
	assert.Empty(t, d.Price.Method)
}

func TestDecide_InactiveClassBlocked(t *testing.T) {
	for _, status := range []domain.ClassStatus{domain.ClassStatusArchived, domain.ClassStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			class := activeClass()
			class.Status = status
			class.Capacity = intPtr(10)
			class.ZoomEnabled = true

			for _, att := range []domain.AttendanceType{domain.AttendanceInPerson, domain.AttendanceZoom} {
				d, err := Decide(class, nil, att)
				require.NoError(t, err)
				assert.Equal(t, domain.ActionBlocked, d.Action)
				assert.Equal(t, domain.BlockClassInactive, d.Reason)
			}
		})
	}
}

func TestDecide_CapacityBoundary(t *testing.T) {
	for n := 1; n <= 25; n++ {
		class := activeClass()
		class.Capacity = intPtr(n)

		class.ConfirmedInPersonCount = n - 1
		d, err := Decide(class, nil, domain.AttendanceInPerson)
		require.NoError(t, err)
		assert.Equal(t, domain.ActionBook, d.Action, "capacity %d, one spot left", n)

		class.ConfirmedInPersonCount = n
		d, err = Decide(class, nil, domain.AttendanceInPerson)
		require.NoError(t, err)
		assert.Equal(t, domain.ActionWaitlist, d.Action, "capacity %d, full", n)

		class.ConfirmedInPersonCount = n + 3
		d, err = Decide(class, nil, domain.AttendanceInPerson)
		require.NoError(t, err)
		assert.Equal(t, domain.ActionWaitlist, d.Action, "capacity %d, oversold", n)
	}
}

func TestDecide_UnlimitedCapacityAlwaysBooks(t *testing.T) {
	for _, count := range []int{0, 1, 50, 10000} {
		class := activeClass()
		class.ConfirmedInPersonCount = count

		d, err := Decide(class, nil, domain.AttendanceInPerson)

		require.NoError(t, err)
		assert.Equal(t, domain.ActionBook, d.Action)
	}
}

func TestDecide_DefaultsToInPerson(t *testing.T) {
	class := activeClass()
	class.Capacity = intPtr(1)
	class.ConfirmedInPersonCount = 1

	d, err := Decide(class, nil, "")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceInPerson, d.Attendance)
	assert.Equal(t, domain.ActionWaitlist, d.Action)
}

func TestDecide_SameForSelfAndFamilyMember(t *testing.T) {
	class := activeClass()
	class.Capacity = intPtr(5)
	class.ConfirmedInPersonCount = 5
	class.ZoomEnabled = true

	self := &domain.Member{ID: "self"}
	child := &domain.Member{ID: "child"}

	for _, att := range []domain.AttendanceType{domain.AttendanceInPerson, domain.AttendanceZoom} {
		a, err := Decide(class, self, att)
		require.NoError(t, err)
		b, err := Decide(class, child, att)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	class := activeClass()
	class.Capacity = intPtr(3)
	class.ConfirmedInPersonCount = 2
	class.MemberPrice = decPtr(15)
	class.AllowCredits = true
	member := &domain.Member{
		ID:             "m1",
		PurchasedPacks: []domain.Pack{{RemainingCredits: 2}},
	}

	first, err := Decide(class, member, domain.AttendanceInPerson)
	require.NoError(t, err)
	second, err := Decide(class, member, domain.AttendanceInPerson)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, class.ConfirmedInPersonCount)
	assert.Equal(t, 2, member.PurchasedPacks[0].RemainingCredits)
}

func TestDecide_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		class  func() *domain.ClassSession
		member *domain.Member
		att    domain.AttendanceType
	}{
		{name: "nil class", class: func() *domain.ClassSession { return nil }},
		{name: "missing id", class: func() *domain.ClassSession {
			c := activeClass()
			c.ID = ""
			return c
		}},
		{name: "unknown status", class: func() *domain.ClassSession {
			c := activeClass()
			c.Status = "draft"
			return c
		}},
		{name: "empty status", class: func() *domain.ClassSession {
			c := activeClass()
			c.Status = ""
			return c
		}},
		{name: "zero capacity", class: func() *domain.ClassSession {
			c := activeClass()
			c.Capacity = intPtr(0)
			return c
		}},
		{name: "negative count", class: func() *domain.ClassSession {
			c := activeClass()
			c.ConfirmedInPersonCount = -1
			return c
		}},
		{name: "negative price", class: func() *domain.ClassSession {
			c := activeClass()
			c.Price = decimal.NewFromInt(-1)
			return c
		}},
		{name: "negative member price", class: func() *domain.ClassSession {
			c := activeClass()
			c.MemberPrice = decPtr(-5)
			return c
		}},
		{name: "member without id", class: activeClass, member: &domain.Member{}},
		{name: "negative credits", class: activeClass, member: &domain.Member{
			ID:             "m1",
			PurchasedPacks: []domain.Pack{{RemainingCredits: -1}},
		}},
		{name: "unknown attendance", class: activeClass, att: "hybrid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decide(tt.class(), tt.member, tt.att)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestIntentFor(t *testing.T) {
	intent, err := IntentFor(domain.Decision{Action: domain.ActionBook})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentBook, intent)

	intent, err = IntentFor(domain.Decision{Action: domain.ActionWaitlist})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentWaitlist, intent)

	_, err = IntentFor(domain.Decision{Action: domain.ActionBlocked, Reason: domain.BlockClassInactive})
	assert.ErrorIs(t, err, domain.ErrClassNotBookable)
}
