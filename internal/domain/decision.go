package domain

import "github.com/shopspring/decimal"

type Action string

const (
	ActionBook     Action = "book"
	ActionWaitlist Action = "waitlist"
	ActionBlocked  Action = "blocked"
)

type PriceMethod string

const (
	PriceFreePlan    PriceMethod = "free_plan"
	PriceCredit      PriceMethod = "credit"
	PriceMemberPrice PriceMethod = "member_price"
	PricePublicPrice PriceMethod = "public_price"
)

// Price is the pricing outcome of a booking attempt. Credit prices are
// non-monetary: Amount is zero and Credits holds the redeemed count.
type Price struct {
	Amount  decimal.Decimal `json:"amount"`
	Credits int             `json:"credits,omitempty"`
	Method  PriceMethod     `json:"method,omitempty"`
}

type BlockReason string

const (
	BlockClassInactive      BlockReason = "class_inactive"
	BlockVirtualUnavailable BlockReason = "virtual_unavailable"
)

type Decision struct {
	Action     Action         `json:"action"`
	Attendance AttendanceType `json:"attendance_type"`
	Price      Price          `json:"price"`
	Reason     BlockReason    `json:"reason,omitempty"`
}

func (d Decision) Bookable() bool {
	return d.Action == ActionBook || d.Action == ActionWaitlist
}

// ClassView is a class together with the decision for the acting member.
type ClassView struct {
	Class    *ClassSession
	Decision Decision
}

type ClassViewPage struct {
	Items    []ClassView
	Page     int
	PageSize int
	Total    int
}

func (p *ClassViewPage) HasNext() bool {
	return hasNext(p.Page, p.PageSize, len(p.Items), p.Total)
}

type ListClassesInput struct {
	Page       int
	PageSize   int
	MemberID   string
	Attendance AttendanceType
}

type GetClassInput struct {
	ClassID    string
	MemberID   string
	Attendance AttendanceType
}

// BookInput identifies who books what. ActorID is the account holder,
// MemberID is set for a family booking on behalf of a dependent.
type BookInput struct {
	ClassID    string
	ActorID    string
	MemberID   string
	Attendance AttendanceType
}

// ActingMemberID is the party whose memberships and credits pay for the booking.
func (in BookInput) ActingMemberID() string {
	if in.MemberID != "" {
		return in.MemberID
	}
	return in.ActorID
}
