package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClassStatus string

const (
	ClassStatusActive    ClassStatus = "active"
	ClassStatusCancelled ClassStatus = "cancelled"
	ClassStatusArchived  ClassStatus = "archived"
)

func (s ClassStatus) Valid() bool {
	switch s {
	case ClassStatusActive, ClassStatusCancelled, ClassStatusArchived:
		return true
	}
	return false
}

// ClassSession is a scheduled, bookable unit. Confirmed counters are owned
// by the studio API and are only read here.
type ClassSession struct {
	ID                     string           `json:"id"`
	Title                  string           `json:"title"`
	InstructorName         string           `json:"instructor_name,omitempty"`
	StartsAt               time.Time        `json:"starts_at"`
	Capacity               *int             `json:"capacity,omitempty"`
	ConfirmedInPersonCount int              `json:"confirmed_in_person_count"`
	ConfirmedVirtualCount  int              `json:"confirmed_virtual_count"`
	ZoomEnabled            bool             `json:"zoom_enabled"`
	Price                  decimal.Decimal  `json:"price"`
	MemberPrice            *decimal.Decimal `json:"member_price,omitempty"`
	AllowCredits           bool             `json:"allow_credits"`
	IncludedPlanIDs        []string         `json:"included_plan_ids,omitempty"`
	Status                 ClassStatus      `json:"status"`
	MyBooking              *Booking         `json:"my_booking,omitempty"`
}

// SpotsLeft returns the remaining in-person spots, or -1 when capacity is unlimited.
func (c *ClassSession) SpotsLeft() int {
	if c.Capacity == nil {
		return -1
	}
	left := *c.Capacity - c.ConfirmedInPersonCount
	if left < 0 {
		return 0
	}
	return left
}

func (c *ClassSession) IncludesPlan(planID string) bool {
	for _, id := range c.IncludedPlanIDs {
		if id == planID {
			return true
		}
	}
	return false
}

type ListClassesParams struct {
	Page     int
	PageSize int
	MemberID string
}

type ClassPage struct {
	Items    []*ClassSession
	Page     int
	PageSize int
	Total    int
}

// HasNext reports whether another page follows this one.
func (p *ClassPage) HasNext() bool {
	return hasNext(p.Page, p.PageSize, len(p.Items), p.Total)
}

func hasNext(page, pageSize, items, total int) bool {
	if pageSize <= 0 || items == 0 {
		return false
	}
	return page*pageSize < total
}
