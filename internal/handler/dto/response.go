package dto

import (
	"time"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type ClassResponse struct {
	ID                     string           `json:"id"`
	Title                  string           `json:"title"`
	InstructorName         string           `json:"instructor_name,omitempty"`
	StartsAt               string           `json:"starts_at"`
	Capacity               *int             `json:"capacity"`
	SpotsLeft              *int             `json:"spots_left"`
	ConfirmedInPersonCount int              `json:"confirmed_in_person_count"`
	ConfirmedVirtualCount  int              `json:"confirmed_virtual_count"`
	ZoomEnabled            bool             `json:"zoom_enabled"`
	Price                  string           `json:"price"`
	MemberPrice            *string          `json:"member_price,omitempty"`
	AllowCredits           bool             `json:"allow_credits"`
	Status                 string           `json:"status"`
	MyBooking              *BookingResponse `json:"my_booking,omitempty"`
}

type PriceResponse struct {
	Amount  string `json:"amount"`
	Credits int    `json:"credits,omitempty"`
	Method  string `json:"method,omitempty"`
}

type DecisionResponse struct {
	Action         string        `json:"action"`
	AttendanceType string        `json:"attendance_type"`
	Price          PriceResponse `json:"price"`
	Reason         string        `json:"reason,omitempty"`
}

type ClassViewResponse struct {
	Class    ClassResponse    `json:"class"`
	Decision DecisionResponse `json:"decision"`
}

type ClassPageResponse struct {
	Items    []ClassViewResponse `json:"items"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Total    int                 `json:"total"`
	HasNext  bool                `json:"has_next"`
}

type BookingResponse struct {
	ID             string `json:"id"`
	ClassID        string `json:"class_id"`
	MemberID       string `json:"member_id,omitempty"`
	Status         string `json:"status"`
	AttendanceType string `json:"attendance_type"`
	CreatedAt      string `json:"created_at,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func ToClassResponse(c *domain.ClassSession) ClassResponse {
	resp := ClassResponse{
		ID:                     c.ID,
		Title:                  c.Title,
		InstructorName:         c.InstructorName,
		StartsAt:               c.StartsAt.Format(time.RFC3339),
		Capacity:               c.Capacity,
		ConfirmedInPersonCount: c.ConfirmedInPersonCount,
		ConfirmedVirtualCount:  c.ConfirmedVirtualCount,
		ZoomEnabled:            c.ZoomEnabled,
		Price:                  c.Price.StringFixed(2),
		AllowCredits:           c.AllowCredits,
		Status:                 string(c.Status),
	}
	if left := c.SpotsLeft(); left >= 0 {
		resp.SpotsLeft = &left
	}
	if c.MemberPrice != nil {
		mp := c.MemberPrice.StringFixed(2)
		resp.MemberPrice = &mp
	}
	if c.MyBooking != nil {
		b := ToBookingResponse(c.MyBooking)
		resp.MyBooking = &b
	}
	return resp
}

func ToDecisionResponse(d domain.Decision) DecisionResponse {
	return DecisionResponse{
		Action:         string(d.Action),
		AttendanceType: string(d.Attendance),
		Price: PriceResponse{
			Amount:  d.Price.Amount.StringFixed(2),
			Credits: d.Price.Credits,
			Method:  string(d.Price.Method),
		},
		Reason: string(d.Reason),
	}
}

func ToClassViewResponse(v *domain.ClassView) ClassViewResponse {
	return ClassViewResponse{
		Class:    ToClassResponse(v.Class),
		Decision: ToDecisionResponse(v.Decision),
	}
}

func ToClassPageResponse(p *domain.ClassViewPage) ClassPageResponse {
	items := make([]ClassViewResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, ToClassViewResponse(&p.Items[i]))
	}

	return ClassPageResponse{
		Items:    items,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    p.Total,
		HasNext:  p.HasNext(),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID,
		ClassID:        b.ClassID,
		MemberID:       b.MemberID,
		Status:         string(b.Status),
		AttendanceType: string(b.AttendanceType),
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
