package studioapi

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/ClassBooker/internal/domain"
)

var validate = validator.New()

type bookingPayload struct {
	ID             string    `json:"id"             validate:"required"`
	ClassID        string    `json:"classId"`
	MemberID       string    `json:"memberId"`
	Status         string    `json:"status"         validate:"required,oneof=confirmed waitlisted cancelled"`
	AttendanceType string    `json:"attendanceType" validate:"omitempty,oneof=in_person zoom"`
	CreatedAt      time.Time `json:"createdAt"`
}

type classPayload struct {
	ID                     string           `json:"id"                     validate:"required"`
	Title                  string           `json:"title"`
	InstructorName         string           `json:"instructorName"`
	StartsAt               time.Time        `json:"startsAt"`
	Capacity               *int             `json:"capacity"               validate:"omitempty,gt=0"`
	ConfirmedInPersonCount int              `json:"confirmedInPersonCount" validate:"gte=0"`
	ConfirmedVirtualCount  int              `json:"confirmedVirtualCount"  validate:"gte=0"`
	ZoomEnabled            bool             `json:"zoomEnabled"`
	Price                  *decimal.Decimal `json:"price"`
	MemberPrice            *decimal.Decimal `json:"memberPrice"`
	AllowCredits           bool             `json:"allowCredits"`
	IncludedPlanIDs        []string         `json:"includedPlanIds"        validate:"dive,required"`
	Status                 string           `json:"status"                 validate:"required,oneof=active cancelled archived"`
	MyBooking              *bookingPayload  `json:"myBooking"`
}

type membershipPayload struct {
	PlanID string `json:"planId" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type packPayload struct {
	ID               string `json:"id"`
	RemainingCredits int    `json:"remainingCredits" validate:"gte=0"`
}

type memberPayload struct {
	ID             string              `json:"id"             validate:"required"`
	Name           string              `json:"name"`
	TelegramChatID *int64              `json:"telegramChatId"`
	Memberships    []membershipPayload `json:"memberships"    validate:"dive"`
	PurchasedPacks []packPayload       `json:"purchasedPacks" validate:"dive"`
}

type classPagePayload struct {
	Items    []classPayload `json:"items"    validate:"dive"`
	Page     int            `json:"page"     validate:"gte=0"`
	PageSize int            `json:"pageSize" validate:"gte=0"`
	Total    int            `json:"total"    validate:"gte=0"`
}

func (p *bookingPayload) toDomain(classID string) *domain.Booking {
	b := &domain.Booking{
		ID:             p.ID,
		ClassID:        p.ClassID,
		MemberID:       p.MemberID,
		Status:         domain.BookingStatus(p.Status),
		AttendanceType: domain.AttendanceType(p.AttendanceType),
		CreatedAt:      p.CreatedAt,
	}
	if b.ClassID == "" {
		b.ClassID = classID
	}
	if b.AttendanceType == "" {
		b.AttendanceType = domain.AttendanceInPerson
	}
	return b
}

func (p *classPayload) toDomain() *domain.ClassSession {
	c := &domain.ClassSession{
		ID:                     p.ID,
		Title:                  p.Title,
		InstructorName:         p.InstructorName,
		StartsAt:               p.StartsAt,
		Capacity:               p.Capacity,
		ConfirmedInPersonCount: p.ConfirmedInPersonCount,
		ConfirmedVirtualCount:  p.ConfirmedVirtualCount,
		ZoomEnabled:            p.ZoomEnabled,
		Price:                  decimal.Zero,
		MemberPrice:            p.MemberPrice,
		AllowCredits:           p.AllowCredits,
		IncludedPlanIDs:        p.IncludedPlanIDs,
		Status:                 domain.ClassStatus(p.Status),
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.MyBooking != nil {
		c.MyBooking = p.MyBooking.toDomain(p.ID)
	}
	return c
}

func (p *memberPayload) toDomain() *domain.Member {
	m := &domain.Member{
		ID:             p.ID,
		Name:           p.Name,
		TelegramChatID: p.TelegramChatID,
	}
	for _, ms := range p.Memberships {
		m.Memberships = append(m.Memberships, domain.Membership{
			PlanID: ms.PlanID,
			Status: domain.MembershipStatus(ms.Status),
		})
	}
	for _, pk := range p.PurchasedPacks {
		m.PurchasedPacks = append(m.PurchasedPacks, domain.Pack{
			ID:               pk.ID,
			RemainingCredits: pk.RemainingCredits,
		})
	}
	return m
}

func checkPayload(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// DecodeClass reads a class session in the studio API wire format.
func DecodeClass(r io.Reader) (*domain.ClassSession, error) {
	var p classPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decode class: %v", domain.ErrInvalidInput, err)
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}
	return p.toDomain(), nil
}

// DecodeMember reads a member in the studio API wire format.
func DecodeMember(r io.Reader) (*domain.Member, error) {
	var p memberPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: decode member: %v", domain.ErrInvalidInput, err)
	}
	if err := checkPayload(&p); err != nil {
		return nil, err
	}
	return p.toDomain(), nil
}
