package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusWaitlisted BookingStatus = "waitlisted"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type AttendanceType string

const (
	AttendanceInPerson AttendanceType = "in_person"
	AttendanceZoom     AttendanceType = "zoom"
)

type Booking struct {
	ID             string         `json:"id"`
	ClassID        string         `json:"class_id"`
	MemberID       string         `json:"member_id,omitempty"`
	Status         BookingStatus  `json:"status"`
	AttendanceType AttendanceType `json:"attendance_type"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (b *Booking) Active() bool {
	return b != nil && b.Status != BookingStatusCancelled
}

type IntentKind string

const (
	IntentBook     IntentKind = "book"
	IntentWaitlist IntentKind = "waitlist"
)

// BookingIntent is the single write submitted to the studio API per user action.
type BookingIntent struct {
	ClassID        string         `json:"classId"`
	MemberID       string         `json:"memberId,omitempty"`
	AttendanceType AttendanceType `json:"attendanceType"`
	Intent         IntentKind     `json:"intent"`
}
