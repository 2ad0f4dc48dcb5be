package dto

type ListClassesQuery struct {
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	MemberID       string `form:"member_id"`
	AttendanceType string `form:"attendance" binding:"omitempty,oneof=in_person zoom"`
}

type ClassQuery struct {
	MemberID       string `form:"member_id"`
	AttendanceType string `form:"attendance" binding:"omitempty,oneof=in_person zoom"`
}

// BookRequest books for the account holder, or for MemberID when set.
type BookRequest struct {
	MemberID       string `json:"member_id"`
	AttendanceType string `json:"attendance_type" binding:"omitempty,oneof=in_person zoom"`
}
