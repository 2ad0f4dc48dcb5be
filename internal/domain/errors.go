package domain

import "errors"

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrClassNotBookable = errors.New("class is not bookable")
	ErrAlreadyBooked    = errors.New("member already has a booking for this class")
	ErrSubmissionFailed = errors.New("booking submission failed")
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation error")
)
