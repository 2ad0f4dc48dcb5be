package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const MemberHeader = "X-Member-ID"

type ClassSvc interface {
	List(ctx context.Context, in domain.ListClassesInput) (*domain.ClassViewPage, error)
	Get(ctx context.Context, in domain.GetClassInput) (*domain.ClassView, error)
}

type BookingSvc interface {
	Decide(ctx context.Context, in domain.BookInput) (domain.Decision, error)
	Book(ctx context.Context, in domain.BookInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, actorID string) (*domain.Booking, error)
}

type Handler struct {
	classService   ClassSvc
	bookingService BookingSvc
}

func NewHandler(classService ClassSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		classService:   classService,
		bookingService: bookingService,
	}
}

// Classes

func (h *Handler) ListClasses(c *ginext.Context) {
	var q dto.ListClassesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.classService.List(c.Request.Context(), domain.ListClassesInput{
		Page:       q.Page,
		PageSize:   q.PageSize,
		MemberID:   actingMember(c, q.MemberID),
		Attendance: domain.AttendanceType(q.AttendanceType),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassPageResponse(page))
}

func (h *Handler) GetClass(c *ginext.Context) {
	classID, ok := pathID(c, "invalid class id")
	if !ok {
		return
	}

	var q dto.ClassQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.classService.Get(c.Request.Context(), domain.GetClassInput{
		ClassID:    classID,
		MemberID:   actingMember(c, q.MemberID),
		Attendance: domain.AttendanceType(q.AttendanceType),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassViewResponse(view))
}

func (h *Handler) GetDecision(c *ginext.Context) {
	classID, ok := pathID(c, "invalid class id")
	if !ok {
		return
	}

	var q dto.ClassQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	decision, err := h.bookingService.Decide(c.Request.Context(), domain.BookInput{
		ClassID:    classID,
		ActorID:    accountHolder(c),
		MemberID:   strings.TrimSpace(q.MemberID),
		Attendance: domain.AttendanceType(q.AttendanceType),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDecisionResponse(decision))
}

// Bookings

func (h *Handler) BookClass(c *ginext.Context) {
	classID, ok := pathID(c, "invalid class id")
	if !ok {
		return
	}

	var req dto.BookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.BookInput{
		ClassID:    classID,
		ActorID:    accountHolder(c),
		MemberID:   strings.TrimSpace(req.MemberID),
		Attendance: domain.AttendanceType(req.AttendanceType),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, ok := pathID(c, "invalid booking id")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID, accountHolder(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func pathID(c *ginext.Context, msg string) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func accountHolder(c *ginext.Context) string {
	return strings.TrimSpace(c.GetHeader(MemberHeader))
}

func actingMember(c *ginext.Context, explicit string) string {
	if id := strings.TrimSpace(explicit); id != "" {
		return id
	}
	return accountHolder(c)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrClassNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrClassNotBookable),
		errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSubmissionFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:     domain.ErrSubmissionFailed.Error(),
			Retryable: true,
		})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
