package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/eligibility"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/singleflight"
)

type BookingService struct {
	classes  ports.ClassSource
	gateway  ports.BookingGateway
	members  *MemberService
	cached   *ClassService
	notifier ports.BookingNotifier
	logger   logger.Logger

	inflight singleflight.Group
}

func NewBookingService(
	classes ports.ClassSource,
	gateway ports.BookingGateway,
	members *MemberService,
	cached *ClassService,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		classes:  classes,
		gateway:  gateway,
		members:  members,
		cached:   cached,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) Decide(ctx context.Context, in domain.BookInput) (domain.Decision, error) {
	_, _, decision, err := s.evaluate(ctx, in, s.members.Get)
	return decision, err
}

// Book shares one submission between concurrent calls of the same member.
func (s *BookingService) Book(ctx context.Context, in domain.BookInput) (*domain.Booking, error) {
	if in.ClassID == "" {
		return nil, fmt.Errorf("%w: class id is required", domain.ErrValidation)
	}

	actingID := in.ActingMemberID()
	if actingID == "" {
		return s.book(ctx, in)
	}

	attendance := in.Attendance
	if attendance == "" {
		attendance = domain.AttendanceInPerson
	}
	key := in.ClassID + "|" + actingID + "|" + string(attendance)

	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		return s.book(context.WithoutCancel(ctx), in)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.logger.Debug("booking submission shared",
				logger.String("class_id", in.ClassID),
				logger.String("member_id", actingID),
			)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Booking), nil
	}
}

func (s *BookingService) book(ctx context.Context, in domain.BookInput) (*domain.Booking, error) {
	class, member, decision, err := s.evaluate(ctx, in, s.members.Fresh)
	if err != nil {
		return nil, err
	}

	intent, err := eligibility.IntentFor(decision)
	if err != nil {
		return nil, err
	}

	if class.MyBooking.Active() {
		return nil, domain.ErrAlreadyBooked
	}

	booking, err := s.gateway.SubmitIntent(ctx, domain.BookingIntent{
		ClassID:        class.ID,
		MemberID:       in.MemberID,
		AttendanceType: decision.Attendance,
		Intent:         intent,
	})

	s.cached.Forget(ctx, class.ID)

	if err != nil {
		s.logger.Warn("booking submission failed",
			logger.String("class_id", class.ID),
			logger.String("member_id", in.ActingMemberID()),
			logger.String("intent", string(intent)),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	if member != nil {
		s.members.Forget(ctx, member.ID)
	}

	s.logger.Info("booking submitted",
		logger.String("booking_id", booking.ID),
		logger.String("class_id", class.ID),
		logger.String("member_id", in.ActingMemberID()),
		logger.String("intent", string(intent)),
		logger.String("status", string(booking.Status)),
		logger.String("price_method", string(decision.Price.Method)),
	)

	if member != nil {
		notifyCtx := context.WithoutCancel(ctx)
		switch booking.Status {
		case domain.BookingStatusWaitlisted:
			go s.notifier.NotifyBookingWaitlisted(notifyCtx, member, class)
		case domain.BookingStatusConfirmed:
			go s.notifier.NotifyBookingConfirmed(notifyCtx, member, class)
		}
	}

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID, actorID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, fmt.Errorf("%w: booking id is required", domain.ErrValidation)
	}

	booking, err := s.gateway.CancelBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, fmt.Errorf("cancel booking: %w", err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	// self bookings come back without a member id
	memberID := booking.MemberID
	if memberID == "" {
		memberID = actorID
	}

	s.cached.Forget(ctx, booking.ClassID)
	if memberID != "" {
		s.members.Forget(ctx, memberID)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("class_id", booking.ClassID),
		logger.String("member_id", memberID),
	)

	if memberID != "" {
		go s.notifyCancelled(context.WithoutCancel(ctx), memberID, booking.ClassID)
	}

	return booking, nil
}

type memberLoader func(ctx context.Context, id string) (*domain.Member, error)

func (s *BookingService) evaluate(ctx context.Context, in domain.BookInput, loadMember memberLoader) (*domain.ClassSession, *domain.Member, domain.Decision, error) {
	actingID := in.ActingMemberID()

	class, err := s.classes.GetClass(ctx, in.ClassID, actingID)
	if err != nil {
		return nil, nil, domain.Decision{}, fmt.Errorf("get class: %w", err)
	}

	member, err := loadMember(ctx, actingID)
	if err != nil {
		return nil, nil, domain.Decision{}, err
	}

	decision, err := eligibility.Decide(class, member, in.Attendance)
	if err != nil {
		return nil, nil, domain.Decision{}, fmt.Errorf("decide: %w", err)
	}

	return class, member, decision, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, memberID, classID string) {
	member, err := s.members.Get(ctx, memberID)
	if err != nil {
		s.logger.Error("failed to get member for cancel notification",
			logger.String("member_id", memberID),
			logger.String("error", err.Error()),
		)
		return
	}

	class, err := s.classes.GetClass(ctx, classID, memberID)
	if err != nil {
		s.logger.Error("failed to get class for cancel notification",
			logger.String("class_id", classID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyBookingCancelled(ctx, member, class)
}
