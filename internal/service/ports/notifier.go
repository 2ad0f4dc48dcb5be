package ports

import (
	"context"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, member *domain.Member, class *domain.ClassSession)
	NotifyBookingWaitlisted(ctx context.Context, member *domain.Member, class *domain.ClassSession)
	NotifyBookingCancelled(ctx context.Context, member *domain.Member, class *domain.ClassSession)
}
