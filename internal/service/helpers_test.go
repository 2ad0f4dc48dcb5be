package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	classSource  *mocks.MockClassSource
	classCache   *mocks.MockClassCache
	memberSource *mocks.MockMemberSource
	memberCache  *mocks.MockMemberCache
	gateway      *mocks.MockBookingGateway
	notifier     *mocks.MockBookingNotifier

	members  *MemberService
	classes  *ClassService
	bookings *BookingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := newTestLogger(t)

	f := &fixture{
		classSource:  mocks.NewMockClassSource(t),
		classCache:   mocks.NewMockClassCache(t),
		memberSource: mocks.NewMockMemberSource(t),
		memberCache:  mocks.NewMockMemberCache(t),
		gateway:      mocks.NewMockBookingGateway(t),
		notifier:     mocks.NewMockBookingNotifier(t),
	}
	f.members = NewMemberService(f.memberSource, f.memberCache, log)
	f.classes = NewClassService(f.classSource, f.classCache, f.members, RefreshOptions{MaxPages: 3, PageSize: 2}, log)
	f.bookings = NewBookingService(f.classSource, f.gateway, f.members, f.classes, f.notifier, log)
	return f
}

func intPtr(v int) *int { return &v }

func activeClass(id string) *domain.ClassSession {
	return &domain.ClassSession{
		ID:       id,
		Title:    "Morning Flow",
		Capacity: intPtr(10),
		Price:    decimal.NewFromInt(20),
		Status:   domain.ClassStatusActive,
	}
}
