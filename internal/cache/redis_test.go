package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stretchr/testify/suite"
)

type RedisCacheTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	cache  *RedisCache
}

func (s *RedisCacheTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	c, err := NewRedis(context.Background(), &Config{
		RedisClient: s.client,
		TTL:         time.Minute,
	})
	s.Require().NoError(err)
	s.cache = c
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) TestNewRedis_Validation() {
	_, err := NewRedis(context.Background(), nil)
	s.Error(err)

	_, err = NewRedis(context.Background(), &Config{TTL: time.Minute})
	s.Error(err)

	_, err = NewRedis(context.Background(), &Config{RedisClient: s.client})
	s.Error(err)
}

func (s *RedisCacheTestSuite) TestClassRoundTrip() {
	ctx := context.Background()
	capacity := 12
	memberPrice := decimal.RequireFromString("14.99")

	err := s.cache.SetClass(ctx, &domain.ClassSession{
		ID:                     "c1",
		Title:                  "Barre",
		Capacity:               &capacity,
		ConfirmedInPersonCount: 7,
		Price:                  decimal.NewFromInt(20),
		MemberPrice:            &memberPrice,
		Status:                 domain.ClassStatusActive,
		MyBooking:              &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed},
	})
	s.Require().NoError(err)

	got, err := s.cache.GetClass(ctx, "c1")
	s.Require().NoError(err)
	s.Equal("Barre", got.Title)
	s.Require().NotNil(got.Capacity)
	s.Equal(12, *got.Capacity)
	s.True(got.Price.Equal(decimal.NewFromInt(20)))
	s.Require().NotNil(got.MemberPrice)
	s.True(got.MemberPrice.Equal(memberPrice))
	s.Require().NotNil(got.MyBooking)
	s.Equal("b1", got.MyBooking.ID)
}

func (s *RedisCacheTestSuite) TestClassExpires() {
	ctx := context.Background()
	s.Require().NoError(s.cache.SetClass(ctx, &domain.ClassSession{ID: "c1", Status: domain.ClassStatusActive}))

	s.mr.FastForward(2 * time.Minute)

	_, err := s.cache.GetClass(ctx, "c1")
	s.ErrorIs(err, ErrMiss)
}

func (s *RedisCacheTestSuite) TestInvalidateClass() {
	ctx := context.Background()
	s.Require().NoError(s.cache.SetClass(ctx, &domain.ClassSession{ID: "c1"}))
	s.Require().NoError(s.cache.SetClass(ctx, &domain.ClassSession{ID: "c2"}))

	s.Require().NoError(s.cache.InvalidateClass(ctx, "c1", ""))

	_, err := s.cache.GetClass(ctx, "c1")
	s.ErrorIs(err, ErrMiss)
	_, err = s.cache.GetClass(ctx, "c2")
	s.NoError(err)

	s.NoError(s.cache.InvalidateClass(ctx))
}

func (s *RedisCacheTestSuite) TestMemberRoundTripAndInvalidate() {
	ctx := context.Background()
	chatID := int64(77)
	s.Require().NoError(s.cache.SetMember(ctx, &domain.Member{
		ID:             "m1",
		TelegramChatID: &chatID,
		Memberships:    []domain.Membership{{PlanID: "gold", Status: domain.MembershipStatusActive}},
		PurchasedPacks: []domain.Pack{{RemainingCredits: 2}},
	}))

	got, err := s.cache.GetMember(ctx, "m1")
	s.Require().NoError(err)
	s.Require().NotNil(got.TelegramChatID)
	s.Equal(int64(77), *got.TelegramChatID)
	s.True(got.HasCredits())

	s.Require().NoError(s.cache.InvalidateMember(ctx, "m1"))
	_, err = s.cache.GetMember(ctx, "m1")
	s.ErrorIs(err, ErrMiss)
}

func (s *RedisCacheTestSuite) TestSetRejectsEmptyID() {
	ctx := context.Background()
	s.Error(s.cache.SetClass(ctx, &domain.ClassSession{}))
	s.Error(s.cache.SetMember(ctx, nil))
}

func (s *RedisCacheTestSuite) TestNopAlwaysMisses() {
	var n Nop
	ctx := context.Background()
	s.NoError(n.SetClass(ctx, &domain.ClassSession{ID: "c1"}))
	_, err := n.GetClass(ctx, "c1")
	s.ErrorIs(err, ErrMiss)
	_, err = n.GetMember(ctx, "m1")
	s.ErrorIs(err, ErrMiss)
}
