package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ClassBooker/internal/cache"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClassService_List(t *testing.T) {
	f := newFixture(t)
	open := activeClass("c1")
	full := activeClass("c2")
	full.ConfirmedInPersonCount = 10
	broken := activeClass("c3")
	broken.Status = "unknown"

	f.classSource.EXPECT().ListClasses(mock.Anything, domain.ListClassesParams{Page: 1, PageSize: 20}).
		Return(&domain.ClassPage{Items: []*domain.ClassSession{open, full, broken}, Page: 1, PageSize: 20, Total: 3}, nil)
	f.classCache.EXPECT().SetClass(mock.Anything, mock.Anything).Return(nil).Twice()

	page, err := f.classes.List(context.Background(), domain.ListClassesInput{})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, domain.ActionBook, page.Items[0].Decision.Action)
	assert.Equal(t, domain.ActionWaitlist, page.Items[1].Decision.Action)
	assert.Equal(t, 3, page.Total)
}

func TestClassService_List_ForMember(t *testing.T) {
	f := newFixture(t)
	class := activeClass("c1")
	class.IncludedPlanIDs = []string{"unlimited"}
	member := &domain.Member{ID: "m1", Memberships: []domain.Membership{{PlanID: "unlimited", Status: domain.MembershipStatusActive}}}

	f.memberCache.EXPECT().GetMember(mock.Anything, "m1").Return(member, nil)
	f.classSource.EXPECT().ListClasses(mock.Anything, domain.ListClassesParams{Page: 2, PageSize: 5, MemberID: "m1"}).
		Return(&domain.ClassPage{Items: []*domain.ClassSession{class}, Page: 2, PageSize: 5, Total: 6}, nil)
	f.classCache.EXPECT().SetClass(mock.Anything, mock.Anything).Return(nil)

	page, err := f.classes.List(context.Background(), domain.ListClassesInput{Page: 2, PageSize: 5, MemberID: "m1"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.PriceFreePlan, page.Items[0].Decision.Price.Method)
	assert.True(t, page.Items[0].Decision.Price.Amount.IsZero())
}

func TestClassService_List_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.classes.List(context.Background(), domain.ListClassesInput{PageSize: 101})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.classes.List(context.Background(), domain.ListClassesInput{Page: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClassService_List_UpstreamError(t *testing.T) {
	f := newFixture(t)

	f.classSource.EXPECT().ListClasses(mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	_, err := f.classes.List(context.Background(), domain.ListClassesInput{})

	assert.Error(t, err)
}

func TestClassService_Get_GuestFromCache(t *testing.T) {
	f := newFixture(t)

	f.classCache.EXPECT().GetClass(mock.Anything, "c1").Return(activeClass("c1"), nil)

	view, err := f.classes.Get(context.Background(), domain.GetClassInput{ClassID: "c1"})

	require.NoError(t, err)
	assert.Equal(t, "c1", view.Class.ID)
	assert.Equal(t, domain.ActionBook, view.Decision.Action)
}

func TestClassService_Get_GuestMissFetches(t *testing.T) {
	f := newFixture(t)

	f.classCache.EXPECT().GetClass(mock.Anything, "c1").Return(nil, cache.ErrMiss)
	f.classSource.EXPECT().GetClass(mock.Anything, "c1", "").Return(activeClass("c1"), nil)
	f.classCache.EXPECT().SetClass(mock.Anything, mock.Anything).Return(nil)

	_, err := f.classes.Get(context.Background(), domain.GetClassInput{ClassID: "c1"})

	require.NoError(t, err)
}

func TestClassService_Get_MemberBypassesCacheAndStripsBooking(t *testing.T) {
	f := newFixture(t)
	class := activeClass("c1")
	class.MyBooking = &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}

	f.memberCache.EXPECT().GetMember(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	f.classSource.EXPECT().GetClass(mock.Anything, "c1", "m1").Return(class, nil)
	f.classCache.EXPECT().SetClass(mock.Anything, mock.MatchedBy(func(c *domain.ClassSession) bool {
		return c.ID == "c1" && c.MyBooking == nil
	})).Return(nil)

	view, err := f.classes.Get(context.Background(), domain.GetClassInput{ClassID: "c1", MemberID: "m1"})

	require.NoError(t, err)
	require.NotNil(t, view.Class.MyBooking)
	assert.Equal(t, "b1", view.Class.MyBooking.ID)
}

func TestClassService_Get_NotFound(t *testing.T) {
	f := newFixture(t)

	f.classCache.EXPECT().GetClass(mock.Anything, "missing").Return(nil, cache.ErrMiss)
	f.classSource.EXPECT().GetClass(mock.Anything, "missing", "").Return(nil, domain.ErrClassNotFound)

	_, err := f.classes.Get(context.Background(), domain.GetClassInput{ClassID: "missing"})

	assert.ErrorIs(t, err, domain.ErrClassNotFound)
}

func TestClassService_Get_RequiresID(t *testing.T) {
	f := newFixture(t)

	_, err := f.classes.Get(context.Background(), domain.GetClassInput{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClassService_Refresh(t *testing.T) {
	f := newFixture(t)

	f.classSource.EXPECT().ListClasses(mock.Anything, domain.ListClassesParams{Page: 1, PageSize: 2}).
		Return(&domain.ClassPage{Items: []*domain.ClassSession{activeClass("c1"), activeClass("c2")}, Page: 1, PageSize: 2, Total: 3}, nil)
	f.classSource.EXPECT().ListClasses(mock.Anything, domain.ListClassesParams{Page: 2, PageSize: 2}).
		Return(&domain.ClassPage{Items: []*domain.ClassSession{activeClass("c3")}, Page: 2, PageSize: 2, Total: 3}, nil)
	f.classCache.EXPECT().SetClass(mock.Anything, mock.Anything).Return(nil).Times(3)

	n, err := f.classes.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestClassService_Refresh_StopsAtMaxPages(t *testing.T) {
	f := newFixture(t)
	page := func(p int) *domain.ClassPage {
		return &domain.ClassPage{Items: []*domain.ClassSession{activeClass("c"), activeClass("d")}, Page: p, PageSize: 2, Total: 100}
	}

	for p := 1; p <= 3; p++ {
		f.classSource.EXPECT().ListClasses(mock.Anything, domain.ListClassesParams{Page: p, PageSize: 2}).Return(page(p), nil).Once()
	}
	f.classCache.EXPECT().SetClass(mock.Anything, mock.Anything).Return(nil).Times(6)

	n, err := f.classes.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestClassService_Refresh_Error(t *testing.T) {
	f := newFixture(t)

	f.classSource.EXPECT().ListClasses(mock.Anything, mock.Anything).Return(nil, errors.New("unavailable"))

	n, err := f.classes.Refresh(context.Background())

	assert.Error(t, err)
	assert.Zero(t, n)
}
