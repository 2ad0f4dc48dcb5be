package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/ClassBooker/internal/cache"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/eligibility"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type RefreshOptions struct {
	MaxPages int
	PageSize int
}

type ClassService struct {
	source  ports.ClassSource
	cache   ports.ClassCache
	members *MemberService
	refresh RefreshOptions
	logger  logger.Logger
}

func NewClassService(
	source ports.ClassSource,
	cache ports.ClassCache,
	members *MemberService,
	refresh RefreshOptions,
	logger logger.Logger,
) *ClassService {
	if refresh.MaxPages <= 0 {
		refresh.MaxPages = 1
	}
	if refresh.PageSize <= 0 || refresh.PageSize > maxPageSize {
		refresh.PageSize = defaultPageSize
	}
	return &ClassService{
		source:  source,
		cache:   cache,
		members: members,
		refresh: refresh,
		logger:  logger,
	}
}

func (s *ClassService) List(ctx context.Context, in domain.ListClassesInput) (*domain.ClassViewPage, error) {
	if in.Page < 0 || in.PageSize < 0 {
		return nil, fmt.Errorf("%w: page and page_size must not be negative", domain.ErrValidation)
	}
	if in.Page == 0 {
		in.Page = 1
	}
	if in.PageSize == 0 {
		in.PageSize = defaultPageSize
	}
	if in.PageSize > maxPageSize {
		return nil, fmt.Errorf("%w: page_size must not exceed %d", domain.ErrValidation, maxPageSize)
	}

	member, err := s.members.Get(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}

	page, err := s.source.ListClasses(ctx, domain.ListClassesParams{
		Page:     in.Page,
		PageSize: in.PageSize,
		MemberID: in.MemberID,
	})
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}

	res := &domain.ClassViewPage{
		Items:    make([]domain.ClassView, 0, len(page.Items)),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
	}
	for _, c := range page.Items {
		decision, err := eligibility.Decide(c, member, in.Attendance)
		if err != nil {
			// malformed classes are dropped from the page
			s.logger.Warn("class skipped",
				logger.String("class_id", c.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		s.store(ctx, c)
		res.Items = append(res.Items, domain.ClassView{Class: c, Decision: decision})
	}

	return res, nil
}

func (s *ClassService) Get(ctx context.Context, in domain.GetClassInput) (*domain.ClassView, error) {
	if in.ClassID == "" {
		return nil, fmt.Errorf("%w: class id is required", domain.ErrValidation)
	}

	member, err := s.members.Get(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}

	class, err := s.load(ctx, in.ClassID, in.MemberID)
	if err != nil {
		return nil, err
	}

	decision, err := eligibility.Decide(class, member, in.Attendance)
	if err != nil {
		return nil, fmt.Errorf("decide: %w", err)
	}

	return &domain.ClassView{Class: class, Decision: decision}, nil
}

func (s *ClassService) Refresh(ctx context.Context) (int, error) {
	stored := 0
	for p := 1; p <= s.refresh.MaxPages; p++ {
		page, err := s.source.ListClasses(ctx, domain.ListClassesParams{
			Page:     p,
			PageSize: s.refresh.PageSize,
		})
		if err != nil {
			return stored, fmt.Errorf("refresh page %d: %w", p, err)
		}

		for _, c := range page.Items {
			if s.store(ctx, c) {
				stored++
			}
		}

		if !page.HasNext() {
			break
		}
	}

	return stored, nil
}

// member reads skip the cache, the class carries their own booking
func (s *ClassService) load(ctx context.Context, classID, memberID string) (*domain.ClassSession, error) {
	if memberID == "" {
		c, err := s.cache.GetClass(ctx, classID)
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("class cache read failed",
				logger.String("class_id", classID),
				logger.String("error", err.Error()),
			)
		}
	}

	c, err := s.source.GetClass(ctx, classID, memberID)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}
	s.store(ctx, c)

	return c, nil
}

func (s *ClassService) store(ctx context.Context, c *domain.ClassSession) bool {
	shared := *c
	shared.MyBooking = nil

	if err := s.cache.SetClass(ctx, &shared); err != nil {
		s.logger.Warn("class cache write failed",
			logger.String("class_id", c.ID),
			logger.String("error", err.Error()),
		)
		return false
	}
	return true
}

func (s *ClassService) Forget(ctx context.Context, ids ...string) {
	if err := s.cache.InvalidateClass(ctx, ids...); err != nil {
		s.logger.Warn("class cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
}
