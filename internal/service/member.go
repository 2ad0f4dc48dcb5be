package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/ClassBooker/internal/cache"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type MemberService struct {
	source ports.MemberSource
	cache  ports.MemberCache
	logger logger.Logger
}

func NewMemberService(source ports.MemberSource, cache ports.MemberCache, logger logger.Logger) *MemberService {
	return &MemberService{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// Get returns the member, or nil for a guest (empty id).
func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	if id == "" {
		return nil, nil
	}

	m, err := s.cache.GetMember(ctx, id)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("member cache read failed",
			logger.String("member_id", id),
			logger.String("error", err.Error()),
		)
	}

	m, err = s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.cache.SetMember(ctx, m); err != nil {
		s.logger.Warn("member cache write failed",
			logger.String("member_id", id),
			logger.String("error", err.Error()),
		)
	}

	return m, nil
}

// Fresh bypasses the cache.
func (s *MemberService) Fresh(ctx context.Context, id string) (*domain.Member, error) {
	if id == "" {
		return nil, nil
	}
	return s.fetch(ctx, id)
}

func (s *MemberService) fetch(ctx context.Context, id string) (*domain.Member, error) {
	m, err := s.source.GetMember(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

func (s *MemberService) Forget(ctx context.Context, ids ...string) {
	if err := s.cache.InvalidateMember(ctx, ids...); err != nil {
		s.logger.Warn("member cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
}
