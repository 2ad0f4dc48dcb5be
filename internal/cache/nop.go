package cache

import (
	"context"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

// Nop is used when no Redis is configured. Every read misses.
type Nop struct{}

func (Nop) GetClass(context.Context, string) (*domain.ClassSession, error) { return nil, ErrMiss }
func (Nop) SetClass(context.Context, *domain.ClassSession) error          { return nil }
func (Nop) InvalidateClass(context.Context, ...string) error              { return nil }
func (Nop) GetMember(context.Context, string) (*domain.Member, error)     { return nil, ErrMiss }
func (Nop) SetMember(context.Context, *domain.Member) error               { return nil }
func (Nop) InvalidateMember(context.Context, ...string) error             { return nil }
