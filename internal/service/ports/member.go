package ports

import (
	"context"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type MemberSource interface {
	GetMember(ctx context.Context, id string) (*domain.Member, error)
}

type MemberCache interface {
	GetMember(ctx context.Context, id string) (*domain.Member, error)
	SetMember(ctx context.Context, m *domain.Member) error
	InvalidateMember(ctx context.Context, ids ...string) error
}
