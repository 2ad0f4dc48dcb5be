package ports

import (
	"context"

	"github.com/stpnv0/ClassBooker/internal/domain"
)

type ClassSource interface {
	GetClass(ctx context.Context, id, memberID string) (*domain.ClassSession, error)
	ListClasses(ctx context.Context, params domain.ListClassesParams) (*domain.ClassPage, error)
}

type ClassCache interface {
	GetClass(ctx context.Context, id string) (*domain.ClassSession, error)
	SetClass(ctx context.Context, c *domain.ClassSession) error
	InvalidateClass(ctx context.Context, ids ...string) error
}
