package service_test

import (
	"context"

	"github.com/AlibekovAA/user-registry/internal/user/domain"
	userrepo "github.com/AlibekovAA/user-registry/internal/user/repository"
)

type mockUserRepo struct {
	createFunc         func(ctx context.Context, user domain.User) (domain.User, error)
	listFunc           func(ctx context.Context) ([]domain.User, error)
	findByUsernameFunc func(ctx context.Context, username string) (domain.User, error)
	countFunc          func(ctx context.Context) int
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	if m.findByUsernameFunc != nil {
		return m.findByUsernameFunc(ctx, username)
	}
	return domain.User{}, userrepo.ErrUserNotFound
}

func (m *mockUserRepo) Count(ctx context.Context) int {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0
}
