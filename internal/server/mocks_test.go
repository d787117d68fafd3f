package server

import (
	"context"

	"chesnokuz/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, isActive *bool) ([]models.User, error) {
	args := m.Called(ctx, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSearchRepository is a testify mock for repository.SearchRepository.
type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) RecordTerm(ctx context.Context, term string) error {
	args := m.Called(ctx, term)
	return args.Error(0)
}

func (m *MockSearchRepository) List(ctx context.Context) ([]models.UserSearch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSearch), args.Error(1)
}

// MockProfessionRepository is a testify mock for repository.ProfessionRepository.
type MockProfessionRepository struct {
	mock.Mock
}

func (m *MockProfessionRepository) Create(ctx context.Context, profession *models.Profession) error {
	args := m.Called(ctx, profession)
	return args.Error(0)
}

func (m *MockProfessionRepository) GetByID(ctx context.Context, id uint) (*models.Profession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profession), args.Error(1)
}

func (m *MockProfessionRepository) List(ctx context.Context) ([]models.Profession, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profession), args.Error(1)
}
