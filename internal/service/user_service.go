package service

import (
	"context"
	"strconv"
	"strings"

	"chesnokuz/internal/middleware"
	"chesnokuz/internal/models"
	"chesnokuz/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo       repository.UserRepository
	professionRepo repository.ProfessionRepository
	searchRepo     repository.SearchRepository
}

type CreateUserInput struct {
	Email        *string `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfessionID *uint   `json:"profession_id"`
	Bio          string  `json:"bio"`
	IsActive     *bool   `json:"is_active"`
	IsStaff      bool    `json:"is_staff"`
}

// UpdateUserInput replaces the mutable profile wholesale. Password is only
// re-hashed when a new one is supplied.
type UpdateUserInput struct {
	Email        *string `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	ProfessionID *uint   `json:"profession_id"`
	Bio          string  `json:"bio"`
	IsActive     bool    `json:"is_active"`
	IsStaff      bool    `json:"is_staff"`
}

// PatchUserInput carries partial updates. Nil means "leave unchanged".
type PatchUserInput struct {
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	ProfessionID *uint   `json:"profession_id"`
	Bio          *string `json:"bio"`
	IsActive     *bool   `json:"is_active"`
	IsStaff      *bool   `json:"is_staff"`
}

func NewUserService(
	userRepo repository.UserRepository,
	professionRepo repository.ProfessionRepository,
	searchRepo repository.SearchRepository,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		professionRepo: professionRepo,
		searchRepo:     searchRepo,
	}
}

func hashPassword(plain string) (string, error) {
	if len(plain) < 4 {
		return "", models.NewValidationError("Password must be at least 4 characters")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	return string(hashed), nil
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, models.NewValidationError("first_name is required")
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		return nil, models.NewValidationError("email must be a valid address")
	}
	if in.ProfessionID != nil {
		if _, err := s.professionRepo.GetByID(ctx, *in.ProfessionID); err != nil {
			return nil, err
		}
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	user := &models.User{
		Email:        in.Email,
		Password:     hashed,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		ProfessionID: in.ProfessionID,
		Bio:          in.Bio,
		IsActive:     isActive,
		IsStaff:      in.IsStaff,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser resolves the lookup key: a numeric key is an id, anything else is a
// fuzzy first-name search. Fuzzy lookups are recorded as search terms whether
// or not they hit.
func (s *UserService) GetUser(ctx context.Context, key string) (*models.User, error) {
	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		return s.userRepo.GetByID(ctx, uint(id))
	}

	if err := s.searchRepo.RecordTerm(ctx, key); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to record search term",
			"term", key, "error", err)
	} else {
		middleware.SearchTerms.Inc()
	}

	return s.userRepo.GetByName(ctx, key)
}

func (s *UserService) ListUsers(ctx context.Context, isActive *bool) ([]models.User, error) {
	return s.userRepo.List(ctx, isActive)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.FirstName) == "" {
		return nil, models.NewValidationError("first_name is required")
	}
	if in.Email != nil && !strings.Contains(*in.Email, "@") {
		return nil, models.NewValidationError("email must be a valid address")
	}
	if in.ProfessionID != nil {
		if _, err := s.professionRepo.GetByID(ctx, *in.ProfessionID); err != nil {
			return nil, err
		}
	}

	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.ProfessionID = in.ProfessionID
	user.Bio = in.Bio
	user.IsActive = in.IsActive
	user.IsStaff = in.IsStaff
	if in.Password != "" {
		hashed, err := hashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) PatchUser(ctx context.Context, id uint, in PatchUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		if !strings.Contains(*in.Email, "@") {
			return nil, models.NewValidationError("email must be a valid address")
		}
		user.Email = in.Email
	}
	if in.Password != nil {
		hashed, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if in.FirstName != nil {
		if strings.TrimSpace(*in.FirstName) == "" {
			return nil, models.NewValidationError("first_name cannot be empty")
		}
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.ProfessionID != nil {
		if _, err := s.professionRepo.GetByID(ctx, *in.ProfessionID); err != nil {
			return nil, err
		}
		user.ProfessionID = in.ProfessionID
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsStaff != nil {
		user.IsStaff = *in.IsStaff
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
