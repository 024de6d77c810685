package services

import (
	"alumni_portal/internal/apperrors"
	"alumni_portal/internal/db/models"
	"alumni_portal/internal/db/repositories"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthenticated)

type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*models.Profile, error)
	SignIn(ctx context.Context, email, password string) (*models.Profile, error)
}

type authService struct {
	profiles   repositories.ProfileRepository
	bcryptCost int
	logger     *zap.SugaredLogger
}

func NewAuthService(profiles repositories.ProfileRepository, logger *zap.SugaredLogger) AuthService {
	return &authService{
		profiles:   profiles,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

func (s *authService) SignUp(ctx context.Context, input SignUpInput) (*models.Profile, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	switch {
	case email == "":
		return nil, apperrors.MissingField("email")
	case input.Password == "":
		return nil, apperrors.MissingField("password")
	case fullName == "":
		return nil, apperrors.MissingField("full_name")
	}

	if address, err := mail.ParseAddress(email); err != nil || address.Address != email {
		return nil, apperrors.InvalidField("email", "is not a valid address")
	}

	if len(input.Password) < minPasswordLength {
		return nil, apperrors.InvalidField("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.InvalidField("password", "cannot be hashed")
	}

	profile, err := s.profiles.Create(ctx, &models.Profile{
		Email:             email,
		PasswordHash:      string(hash),
		FullName:          fullName,
		Role:              models.ProfileRoleMember,
		ContactVisibility: models.ContactVisibilityMembers,
	})
	if err != nil {
		s.logger.Errorw("failed to create profile", "error", err)
		return nil, apperrors.FromStorage(err)
	}

	s.logger.Infow("profile signed up", "profileID", profile.ID)
	return profile, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*models.Profile, error) {
	profile, err := s.profiles.GetOneByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		err = apperrors.FromStorage(err)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return profile, nil
}
