package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-project-hub/internal/validators"
	"github.com/MKhiriev/go-project-hub/models"
)

// AuthValidationService rejects incomplete registration and login requests
// before they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, request)
}

// Login reports a missing email or password as ErrInvalidCredentials, the
// same error an unknown email or wrong password produces.
func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
