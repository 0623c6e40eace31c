package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-project-hub/internal/config"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt work factor for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// When non-empty, tokens whose issuer does not match are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		now:              time.Now,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The email is looked up first so an existing account is reported before any
// hashing work is done. The password is hashed with bcrypt and only the hash
// is persisted.
//
// Returns the persisted user or:
//   - store.ErrEmailAlreadyExists if the email is taken (also on a
//     concurrent insert race, via the UNIQUE constraint).
//   - ErrPasswordHashing if bcrypt rejects the password.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(request.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Warn().Str("email", email).Msg("user with this email already exists")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// callers cannot tell which one failed. Storage failures are returned
// wrapped.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(request.Email)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", email).Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.ComparePassword(foundUser.PasswordHash, request.Password) {
		log.Info().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the user's id, email and name, is signed with the
// configured tokenSignKey, carries tokenIssuer as "iss" when set, and expires
// after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Claims(), a.tokenIssuer, a.now(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, bad signature, wrong algorithm, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
