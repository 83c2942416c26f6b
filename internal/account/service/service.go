// Package service provides business logic layer for the account module.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bungee-astro/tracker-api/internal/account/model"
	"github.com/bungee-astro/tracker-api/internal/account/repository"
	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/config"
	"github.com/bungee-astro/tracker-api/internal/token"
)

// Service defines the interface for account business logic operations.
type Service interface {
	// Register creates an account and profile for an allow-listed identity.
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)

	// Login authenticates by email or username and issues a token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)

	// ListProfiles returns all developer profiles.
	ListProfiles(ctx context.Context) (*model.ProfilesResponse, error)

	// UpdateAvatar sets the caller's profile avatar URL.
	UpdateAvatar(ctx context.Context, accountID uint, req *model.UpdateAvatarRequest) (*model.Profile, error)
}

type service struct {
	repo       repository.Repository
	tokens     *token.Service
	cfg        config.AuthConfig
	bcryptCost int
	logger     *zap.SugaredLogger
}

// New creates a new account service instance.
func New(repo repository.Repository, tokens *token.Service, cfg config.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:       repo,
		tokens:     tokens,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// NewWithBcryptCost creates a service with a custom bcrypt cost. Tests use
// bcrypt.MinCost to avoid the hashing overhead of the production cost.
func NewWithBcryptCost(
	repo repository.Repository,
	tokens *token.Service,
	cfg config.AuthConfig,
	cost int,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:       repo,
		tokens:     tokens,
		cfg:        cfg,
		bcryptCost: cost,
		logger:     logger,
	}
}

// Register creates an account and profile for an allow-listed identity.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	s.logger.Debugw("Register called", "username", req.Username)

	if !s.cfg.IsAllowedUser(req.Username) {
		s.logger.Warnw("Register rejected: identity not on allow-list", "username", req.Username)
		return nil, apperror.Forbidden("registration is restricted to project developers")
	}

	if req.RegistrationSecret != s.cfg.RegistrationSecret {
		s.logger.Warnw("Register rejected: wrong registration secret", "username", req.Username)
		return nil, apperror.Forbidden("invalid registration secret")
	}

	if !strings.EqualFold(req.Username, req.DeveloperType) {
		return nil, apperror.Validation("developer_type",
			"developer_type must equal username ("+strings.ToLower(req.Username)+")")
	}

	username := strings.ToLower(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		s.logger.Errorw("Register failed checking duplicates", "username", username, "error", err)
		return nil, err
	}
	if taken {
		return nil, apperror.Conflict("account", "username or email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Errorw("Register failed hashing password", "error", err)
		return nil, err
	}

	account := &model.Account{
		Username:      username,
		Email:         email,
		PasswordHash:  string(hash),
		DeveloperType: username,
	}

	if _, err := s.repo.CreateWithProfile(ctx, account); err != nil {
		s.logger.Errorw("Register failed persisting account", "username", username, "error", err)
		return nil, err
	}

	signed, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Register completed", "account_id", account.ID, "username", username)
	return &model.AuthResponse{
		Message: "account created",
		Token:   signed,
		Account: *account,
	}, nil
}

// Login authenticates by email or username and issues a token. The error
// message never reveals which credential field was wrong.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	s.logger.Debugw("Login called", "identifier", req.Identifier)

	var (
		account *model.Account
		err     error
	)
	if strings.Contains(req.Identifier, "@") {
		account, err = s.repo.GetByEmail(ctx, strings.ToLower(req.Identifier))
	} else {
		account, err = s.repo.GetByUsername(ctx, req.Identifier)
	}

	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, apperror.Unauthorized("invalid credentials")
		}
		s.logger.Errorw("Login failed", "identifier", req.Identifier, "error", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	signed, err := s.issueToken(account)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Login completed", "account_id", account.ID)
	return &model.AuthResponse{
		Message: "login successful",
		Token:   signed,
		Account: *account,
	}, nil
}

// ListProfiles returns all developer profiles.
func (s *service) ListProfiles(ctx context.Context) (*model.ProfilesResponse, error) {
	profiles, err := s.repo.ListProfiles(ctx)
	if err != nil {
		s.logger.Errorw("ListProfiles failed", "error", err)
		return nil, err
	}
	return &model.ProfilesResponse{Profiles: profiles}, nil
}

// UpdateAvatar sets the caller's profile avatar URL.
func (s *service) UpdateAvatar(
	ctx context.Context,
	accountID uint,
	req *model.UpdateAvatarRequest,
) (*model.Profile, error) {
	profile, err := s.repo.UpdateAvatar(ctx, accountID, req.AvatarURL)
	if err != nil {
		if errors.Is(err, model.ErrProfileNotFound) {
			return nil, apperror.NotFound("profile", "for current account")
		}
		s.logger.Errorw("UpdateAvatar failed", "account_id", accountID, "error", err)
		return nil, err
	}

	s.logger.Infow("UpdateAvatar completed", "account_id", accountID)
	return profile, nil
}

func (s *service) issueToken(account *model.Account) (string, error) {
	signed, err := s.tokens.Issue(token.Claims{
		ID:            account.ID,
		Username:      account.Username,
		Email:         account.Email,
		DeveloperType: account.DeveloperType,
	})
	if err != nil {
		s.logger.Errorw("issuing token failed", "account_id", account.ID, "error", err)
		return "", err
	}
	return signed, nil
}
