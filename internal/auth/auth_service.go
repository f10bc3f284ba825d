package auth

import (
	"context"
	"errors"
	"time"

	autherrors "hr-portal/internal/auth/errors"
	"hr-portal/internal/shared/contextutil"
	"hr-portal/internal/shared/token"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenManager is satisfied by *token.Manager.
type TokenManager interface {
	Issue(userID, role string, kind token.Kind) (string, error)
	Parse(raw string, kind token.Kind) (*token.Claims, error)
	TTL(kind token.Kind) time.Duration
}

type Service interface {
	Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error)
	Me(ctx context.Context, userID, role string) (AuthResponse, error)
}

type service struct {
	repo   Repository
	hasher PasswordHasher
	tokens TokenManager
	logger *zap.Logger
}

func NewService(repo Repository, hasher PasswordHasher, tokens TokenManager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, hasher: hasher, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenPair, AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.String("request_id", rid), zap.Error(err))
			return TokenPair{}, AuthResponse{}, err
		}
		s.logger.Info("login unknown email", zap.String("request_id", rid))
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		s.logger.Info("login wrong password",
			zap.String("request_id", rid),
			zap.String("user_id", acc.ID.String()),
		)
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	pair, err := s.issue(acc)
	if err != nil {
		s.logger.Error("login token issue failed", zap.String("request_id", rid), zap.Error(err))
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", acc.ID.String()),
		zap.String("role", acc.Role),
	)
	return pair, mapToResponse(acc), nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (TokenPair, AuthResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, token.KindRefresh)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrTokenExpired
		}
		return TokenPair{}, AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	acc, err := s.repo.FindByID(ctx, claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, AuthResponse{}, autherrors.ErrUserNotFound
		}
		return TokenPair{}, AuthResponse{}, err
	}

	pair, err := s.issue(acc)
	if err != nil {
		return TokenPair{}, AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return pair, mapToResponse(acc), nil
}

func (s *service) Me(ctx context.Context, userID, role string) (AuthResponse, error) {
	acc, err := s.repo.FindByID(ctx, userID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrUserNotFound
		}
		return AuthResponse{}, err
	}
	return mapToResponse(acc), nil
}

func (s *service) issue(acc *Account) (TokenPair, error) {
	access, err := s.tokens.Issue(acc.ID.String(), acc.Role, token.KindAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.Issue(acc.ID.String(), acc.Role, token.KindRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessTTL:    s.tokens.TTL(token.KindAccess),
		RefreshTTL:   s.tokens.TTL(token.KindRefresh),
	}, nil
}

func mapToResponse(acc *Account) AuthResponse {
	return AuthResponse{
		ID:         acc.ID.String(),
		Name:       acc.Name,
		Email:      acc.Email,
		Department: acc.Department,
		Role:       acc.Role,
	}
}
