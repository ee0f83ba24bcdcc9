package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	autherrors "github.com/JohanKruger/traindev-api/internal/auth/errors"
)

const tokenLifetime = 24 * time.Hour

// PermissionSeeder grants a first-time account its starter permissions.
// Satisfied by the userpermission service.
type PermissionSeeder interface {
	EnsureDefaults(ctx context.Context, username string) error
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	directory   DirectoryValidator
	permissions PermissionSeeder
	logger      *zap.Logger
}

func NewService(directory DirectoryValidator, permissions PermissionSeeder, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{directory: directory, permissions: permissions, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	if err := s.directory.Validate(ctx, req.Username, req.Password); err != nil {
		return LoginResponse{}, err
	}

	// A failed seed must not block login; the account authenticated fine.
	if err := s.permissions.EnsureDefaults(ctx, req.Username); err != nil {
		s.logger.Error("failed to seed default permissions",
			zap.String("username", req.Username), zap.Error(err))
	}

	token, err := s.generateToken(req.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{Token: token, Message: "Login successful"}, nil
}

func (s *service) generateToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  username,
		"name": username,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
