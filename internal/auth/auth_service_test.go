package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JohanKruger/traindev-api/internal/auth"
	autherrors "github.com/JohanKruger/traindev-api/internal/auth/errors"
)

type fakeDirectory struct {
	ValidateFn func(ctx context.Context, username, password string) error
}

func (f *fakeDirectory) Validate(ctx context.Context, username, password string) error {
	return f.ValidateFn(ctx, username, password)
}

type fakeSeeder struct {
	EnsureDefaultsFn func(ctx context.Context, username string) error
}

func (f *fakeSeeder) EnsureDefaults(ctx context.Context, username string) error {
	return f.EnsureDefaultsFn(ctx, username)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("returns a signed token on success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		seeded := ""
		directory := &fakeDirectory{
			ValidateFn: func(ctx context.Context, username, password string) error { return nil },
		}
		seeder := &fakeSeeder{
			EnsureDefaultsFn: func(ctx context.Context, username string) error {
				seeded = username
				return nil
			},
		}
		svc := auth.NewService(directory, seeder, zap.NewNop())

		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "jkruger",
			Password: "hunter2",
		})

		require.NoError(t, err)
		assert.Equal(t, "jkruger", seeded)
		assert.Equal(t, "Login successful", resp.Message)

		token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "jkruger", claims["sub"])
		assert.NotEmpty(t, claims["jti"])
	})

	t.Run("directory rejection passes through", func(t *testing.T) {
		directory := &fakeDirectory{
			ValidateFn: func(ctx context.Context, username, password string) error {
				return autherrors.ErrInvalidCredentials
			},
		}
		seeder := &fakeSeeder{
			EnsureDefaultsFn: func(ctx context.Context, username string) error {
				t.Fatal("permissions must not be seeded for a failed login")
				return nil
			},
		}
		svc := auth.NewService(directory, seeder, zap.NewNop())

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "jkruger",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("a failed permission seed does not block login", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		directory := &fakeDirectory{
			ValidateFn: func(ctx context.Context, username, password string) error { return nil },
		}
		seeder := &fakeSeeder{
			EnsureDefaultsFn: func(ctx context.Context, username string) error {
				return errors.New("database down")
			},
		}
		svc := auth.NewService(directory, seeder, zap.NewNop())

		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Username: "jkruger",
			Password: "hunter2",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestNewDirectoryValidator_InsecureMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "insecure-accept-all")

	v := auth.NewDirectoryValidator(zap.NewNop())

	assert.NoError(t, v.Validate(context.Background(), "jkruger", "anything"))
	assert.ErrorIs(t, v.Validate(context.Background(), "", "anything"), autherrors.ErrMissingCredentials)
	assert.ErrorIs(t, v.Validate(context.Background(), "jkruger", ""), autherrors.ErrMissingCredentials)
}
