package userpermission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JohanKruger/traindev-api/internal/userpermission"
	userpermissionerrors "github.com/JohanKruger/traindev-api/internal/userpermission/errors"
)

type fakePermissionRepository struct {
	CreateFn               func(ctx context.Context, perm *userpermission.UserPermission) error
	FindAllFn              func(ctx context.Context) ([]userpermission.UserPermission, error)
	FindByIDFn             func(ctx context.Context, id int) (*userpermission.UserPermission, error)
	FindByUsernameFn       func(ctx context.Context, username string) ([]userpermission.UserPermission, error)
	FindByPermissionCodeFn func(ctx context.Context, code string) ([]userpermission.UserPermission, error)
	SearchFn               func(ctx context.Context, term string) ([]userpermission.UserPermission, error)
	HasFn                  func(ctx context.Context, username, code string) (bool, error)
	CountForUserFn         func(ctx context.Context, username string) (int64, error)
	UpdateFn               func(ctx context.Context, perm *userpermission.UserPermission) error
	DeleteFn               func(ctx context.Context, id int) (int64, error)
}

func (f *fakePermissionRepository) Create(ctx context.Context, perm *userpermission.UserPermission) error {
	return f.CreateFn(ctx, perm)
}
func (f *fakePermissionRepository) FindAll(ctx context.Context) ([]userpermission.UserPermission, error) {
	return f.FindAllFn(ctx)
}
func (f *fakePermissionRepository) FindByID(ctx context.Context, id int) (*userpermission.UserPermission, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakePermissionRepository) FindByUsername(ctx context.Context, username string) ([]userpermission.UserPermission, error) {
	return f.FindByUsernameFn(ctx, username)
}
func (f *fakePermissionRepository) FindByPermissionCode(ctx context.Context, code string) ([]userpermission.UserPermission, error) {
	return f.FindByPermissionCodeFn(ctx, code)
}
func (f *fakePermissionRepository) Search(ctx context.Context, term string) ([]userpermission.UserPermission, error) {
	return f.SearchFn(ctx, term)
}
func (f *fakePermissionRepository) Has(ctx context.Context, username, code string) (bool, error) {
	return f.HasFn(ctx, username, code)
}
func (f *fakePermissionRepository) CountForUser(ctx context.Context, username string) (int64, error) {
	return f.CountForUserFn(ctx, username)
}
func (f *fakePermissionRepository) Update(ctx context.Context, perm *userpermission.UserPermission) error {
	return f.UpdateFn(ctx, perm)
}
func (f *fakePermissionRepository) Delete(ctx context.Context, id int) (int64, error) {
	return f.DeleteFn(ctx, id)
}

func TestPermissionService_EnsureDefaults(t *testing.T) {
	t.Run("grants the starter set to a new account", func(t *testing.T) {
		var granted []string
		repo := &fakePermissionRepository{
			CountForUserFn: func(ctx context.Context, username string) (int64, error) { return 0, nil },
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				assert.Equal(t, "jkruger", perm.Username)
				granted = append(granted, perm.PermissionCode)
				return nil
			},
		}
		svc := userpermission.NewService(repo)

		err := svc.EnsureDefaults(context.Background(), "jkruger")

		require.NoError(t, err)
		assert.Equal(t, userpermission.DefaultCodes(), granted)
	})

	t.Run("no-op when the account already holds grants", func(t *testing.T) {
		repo := &fakePermissionRepository{
			CountForUserFn: func(ctx context.Context, username string) (int64, error) { return 1, nil },
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				t.Fatal("no grant should be written for a seeded account")
				return nil
			},
		}
		svc := userpermission.NewService(repo)

		assert.NoError(t, svc.EnsureDefaults(context.Background(), "jkruger"))
	})

	t.Run("tolerates a concurrent first login", func(t *testing.T) {
		calls := 0
		repo := &fakePermissionRepository{
			CountForUserFn: func(ctx context.Context, username string) (int64, error) { return 0, nil },
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				calls++
				if calls == 1 {
					return &pgconn.PgError{Code: "23505"}
				}
				return nil
			},
		}
		svc := userpermission.NewService(repo)

		err := svc.EnsureDefaults(context.Background(), "jkruger")

		require.NoError(t, err)
		assert.Equal(t, len(userpermission.DefaultCodes()), calls)
	})

	t.Run("other repository errors abort the seed", func(t *testing.T) {
		repo := &fakePermissionRepository{
			CountForUserFn: func(ctx context.Context, username string) (int64, error) { return 0, nil },
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				return errors.New("connection reset")
			},
		}
		svc := userpermission.NewService(repo)

		assert.Error(t, svc.EnsureDefaults(context.Background(), "jkruger"))
	})
}

func TestPermissionService_Create(t *testing.T) {
	t.Run("duplicate pair via pg error code", func(t *testing.T) {
		repo := &fakePermissionRepository{
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				return &pgconn.PgError{Code: "23505"}
			},
		}
		svc := userpermission.NewService(repo)

		_, err := svc.Create(context.Background(), userpermission.CreateUserPermissionRequest{
			Username:       "jkruger",
			PermissionCode: userpermission.CodeExportReport,
		})

		assert.ErrorIs(t, err, userpermissionerrors.ErrPermissionAlreadyExists)
	})

	t.Run("duplicate pair via driver message", func(t *testing.T) {
		repo := &fakePermissionRepository{
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				return errors.New(`ERROR: duplicate key value violates unique constraint "idx_user_permission"`)
			},
		}
		svc := userpermission.NewService(repo)

		_, err := svc.Create(context.Background(), userpermission.CreateUserPermissionRequest{
			Username:       "jkruger",
			PermissionCode: userpermission.CodeExportReport,
		})

		assert.ErrorIs(t, err, userpermissionerrors.ErrPermissionAlreadyExists)
	})

	t.Run("success", func(t *testing.T) {
		repo := &fakePermissionRepository{
			CreateFn: func(ctx context.Context, perm *userpermission.UserPermission) error {
				perm.PermissionID = 7
				return nil
			},
		}
		svc := userpermission.NewService(repo)

		perm, err := svc.Create(context.Background(), userpermission.CreateUserPermissionRequest{
			Username:       "jkruger",
			PermissionCode: userpermission.CodeEditTrainersCost,
		})

		require.NoError(t, err)
		assert.Equal(t, 7, perm.PermissionID)
	})
}

func TestPermissionService_HasPermission(t *testing.T) {
	repo := &fakePermissionRepository{
		HasFn: func(ctx context.Context, username, code string) (bool, error) {
			return username == "jkruger" && code == userpermission.CodeExportReport, nil
		},
	}
	svc := userpermission.NewService(repo)

	has, err := svc.HasPermission(context.Background(), "jkruger", userpermission.CodeExportReport)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = svc.HasPermission(context.Background(), "other", userpermission.CodeExportReport)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestPermissionService_GetByID(t *testing.T) {
	repo := &fakePermissionRepository{
		FindByIDFn: func(ctx context.Context, id int) (*userpermission.UserPermission, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := userpermission.NewService(repo)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, userpermissionerrors.ErrPermissionNotFound)
}

func TestPermissionService_Delete(t *testing.T) {
	repo := &fakePermissionRepository{
		DeleteFn: func(ctx context.Context, id int) (int64, error) { return 0, nil },
	}
	svc := userpermission.NewService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), userpermissionerrors.ErrPermissionNotFound)
}
