package userpermission

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/JohanKruger/traindev-api/internal/shared/contextutil"
	userpermissionerrors "github.com/JohanKruger/traindev-api/internal/userpermission/errors"
)

type Service interface {
	Create(ctx context.Context, req CreateUserPermissionRequest) (*UserPermission, error)
	GetAll(ctx context.Context) ([]UserPermission, error)
	GetByID(ctx context.Context, id int) (*UserPermission, error)
	GetByUsername(ctx context.Context, username string) ([]UserPermission, error)
	GetByPermissionCode(ctx context.Context, code string) ([]UserPermission, error)
	Search(ctx context.Context, term string) ([]UserPermission, error)
	HasPermission(ctx context.Context, username, permissionCode string) (bool, error)
	EnsureDefaults(ctx context.Context, username string) error
	Update(ctx context.Context, id int, req UpdateUserPermissionRequest) (*UserPermission, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateUserPermissionRequest) (*UserPermission, error) {
	perm := &UserPermission{
		Username:       req.Username,
		PermissionCode: req.PermissionCode,
	}
	if err := s.repo.Create(ctx, perm); err != nil {
		return nil, mapRepositoryError(err)
	}
	return perm, nil
}

func (s *service) GetAll(ctx context.Context) ([]UserPermission, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*UserPermission, error) {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return perm, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) ([]UserPermission, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *service) GetByPermissionCode(ctx context.Context, code string) ([]UserPermission, error) {
	return s.repo.FindByPermissionCode(ctx, code)
}

func (s *service) Search(ctx context.Context, term string) ([]UserPermission, error) {
	return s.repo.Search(ctx, term)
}

// HasPermission satisfies the route guard contract used by
// middleware.RequirePermission.
func (s *service) HasPermission(ctx context.Context, username, permissionCode string) (bool, error) {
	return s.repo.Has(ctx, username, permissionCode)
}

// EnsureDefaults grants the starter permission set to an account that
// holds no grants at all. An account that had grants revoked keeps its
// reduced set; only a never-seen account is seeded.
func (s *service) EnsureDefaults(ctx context.Context, username string) error {
	count, err := s.repo.CountForUser(ctx, username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, code := range DefaultCodes() {
		perm := &UserPermission{Username: username, PermissionCode: code}
		if err := s.repo.Create(ctx, perm); err != nil {
			// A concurrent first login may have won the race for this code.
			if errors.Is(mapRepositoryError(err), userpermissionerrors.ErrPermissionAlreadyExists) {
				continue
			}
			return err
		}
		contextutil.GetLogger(ctx).Info("granted default permission",
			zap.String("username", username),
			zap.String("permission_code", code))
	}
	return nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateUserPermissionRequest) (*UserPermission, error) {
	perm, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	perm.Username = req.Username
	perm.PermissionCode = req.PermissionCode
	if err := s.repo.Update(ctx, perm); err != nil {
		return nil, mapRepositoryError(err)
	}
	return perm, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return userpermissionerrors.ErrPermissionNotFound
	}
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return userpermissionerrors.ErrPermissionNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return userpermissionerrors.ErrPermissionAlreadyExists
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return userpermissionerrors.ErrPermissionAlreadyExists
	}

	return err
}
