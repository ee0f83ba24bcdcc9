package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	lookuperrors "github.com/JohanKruger/traindev-api/internal/lookup/errors"
	"github.com/JohanKruger/traindev-api/internal/shared/contextutil"
)

const (
	optionsKeyPrefix = "lookups:options:"
	optionsTTL       = time.Hour
)

func optionsKey(lookupType string) string {
	return optionsKeyPrefix + lookupType
}

type Service interface {
	Create(ctx context.Context, req CreateLookupValueRequest) (*LookupValue, error)
	GetAll(ctx context.Context) ([]LookupValue, error)
	GetByID(ctx context.Context, id int) (*LookupValue, error)
	GetByType(ctx context.Context, lookupType string) ([]LookupValue, error)
	GetActiveByType(ctx context.Context, lookupType string) ([]LookupValue, error)
	GetChildren(ctx context.Context, parentID int) ([]LookupValue, error)
	Update(ctx context.Context, id int, req UpdateLookupValueRequest) (*LookupValue, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(repo Repository, rdb *redis.Client) Service {
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(ctx context.Context, req CreateLookupValueRequest) (*LookupValue, error) {
	if req.ParentID != nil {
		if err := s.checkParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	lv := &LookupValue{
		LookupType: req.LookupType,
		Value:      req.Value,
		Code:       req.Code,
		ParentID:   req.ParentID,
		SortOrder:  req.SortOrder,
		IsActive:   isActive,
	}

	if err := s.repo.Create(ctx, lv); err != nil {
		return nil, err
	}

	s.invalidateOptions(ctx, lv.LookupType)

	return lv, nil
}

func (s *service) GetAll(ctx context.Context) ([]LookupValue, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*LookupValue, error) {
	lv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookuperrors.ErrLookupNotFound
		}
		return nil, err
	}
	return lv, nil
}

func (s *service) GetByType(ctx context.Context, lookupType string) ([]LookupValue, error) {
	return s.repo.FindByType(ctx, lookupType)
}

func (s *service) GetActiveByType(ctx context.Context, lookupType string) ([]LookupValue, error) {
	cacheKey := optionsKey(lookupType)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var lvs []LookupValue
			if err := json.Unmarshal([]byte(cached), &lvs); err == nil {
				return lvs, nil
			}
		}
	}

	// Singleflight collapses concurrent misses for the same type into one query.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		lvs, err := s.repo.FindActiveByType(ctx, lookupType)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(lvs); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, optionsTTL)
			}
		}

		return lvs, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]LookupValue), nil
}

func (s *service) GetChildren(ctx context.Context, parentID int) ([]LookupValue, error) {
	return s.repo.FindChildren(ctx, parentID)
}

func (s *service) Update(ctx context.Context, id int, req UpdateLookupValueRequest) (*LookupValue, error) {
	lv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, lookuperrors.ErrLookupNotFound
		}
		return nil, err
	}

	if req.ParentID != nil {
		if *req.ParentID == id {
			return nil, lookuperrors.ErrSelfParent
		}
		if err := s.checkParent(ctx, *req.ParentID); err != nil {
			return nil, err
		}
	}

	oldType := lv.LookupType

	lv.LookupType = req.LookupType
	lv.Value = req.Value
	lv.Code = req.Code
	lv.ParentID = req.ParentID
	lv.SortOrder = req.SortOrder
	if req.IsActive != nil {
		lv.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, lv); err != nil {
		return nil, err
	}

	s.invalidateOptions(ctx, lv.LookupType)
	if oldType != lv.LookupType {
		s.invalidateOptions(ctx, oldType)
	}

	return lv, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	lv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lookuperrors.ErrLookupNotFound
		}
		return err
	}

	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return lookuperrors.ErrHasChildren
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return lookuperrors.ErrLookupNotFound
	}

	s.invalidateOptions(ctx, lv.LookupType)

	return nil
}

func (s *service) checkParent(ctx context.Context, parentID int) error {
	exists, err := s.repo.Exists(ctx, parentID)
	if err != nil {
		return err
	}
	if !exists {
		return lookuperrors.ErrParentNotFound
	}
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, lookupType string) {
	if s.rdb == nil {
		return
	}
	cacheKey := optionsKey(lookupType)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		contextutil.GetLogger(ctx).Warn("failed to invalidate lookup options cache",
			zap.String("key", cacheKey), zap.Error(err))
	}
}
