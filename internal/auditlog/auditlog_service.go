package auditlog

import (
	"context"
	"errors"
	"time"

	auditlogerrors "github.com/JohanKruger/traindev-api/internal/auditlog/errors"
	"github.com/JohanKruger/traindev-api/internal/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Log(ctx context.Context, entry *AuditLog) error
	GetPage(ctx context.Context, page, pageSize int) ([]AuditLog, int64, error)
	GetByID(ctx context.Context, id int) (*AuditLog, error)
	GetByUser(ctx context.Context, userID string, page, pageSize int) ([]AuditLog, int64, error)
	GetByController(ctx context.Context, controller string, page, pageSize int) ([]AuditLog, int64, error)
	GetByDateRange(ctx context.Context, start, end time.Time, page, pageSize int) ([]AuditLog, int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{repo: repo, logger: l}
}

// Recorder adapts the service to the middleware capture type.
func Recorder(s Service) middleware.AuditRecorderFunc {
	return func(ctx context.Context, e middleware.AuditEntry) error {
		entry := &AuditLog{
			UserID:           e.UserID,
			UserName:         e.UserName,
			HTTPMethod:       e.HTTPMethod,
			RequestPath:      e.RequestPath,
			QueryString:      optional(e.QueryString),
			Controller:       e.Controller,
			Action:           e.Action,
			RequestBody:      e.RequestBody,
			ResponseBody:     e.ResponseBody,
			StatusCode:       e.StatusCode,
			Timestamp:        e.Timestamp,
			DurationMs:       e.DurationMs,
			IPAddress:        optional(e.IPAddress),
			UserAgent:        optional(e.UserAgent),
			ExceptionDetails: e.ExceptionDetails,
			AdditionalInfo:   optional(e.AdditionalInfo),
		}
		return s.Log(ctx, entry)
	}
}

func (s *service) Log(ctx context.Context, entry *AuditLog) error {
	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("persist audit entry failed",
			zap.String("path", entry.RequestPath),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) GetPage(ctx context.Context, page, pageSize int) ([]AuditLog, int64, error) {
	entries, total, err := s.repo.FindPage(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("get audit logs failed", zap.Error(err))
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*AuditLog, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auditlogerrors.ErrAuditLogNotFound
		}
		s.logger.Error("get audit log by id failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *service) GetByUser(ctx context.Context, userID string, page, pageSize int) ([]AuditLog, int64, error) {
	entries, total, err := s.repo.FindByUser(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("get audit logs by user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *service) GetByController(ctx context.Context, controller string, page, pageSize int) ([]AuditLog, int64, error) {
	entries, total, err := s.repo.FindByController(ctx, controller, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("get audit logs by controller failed", zap.String("controller", controller), zap.Error(err))
		return nil, 0, err
	}
	return entries, total, nil
}

func (s *service) GetByDateRange(ctx context.Context, start, end time.Time, page, pageSize int) ([]AuditLog, int64, error) {
	if end.Before(start) {
		return nil, 0, auditlogerrors.ErrInvalidDateRange
	}
	entries, total, err := s.repo.FindByDateRange(ctx, start, end, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("get audit logs by date range failed", zap.Error(err))
		return nil, 0, err
	}
	return entries, total, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
