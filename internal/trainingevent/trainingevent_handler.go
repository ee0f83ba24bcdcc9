package trainingevent

import (
	"context"
	"net/http"
	"strconv"

	"github.com/JohanKruger/traindev-api/internal/shared/apperror"
	"github.com/JohanKruger/traindev-api/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("trainingevent.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trainingevent.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("training event request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) GetAll(c *gin.Context) {
	evs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, evs, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	ev, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ev, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	h.listBy(c, func() ([]TrainingEvent, error) {
		return h.service.GetByPersonnelNumber(c.Request.Context(), c.Param("personnelNumber"))
	})
}

func (h *Handler) GetByNonEmployee(c *gin.Context) {
	h.listBy(c, func() ([]TrainingEvent, error) {
		return h.service.GetByIDNumber(c.Request.Context(), c.Param("idNumber"))
	})
}

func (h *Handler) GetByEventType(c *gin.Context) {
	h.listByLookup(c, h.service.GetByEventType)
}

func (h *Handler) GetByRegion(c *gin.Context) {
	h.listByLookup(c, h.service.GetByRegion)
}

func (h *Handler) GetByProvince(c *gin.Context) {
	h.listByLookup(c, h.service.GetByProvince)
}

func (h *Handler) GetByMunicipality(c *gin.Context) {
	h.listByLookup(c, h.service.GetByMunicipality)
}

func (h *Handler) GetBySite(c *gin.Context) {
	h.listByLookup(c, h.service.GetBySite)
}

func (h *Handler) Search(c *gin.Context) {
	h.listBy(c, func() ([]TrainingEvent, error) {
		return h.service.Search(c.Request.Context(), c.Param("term"))
	})
}

func (h *Handler) listBy(c *gin.Context, fetch func() ([]TrainingEvent, error)) {
	evs, err := fetch()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, evs, nil)
}

func (h *Handler) listByLookup(c *gin.Context, fetch func(ctx context.Context, lookupID int) ([]TrainingEvent, error)) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	evs, err := fetch(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, evs, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create training event validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	ev, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, ev, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTrainingEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update training event validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	ev, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ev, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
