package trainingrecord

import (
	"net/http"
	"strconv"
	"time"

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
	l := zap.L().Named("trainingrecord.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("trainingrecord.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("training record request failed",
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

func (h *Handler) dateRangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid startDate", nil)
		return time.Time{}, time.Time{}, false
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid endDate", nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (h *Handler) GetAll(c *gin.Context) {
	recs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	rec, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) GetByTrainingEvent(c *gin.Context) {
	id, ok := h.idParam(c, "trainingEventId")
	if !ok {
		return
	}
	recs, err := h.service.GetByTrainingEvent(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetByPersonnelNumber(c *gin.Context) {
	recs, err := h.service.GetByPersonnelNumber(c.Request.Context(), c.Param("personnelNumber"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetByDateRange(c *gin.Context) {
	start, end, ok := h.dateRangeParams(c)
	if !ok {
		return
	}
	recs, err := h.service.GetByDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetWithEvidence(c *gin.Context) {
	recs, err := h.service.GetWithEvidence(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetWithoutEvidence(c *gin.Context) {
	recs, err := h.service.GetWithoutEvidence(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) CostsByTrainingEvent(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	summary, err := h.service.CostsByTrainingEvent(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) CostsByPersonnelNumber(c *gin.Context) {
	summary, err := h.service.CostsByPersonnelNumber(c.Request.Context(), c.Param("personnelNumber"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) CostsByDateRange(c *gin.Context) {
	start, end, ok := h.dateRangeParams(c)
	if !ok {
		return
	}
	summary, err := h.service.CostsByDateRange(c.Request.Context(), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTrainingRecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create training record validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	rec, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, rec, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateTrainingRecordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update training record validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	rec, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rec, nil)
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
