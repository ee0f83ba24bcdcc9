package lookup

import (
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
	l := zap.L().Named("lookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("lookup request failed",
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
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid lookup id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) GetAll(c *gin.Context) {
	lvs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lvs, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	lv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lv, nil)
}

func (h *Handler) GetByType(c *gin.Context) {
	lvs, err := h.service.GetByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lvs, nil)
}

func (h *Handler) GetActiveByType(c *gin.Context) {
	lvs, err := h.service.GetActiveByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lvs, nil)
}

func (h *Handler) GetChildren(c *gin.Context) {
	parentID, ok := h.idParam(c, "parentId")
	if !ok {
		return
	}
	lvs, err := h.service.GetChildren(c.Request.Context(), parentID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, lvs, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLookupValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create lookup value validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	lv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, lv, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateLookupValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update lookup value validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	lv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, lv, nil)
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
