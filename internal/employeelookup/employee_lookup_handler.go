package employeelookup

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
	l := zap.L().Named("employeelookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeelookup.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee lookup request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindingError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	recs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetByPersonnelNumber(c *gin.Context) {
	rec, err := h.service.GetByPersonnelNumber(c.Request.Context(), c.Param("personnelNumber"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) Search(c *gin.Context) {
	recs, err := h.service.Search(c.Request.Context(), c.Param("term"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) GetByRace(c *gin.Context) {
	h.listBy(c, func() ([]EmployeeLookup, error) {
		return h.service.GetByRace(c.Request.Context(), c.Param("race"))
	})
}

func (h *Handler) GetByGender(c *gin.Context) {
	h.listBy(c, func() ([]EmployeeLookup, error) {
		return h.service.GetByGender(c.Request.Context(), c.Param("gender"))
	})
}

func (h *Handler) GetByEELevel(c *gin.Context) {
	h.listBy(c, func() ([]EmployeeLookup, error) {
		return h.service.GetByEELevel(c.Request.Context(), c.Param("eeLevel"))
	})
}

func (h *Handler) GetByEECategory(c *gin.Context) {
	h.listBy(c, func() ([]EmployeeLookup, error) {
		return h.service.GetByEECategory(c.Request.Context(), c.Param("eeCategory"))
	})
}

func (h *Handler) GetByDisability(c *gin.Context) {
	hasDisability, err := strconv.ParseBool(c.Param("hasDisability"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid disability flag", nil)
		return
	}
	h.listBy(c, func() ([]EmployeeLookup, error) {
		return h.service.GetByDisability(c.Request.Context(), hasDisability)
	})
}

func (h *Handler) listBy(c *gin.Context, fetch func() ([]EmployeeLookup, error)) {
	recs, err := fetch()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recs, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("create employee lookup validation failed", zap.Error(err))
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
	var req UpdateEmployeeLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("update employee lookup validation failed", zap.Error(err))
		h.writeBindingError(c, err)
		return
	}

	rec, err := h.service.Update(c.Request.Context(), c.Param("personnelNumber"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("personnelNumber")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
