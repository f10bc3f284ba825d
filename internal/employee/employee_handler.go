package employee

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/shared/contextutil"
	"hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.Logger(c.Request.Context(), h.logger).Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" validation failed", zap.Error(err))
	appErr := apperror.MapValidationError(err)
	response.Error(c, http.StatusBadRequest, appErr.Code, appErr.Message, err.Error())
}

func (h *Handler) Create(c *gin.Context) {
	hrID := c.GetString("hr_id")
	h.logger.Debug("http create employee", zap.String("hr_id", hrID))

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "create employee", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), hrID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	hrID := c.GetString("hr_id")
	filter := ListFilter{
		Department: c.Query("department"),
		Search:     c.Query("search"),
	}
	h.logger.Debug("http get all employees", zap.String("hr_id", hrID))

	resp, err := h.service.GetAll(c.Request.Context(), hrID, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, pageSize := response.PageParams(c, 20)
	items, meta := response.Paginate(resp, page, pageSize)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	hrID := c.GetString("hr_id")
	id := c.Param("id")
	h.logger.Debug("http get employee by id",
		zap.String("hr_id", hrID),
		zap.String("employee_id", id),
	)

	resp, err := h.service.GetByID(c.Request.Context(), hrID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	hrID := c.GetString("hr_id")
	id := c.Param("id")
	h.logger.Debug("http update employee",
		zap.String("hr_id", hrID),
		zap.String("employee_id", id),
	)

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "update employee", err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), hrID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	hrID := c.GetString("hr_id")
	id := c.Param("id")
	h.logger.Debug("http delete employee",
		zap.String("hr_id", hrID),
		zap.String("employee_id", id),
	)

	if err := h.service.Delete(c.Request.Context(), hrID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "change password", err)
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), employeeID, req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password changed successfully"}, nil)
}
