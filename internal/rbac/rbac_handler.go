package rbac

import (
	"net/http"
	"strings"

	"hr-portal/internal/domain"
	"hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Enforce checks a resource/action pair for the caller's own role.
func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	req.Role = c.GetString("role")
	req.Resource = strings.TrimSpace(c.Query("resource"))
	req.Action = strings.TrimSpace(c.Query("action"))

	if req.Role == "" || req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "resource and action are required", nil)
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	role := c.GetString("role")
	response.Success(c, http.StatusOK, h.service.Permissions(role), nil)
}
