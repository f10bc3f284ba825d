package auth

import (
	"net/http"
	"time"

	autherrors "hr-portal/internal/auth/errors"
	"hr-portal/internal/shared/apperror"
	platform "hr-portal/internal/shared/request"
	"hr-portal/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service       Service
	secureCookies bool
}

// NewHandler marks cookies Secure when secureCookies is set, which the app
// does in production.
func NewHandler(s Service, secureCookies bool) *Handler {
	return &Handler{service: s, secureCookies: secureCookies}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func isWeb(c *gin.Context) bool {
	return platform.IsWebClient(platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent")))
}

func (h *Handler) setCookie(c *gin.Context, name, value string, ttl time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(c *gin.Context, name string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeTokens(c *gin.Context, pair TokenPair, user AuthResponse) {
	if isWeb(c) {
		h.setCookie(c, "access_token", pair.AccessToken, pair.AccessTTL)
		h.setCookie(c, "refresh_token", pair.RefreshToken, pair.RefreshTTL)
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":          user,
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, appErr.Code, appErr.Message, err.Error())
		return
	}

	pair, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeTokens(c, pair, user)
}

func (h *Handler) Refresh(c *gin.Context) {
	var refreshToken string
	if isWeb(c) {
		cookie, err := c.Cookie("refresh_token")
		if err != nil || cookie == "" {
			writeServiceError(c, autherrors.ErrMissingRefreshToken)
			return
		}
		refreshToken = cookie
	} else {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeServiceError(c, autherrors.ErrMissingRefreshToken)
			return
		}
		refreshToken = req.RefreshToken
	}

	pair, user, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeTokens(c, pair, user)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.Me(c.Request.Context(), c.GetString("user_id"), c.GetString("role"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Logout is stateless: tokens stay valid until they expire, so it only
// drops the cookies.
func (h *Handler) Logout(c *gin.Context) {
	h.clearCookie(c, "access_token")
	h.clearCookie(c, "refresh_token")
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, nil)
}
