package http

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/auth"
)

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a plain-text 400 and returns 0, false on
// malformed input.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}

// parseFormID extracts and validates an unsigned integer ID from the
// form body.
func parseFormID(c *gin.Context, fieldName string) (uint, bool) {
	idStr := c.PostForm(fieldName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}

// internalError logs the underlying error and sends a plain-text 500
// with a generic message. Store errors are never exposed to callers.
func internalError(c *gin.Context, err error, context, message string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, "%s", message)
}

// presentedToken returns the admin token the caller presented in the
// query string, or "" when none was carried (e.g. a session-authorized
// request).
func presentedToken(c *gin.Context) string {
	return c.Query(auth.AdminQueryParam)
}

// adminPath re-appends the presented admin token to a redirect target
// so admin access carries across the redirect.
func adminPath(c *gin.Context, path string) string {
	token := presentedToken(c)
	if token == "" {
		return path
	}
	return path + "?" + auth.AdminQueryParam + "=" + url.QueryEscape(token)
}

// csrfToken returns the per-request CSRF token for templates, or ""
// when CSRF protection is disabled.
func csrfToken(c *gin.Context) string {
	return c.GetString(auth.ContextKeyCSRFToken)
}
