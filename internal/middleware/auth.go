package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-admin/internal/constants"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
)

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(constants.ContextKeyUserID).(string)

		if userID == "" {
			rechazar(c)
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// rechazar answers an unauthenticated request: browsers navigating to a page
// are redirected to the login view, everything else gets a 401 envelope.
func rechazar(c *gin.Context) {
	if WantsHTML(c) {
		c.Redirect(http.StatusFound, constants.LoginPath)
	} else {
		apierrors.NoAutenticado(c, "")
	}
	c.Abort()
}

// WantsHTML reports whether the request is a page navigation.
func WantsHTML(c *gin.Context) bool {
	return c.Request.Method == http.MethodGet &&
		strings.Contains(c.GetHeader("Accept"), "text/html")
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	return userID, userID != ""
}

// GetUserIDNumber returns the current user ID as the numeric key of usuarios.
func GetUserIDNumber(c *gin.Context) (uint64, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
