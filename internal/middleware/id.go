package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-admin/internal/constants"
	apierrors "github.com/yukikurage/project-admin/internal/errors"
)

// RequireID parses the :id route parameter. Non-numeric or zero ids end
// the request with a failed envelope.
func RequireID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.Fallo(c, apierrors.MsgIdInvalido)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyID, id)
		c.Next()
	}
}

// GetID returns the id parsed by RequireID.
func GetID(c *gin.Context) uint64 {
	v, _ := c.Get(constants.ContextKeyID)
	id, _ := v.(uint64)
	return id
}
