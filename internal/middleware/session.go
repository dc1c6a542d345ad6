package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JacobSsozi/JadeDelight/internal/order"
)

// OrderSession resolves the :id route parameter to a live order
// session and attaches it to the request context. Unknown IDs stop
// the chain with a 404.
func OrderSession(service *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing order id"})
			return
		}

		sess, ok := service.Lookup(id)
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.Set(order.SessionKey, sess)
		c.Next()
	}
}
