package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
)

// NewRelicAttributes annotates the New Relic transaction started by nrgin with
// request details and reports handler errors on it. It must run after nrgin and RequestID.
func NewRelicAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		txn := nrgin.Transaction(c)
		if txn == nil {
			c.Next()
			return
		}

		if id := RequestIDFrom(c); id != "" {
			txn.AddAttribute("requestId", id)
		}
		if route := c.FullPath(); route != "" {
			txn.AddAttribute("route", route)
		}

		c.Next()

		if email, ok := c.Get("admin_email"); ok {
			txn.AddAttribute("admin", email)
		}
		for _, err := range c.Errors {
			txn.NoticeError(err.Err)
		}
	}
}
