package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/twilio/twilio-go/client"
)

const TwilioSignatureHeader = "X-Twilio-Signature"

// TwilioSignature rejects webhooks whose signature does not match the
// request as Twilio saw it, i.e. against publicURL rather than the local host.
func TwilioSignature(authToken string, publicURL string, logger outbound.LoggerPort) gin.HandlerFunc {
	publicURL = strings.TrimRight(publicURL, "/")
	validator := client.NewRequestValidator(authToken)
	return func(c *gin.Context) {
		signature := c.GetHeader(TwilioSignatureHeader)
		if signature == "" {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		// Twilio webhooks never repeat a form key.
		params := make(map[string]string, len(c.Request.PostForm))
		for key := range c.Request.PostForm {
			params[key] = c.Request.PostForm.Get(key)
		}

		if !validator.Validate(publicURL+c.Request.URL.RequestURI(), params, signature) {
			logger.WarnWithFields("Rejected webhook with invalid signature", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Next()
	}
}
