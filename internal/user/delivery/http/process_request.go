package http

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const minUsernameLen = 3

// processCredentialsRequest binds the body and validates the trimmed username,
// which is what the account is stored under.
func (h *handler) processCredentialsRequest(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "user.delivery.http.processCredentialsRequest: %v", err)
		return req, errInvalidBody
	}

	req.Username = strings.TrimSpace(req.Username)
	if utf8.RuneCountInString(req.Username) < minUsernameLen {
		h.l.Warnf(c.Request.Context(), "user.delivery.http.processCredentialsRequest: username too short after trim")
		return req, errInvalidBody
	}
	return req, nil
}
