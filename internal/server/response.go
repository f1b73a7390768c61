package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in Resp.ErrorCode.
const (
	CodeOK           = 0
	CodeBadRequest   = 1
	CodeRateLimited  = 429
	CodeInternal     = 500
	MessageSuccess   = "success"
	MessageRateLimit = "rate limit exceeded"
	MessageInternal  = "internal server error"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ok sends 200 JSON with data.
func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeOK,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// badRequest sends 400 with the error message.
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: CodeBadRequest,
		Message:   err.Error(),
	})
}

// tooManyRequests sends 429.
func tooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: CodeRateLimited,
		Message:   MessageRateLimit,
	})
}

// internalError sends 500 without leaking the cause.
func internalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   MessageInternal,
	})
}
