package utils

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint returns, success or failure, so
// clients can branch on status/status_code uniformly.
type Response struct {
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Status     string      `json:"status,omitempty"`
	Tokens     interface{} `json:"tokens,omitempty"`
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		StatusCode: code,
		Message:    message,
		Data:       data,
		Status:     "success",
	})
}

func SuccessWithTokens(c *gin.Context, code int, message string, data, tokens interface{}) {
	c.JSON(code, Response{
		StatusCode: code,
		Message:    message,
		Data:       data,
		Status:     "success",
		Tokens:     tokens,
	})
}

func Error(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		StatusCode: code,
		Message:    message,
		Data:       data,
		Status:     "error",
	})
}

// InternalError reports an unexpected failure with the underlying error text
// embedded for operator diagnosis.
func InternalError(c *gin.Context, err error) {
	Error(c, 500, "Internal server error", gin.H{"error_message": err.Error()})
}
