package response

import "github.com/gin-gonic/gin"

type Body struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Count int `json:"count"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Body{
		Success: true,
		Data:    data,
	})
}

func Message(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List always renders data as an array, so an empty result is [] rather than null.
func List[T any](c *gin.Context, message string, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(200, Body{
		Success: true,
		Message: message,
		Data:    items,
		Meta:    &Meta{Count: len(items)},
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, Body{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, Body{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Abort writes an error body and stops the handler chain. Used by middleware.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

const ctxExposeErrors = "expose_internal_errors"

// ExposeInternalErrors is a middleware that makes Internal include the error
// text for the request. Enabled in debug mode only.
func ExposeInternalErrors(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxExposeErrors, expose)
		c.Next()
	}
}

// Internal records err on the context for the request logger and writes a 500.
func Internal(c *gin.Context, err error) {
	_ = c.Error(err)
	if c.GetBool(ctxExposeErrors) {
		ErrorWithDetails(c, 500, "INTERNAL_ERROR", "Internal server error", err.Error())
		return
	}
	Error(c, 500, "INTERNAL_ERROR", "Internal server error")
}
