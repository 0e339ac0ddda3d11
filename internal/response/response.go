package response

import "github.com/gin-gonic/gin"

// The success shapes of this API are flat documents (the dashboard client
// consumes them directly), so there is no data envelope. Errors share a
// single structured body so clients can switch on a stable code.

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error ErrorBody `json:"error"`
}

// Success sends a JSON response with the given status code and payload.
func Success(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, errorResponse{
		Error: ErrorBody{Code: code, Message: GetMessage(code)},
	})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, errorResponse{
		Error: ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
	})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Error: ErrorBody{Code: code, Message: GetMessage(code)},
	})
}
