package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/errors"
)

// APIResponse is the uniform envelope returned by every operation.
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorInfo  `json:"error,omitempty"`
	StatusCode int         `json:"statusCode"`
	Timestamp  string      `json:"timestamp"`
}

// ErrorInfo represents error information in API response
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success:    true,
		Data:       data,
		StatusCode: statusCode,
		Timestamp:  biztime.FormatRFC3339(biztime.NowUTC()),
	})
}

// OKResponse sends a 200 response
func OKResponse(c *gin.Context, data interface{}) {
	SuccessResponse(c, http.StatusOK, data)
}

// CreatedResponse sends a 201 response. Data may be nil; ticket creation
// deliberately returns an empty envelope.
func CreatedResponse(c *gin.Context, data interface{}) {
	SuccessResponse(c, http.StatusCreated, data)
}

// ErrorResponse sends an error response with custom status code, error code
// and message.
func ErrorResponse(c *gin.Context, statusCode int, code errors.ErrorCode, message string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &ErrorInfo{
			Code:    string(code),
			Message: message,
		},
		StatusCode: statusCode,
		Timestamp:  biztime.FormatRFC3339(biztime.NowUTC()),
	})
}

// ErrorResponseWithError sends an error response based on error type.
// Non-AppError values collapse to a generic internal error so low-level
// detail is never leaked to the caller.
func ErrorResponseWithError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	errorInfo := ErrorInfo{
		Code:    string(errors.CodeInternal),
		Message: "Internal server error occurred",
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		statusCode = appErr.Status
		errorInfo = ErrorInfo{
			Code:    string(appErr.Code),
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	c.JSON(statusCode, APIResponse{
		Success:    false,
		Error:      &errorInfo,
		StatusCode: statusCode,
		Timestamp:  biztime.FormatRFC3339(biztime.NowUTC()),
	})
}
