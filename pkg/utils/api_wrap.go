package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// StatusForError maps a service error onto the HTTP status and the message shown to clients.
func StatusForError(err error) (int, string) {
	var reqErr *RequestError
	var netErr *NetworkError
	var valErr *ValidationError
	var emptyErr *EmptyResultError

	switch {
	case errors.Is(err, ErrPlaceNotFound):
		return http.StatusNotFound, "Place not found"
	case errors.Is(err, ErrUnknownLanguage):
		return http.StatusBadRequest, "Unsupported language"
	case errors.As(err, &valErr):
		return http.StatusBadRequest, valErr.Error()
	case errors.As(err, &emptyErr):
		return http.StatusNotFound, emptyErr.Error()
	case errors.As(err, &reqErr):
		return http.StatusBadGateway, reqErr.Error()
	case errors.As(err, &netErr):
		return http.StatusBadGateway, "Upstream service unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	code, message := StatusForError(err)
	if code >= http.StatusInternalServerError {
		log.Error("service error", zap.String("trace_id", traceID(c)), zap.Error(err))
	}
	RespondError(c, code, message)
}

// RespondErrorWithData is RespondError that still carries a payload, used when
// the client needs the state that produced the error.
func RespondErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}
