package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errorspkg "imsweather.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	statusCode, message := errorStatus(err)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

func errorStatus(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Type {
	case errorspkg.ErrorTypeValidation:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.ErrorTypeNotFound:
		return http.StatusNotFound, appErr.Message
	case errorspkg.ErrorTypeAlreadyExists:
		return http.StatusConflict, appErr.Message
	case errorspkg.ErrorTypeExternalAPI:
		return http.StatusServiceUnavailable, "External service unavailable"
	case errorspkg.ErrorTypeInitialization, errorspkg.ErrorTypeRefresh:
		return http.StatusServiceUnavailable, appErr.Message
	case errorspkg.ErrorTypeFetch, errorspkg.ErrorTypeTimeout:
		return http.StatusServiceUnavailable, appErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
