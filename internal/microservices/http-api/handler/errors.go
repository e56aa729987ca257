package handler

import (
	"errors"
	"net/http"

	"justco/internal/logger"
	"justco/internal/microservices/http-api/dto"
	"justco/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	msgMissingFields     = "Missing fields"
	msgMissingSecretCode = "Missing secret code"
	msgDuplicateCode     = "Secret code already exists"
	msgRoomNotFound      = "Room not found"
	msgDatabaseError     = "Database error"
	msgInternalError     = "Internal server error"
)

// errorText holds the per-endpoint wording of the opaque error bodies.
type errorText struct {
	invalidInput string
	storage      string
}

var defaultErrorText = errorText{
	invalidInput: msgMissingFields,
	storage:      msgDatabaseError,
}

// statusFor maps a service error to its HTTP status and public message.
func statusFor(err error, text errorText) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, text.invalidInput
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, msgDuplicateCode
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, msgRoomNotFound
	default:
		return http.StatusInternalServerError, text.storage
	}
}

// respondError writes the {"error": ...} body. Internal causes are logged and
// attached to the gin context, never sent to the client.
func respondError(c *gin.Context, err error, text errorText) {
	status, msg := statusFor(err, text)
	if status == http.StatusInternalServerError {
		log := logger.Ctx(c.Request.Context())
		log.Error().Err(err).Msg("request failed")
	}
	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{Error: msg})
}
