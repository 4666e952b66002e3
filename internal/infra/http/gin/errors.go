package ginserver

import (
	"errors"
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"marketchat/internal/app/dto"
	chatsvc "marketchat/internal/app/services/chat"
	domainchat "marketchat/internal/domain/chat"
)

// chatStatus maps the chat error taxonomy onto HTTP.
func chatStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainchat.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, domainchat.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, domainchat.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domainchat.ErrSameParticipant):
		return http.StatusConflict, "same_participant"
	case domainchat.IsValidation(err):
		return http.StatusBadRequest, "invalid_argument"
	case domainchat.IsTransient(err), errors.Is(err, chatsvc.ErrServiceNotConfigured):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func errorBody(err error, message string) dto.ErrorResponse {
	_, code := chatStatus(err)
	return dto.ErrorResponse{
		Error:     message,
		Code:      code,
		Retryable: domainchat.IsTransient(err),
	}
}

// respondChatError writes the error response. Client-facing messages never carry driver
// details; those go to the log.
func respondChatError(c *gin.Context, log *slog.Logger, err error, action string, attrs ...any) {
	status, _ := chatStatus(err)
	message := http.StatusText(status)
	switch {
	case status == http.StatusForbidden:
		message = "could not complete"
	case status == http.StatusUnauthorized:
		message = "sign in required"
	case status == http.StatusNotFound:
		message = "conversation not found"
	case status == http.StatusBadRequest || status == http.StatusConflict:
		message = err.Error()
	}
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("chat call failed", append([]any{"action", action, "error", err}, attrs...)...)
	}
	_ = c.Error(err)
	c.JSON(status, errorBody(err, message))
}
