package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON error envelope returned by every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Respond converts err into the JSON error response at the handler
// boundary. Unrecognized errors become a 500 with a best-effort message.
func Respond(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(status(appErr.Err), ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Field,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal server error",
		Details: err.Error(),
	})
}

func status(sentinel error) int {
	switch {
	case errors.Is(sentinel, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(sentinel, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(sentinel, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(sentinel, ErrConflict):
		return http.StatusConflict
	case errors.Is(sentinel, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
