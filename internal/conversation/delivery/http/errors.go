package http

import (
	"errors"
	"net/http"

	"objection-handler/internal/conversation"
	pkgErrors "objection-handler/pkg/errors"
)

const (
	msgMissingParams = "Missing required parameters: conversationInput and conversationStrategy"
	msgProcessFailed = "Failed to process conversation"
	msgInvalidLimit  = "limit must be a positive integer"
)

var (
	errInvalidBody  = errors.New("invalid request body")
	errInvalidLimit = errors.New(msgInvalidLimit)
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, conversation.ErrInvalidRequest), errors.Is(err, errInvalidBody):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgMissingParams)
	case errors.Is(err, errInvalidLimit):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidLimit)
	default:
		// Upstream model failures and anything unexpected.
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, msgProcessFailed)
	}
}
