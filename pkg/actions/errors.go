package actions

import (
	"errors"
	"net/http"

	"github.com/brandpilot/brandpilot/pkg/harvester"
	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
	"github.com/brandpilot/brandpilot/pkg/memory"
	"github.com/brandpilot/brandpilot/pkg/pkce"
	"github.com/brandpilot/brandpilot/pkg/ratelimit"
	"github.com/brandpilot/brandpilot/pkg/thoughts"
)

// Sentinel errors for the conditions callers are expected to branch on.
// HTTPStatus translates them for the transport layer.
var (
	ErrInvalidRequest          = errors.New("invalid request")
	ErrInvalidOrExpiredSession = errors.New("invalid state parameter or expired session")
	ErrNotConnected            = errors.New("twitter account not connected")
	ErrNoReplyText             = errors.New("no reply text available")
	ErrGenerationFailed        = errors.New("content generation failed")
	ErrUnknownAction           = errors.New("unknown action")
)

// HTTPStatus maps an action error to the response status code
func HTTPStatus(err error) int {
	var limitErr *ratelimit.LimitExceededError
	if errors.As(err, &limitErr) {
		return http.StatusTooManyRequests
	}

	var apiErr *twitter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests {
			return http.StatusTooManyRequests
		}
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrUnknownAction),
		errors.Is(err, ErrInvalidOrExpiredSession),
		errors.Is(err, pkce.ErrSessionNotFound),
		errors.Is(err, ErrNotConnected),
		errors.Is(err, memory.ErrNoConnection),
		errors.Is(err, ErrNoReplyText):
		return http.StatusBadRequest
	case errors.Is(err, memory.ErrProfileNotFound),
		errors.Is(err, memory.ErrPostNotFound),
		errors.Is(err, memory.ErrDraftNotFound),
		errors.Is(err, harvester.ErrNoResults):
		return http.StatusNotFound
	case errors.Is(err, ErrGenerationFailed),
		errors.Is(err, thoughts.ErrEmptyCompletion):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
