package actions

import (
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/brandpilot/brandpilot/pkg/harvester"
	"github.com/brandpilot/brandpilot/pkg/interfaces/twitter"
	"github.com/brandpilot/brandpilot/pkg/memory"
	"github.com/brandpilot/brandpilot/pkg/pkce"
	"github.com/brandpilot/brandpilot/pkg/ratelimit"
	"github.com/brandpilot/brandpilot/pkg/thoughts"
)

var _ = Describe("HTTPStatus", func() {
	It("maps caller mistakes to 400", func() {
		for _, err := range []error{
			ErrInvalidRequest,
			fmt.Errorf("%w: profileId is required", ErrInvalidRequest),
			ErrUnknownAction,
			ErrInvalidOrExpiredSession,
			pkce.ErrSessionNotFound,
			ErrNotConnected,
			memory.ErrNoConnection,
			ErrNoReplyText,
		} {
			Expect(HTTPStatus(err)).To(Equal(http.StatusBadRequest), "error %v", err)
		}
	})

	It("maps missing resources to 404", func() {
		for _, err := range []error{
			memory.ErrProfileNotFound,
			memory.ErrPostNotFound,
			memory.ErrDraftNotFound,
			harvester.ErrNoResults,
		} {
			Expect(HTTPStatus(err)).To(Equal(http.StatusNotFound), "error %v", err)
		}
	})

	It("maps rate limiting to 429", func() {
		Expect(HTTPStatus(&ratelimit.LimitExceededError{})).To(Equal(http.StatusTooManyRequests))
		Expect(HTTPStatus(&twitter.APIError{StatusCode: http.StatusTooManyRequests})).To(Equal(http.StatusTooManyRequests))
	})

	It("maps upstream failures to 502", func() {
		Expect(HTTPStatus(&twitter.APIError{StatusCode: http.StatusForbidden})).To(Equal(http.StatusBadGateway))
		Expect(HTTPStatus(ErrGenerationFailed)).To(Equal(http.StatusBadGateway))
		Expect(HTTPStatus(thoughts.ErrEmptyCompletion)).To(Equal(http.StatusBadGateway))
	})

	It("defaults to 500", func() {
		Expect(HTTPStatus(errors.New("disk on fire"))).To(Equal(http.StatusInternalServerError))
	})
})
