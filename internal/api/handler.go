// Package api exposes the BrandPilot actions over a single function-style
// endpoint, mirroring how the frontend invokes them.
package api

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/actions"
)

// DefaultFrontendURL is where callback redirects land when FRONTEND_URL
// is unset
const DefaultFrontendURL = "http://localhost:3000"

// Handler routes action envelopes to the dispatcher
type Handler struct {
	dispatcher  *actions.Dispatcher
	frontendURL string
	logger      *logrus.Logger
}

func NewHandler(dispatcher *actions.Dispatcher, logger *logrus.Logger) *Handler {
	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = DefaultFrontendURL
	}
	return &Handler{
		dispatcher:  dispatcher,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Register mounts the function endpoint on the app
func (h *Handler) Register(app *fiber.App) {
	app.Post("/functions/twitter", h.HandleAction)
	app.Get("/functions/twitter", h.HandleCallback)
}

// actionEnvelope is the POST body: the action name plus that action's
// parameters, flattened
type actionEnvelope struct {
	Action string `json:"action"`

	ProfileID  string `json:"profileId"`
	Text       string `json:"text"`
	Query      string `json:"query"`
	MaxResults int    `json:"maxResults"`
	PostID     uint   `json:"postId"`
	TweetID    string `json:"tweetId"`
	ReplyText  string `json:"replyText"`
	Prompt     string `json:"prompt"`
	Tone       string `json:"tone"`
	Length     string `json:"length"`
	Code       string `json:"code"`
	State      string `json:"state"`
}

// HandleAction dispatches a POSTed action envelope
func (h *Handler) HandleAction(c *fiber.Ctx) error {
	var envelope actionEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		return h.fail(c, actions.ErrInvalidRequest)
	}

	ctx := c.Context()
	var (
		result interface{}
		err    error
	)

	switch envelope.Action {
	case "authorize":
		result, err = h.dispatcher.Authorize(ctx, actions.AuthorizeRequest{
			ProfileID: envelope.ProfileID,
		})
	case "callback":
		result, err = h.dispatcher.Callback(ctx, actions.CallbackRequest{
			Code:  envelope.Code,
			State: envelope.State,
		})
	case "disconnect":
		result, err = h.dispatcher.Disconnect(ctx, actions.DisconnectRequest{
			ProfileID: envelope.ProfileID,
		})
	case "post":
		result, err = h.dispatcher.Post(ctx, actions.PostRequest{
			ProfileID: envelope.ProfileID,
			Text:      envelope.Text,
		})
	case "search":
		result, err = h.dispatcher.Search(ctx, actions.SearchRequest{
			ProfileID:  envelope.ProfileID,
			Query:      envelope.Query,
			MaxResults: envelope.MaxResults,
		})
	case "findAndSave":
		result, err = h.dispatcher.FindAndSave(ctx, actions.FindAndSaveRequest{
			ProfileID: envelope.ProfileID,
		})
	case "generateResponse":
		result, err = h.dispatcher.GenerateResponse(ctx, actions.GenerateResponseRequest{
			ProfileID: envelope.ProfileID,
			PostID:    envelope.PostID,
			TweetID:   envelope.TweetID,
		})
	case "sendReply":
		result, err = h.dispatcher.SendReply(ctx, actions.SendReplyRequest{
			ProfileID: envelope.ProfileID,
			PostID:    envelope.PostID,
			TweetID:   envelope.TweetID,
			ReplyText: envelope.ReplyText,
		})
	case "generatePost":
		result, err = h.dispatcher.GeneratePost(ctx, actions.GeneratePostRequest{
			ProfileID: envelope.ProfileID,
			Prompt:    envelope.Prompt,
			Tone:      envelope.Tone,
			Length:    envelope.Length,
		})
	case "generateDrafts":
		result, err = h.dispatcher.GenerateDrafts(ctx, actions.GenerateDraftsRequest{
			ProfileID: envelope.ProfileID,
		})
	default:
		return h.fail(c, actions.ErrUnknownAction)
	}

	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// HandleCallback receives the provider's browser redirect and forwards
// the user to the dashboard once the exchange succeeds
func (h *Handler) HandleCallback(c *fiber.Ctx) error {
	if c.Query("action") != "callback" {
		return h.fail(c, actions.ErrUnknownAction)
	}

	_, err := h.dispatcher.Callback(c.Context(), actions.CallbackRequest{
		Code:  c.Query("code"),
		State: c.Query("state"),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Redirect(h.frontendURL + "/dashboard?twitter_connected=true")
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := actions.HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		h.logger.WithError(err).Error("Action failed")
	} else {
		h.logger.WithError(err).Warn("Action rejected")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
