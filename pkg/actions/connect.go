package actions

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/pkce"
)

// AuthorizeResult carries the provider URL the frontend redirects to
type AuthorizeResult struct {
	AuthURL string `json:"authUrl"`
}

// Authorize starts an OAuth2 authorization attempt: a fresh PKCE session
// is stored and the provider authorize URL is returned
func (d *Dispatcher) Authorize(ctx context.Context, req AuthorizeRequest) (*AuthorizeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := d.sessions.Begin(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	challenge := pkce.GenerateCodeChallenge(session.CodeVerifier)
	authURL := d.client.AuthCodeURL(session.State, challenge)

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "authorize",
	}).Info("Authorization URL issued")

	return &AuthorizeResult{AuthURL: authURL}, nil
}

// CallbackResult reports the connected account after a successful exchange
type CallbackResult struct {
	ProfileID string `json:"profileId"`
	Username  string `json:"username"`
}

// Callback completes the flow: the state is consumed, the code exchanged
// for tokens with the stored verifier, and the connection persisted with
// a snapshot of the provider account.
func (d *Dispatcher) Callback(ctx context.Context, req CallbackRequest) (*CallbackResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	session, err := d.sessions.Consume(ctx, req.State)
	if err != nil {
		if errors.Is(err, pkce.ErrSessionNotFound) {
			return nil, ErrInvalidOrExpiredSession
		}
		return nil, err
	}

	token, err := d.client.ExchangeCode(ctx, req.Code, session.CodeVerifier)
	if err != nil {
		return nil, err
	}

	me, err := d.client.GetMe(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	conn := &models.SocialConnection{
		ProfileID:       session.ProfileID,
		Platform:        models.PlatformTwitter,
		IsConnected:     true,
		AccessToken:     token.AccessToken,
		RefreshToken:    token.RefreshToken,
		AccountID:       me.ID,
		AccountName:     me.Name,
		AccountUsername: me.Username,
		FollowersCount:  me.PublicMetrics.FollowersCount,
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		conn.TokenExpiresAt = &expiry
	}

	if err := d.connections.Upsert(ctx, conn); err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": session.ProfileID,
		"action":     "callback",
		"username":   me.Username,
	}).Info("Twitter account connected")

	return &CallbackResult{ProfileID: session.ProfileID, Username: me.Username}, nil
}

// DisconnectResult confirms the connection was deactivated
type DisconnectResult struct {
	Disconnected bool `json:"disconnected"`
}

// Disconnect deactivates the profile's Twitter connection and clears its
// tokens. Disconnecting an already-disconnected profile succeeds.
func (d *Dispatcher) Disconnect(ctx context.Context, req DisconnectRequest) (*DisconnectResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := d.connections.Disconnect(ctx, req.ProfileID, models.PlatformTwitter); err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "disconnect",
	}).Info("Twitter account disconnected")

	return &DisconnectResult{Disconnected: true}, nil
}
