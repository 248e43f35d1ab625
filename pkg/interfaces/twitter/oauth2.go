package twitter

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// oauthConfig builds the OAuth2 config for the Twitter endpoints. Twitter
// expects confidential clients to authenticate at the token endpoint with
// HTTP Basic auth.
func (c *TwitterClient) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  c.config.RedirectURI,
		Scopes:       c.config.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.config.AuthURL,
			TokenURL:  c.config.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// AuthCodeURL builds the provider authorization URL for a PKCE flow. The
// challenge must be the S256 derivation of the verifier stored in the
// pending session.
func (c *TwitterClient) AuthCodeURL(state, codeChallenge string) string {
	return c.oauthConfig().AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

// ExchangeCode redeems an authorization code for an access/refresh token
// pair, proving possession of the PKCE verifier
func (c *TwitterClient) ExchangeCode(ctx context.Context, code, verifier string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauthConfig().Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, c.wrapTokenError("code exchange", err)
	}

	c.logger.WithFields(logrus.Fields{
		"has_refresh_token": token.RefreshToken != "",
		"expiry":            token.Expiry,
	}).Debug("Exchanged authorization code for tokens")

	return token, nil
}

// RefreshToken obtains a fresh access token from a stored refresh token
func (c *TwitterClient) RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	source := c.oauthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, c.wrapTokenError("token refresh", err)
	}

	return token, nil
}

// wrapTokenError converts oauth2 retrieve errors into APIError so the
// provider's raw error body travels with the failure
func (c *TwitterClient) wrapTokenError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		c.logger.WithFields(logrus.Fields{
			"operation":   op,
			"status_code": retrieveErr.Response.StatusCode,
			"body":        string(retrieveErr.Body),
		}).Error("Twitter token endpoint error")

		return &APIError{
			StatusCode: retrieveErr.Response.StatusCode,
			Body:       string(retrieveErr.Body),
		}
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
