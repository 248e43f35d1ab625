package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// GetMe fetches the profile of the user the access token belongs to.
// Used after a successful code exchange to enrich the stored connection.
func (c *TwitterClient) GetMe(ctx context.Context, accessToken string) (*User, error) {
	log := c.logger.WithField("method", "GetMe")

	query := url.Values{}
	query.Set("user.fields", c.config.GetUserFields())

	resp, err := c.makeRequest(ctx, http.MethodGet, c.config.MeEndpoint, accessToken, query, nil)
	if err != nil {
		log.WithError(err).Error("failed to fetch user identity")
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.handleResponse(resp); err != nil {
		return nil, err
	}

	var userResp UserResponse
	if err := json.NewDecoder(resp.Body).Decode(&userResp); err != nil {
		log.WithError(err).Error("failed to decode identity response")
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}

	if userResp.Data == nil {
		return nil, fmt.Errorf("identity response contained no user")
	}

	log.WithField("username", userResp.Data.Username).Debug("Fetched user identity")
	return userResp.Data, nil
}
