package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
)

// SearchParams holds the parameters for a recent-search request
type SearchParams struct {
	Query           string
	MaxResults      int
	PaginationToken string
}

// SearchRecent queries the recent-search endpoint with the configured
// tweet/user fields and author expansion. One call fetches one page; the
// caller follows Meta.NextToken for more.
// Rate limit: 300/15m per user token.
func (c *TwitterClient) SearchRecent(ctx context.Context, accessToken string, params SearchParams) (*SearchResponse, error) {
	log := c.logger.WithFields(logrus.Fields{
		"method": "SearchRecent",
		"query":  params.Query,
	})

	// max_results must be within the API's 10..100 bounds
	maxResults := params.MaxResults
	if maxResults < 10 {
		maxResults = 10
	}
	if maxResults > 100 {
		maxResults = 100
	}

	query := url.Values{}
	query.Set("query", params.Query)
	query.Set("max_results", strconv.Itoa(maxResults))
	query.Set("tweet.fields", c.config.GetTweetFields())
	query.Set("user.fields", c.config.GetUserFields())
	query.Set("expansions", c.config.GetExpansions())
	if params.PaginationToken != "" {
		query.Set("pagination_token", params.PaginationToken)
	}

	resp, err := c.makeRequest(ctx, http.MethodGet, c.config.SearchEndpoint, accessToken, query, nil)
	if err != nil {
		log.WithError(err).Error("failed to search tweets")
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.handleResponse(resp); err != nil {
		return nil, err
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		log.WithError(err).Error("failed to decode search response")
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	resultCount := 0
	if searchResp.Meta != nil {
		resultCount = searchResp.Meta.ResultCount
	}
	log.WithField("result_count", resultCount).Debug("Received search response")

	return &searchResp, nil
}
