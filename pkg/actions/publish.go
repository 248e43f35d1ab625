package actions

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/brandpilot/brandpilot/pkg/db/models"
	"github.com/brandpilot/brandpilot/pkg/memory"
)

// PostResult reports a published tweet
type PostResult struct {
	TweetID string `json:"tweetId"`
	Text    string `json:"text"`
}

// Post publishes the given text to the profile's connected account
func (d *Dispatcher) Post(ctx context.Context, req PostRequest) (*PostResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	conn, err := d.connections.GetActive(ctx, req.ProfileID, models.PlatformTwitter)
	if err != nil {
		if errors.Is(err, memory.ErrNoConnection) {
			return nil, ErrNotConnected
		}
		return nil, err
	}

	tweet, err := d.client.PostTweet(ctx, conn.AccessToken, req.Text, nil)
	if err != nil {
		return nil, err
	}

	d.logger.WithFields(logrus.Fields{
		"profile_id": req.ProfileID,
		"action":     "post",
		"tweet_id":   tweet.ID,
	}).Info("Tweet published")

	return &PostResult{TweetID: tweet.ID, Text: tweet.Text}, nil
}
