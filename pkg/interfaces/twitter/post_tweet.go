package twitter

import (
	"context"
	"encoding/json"
	"net/http"
)

// TweetOptions represents optional parameters for creating a tweet
type TweetOptions struct {
	ReplyTo string `json:"reply_to,omitempty"`
}

// CreateTweetRequest represents the request body for creating a tweet
type CreateTweetRequest struct {
	Text  string      `json:"text"`
	Reply *TweetReply `json:"reply,omitempty"`
}

// TweetReply nests the threaded-reply reference the v2 API expects
type TweetReply struct {
	InReplyToTweetID string `json:"in_reply_to_tweet_id"`
}

// PostTweetAsync creates a new tweet asynchronously and returns channels for the response and errors
func (c *TwitterClient) PostTweetAsync(ctx context.Context, accessToken, text string, opts *TweetOptions) (chan *Tweet, chan error) {
	tweets := make(chan *Tweet, 1)
	errors := make(chan error, 1)

	go func() {
		defer close(tweets)
		defer close(errors)

		request := CreateTweetRequest{
			Text: text,
		}
		if opts != nil && opts.ReplyTo != "" {
			request.Reply = &TweetReply{InReplyToTweetID: opts.ReplyTo}
		}

		resp, err := c.makeRequest(ctx, http.MethodPost, c.config.TweetEndpoint, accessToken, nil, request)
		if err != nil {
			c.logger.WithError(err).Error("failed to post tweet")
			errors <- err
			return
		}
		defer resp.Body.Close()

		if err := c.handleResponse(resp); err != nil {
			errors <- err
			return
		}

		var tweetResponse TweetResponse
		if err := json.NewDecoder(resp.Body).Decode(&tweetResponse); err != nil {
			c.logger.WithError(err).Error("failed to decode tweet response")
			errors <- err
			return
		}

		tweets <- tweetResponse.Data
	}()

	return tweets, errors
}

// PostTweet creates a new tweet synchronously
func (c *TwitterClient) PostTweet(ctx context.Context, accessToken, text string, opts *TweetOptions) (*Tweet, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tweets, errs := c.PostTweetAsync(ctx, accessToken, text, opts)

	// Wait for either a response or an error. Both channels close once the
	// call finishes, so a closed channel means the answer is on the other.
	select {
	case tweet, ok := <-tweets:
		if !ok {
			return nil, <-errs
		}
		return tweet, nil
	case err, ok := <-errs:
		if !ok {
			return <-tweets, nil
		}
		return nil, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// PostReply creates a threaded reply to an existing tweet
func (c *TwitterClient) PostReply(ctx context.Context, accessToken, text, replyToID string) (*Tweet, error) {
	log := c.logger.WithField("reply_to_id", replyToID)
	log.Debug("attempting to post reply tweet")

	tweet, err := c.PostTweet(ctx, accessToken, text, &TweetOptions{
		ReplyTo: replyToID,
	})
	if err != nil {
		log.WithError(err).Error("failed to post reply tweet")
		return nil, err
	}

	log.WithField("tweet_id", tweet.ID).Debug("successfully posted reply tweet")
	return tweet, nil
}
